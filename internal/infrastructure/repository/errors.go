package repository

import (
	"errors"
	"net/http"

	"github.com/sangkips/salesledger/pkg/apperror"
	"gorm.io/gorm"
)

// translateReferenceError maps a foreign-key violation to a 422. Postgres
// enforces the product and category references; sqlite only does so with
// PRAGMA foreign_keys enabled. Requires gorm.Config.TranslateError.
func translateReferenceError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.NewAppError(http.StatusUnprocessableEntity, "Referenced product or category does not exist")
	}
	return err
}
