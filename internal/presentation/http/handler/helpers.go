package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/salesledger/pkg/apperror"
	"github.com/sangkips/salesledger/pkg/utils"
)

// ParseIDParam reads an unsigned integer path parameter
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewFieldValidationError(name, "must be an integer")
	}
	return uint(id), nil
}

// ParseTimestampField parses a required date value, reporting failures against field
func ParseTimestampField(field, value string) (time.Time, error) {
	parsed, err := utils.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, apperror.NewFieldValidationError(field, err.Error())
	}
	return parsed, nil
}

// ParseOptionalTimestampField returns nil for a blank value
func ParseOptionalTimestampField(field, value string) (*time.Time, error) {
	parsed, err := utils.ParseOptionalTimestamp(value)
	if err != nil {
		return nil, apperror.NewFieldValidationError(field, err.Error())
	}
	return parsed, nil
}

// BindingError converts a gin binding failure into a validation error
func BindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field:   toSnakeCase(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		return apperror.NewValidationError(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.NewFieldValidationError(typeErr.Field, "must be of type "+typeErr.Type.String())
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apperror.NewFieldValidationError("query", "invalid number "+strconv.Quote(numErr.Num))
	}

	if errors.Is(err, io.EOF) {
		return apperror.NewFieldValidationError("body", "request body is required")
	}

	return apperror.NewFieldValidationError("body", err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// toSnakeCase maps a Go field name such as StockQuantity to stock_quantity
func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(name[i-1] >= 'A' && name[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
