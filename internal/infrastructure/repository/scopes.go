package repository

import (
	domainRepo "github.com/sangkips/salesledger/internal/domain/repository"
	"gorm.io/gorm"
)

// SaleFilterScope returns a GORM scope that applies every active constraint of
// the filter as a WHERE condition. It renders the same constraint list that
// SaleFilter.Matches evaluates in memory.
func SaleFilterScope(filter domainRepo.SaleFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range filter.Constraints() {
			db = db.Where(c.Column+" "+c.Operator+" ?", c.Value)
		}
		return db
	}
}
