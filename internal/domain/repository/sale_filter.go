package repository

import (
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
)

// SaleFilter selects sales. A nil field, or a zero product or category id,
// places no constraint on that dimension; every other set field must hold
// for a sale to match.
type SaleFilter struct {
	StartDate  *time.Time // inclusive lower bound on sale_date
	EndDate    *time.Time // inclusive upper bound on sale_date
	ProductID  *uint
	CategoryID *uint
}

// SaleConstraint is one active condition of a SaleFilter.
// Column, Operator and Value describe it for a SQL store; Test evaluates it in memory.
type SaleConstraint struct {
	Column   string
	Operator string
	Value    any
	Test     func(sale *entity.Sale) bool
}

// Constraints returns the active constraints in a fixed order:
// start date, end date, product, category.
func (f SaleFilter) Constraints() []SaleConstraint {
	constraints := make([]SaleConstraint, 0, 4)

	if f.StartDate != nil {
		start := f.StartDate.UTC()
		constraints = append(constraints, SaleConstraint{
			Column:   "sale_date",
			Operator: ">=",
			Value:    start,
			Test:     func(s *entity.Sale) bool { return !s.SaleDate.Before(start) },
		})
	}
	if f.EndDate != nil {
		end := f.EndDate.UTC()
		constraints = append(constraints, SaleConstraint{
			Column:   "sale_date",
			Operator: "<=",
			Value:    end,
			Test:     func(s *entity.Sale) bool { return !s.SaleDate.After(end) },
		})
	}
	if f.ProductID != nil && *f.ProductID != 0 {
		productID := *f.ProductID
		constraints = append(constraints, SaleConstraint{
			Column:   "product_id",
			Operator: "=",
			Value:    productID,
			Test:     func(s *entity.Sale) bool { return s.ProductID == productID },
		})
	}
	if f.CategoryID != nil && *f.CategoryID != 0 {
		categoryID := *f.CategoryID
		constraints = append(constraints, SaleConstraint{
			Column:   "category_id",
			Operator: "=",
			Value:    categoryID,
			Test:     func(s *entity.Sale) bool { return s.CategoryID == categoryID },
		})
	}

	return constraints
}

// Matches reports whether the sale satisfies every active constraint
func (f SaleFilter) Matches(sale *entity.Sale) bool {
	for _, c := range f.Constraints() {
		if !c.Test(sale) {
			return false
		}
	}
	return true
}

// WithWindow returns a copy of the filter with its date bounds replaced.
// Product and category constraints are kept.
func (f SaleFilter) WithWindow(start, end time.Time) SaleFilter {
	f.StartDate = &start
	f.EndDate = &end
	return f
}
