package repository

import (
	"testing"
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func sampleSales() []entity.Sale {
	var sales []entity.Sale
	id := uint(1)
	for _, d := range []int{1, 5, 10, 15, 20} {
		for _, product := range []uint{1, 2} {
			for _, category := range []uint{7, 8} {
				sales = append(sales, entity.Sale{
					ID:         id,
					ProductID:  product,
					CategoryID: category,
					Quantity:   1,
					Revenue:    float64(id),
					SaleDate:   day(d),
				})
				id++
			}
		}
	}
	return sales
}

// singleFilters returns one filter per dimension, each with exactly one active constraint
func singleFilters() []SaleFilter {
	return []SaleFilter{
		{StartDate: timePtr(day(5))},
		{EndDate: timePtr(day(15))},
		{ProductID: uintPtr(2)},
		{CategoryID: uintPtr(7)},
	}
}

// combine merges the single filters selected by mask into one filter
func combine(mask int) SaleFilter {
	var f SaleFilter
	singles := singleFilters()
	if mask&1 != 0 {
		f.StartDate = singles[0].StartDate
	}
	if mask&2 != 0 {
		f.EndDate = singles[1].EndDate
	}
	if mask&4 != 0 {
		f.ProductID = singles[2].ProductID
	}
	if mask&8 != 0 {
		f.CategoryID = singles[3].CategoryID
	}
	return f
}

func TestSaleFilter_EmptyMatchesEverything(t *testing.T) {
	var f SaleFilter
	assert.Empty(t, f.Constraints())
	for _, s := range sampleSales() {
		assert.True(t, f.Matches(&s))
	}
}

func TestSaleFilter_ConjunctionLaw(t *testing.T) {
	singles := singleFilters()
	sales := sampleSales()

	// every subset of the four dimensions, covering 0 through 4 active constraints
	for mask := 0; mask < 16; mask++ {
		f := combine(mask)
		active := 0
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				active++
			}
		}
		require.Len(t, f.Constraints(), active)

		for i := range sales {
			s := &sales[i]
			want := true
			for bit, single := range singles {
				if mask&(1<<bit) != 0 && !single.Matches(s) {
					want = false
				}
			}
			assert.Equal(t, want, f.Matches(s), "mask=%04b sale=%d", mask, s.ID)
		}
	}
}

func TestSaleFilter_BoundsAreInclusive(t *testing.T) {
	f := SaleFilter{StartDate: timePtr(day(5)), EndDate: timePtr(day(10))}

	assert.True(t, f.Matches(&entity.Sale{SaleDate: day(5)}))
	assert.True(t, f.Matches(&entity.Sale{SaleDate: day(10)}))
	assert.False(t, f.Matches(&entity.Sale{SaleDate: day(10).Add(time.Nanosecond)}))
	assert.False(t, f.Matches(&entity.Sale{SaleDate: day(5).Add(-time.Nanosecond)}))
}

func TestSaleFilter_InvertedRangeMatchesNothing(t *testing.T) {
	f := SaleFilter{StartDate: timePtr(day(10)), EndDate: timePtr(day(5))}
	for _, s := range sampleSales() {
		assert.False(t, f.Matches(&s))
	}
}

func TestSaleFilter_ConstraintOrderAndColumns(t *testing.T) {
	f := combine(15)
	var cols, ops []string
	for _, c := range f.Constraints() {
		cols = append(cols, c.Column)
		ops = append(ops, c.Operator)
	}
	assert.Equal(t, []string{"sale_date", "sale_date", "product_id", "category_id"}, cols)
	assert.Equal(t, []string{">=", "<=", "=", "="}, ops)
}

func TestSaleFilter_WithWindowKeepsIdentityConstraints(t *testing.T) {
	base := SaleFilter{
		StartDate:  timePtr(day(1)),
		EndDate:    timePtr(day(2)),
		ProductID:  uintPtr(3),
		CategoryID: uintPtr(4),
	}

	w := base.WithWindow(day(10), day(20))
	assert.Equal(t, day(10), *w.StartDate)
	assert.Equal(t, day(20), *w.EndDate)
	assert.Equal(t, uint(3), *w.ProductID)
	assert.Equal(t, uint(4), *w.CategoryID)

	// the receiver is untouched
	assert.Equal(t, day(1), *base.StartDate)
	assert.Equal(t, day(2), *base.EndDate)
}

func TestSaleFilter_ZeroIDsAreAbsent(t *testing.T) {
	f := SaleFilter{ProductID: uintPtr(0), CategoryID: uintPtr(0)}
	assert.Empty(t, f.Constraints())
	for _, s := range sampleSales() {
		assert.True(t, f.Matches(&s))
	}

	withProduct := SaleFilter{ProductID: uintPtr(2), CategoryID: uintPtr(0)}
	require.Len(t, withProduct.Constraints(), 1)
	assert.Equal(t, "product_id", withProduct.Constraints()[0].Column)
}
