package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Stock is the single contended resource in the
// system: it is only ever mutated through the repository's atomic conditional
// reserve/release operations, and InStock is always recomputed from Stock in
// the same statement, never set independently.
type Product struct {
	ID          string // opaque storage id (UUID)
	ProductID   *int64 // stable numeric id shown to the storefront; nullable
	Name        string
	Price       decimal.Decimal // non-negative sale price
	Image       string
	Category    string
	Description string
	Stock       int
	InStock     bool
	Rating      float64 // 0..5
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FrontendID returns the identifier the storefront uses: the numeric id when
// assigned, otherwise a short suffix of the opaque id.
func (p *Product) FrontendID() any {
	if p.ProductID != nil {
		return *p.ProductID
	}
	return ShortID(p.ID)
}
