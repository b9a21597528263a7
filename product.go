package tote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PayoutRule defines how a product splits its net pool between the finishing positions.
type PayoutRule int

const (
	// Win pays the whole net pool to stakes on the first place.
	Win PayoutRule = iota
	// Place splits the net pool in three equal shares, one for each of the first three places.
	Place
	// Exacta pays the whole net pool to stakes on the exact first and second places, in order.
	Exacta
)

func (r PayoutRule) String() string {
	switch r {
	case Win:
		return "win"
	case Place:
		return "place"
	case Exacta:
		return "exacta"
	default:
		return "unknown"
	}
}

// Product is a betting game with its own pool.
type Product struct {
	Code       string          // Code identifies the product on bet lines, e.g. "w".
	Name       string          // Name is the label used in reports.
	Commission decimal.Decimal // Commission is the fraction of the pool withheld, in [0,1).
	Rule       PayoutRule
}

// products is the registry, in report order.
var products = []Product{
	{Code: "w", Name: "Win", Commission: decimal.RequireFromString("0.15"), Rule: Win},
	{Code: "p", Name: "Place", Commission: decimal.RequireFromString("0.12"), Rule: Place},
	{Code: "e", Name: "Exacta", Commission: decimal.RequireFromString("0.18"), Rule: Exacta},
}

// Products returns the supported products in report order.
func Products() []Product {
	return append([]Product(nil), products...)
}

// LookupProduct returns the product registered with this code.
func LookupProduct(code string) (Product, error) {
	for _, p := range products {
		if p.Code == code {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("unknown product %q", code)
}

// Net returns what is left of the pool once the commission is withheld.
func (p Product) Net(total Money) Money {
	return total.Mul(decimal.NewFromInt(1).Sub(p.Commission))
}
