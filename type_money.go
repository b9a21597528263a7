package tote

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayFraction is the number of decimals printed for stakes and dividends.
const displayFraction = 2

var (
	// ErrInvalidStake is returned when a stake text is not a number.
	ErrInvalidStake = errors.New("invalid stake")
	// ErrNegativeStake is returned when a stake is below zero.
	ErrNegativeStake = errors.New("negative stake")
)

// Money is an exact monetary amount, always in dollars.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseStake parses a stake as typed on a bet line.
func ParseStake(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidStake)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidStake, s)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeStake, s)
	}
	return Money{value: d}, nil
}

// formatter prints dollars like "$1234.50": go-money's USD without thousands separator.
func formatter() *money.Formatter {
	cur := money.GetCurrency(money.USD)
	return money.NewFormatter(cur.Fraction, cur.Decimal, "", cur.Grapheme, cur.Template)
}

// maxCents bounds the amounts go-money can format, it counts cents in an int64.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// String returns the amount rounded half-up to cents, e.g. "$1.28".
func (m Money) String() string {
	rounded := m.Round().value
	cents := rounded.Shift(displayFraction)
	if cents.Abs().GreaterThan(maxCents) {
		if rounded.IsNegative() {
			return "-$" + rounded.Abs().StringFixed(displayFraction)
		}
		return "$" + rounded.StringFixed(displayFraction)
	}
	return formatter().Format(cents.IntPart())
}

// Round returns the amount rounded half away from zero to cents.
func (m Money) Round() Money { return Money{value: m.value.Round(displayFraction)} }

// Decimal returns the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Mul(d decimal.Decimal) Money { return Money{value: m.value.Mul(d)} }

// Div splits the amount into n equal shares.
func (m Money) Div(n int64) Money { return Money{value: m.value.Div(decimal.NewFromInt(n))} }

// Per returns how many times n fits in m, the dividend paid per dollar staked.
// n must not be zero.
func (m Money) Per(n Money) Money { return Money{value: m.value.Div(n.value)} }

// MarshalJSON writes the amount rounded to cents, as a bare number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Round().value.MarshalJSON()
}
