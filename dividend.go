package tote

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoBets is returned when a product has no pool at settlement.
	ErrNoBets = errors.New("no bets recorded")
	// ErrNoWinningStake is returned when nobody staked on a paying selection.
	ErrNoWinningStake = errors.New("no stake on winning selection")
)

// Result is the finishing order of a race.
type Result struct {
	First, Second, Third string
}

// Exacta returns the selection key of the exact first and second places.
func (r Result) Exacta() string {
	return r.First + SelectionSeparator + r.Second
}

// Dividend is the amount paid per dollar staked on a winning selection.
type Dividend struct {
	Product   string // Product is the product name.
	Selection string // Selection is the label of the paying selection.
	Amount    Money  // Amount is exact, rounding happens on display.
}

func (d Dividend) String() string {
	return d.Product + ":" + d.Selection + ":" + d.Amount.String()
}

// MarshalJSON implements the json.Marshaler interface for Dividend.
func (d Dividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("product", d.Product)
	w.Append("selection", d.Selection)
	w.Append("amount", d.Amount)
	return w.MarshalJSON()
}

// Report is the list of dividends for a result, in product order.
type Report struct {
	Result    Result
	Dividends []Dividend
}

// ReportHeader is printed before the dividend lines.
const ReportHeader = "======== Dividents ========"

// String renders the report in the canonical text format.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString("\n" + ReportHeader + "\n\n")
	for _, d := range r.Dividends {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ComputeDividends settles every product against the result.
func ComputeDividends(ledger *Ledger, products []Product, result Result) (*Report, error) {
	report := &Report{Result: result}
	for _, p := range products {
		pool, ok := ledger.Pool(p.Code)
		if !ok {
			return nil, fmt.Errorf("%w for product %s (%q)", ErrNoBets, p.Name, p.Code)
		}
		dividends, err := p.payout(pool, result)
		if err != nil {
			return nil, fmt.Errorf("cannot settle %s: %w", p.Name, err)
		}
		report.Dividends = append(report.Dividends, dividends...)
	}
	return report, nil
}

// payout applies the product rule to its pool.
func (p Product) payout(pool Pool, result Result) ([]Dividend, error) {
	net := p.Net(pool.Total())
	switch p.Rule {
	case Win:
		d, err := p.pay(pool, net, result.First)
		if err != nil {
			return nil, err
		}
		return []Dividend{d}, nil
	case Place:
		// Each place gets its own line, even when two places name the same runner.
		share := net.Div(3)
		dividends := make([]Dividend, 0, 3)
		for _, runner := range []string{result.First, result.Second, result.Third} {
			d, err := p.pay(pool, share, runner)
			if err != nil {
				return nil, err
			}
			dividends = append(dividends, d)
		}
		return dividends, nil
	case Exacta:
		d, err := p.pay(pool, net, result.Exacta())
		if err != nil {
			return nil, err
		}
		return []Dividend{d}, nil
	default:
		return nil, fmt.Errorf("unsupported payout rule %v", p.Rule)
	}
}

// pay shares amount between the stakes on selection.
func (p Product) pay(pool Pool, amount Money, selection string) (Dividend, error) {
	stake, ok := pool.Stake(selection)
	if !ok || stake.IsZero() {
		return Dividend{}, fmt.Errorf("%w %q", ErrNoWinningStake, selection)
	}
	return Dividend{Product: p.Name, Selection: selection, Amount: amount.Per(stake)}, nil
}
