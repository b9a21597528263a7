package tote

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBet is returned for a bet without product or selection.
var ErrInvalidBet = errors.New("invalid bet")

// SelectionSeparator joins the positions of a multi-runner selection, e.g. "1,2" for an exacta.
const SelectionSeparator = ","

// Bet is a stake placed on a selection of a product.
type Bet struct {
	Product   string // Product is the product code.
	Selection string // Selection is the raw selection key.
	Stake     Money
}

// ParseBet validates the fields of a bet line.
func ParseBet(product, selection, stake string) (Bet, error) {
	if product == "" {
		return Bet{}, fmt.Errorf("%w: product is missing", ErrInvalidBet)
	}
	if selection == "" {
		return Bet{}, fmt.Errorf("%w: selection is missing", ErrInvalidBet)
	}
	m, err := ParseStake(stake)
	if err != nil {
		return Bet{}, err
	}
	return Bet{Product: product, Selection: selection, Stake: m}, nil
}

// RecordBet parses a bet and records it in the ledger.
// The ledger is left untouched when the bet is invalid.
func RecordBet(ledger *Ledger, product, selection, stake string) (Bet, error) {
	bet, err := ParseBet(product, selection, stake)
	if err != nil {
		return Bet{}, err
	}
	ledger.Record(bet.Product, bet.Selection, bet.Stake)
	return bet, nil
}

// Runners returns the competitors of a selection, in order.
func (b Bet) Runners() []string {
	return strings.Split(b.Selection, SelectionSeparator)
}

func (b Bet) String() string {
	return fmt.Sprintf("%s:%s:%s", b.Product, b.Selection, b.Stake)
}
