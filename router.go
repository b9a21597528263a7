package tote

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrSettled is returned when a line is routed after the result.
var ErrSettled = errors.New("pools already settled")

// CommandType identifies the kind of an input line.
type CommandType string

// Command types recognized on input lines.
const (
	CmdBet    CommandType = "bet"
	CmdResult CommandType = "result"
)

// lineSeparator separates the fields of an input line.
const lineSeparator = ":"

// Status tells what a routed line did.
type Status int

const (
	// StatusIgnored is for lines that are not a command: unknown key, missing fields or blank.
	StatusIgnored Status = iota
	// StatusBet is for a bet recorded in the ledger.
	StatusBet
	// StatusResult is for the result line, the report is ready.
	StatusResult
)

func (s Status) String() string {
	switch s {
	case StatusIgnored:
		return "ignored"
	case StatusBet:
		return "bet"
	case StatusResult:
		return "result"
	default:
		return "unknown"
	}
}

// Router dispatches input lines to the ledger or the dividend engine.
type Router struct {
	ledger   *Ledger
	products []Product
	log      *zap.Logger
	report   *Report
}

// NewRouter creates a router recording bets into ledger.
// A nil logger discards logs.
func NewRouter(ledger *Ledger, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{ledger: ledger, products: Products(), log: log}
}

// Report returns the report computed by the result line, or nil before it.
func (r *Router) Report() *Report { return r.report }

// Route processes one line. Lines are case-insensitive and trimmed.
//
// A bet that fails validation returns its error and leaves the ledger untouched.
// A result that cannot be settled returns its error and no report.
func (r *Router) Route(line string) (Status, error) {
	if r.report != nil {
		return StatusIgnored, ErrSettled
	}
	line = strings.ToLower(strings.TrimSpace(line))
	key, rest, _ := strings.Cut(line, lineSeparator)
	params := strings.Split(rest, lineSeparator)

	switch CommandType(key) {
	case CmdBet:
		if len(params) < 3 {
			r.log.Warn("ignoring bet with missing fields", zap.String("line", line))
			return StatusIgnored, nil
		}
		bet, err := RecordBet(r.ledger, params[0], params[1], params[2])
		if err != nil {
			r.log.Warn("rejected bet", zap.String("line", line), zap.Error(err))
			return StatusIgnored, err
		}
		r.checkProduct(bet)
		r.log.Debug("recorded bet", zap.Stringer("bet", bet))
		return StatusBet, nil
	case CmdResult:
		if len(params) < 3 {
			r.log.Warn("ignoring result with missing places", zap.String("line", line))
			return StatusIgnored, nil
		}
		result := Result{First: params[0], Second: params[1], Third: params[2]}
		report, err := ComputeDividends(r.ledger, r.products, result)
		if err != nil {
			return StatusResult, err
		}
		r.report = report
		r.log.Debug("settled pools", zap.Strings("pools", r.ledger.Codes()), zap.Int("dividends", len(report.Dividends)))
		return StatusResult, nil
	default:
		if line != "" {
			r.log.Debug("ignoring line", zap.String("line", line))
		}
		return StatusIgnored, nil
	}
}

// checkProduct warns about bets that can never pay out.
func (r *Router) checkProduct(bet Bet) {
	p, err := LookupProduct(bet.Product)
	if err != nil {
		r.log.Warn("bet on unknown product will not pay out", zap.String("product", bet.Product))
		return
	}
	if p.Rule == Exacta && len(bet.Runners()) != 2 {
		r.log.Warn("exacta selection does not name two runners", zap.String("selection", bet.Selection))
	}
}
