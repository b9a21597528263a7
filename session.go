package tote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ErrNoResult is returned when the input ends before a result line.
var ErrNoResult = errors.New("input ended without a result")

// Session reads bet lines until the result line and settles the pools.
// Its zero value is ready to use.
type Session struct {
	// Strict turns rejected and ignored lines into errors that stop the session.
	Strict bool
	// Log receives diagnostics, nil discards them.
	Log *zap.Logger
	// Ledger receives the bets, a fresh ledger is used when nil.
	Ledger *Ledger
}

// Run processes r line by line and returns the report of the first result line.
// Lines after the result line are never processed.
func (s *Session) Run(ctx context.Context, r io.Reader) (*Report, error) {
	ledger := s.Ledger
	if ledger == nil {
		ledger = NewLedger()
	}
	router := NewRouter(ledger, s.Log)

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n++
		status, err := router.Route(scanner.Text())
		switch {
		case status == StatusResult && err != nil:
			return nil, fmt.Errorf("line %d: %w", n, err)
		case status == StatusResult:
			return router.Report(), nil
		case err != nil && s.Strict:
			return nil, fmt.Errorf("line %d: %w", n, err)
		case status == StatusIgnored && err == nil && s.Strict && strings.TrimSpace(scanner.Text()) != "":
			return nil, fmt.Errorf("line %d: not a bet or result: %q", n, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	return nil, ErrNoResult
}

// Calculate is a shortcut for a default Session over r.
func Calculate(ctx context.Context, r io.Reader) (*Report, error) {
	var s Session
	return s.Run(ctx, r)
}
