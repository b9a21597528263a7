package tote

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Pool accumulates the stakes placed on one product.
//
// Total is always the sum of all selection stakes.
type Pool struct {
	total      Money
	selections map[string]Money // index stakes by selection key
}

// Total returns the sum of all stakes on the product.
func (p Pool) Total() Money { return p.total }

// Stake returns the stakes placed on the exact selection key, and false if there were none.
func (p Pool) Stake(selection string) (Money, bool) {
	m, ok := p.selections[selection]
	return m, ok
}

// Selections yields each selection key with its stake, in key order.
func (p Pool) Selections() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		for _, key := range slices.Sorted(maps.Keys(p.selections)) {
			if !yield(key, p.selections[key]) {
				return
			}
		}
	}
}

func (p *Pool) add(selection string, stake Money) {
	p.total = p.total.Add(stake)
	p.selections[selection] = p.selections[selection].Add(stake)
}

// Ledger holds one Pool per product code.
//
// It is safe to record bets from several goroutines; a reader sees every bet
// recorded before the read started.
type Ledger struct {
	mu    sync.Mutex
	pools map[string]*Pool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{pools: make(map[string]*Pool)}
}

// Record adds a stake to the product pool and to the selection within it.
// Pools and selections are created on first use.
func (l *Ledger) Record(code, selection string, stake Money) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.pools[code]
	if !ok {
		p = &Pool{selections: make(map[string]Money)}
		l.pools[code] = p
	}
	p.add(selection, stake)
}

// Pool returns a copy of the pool for this product code, and false if no bet was recorded on it.
func (l *Ledger) Pool(code string) (Pool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.pools[code]
	if !ok {
		return Pool{}, false
	}
	return Pool{total: p.total, selections: maps.Clone(p.selections)}, true
}

// Codes returns the product codes that received bets, sorted.
func (l *Ledger) Codes() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Sorted(maps.Keys(l.pools))
}
