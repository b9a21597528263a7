package tote

import (
	"errors"
	"slices"
	"testing"
)

// sumSelections adds all the selection stakes of a pool.
func sumSelections(p Pool) Money {
	var sum Money
	for _, stake := range p.Selections() {
		sum = sum.Add(stake)
	}
	return sum
}

func TestLedger_Record(t *testing.T) {
	ledger := NewLedger()
	bets := []Bet{
		{"w", "1", M(100)},
		{"w", "2", M(50)},
		{"w", "1", M(25)},
		{"p", "3", M(10)},
		{"e", "1,2", M(40)},
	}

	for i, bet := range bets {
		ledger.Record(bet.Product, bet.Selection, bet.Stake)
		// The pool total matches its selections after every bet.
		pool, ok := ledger.Pool(bet.Product)
		if !ok {
			t.Fatalf("after bet %d: no pool for %q", i, bet.Product)
		}
		if sum := sumSelections(pool); !pool.Total().Equal(sum) {
			t.Errorf("after bet %d: pool total %s != sum of selections %s", i, pool.Total(), sum)
		}
	}

	win, _ := ledger.Pool("w")
	if !win.Total().Equal(M(175)) {
		t.Errorf("win total = %s, want $175.00", win.Total())
	}
	if stake, _ := win.Stake("1"); !stake.Equal(M(125)) {
		t.Errorf("win stake on 1 = %s, want $125.00", stake)
	}
	if _, ok := win.Stake("3"); ok {
		t.Errorf("win stake on 3 exists, want none")
	}

	if got, want := ledger.Codes(), []string{"e", "p", "w"}; !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestLedger_RecordIsNotIdempotent(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("w", "1", M(100))
	ledger.Record("w", "1", M(100))

	pool, _ := ledger.Pool("w")
	if !pool.Total().Equal(M(200)) {
		t.Errorf("total = %s, want $200.00", pool.Total())
	}
}

func TestLedger_RecordIsCommutative(t *testing.T) {
	a := Bet{"p", "1", M(30)}
	b := Bet{"p", "2", M(20.5)}

	ab, ba := NewLedger(), NewLedger()
	for _, bet := range []Bet{a, b} {
		ab.Record(bet.Product, bet.Selection, bet.Stake)
	}
	for _, bet := range []Bet{b, a} {
		ba.Record(bet.Product, bet.Selection, bet.Stake)
	}

	p1, _ := ab.Pool("p")
	p2, _ := ba.Pool("p")
	if !p1.Total().Equal(p2.Total()) {
		t.Errorf("totals differ: %s != %s", p1.Total(), p2.Total())
	}
	for key, stake := range p1.Selections() {
		if other, ok := p2.Stake(key); !ok || !other.Equal(stake) {
			t.Errorf("selection %q: %s != %s", key, stake, other)
		}
	}
}

func TestLedger_PoolIsACopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("w", "1", M(10))
	pool, _ := ledger.Pool("w")

	ledger.Record("w", "1", M(10))
	if stake, _ := pool.Stake("1"); !stake.Equal(M(10)) {
		t.Errorf("copied pool changed to %s", stake)
	}
}

func TestRecordBet(t *testing.T) {
	testCases := []struct {
		name                       string
		product, selection, amount string
		wantErr                    error
	}{
		{name: "valid", product: "w", selection: "1", amount: "100"},
		{name: "composite selection", product: "e", selection: "1,2", amount: "40"},
		{name: "non numeric stake", product: "w", selection: "1", amount: "abc", wantErr: ErrInvalidStake},
		{name: "negative stake", product: "w", selection: "1", amount: "-1", wantErr: ErrNegativeStake},
		{name: "missing product", product: "", selection: "1", amount: "1", wantErr: ErrInvalidBet},
		{name: "missing selection", product: "w", selection: "", amount: "1", wantErr: ErrInvalidBet},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger()
			_, err := RecordBet(ledger, tc.product, tc.selection, tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("RecordBet() error = %v, want %v", err, tc.wantErr)
			}
			_, recorded := ledger.Pool(tc.product)
			if recorded != (tc.wantErr == nil) {
				t.Errorf("pool recorded = %v, want %v", recorded, tc.wantErr == nil)
			}
		})
	}
}
