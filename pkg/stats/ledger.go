package stats

import "github.com/shopspring/decimal"

// Ledger accumulates per-currency buy-in and prize totals for one request.
// Pure accumulation: no subtraction, no currency conversion. Contributions
// with an absent currency are dropped rather than coerced to a default
// symbol.
type Ledger struct {
	buyins map[string]decimal.Decimal
	prizes map[string]decimal.Decimal
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		buyins: make(map[string]decimal.Decimal),
		prizes: make(map[string]decimal.Decimal),
	}
}

// AddBuyin adds amount to the buy-in total for currency.
func (l *Ledger) AddBuyin(currency string, amount decimal.Decimal) {
	if currency == "" {
		return
	}
	l.buyins[currency] = l.buyins[currency].Add(amount)
}

// AddPrize adds amount to the prize total for currency.
func (l *Ledger) AddPrize(currency string, amount decimal.Decimal) {
	if currency == "" {
		return
	}
	l.prizes[currency] = l.prizes[currency].Add(amount)
}

// Snapshot returns copies of the buy-in and prize totals. The maps are never
// nil, so an empty ledger serializes as {}.
func (l *Ledger) Snapshot() (buyins, prizes map[string]decimal.Decimal) {
	buyins = make(map[string]decimal.Decimal, len(l.buyins))
	for c, v := range l.buyins {
		buyins[c] = v
	}
	prizes = make(map[string]decimal.Decimal, len(l.prizes))
	for c, v := range l.prizes {
		prizes[c] = v
	}
	return buyins, prizes
}
