// Package stats turns tournament result rows into a financial report:
// per-currency buy-in and prize totals, per-event ROI and yearly averages.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myusername/poker-results-scraper/pkg/models"
	"github.com/myusername/poker-results-scraper/pkg/money"
)

// Options controls row admission.
type Options struct {
	// RequireAnyPrizeCell drops rows without a single parseable prize cell.
	// Off by default: such rows normally still count toward totals.
	RequireAnyPrizeCell bool
}

// Outcome tags what happened to a single row.
type Outcome int

const (
	Accepted Outcome = iota
	ExcludedOnline
	ExcludedNoPrize
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case ExcludedOnline:
		return "excluded_online"
	case ExcludedNoPrize:
		return "excluded_no_prize"
	}
	return "unknown"
}

var (
	yearRe = regexp.MustCompile(`[0-9]{4}`)
	// plusRe picks up a "+"-joined second amount group, optionally repeating
	// the currency symbol ("$1,000 + 100", "$1,000 + $100").
	plusRe = regexp.MustCompile(`^\s*\+\s*([^\s\d.,+\-]*)([0-9][0-9,]*(?:\.[0-9]+)?)`)
)

// Extract derives a TournamentEvent from one row. Only the returned Outcome
// removes a row from all totals; a row that fails every parse step still
// yields an event with zero amounts so it can be counted. The event is nil
// unless the outcome is Accepted.
func Extract(row models.RowRecord, opts Options) (*models.TournamentEvent, Outcome) {
	if strings.Contains(strings.ToLower(row.EventNameText), "online") {
		return nil, ExcludedOnline
	}

	ev := &models.TournamentEvent{BuyinAmount: decimal.Zero}

	if y := yearRe.FindString(row.DateText); y != "" {
		ev.Year, _ = strconv.Atoi(y)
	}

	if buyin, ok := parseBuyin(row.EventNameText); ok {
		ev.BuyinAmount = buyin.Amount
		ev.BuyinCurrency = buyin.Currency
	}

	for _, cell := range row.CurrencyCellTexts {
		m, ok := money.Parse(cell)
		if !ok {
			continue
		}
		ev.PrizeCells = append(ev.PrizeCells, m)
		// First currency-matched cell is the ROI-eligible prize; later
		// matches still accumulate in the ledger but never affect ROI.
		if ev.ROIPrize == nil && ev.BuyinCurrency != "" && m.Currency == ev.BuyinCurrency {
			matched := m
			ev.ROIPrize = &matched
		}
	}

	if opts.RequireAnyPrizeCell && len(ev.PrizeCells) == 0 {
		return nil, ExcludedNoPrize
	}

	if ev.ROIPrize != nil && ev.BuyinAmount.IsPositive() {
		roi := ev.ROIPrize.Amount.Div(ev.BuyinAmount)
		ev.ROI = &roi
	}

	return ev, Accepted
}

// parseBuyin reads the buy-in from the event name. A second "+"-joined
// numeric group with the same (or no) currency symbol is summed in, covering
// stake+fee notations like "$1,000 + 100". Any third group is assumed to be
// unrelated descriptive text and ignored.
func parseBuyin(text string) (money.Money, bool) {
	m, rest, ok := money.Find(text)
	if !ok {
		return money.Money{}, false
	}

	if g := plusRe.FindStringSubmatch(rest); g != nil && (g[1] == "" || g[1] == m.Currency) {
		if fee, err := decimal.NewFromString(strings.ReplaceAll(g[2], ",", "")); err == nil {
			m.Amount = m.Amount.Add(fee)
		}
	}

	return m, true
}
