// Package models contains data structures for poker tournament statistics
package models

import (
	"github.com/shopspring/decimal"

	"github.com/myusername/poker-results-scraper/pkg/money"
)

func init() {
	// Totals and ROI values serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// RowRecord is one raw row of the results table, as handed over by the DOM
// selection layer. The statistics engine depends on nothing but this shape.
type RowRecord struct {
	// EventNameText is the event-name cell text. When the cell contains a
	// link the link text is used, so decorative icons never end up here.
	EventNameText string
	// EventIsAnchor records whether EventNameText came from a link.
	EventIsAnchor bool
	// DateText is the raw date cell text.
	DateText string
	// CurrencyCellTexts holds the remaining monetary cells in document order.
	CurrencyCellTexts []string
}

// TournamentEvent is one included tournament derived from a RowRecord.
type TournamentEvent struct {
	// Year is 0 when no 4-digit year was found in the date cell.
	Year int
	// BuyinAmount is zero when no buy-in could be parsed; the event still
	// counts toward totals.
	BuyinAmount   decimal.Decimal
	BuyinCurrency string
	// PrizeCells holds every successfully parsed currency cell, in document
	// order. All of them feed the prize ledger.
	PrizeCells []money.Money
	// ROIPrize is the first prize cell whose currency equals BuyinCurrency,
	// nil when none matched.
	ROIPrize *money.Money
	// ROI is ROIPrize / BuyinAmount; nil unless the buy-in is positive and a
	// currency-matched prize exists.
	ROI *decimal.Decimal
}

// YearlyStats is the aggregated result for one calendar year.
type YearlyStats struct {
	Year             int             `json:"year"`
	Tournaments      int             `json:"tournaments"`
	AverageROIByCash decimal.Decimal `json:"averageROIByCash"`
}

// PlayerReport is the final report for one profile request.
type PlayerReport struct {
	Player           string                     `json:"player"`
	TotalTournaments int                        `json:"totalTournaments"`
	TotalBuyins      map[string]decimal.Decimal `json:"totalBuyins"`
	TotalPrizes      map[string]decimal.Decimal `json:"totalPrizes"`
	AverageROIByCash decimal.Decimal            `json:"averageROIByCash"`
	// YearlyStats is ordered strictly descending by year.
	YearlyStats []YearlyStats `json:"yearlyStats"`

	TotalBuyinsText string `json:"totalBuyinsText"`
	TotalPrizesText string `json:"totalPrizesText"`
	YearlyStatsText string `json:"yearlyStatsText"`
}
