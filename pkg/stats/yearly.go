package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

type yearAgg struct {
	count int
	roi   []decimal.Decimal
}

// YearlyBuilder groups accepted events into per-year buckets.
type YearlyBuilder struct {
	years map[int]*yearAgg
}

// NewYearlyBuilder returns an empty builder.
func NewYearlyBuilder() *YearlyBuilder {
	return &YearlyBuilder{years: make(map[int]*yearAgg)}
}

// Add counts the event toward its year and records its ROI when present.
// Events without a year are skipped; they still count toward the overall
// totals elsewhere.
func (b *YearlyBuilder) Add(ev *models.TournamentEvent) {
	if ev.Year == 0 {
		return
	}
	agg := b.years[ev.Year]
	if agg == nil {
		agg = &yearAgg{}
		b.years[ev.Year] = agg
	}
	agg.count++
	if ev.ROI != nil {
		agg.roi = append(agg.roi, *ev.ROI)
	}
}

// Build returns the buckets sorted strictly descending by year. The average
// is the mean of the bucket's ROI list, not a division by the tournament
// count, which may be larger when some events carry no ROI.
func (b *YearlyBuilder) Build() []models.YearlyStats {
	out := make([]models.YearlyStats, 0, len(b.years))
	for year, agg := range b.years {
		out = append(out, models.YearlyStats{
			Year:             year,
			Tournaments:      agg.count,
			AverageROIByCash: meanRounded(agg.roi),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

// meanRounded is the arithmetic mean rounded to 4 decimal digits, or zero
// for an empty list.
func meanRounded(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).Round(4)
}
