package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

// FormatLedger renders per-currency totals as newline-joined "<symbol>:
// <amount>" lines, sorted lexicographically by the raw symbol so output is
// stable. Amounts are fixed to two decimals with thousands separators. An
// empty ledger renders as an empty string.
func FormatLedger(totals map[string]decimal.Decimal) string {
	if len(totals) == 0 {
		return ""
	}

	symbols := make([]string, 0, len(totals))
	for s := range totals {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	lines := make([]string, 0, len(symbols))
	for _, s := range symbols {
		lines = append(lines, fmt.Sprintf("%s: %s", s, groupThousands(totals[s].StringFixed(2))))
	}
	return strings.Join(lines, "\n")
}

// FormatYearly renders the yearly buckets in the descending-year order they
// arrive in.
func FormatYearly(years []models.YearlyStats) string {
	lines := make([]string, 0, len(years))
	for _, y := range years {
		lines = append(lines, fmt.Sprintf("%d: %d tournaments, avg ROI %s",
			y.Year, y.Tournaments, y.AverageROIByCash.StringFixed(4)))
	}
	return strings.Join(lines, "\n")
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point amount string.
func groupThousands(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	if n <= 3 {
		return intPart + "." + frac
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return b.String() + "." + frac
}
