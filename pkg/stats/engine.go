package stats

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

// UnknownPlayer is the placeholder used when the profile page carries no
// readable player name.
const UnknownPlayer = "Unknown Player"

// Run feeds every row through extraction and assembles the final report in a
// single pass. It is deterministic and side-effect free: identical rows
// always produce an identical report, and no state survives between calls.
// An empty row list yields a zero report, never an error.
func Run(playerName string, rows []models.RowRecord, opts Options) *models.PlayerReport {
	if strings.TrimSpace(playerName) == "" {
		playerName = UnknownPlayer
	}

	ledger := NewLedger()
	yearly := NewYearlyBuilder()

	total := 0
	var roiValues []decimal.Decimal

	for _, row := range rows {
		ev, outcome := Extract(row, opts)
		if outcome != Accepted {
			continue
		}

		total++
		ledger.AddBuyin(ev.BuyinCurrency, ev.BuyinAmount)
		for _, cell := range ev.PrizeCells {
			ledger.AddPrize(cell.Currency, cell.Amount)
		}
		yearly.Add(ev)
		if ev.ROI != nil {
			roiValues = append(roiValues, *ev.ROI)
		}
	}

	buyins, prizes := ledger.Snapshot()
	years := yearly.Build()

	return &models.PlayerReport{
		Player:           playerName,
		TotalTournaments: total,
		TotalBuyins:      buyins,
		TotalPrizes:      prizes,
		AverageROIByCash: meanRounded(roiValues),
		YearlyStats:      years,
		TotalBuyinsText:  FormatLedger(buyins),
		TotalPrizesText:  FormatLedger(prizes),
		YearlyStatsText:  FormatYearly(years),
	}
}
