package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

func TestExtractOnlineExclusion(t *testing.T) {
	for _, name := range []string{
		"Online $500 Special",
		"ONLINE Main Event",
		"WSOP OnLine Bracelet #3",
	} {
		t.Run(name, func(t *testing.T) {
			ev, outcome := Extract(models.RowRecord{
				EventNameText:     name,
				DateText:          "01-Jan-2023",
				CurrencyCellTexts: []string{"$100"},
			}, Options{})
			assert.Nil(t, ev)
			assert.Equal(t, ExcludedOnline, outcome)
		})
	}
}

func TestExtractBuyin(t *testing.T) {
	tests := []struct {
		name         string
		event        string
		wantCurrency string
		wantAmount   string
	}{
		{
			name:         "single amount",
			event:        "$1,100 NLHE",
			wantCurrency: "$",
			wantAmount:   "1100",
		},
		{
			name:         "stake plus fee",
			event:        "$1,000 + 100 NLHE",
			wantCurrency: "$",
			wantAmount:   "1100",
		},
		{
			name:         "fee repeats the symbol",
			event:        "$1,000 + $100",
			wantCurrency: "$",
			wantAmount:   "1100",
		},
		{
			name:         "third group is descriptive text",
			event:        "$1,000 + 100 + 50",
			wantCurrency: "$",
			wantAmount:   "1100",
		},
		{
			name:         "fee in a different currency is not summed",
			event:        "$1,000 + €100",
			wantCurrency: "$",
			wantAmount:   "1000",
		},
		{
			name:         "euro with trailing variant text",
			event:        "€550 + 50 PLO 8-Max",
			wantCurrency: "€",
			wantAmount:   "600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, outcome := Extract(models.RowRecord{
				EventNameText: tt.event,
				DateText:      "01-Jan-2023",
			}, Options{})
			require.Equal(t, Accepted, outcome)
			assert.Equal(t, tt.wantCurrency, ev.BuyinCurrency)
			assert.Equal(t, tt.wantAmount, ev.BuyinAmount.String())
		})
	}
}

func TestExtractWithoutBuyinStillCounts(t *testing.T) {
	ev, outcome := Extract(models.RowRecord{
		EventNameText:     "Main Event",
		DateText:          "05-May-2021",
		CurrencyCellTexts: []string{"$2,000"},
	}, Options{})

	require.Equal(t, Accepted, outcome)
	assert.Empty(t, ev.BuyinCurrency)
	assert.True(t, ev.BuyinAmount.IsZero())
	assert.Nil(t, ev.ROI)
	// The prize still reaches the ledger via PrizeCells.
	require.Len(t, ev.PrizeCells, 1)
	assert.Equal(t, "$", ev.PrizeCells[0].Currency)
}

func TestExtractPrizeMatching(t *testing.T) {
	ev, outcome := Extract(models.RowRecord{
		EventNameText:     "€550 NLHE",
		DateText:          "10-Oct-2022",
		CurrencyCellTexts: []string{"$0", "€1,650", "€9,999"},
	}, Options{})

	require.Equal(t, Accepted, outcome)
	require.Len(t, ev.PrizeCells, 3)
	require.NotNil(t, ev.ROIPrize)
	// First currency-matched cell wins; the later euro cell only feeds the ledger.
	assert.Equal(t, "1650", ev.ROIPrize.Amount.String())
	require.NotNil(t, ev.ROI)
	assert.Equal(t, "3", ev.ROI.String())
}

func TestExtractNoROIOnZeroBuyin(t *testing.T) {
	ev, outcome := Extract(models.RowRecord{
		EventNameText:     "$0 Freeroll",
		DateText:          "01-Feb-2020",
		CurrencyCellTexts: []string{"$150"},
	}, Options{})

	require.Equal(t, Accepted, outcome)
	require.NotNil(t, ev.ROIPrize)
	assert.Nil(t, ev.ROI)
}

func TestExtractMismatchedCurrencyHasNoROI(t *testing.T) {
	ev, outcome := Extract(models.RowRecord{
		EventNameText:     "$1,000 NLHE",
		DateText:          "01-Feb-2020",
		CurrencyCellTexts: []string{"€3,000"},
	}, Options{})

	require.Equal(t, Accepted, outcome)
	assert.Nil(t, ev.ROIPrize)
	assert.Nil(t, ev.ROI)
	require.Len(t, ev.PrizeCells, 1)
	assert.Equal(t, "€", ev.PrizeCells[0].Currency)
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"01-Jan-2023", 2023},
		{"2019/07/04", 2019},
		{"TBD", 0},
		{"", 0},
	}
	for _, tt := range tests {
		ev, outcome := Extract(models.RowRecord{
			EventNameText: "$100 Daily",
			DateText:      tt.date,
		}, Options{})
		require.Equal(t, Accepted, outcome)
		assert.Equal(t, tt.want, ev.Year, "date %q", tt.date)
	}
}

func TestExtractRequireAnyPrizeCell(t *testing.T) {
	row := models.RowRecord{
		EventNameText:     "$100 Daily",
		DateText:          "01-Jan-2023",
		CurrencyCellTexts: []string{"—", ""},
	}

	ev, outcome := Extract(row, Options{})
	require.Equal(t, Accepted, outcome)
	assert.Empty(t, ev.PrizeCells)

	ev, outcome = Extract(row, Options{RequireAnyPrizeCell: true})
	assert.Nil(t, ev)
	assert.Equal(t, ExcludedNoPrize, outcome)
}
