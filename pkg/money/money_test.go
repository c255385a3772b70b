package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCurrency string
		wantAmount   string
		wantOK       bool
	}{
		{
			name:         "dollar with thousands separator",
			text:         "$1,000",
			wantCurrency: "$",
			wantAmount:   "1000",
			wantOK:       true,
		},
		{
			name:         "euro",
			text:         "€550",
			wantCurrency: "€",
			wantAmount:   "550",
			wantOK:       true,
		},
		{
			name:         "multi-character symbol",
			text:         "NT$1,200.50",
			wantCurrency: "NT$",
			wantAmount:   "1200.5",
			wantOK:       true,
		},
		{
			name:         "canadian dollar",
			text:         "C$5,000",
			wantCurrency: "C$",
			wantAmount:   "5000",
			wantOK:       true,
		},
		{
			name:         "pound inside longer text",
			text:         "No Limit Hold'em £2,200 High Roller",
			wantCurrency: "£",
			wantAmount:   "2200",
			wantOK:       true,
		},
		{
			name:         "zero amount",
			text:         "$0",
			wantCurrency: "$",
			wantAmount:   "0",
			wantOK:       true,
		},
		{
			name:         "non-breaking space around amount",
			text:         "\u00a0€1,650\u00a0",
			wantCurrency: "€",
			wantAmount:   "1650",
			wantOK:       true,
		},
		{
			name:   "bare number has no symbol",
			text:   "1,650",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "no numeric run",
			text:   "Free entry",
			wantOK: false,
		},
		{
			name:   "dash placeholder cell",
			text:   "—",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Parse(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantCurrency, m.Currency)
			assert.Equal(t, tt.wantAmount, m.Amount.String())
		})
	}
}

func TestFindReturnsRemainder(t *testing.T) {
	m, rest, ok := Find("$1,000 + 100 NLHE")
	require.True(t, ok)
	assert.Equal(t, "$", m.Currency)
	assert.Equal(t, "1000", m.Amount.String())
	assert.Equal(t, " + 100 NLHE", rest)
}
