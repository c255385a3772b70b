package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAccumulates(t *testing.T) {
	l := NewLedger()
	l.AddBuyin("$", decimal.NewFromInt(1000))
	l.AddBuyin("$", decimal.NewFromInt(100))
	l.AddBuyin("€", decimal.NewFromInt(550))
	l.AddPrize("$", decimal.NewFromFloat(2200.50))
	l.AddPrize("NT$", decimal.NewFromInt(30000))

	buyins, prizes := l.Snapshot()
	assert.Equal(t, "1100", buyins["$"].String())
	assert.Equal(t, "550", buyins["€"].String())
	assert.Equal(t, "2200.5", prizes["$"].String())
	assert.Equal(t, "30000", prizes["NT$"].String())
}

func TestLedgerIgnoresAbsentCurrency(t *testing.T) {
	l := NewLedger()
	l.AddBuyin("", decimal.NewFromInt(500))
	l.AddPrize("", decimal.NewFromInt(500))

	buyins, prizes := l.Snapshot()
	assert.Empty(t, buyins)
	assert.Empty(t, prizes)
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	l := NewLedger()
	l.AddBuyin("$", decimal.NewFromInt(100))

	buyins, prizes := l.Snapshot()
	require.NotNil(t, buyins)
	require.NotNil(t, prizes)

	buyins["$"] = decimal.NewFromInt(999)
	again, _ := l.Snapshot()
	assert.Equal(t, "100", again["$"].String())
}
