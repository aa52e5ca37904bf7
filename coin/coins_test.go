package coin

import (
	"testing"

	"github.com/iov-one/treasury/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinsAdd(t *testing.T) {
	set, err := NewCoins(NewCoin(10, "IOV"), NewCoin(4, "ETH"))
	require.NoError(t, err)
	require.NoError(t, set.Validate())

	// Sorted by ticker.
	assert.Equal(t, "ETH", set[0].Ticker)
	assert.Equal(t, "IOV", set[1].Ticker)

	set, err = set.Add(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, int64(15), set.Amount("IOV"))

	// Adding zero keeps the set intact.
	same, err := set.Add(NewCoin(0, "IOV"))
	require.NoError(t, err)
	assert.True(t, set.Equals(same))
}

func TestCoinsSubtract(t *testing.T) {
	set, err := NewCoins(NewCoin(10, "IOV"))
	require.NoError(t, err)

	set, err = set.Subtract(NewCoin(4, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), set.Amount("IOV"))

	// Draining a currency removes the entry entirely.
	set, err = set.Subtract(NewCoin(6, "IOV"))
	require.NoError(t, err)
	assert.Len(t, set, 0)
	assert.True(t, set.IsEmpty())

	_, err = set.Subtract(NewCoin(1, "IOV"))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCoinsContains(t *testing.T) {
	set, err := NewCoins(NewCoin(10, "IOV"))
	require.NoError(t, err)

	assert.True(t, set.Contains(NewCoin(10, "IOV")))
	assert.True(t, set.Contains(NewCoin(1, "IOV")))
	assert.False(t, set.Contains(NewCoin(11, "IOV")))
	assert.False(t, set.Contains(NewCoin(1, "ETH")))
}

func TestCoinsAddIsNotDestructive(t *testing.T) {
	set, err := NewCoins(NewCoin(10, "IOV"))
	require.NoError(t, err)

	_, err = set.Add(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), set.Amount("IOV"))
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins   Coins
		wantErr bool
	}{
		"empty is valid":   {coins: nil},
		"single":           {coins: Coins{NewCoinp(1, "IOV")}},
		"zero amount":      {coins: Coins{NewCoinp(0, "IOV")}, wantErr: true},
		"negative amount":  {coins: Coins{NewCoinp(-1, "IOV")}, wantErr: true},
		"unsorted tickers": {coins: Coins{NewCoinp(1, "IOV"), NewCoinp(1, "ETH")}, wantErr: true},
		"duplicate ticker": {coins: Coins{NewCoinp(1, "IOV"), NewCoinp(2, "IOV")}, wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coins.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
