package coin

import (
	"testing"

	"github.com/iov-one/treasury/errors"
	"github.com/stretchr/testify/assert"
)

func TestCoinArithmetic(t *testing.T) {
	a := NewCoin(100, "IOV")
	b := NewCoin(25, "IOV")

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, NewCoin(125, "IOV"), sum)

	diff, err := a.Subtract(b)
	assert.NoError(t, err)
	assert.Equal(t, NewCoin(75, "IOV"), diff)

	_, err = a.Add(NewCoin(1, "ETH"))
	assert.Error(t, err)
}

func TestCoinAddOverflow(t *testing.T) {
	a := NewCoin(MaxAmount, "IOV")
	_, err := a.Add(NewCoin(1, "IOV"))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinMultiply(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		times   int64
		want    Coin
		wantErr *errors.Error
	}{
		"simple": {
			coin:  NewCoin(7, "IOV"),
			times: 3,
			want:  NewCoin(21, "IOV"),
		},
		"by zero": {
			coin:  NewCoin(7, "IOV"),
			times: 0,
			want:  NewCoin(0, "IOV"),
		},
		"negative": {
			coin:  NewCoin(7, "IOV"),
			times: -2,
			want:  NewCoin(-14, "IOV"),
		},
		"overflow": {
			coin:    NewCoin(MaxAmount, "IOV"),
			times:   MaxAmount,
			wantErr: errors.ErrOverflow,
		},
		"out of range": {
			coin:    NewCoin(MaxAmount, "IOV"),
			times:   2,
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.coin.Multiply(tc.times)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinDivide(t *testing.T) {
	c := NewCoin(7, "IOV")

	res, rem, err := c.Divide(2)
	assert.NoError(t, err)
	assert.Equal(t, NewCoin(3, "IOV"), res)
	assert.Equal(t, int64(1), rem)

	_, _, err = c.Divide(0)
	assert.Error(t, err)
}

func TestCoinCompare(t *testing.T) {
	assert.Equal(t, -1, NewCoin(1, "IOV").Compare(NewCoin(2, "IOV")))
	assert.Equal(t, 0, NewCoin(2, "IOV").Compare(NewCoin(2, "IOV")))
	assert.Equal(t, 1, NewCoin(3, "IOV").Compare(NewCoin(2, "IOV")))
	assert.True(t, NewCoin(2, "IOV").IsGTE(NewCoin(2, "IOV")))
	assert.False(t, NewCoin(2, "IOV").IsGTE(NewCoin(2, "ETH")))
}

func TestCoinValidate(t *testing.T) {
	assert.NoError(t, NewCoin(5, "IOV").Validate())
	assert.NoError(t, NewCoin(-5, "ETH").Validate())
	assert.True(t, ErrCurrency.Is(NewCoin(5, "io").Validate()))
	assert.True(t, ErrCurrency.Is(NewCoin(5, "").Validate()))
	assert.True(t, errors.ErrOverflow.Is(NewCoin(MaxAmount+1, "IOV").Validate()))
}
