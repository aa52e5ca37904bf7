package coin

import (
	"sort"
	"strings"

	"github.com/iov-one/treasury/errors"
)

// Coins is a set of coins, one per currency, sorted by ticker and with all
// zero amounts removed.
type Coins []*Coin

// NewCoins creates a canonical set from the given coins. Duplicate tickers
// are combined, zero amounts dropped.
func NewCoins(coins ...Coin) (Coins, error) {
	var set Coins
	for _, c := range coins {
		var err error
		set, err = set.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Clone returns a deep copy of this set.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Amount returns the amount stored for the given ticker, zero when the
// ticker is not present.
func (cs Coins) Amount(ticker string) int64 {
	for _, c := range cs {
		if c.Ticker == ticker {
			return c.Amount
		}
	}
	return 0
}

// Coin returns the coin stored for the given ticker. A missing ticker is
// returned as a zero amount of that currency.
func (cs Coins) Coin(ticker string) Coin {
	return NewCoin(cs.Amount(ticker), ticker)
}

// Contains returns true if the set holds at least the given amount of the
// given currency.
func (cs Coins) Contains(c Coin) bool {
	return cs.Amount(c.Ticker) >= c.Amount
}

// Add returns a new set with the given coin folded in. Adding a negative
// amount lowers the stored balance and errors out when it would turn
// negative.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs.Clone(), nil
	}

	res := cs.Clone()
	for i, has := range res {
		if has.Ticker == c.Ticker {
			sum, err := has.Add(c)
			if err != nil {
				return nil, err
			}
			if sum.Amount < 0 {
				return nil, errors.Wrapf(errors.ErrAmount, "negative balance: %s", sum)
			}
			if sum.IsZero() {
				return append(res[:i], res[i+1:]...), nil
			}
			res[i] = &sum
			return res, nil
		}
	}

	if c.Amount < 0 {
		return nil, errors.Wrapf(errors.ErrAmount, "negative balance: %s", c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res = append(res, &c)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Ticker < res[j].Ticker
	})
	return res, nil
}

// Subtract returns a new set with the given amount removed. It errors out
// when the set does not hold enough.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// IsEmpty returns true when the set holds no value at all.
func (cs Coins) IsEmpty() bool {
	for _, c := range cs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold exactly the same value.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate ensures the set is sorted, unique per ticker, holds no zero
// amounts and every coin is valid.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrState, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrState, "zero amount: %s", c.Ticker)
		}
		if c.Amount < 0 {
			return errors.Wrapf(errors.ErrState, "negative amount: %s", c.Ticker)
		}
		if c.Ticker <= last {
			return errors.Wrapf(errors.ErrState, "not sorted: %s", c.Ticker)
		}
		last = c.Ticker
	}
	return nil
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return "(empty)"
	}
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	return strings.Join(strs, ", ")
}
