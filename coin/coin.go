package coin

import (
	"fmt"
	"regexp"

	"github.com/iov-one/treasury/errors"
)

// MaxAmount is the largest amount of a single currency a Coin may hold.
// It is low enough that additions of two coins never overflow int64.
const MaxAmount int64 = 999999999999999 // 10^15-1

// MinAmount is the smallest (most negative) amount a Coin may hold.
const MinAmount int64 = -MaxAmount

// IsCC checks if the given ticker name is a valid currency code.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Coin is an amount of a single currency, expressed in the smallest
// indivisible unit of that currency. There are no fractions.
type Coin struct {
	Ticker string
	Amount int64
}

// NewCoin creates a new coin object.
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

// Add combines two coins of the same currency. It returns an error on
// ticker mismatch or int64 overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrInput, "adding %s to %s", o.Ticker, c.Ticker)
	}
	c.Amount += o.Amount
	if err := c.Validate(); err != nil {
		return Coin{}, err
	}
	return c, nil
}

// Subtract removes the amount of the other coin from this one.
func (c Coin) Subtract(o Coin) (Coin, error) {
	return c.Add(o.Negative())
}

// Negative returns the opposite coin:
//   c.Add(c.Negative()) == 0
func (c Coin) Negative() Coin {
	return Coin{
		Ticker: c.Ticker,
		Amount: -c.Amount,
	}
}

// Multiply returns the result of a scalar multiplication, or an error when
// the result does not fit into a coin.
func (c Coin) Multiply(times int64) (Coin, error) {
	amount, err := mul64(c.Amount, times)
	if err != nil {
		return Coin{}, err
	}
	res := Coin{Ticker: c.Ticker, Amount: amount}
	if err := res.Validate(); err != nil {
		return Coin{}, err
	}
	return res, nil
}

// Divide returns the integer division of this coin into given number of
// pieces, together with the leftover that cannot be split evenly. Rounding
// is always towards zero (floor for non-negative amounts).
func (c Coin) Divide(pieces int64) (Coin, int64, error) {
	if pieces <= 0 {
		return Coin{}, 0, errors.Wrap(errors.ErrInput, "pieces must be greater than zero")
	}
	return Coin{Ticker: c.Ticker, Amount: c.Amount / pieces}, c.Amount % pieces, nil
}

// mul64 multiplies two int64 and errors out on overflow.
func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	res := a * b
	if res/b != a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return res, nil
}

// Compare returns -1, 0 or 1 when this coin is smaller, equal or greater
// than the other. It panics on comparing different currencies.
func (c Coin) Compare(o Coin) int {
	if !c.SameType(o) {
		panic(fmt.Sprintf("comparing %s to %s", c.Ticker, o.Ticker))
	}
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Equals returns true if both coins are the same.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsZero returns true if the amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the amount is greater than zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true if the amount is zero or greater.
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true if this coin is of the same currency and the amount
// is equal or greater than the other.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if both coins use the same ticker.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Validate ensures the coin is in range and uses a valid currency code.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Amount < MinAmount || c.Amount > MaxAmount {
		return errors.Wrap(errors.ErrOverflow, "amount out of range")
	}
	return nil
}

func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Ticker)
}
