package token

import (
	"github.com/iov-one/treasury/errors"
)

var (
	// ErrInsufficientFunds is returned when a wallet does not hold
	// enough coins to pay a transfer or burn.
	ErrInsufficientFunds = errors.Register(1100, "insufficient funds")

	// ErrInsufficientAllowance is returned when a delegated transfer
	// exceeds what the owner approved for the spender.
	ErrInsufficientAllowance = errors.Register(1101, "insufficient allowance")
)
