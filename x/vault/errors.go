package vault

import (
	"github.com/iov-one/treasury/errors"
)

var (
	// ErrLastAdmin is returned when removing an admin would leave the
	// vault without any.
	ErrLastAdmin = errors.Register(1200, "cannot remove last admin")

	// ErrPriceBound is returned when a price update would put the buy
	// price above the sell price.
	ErrPriceBound = errors.Register(1201, "buy price above sell price")

	// ErrPercentage is returned when the withdrawal cap is set outside
	// of the allowed range.
	ErrPercentage = errors.Register(1202, "percentage out of range")

	// ErrDuplicateRequest is returned when an admin files a withdrawal
	// request while one is still outstanding.
	ErrDuplicateRequest = errors.Register(1203, "withdrawal already requested")

	// ErrCapExceeded is returned when a withdrawal request would push
	// the outstanding total over the percentage cap.
	ErrCapExceeded = errors.Register(1204, "withdrawal cap exceeded")

	// ErrNotPayable is returned when an admin tries to collect a
	// withdrawal that is not payable yet.
	ErrNotPayable = errors.Register(1205, "withdrawal not payable")

	// ErrPayment is returned when the native amount sent to a purchase
	// is too small to buy a single token.
	ErrPayment = errors.Register(1206, "insufficient payment")

	// ErrLiquidity is returned when the vault does not hold enough
	// tokens to serve a purchase.
	ErrLiquidity = errors.Register(1207, "insufficient token liquidity")

	// ErrVaultFunds is returned when the vault does not hold enough
	// native currency to pay out.
	ErrVaultFunds = errors.Register(1208, "insufficient vault funds")
)
