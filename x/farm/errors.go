package farm

import (
	"github.com/iov-one/treasury/errors"
)

var (
	// ErrInsufficientStake is returned when unstaking more than the
	// stakeholder has locked.
	ErrInsufficientStake = errors.Register(1300, "insufficient stake")
)
