package coin

import "github.com/iov-one/treasury/errors"

// ErrCurrency is returned for an invalid or mismatched currency code.
var ErrCurrency = errors.Register(120, "invalid currency")
