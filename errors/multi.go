package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the unpacker interface, it is flattened and
// all clubbed errors are added directly to the new multi error instance.
func Append(errs ...error) error {
	var collect []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			collect = append(collect, u.Unpack()...)
		} else {
			collect = append(collect, err)
		}
	}

	switch len(collect) {
	case 0:
		return nil
	case 1:
		return collect[0]
	default:
		return multiError(collect)
	}
}

type multiError []error

var _ unpacker = multiError{}

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = fmt.Sprintf("\t* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(e), strings.Join(msgs, "\n"))
}

// Unpack implements the unpacker interface.
func (e multiError) Unpack() []error {
	return e
}

// unpacker is implemented by errors that club together many errors.
type unpacker interface {
	// Unpack returns all errors clubbed together by this error.
	Unpack() []error
}
