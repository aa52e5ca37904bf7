package treasury

import (
	"reflect"

	"github.com/iov-one/treasury/errors"
)

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for the state machine to take an action (make a state
// transition). It is just the request, and must be authorized by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate performs a sanity check on the message content. It returns
	// an error for every message that is not valid regardless of the
	// current state of the application.
	Validate() error

	// Path returns the message path. It is used by the Router to locate
	// the proper Handler. Must match [a-zA-Z0-9_/]+.
	Path() string
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender.
//
// Each application defines its own transaction type, embedding whatever
// middlewares it wishes to support.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message from the transaction, validates it and
// assigns to the destination. Destination must be a non-nil pointer to a
// message instance of the same type as carried by the transaction.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non-nil pointer")
	}
	val := reflect.ValueOf(msg)
	if val.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(val.Elem())
	return nil
}
