package barter

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter/errors"
)

// Msg is the state transition a transaction asks for. Authentication data
// lives in the enclosing Tx, so handlers validate the message on its own.
type Msg interface {
	proto.Message

	// Path selects the handler in the router. Several message types may
	// share one. It matches [0-9A-Za-z_\-/]+.
	Path() string

	// Validate runs the checks that need no state.
	Validate() error
}

// Tx is what a client submits: one message plus whatever the decorators
// need, such as signatures.
type Tx interface {
	proto.Message

	GetMsg() (Msg, error)
}

// GetPath is the message path, or "(missing)" for an empty transaction.
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder parses the raw bytes of a transaction.
type TxDecoder func(raw []byte) (Tx, error)

// LoadMsg extracts the message carried by the transaction into dst and
// validates it. dst must be a pointer to the same message type.
func LoadMsg(tx Tx, dst Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}
	if reflect.TypeOf(msg) != reflect.TypeOf(dst) {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", dst, msg)
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(msg).Elem())
	if err := dst.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s message", dst.Path())
	}
	return nil
}
