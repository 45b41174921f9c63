package system

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// PathSendMsg routes lamport transfers.
const PathSendMsg = "system/send"

func init() {
	barter.RegisterMsg(&SendMsg{})
}

var _ barter.Msg = (*SendMsg)(nil)

// Path implements barter.Msg.
func (*SendMsg) Path() string {
	return PathSendMsg
}

// Validate requires both ends and a positive amount.
func (m *SendMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Lamports == 0 {
		return errors.Wrap(errors.ErrAmount, "zero lamports")
	}
	return nil
}
