package batch

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	// PathExecuteBatchMsg routes batch messages.
	PathExecuteBatchMsg = "batch/execute"

	// MaxBatchMessages is the largest number of messages in one batch.
	MaxBatchMessages = 10
)

func init() {
	barter.RegisterMsg(&ExecuteBatchMsg{})
}

var _ barter.Msg = (*ExecuteBatchMsg)(nil)

// Path returns the routing path of batch messages.
func (*ExecuteBatchMsg) Path() string {
	return PathExecuteBatchMsg
}

// NewExecuteBatchMsg seals all messages into one batch.
func NewExecuteBatchMsg(msgs ...barter.Msg) (*ExecuteBatchMsg, error) {
	batch := &ExecuteBatchMsg{Messages: make([]*barter.MsgEnvelope, 0, len(msgs))}
	for i, m := range msgs {
		env, err := barter.Seal(m)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		batch.Messages = append(batch.Messages, env)
	}
	return batch, nil
}

// Validate requires at least one message, no nested batch and all
// messages to be valid.
func (m *ExecuteBatchMsg) Validate() error {
	_, err := m.MsgList()
	return err
}

// MsgList opens and validates every message of the batch.
func (m *ExecuteBatchMsg) MsgList() ([]barter.Msg, error) {
	switch n := len(m.Messages); {
	case n == 0:
		return nil, errors.Wrap(errors.ErrEmpty, "no messages")
	case n > MaxBatchMessages:
		return nil, errors.Wrapf(errors.ErrInput, "at most %d messages, got %d", MaxBatchMessages, n)
	}
	msgs := make([]barter.Msg, len(m.Messages))
	for i, env := range m.Messages {
		msg, err := env.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		if msg.Path() == PathExecuteBatchMsg {
			return nil, errors.Wrap(errors.ErrMsg, "nested batch")
		}
		if err := msg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		msgs[i] = msg
	}
	return msgs, nil
}
