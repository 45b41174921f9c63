package item

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// PathCreateMsg routes item creation.
const PathCreateMsg = "item/create"

func init() {
	barter.RegisterMsg(&CreateMsg{})
}

var _ barter.Msg = (*CreateMsg)(nil)

// Path implements barter.Msg.
func (*CreateMsg) Path() string {
	return PathCreateMsg
}

// Validate checks the message content without touching the state.
func (m *CreateMsg) Validate() error {
	if err := m.Item.Validate(); err != nil {
		return errors.Wrap(err, "item")
	}
	return m.toItem().Validate()
}

func (m *CreateMsg) toItem() *Item {
	return &Item{
		Mint:         m.Mint,
		TokenAccount: m.TokenAccount,
		Name:         m.Name,
		Market:       m.Market,
		Seller:       m.Seller,
	}
}
