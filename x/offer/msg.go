package offer

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	PathCreateMsg = "offer/create"
	PathAcceptMsg = "offer/accept"
	PathCancelMsg = "offer/cancel"
)

func init() {
	barter.RegisterMsg(&CreateMsg{})
	barter.RegisterMsg(&AcceptMsg{})
	barter.RegisterMsg(&CancelMsg{})
}

var _ barter.Msg = (*CreateMsg)(nil)

// Path implements barter.Msg.
func (*CreateMsg) Path() string {
	return PathCreateMsg
}

// Validate checks the message content without touching the state.
func (m *CreateMsg) Validate() error {
	err := validateAddresses(map[string]barter.Address{
		"initializer":   m.Initializer,
		"give account":  m.GiveAccount,
		"taker account": m.TakerAccount,
		"mint":          m.Mint,
	})
	if err != nil {
		return err
	}
	if m.GiveAccount.Equals(m.TakerAccount) {
		return errors.Wrap(errors.ErrInput, "give and taker accounts must differ")
	}
	if m.GiveAmount == 0 {
		return errors.Wrap(ErrZeroAmount, "give amount")
	}
	if m.ReceiveAmount == 0 {
		return errors.Wrap(ErrZeroAmount, "receive amount")
	}
	if m.OfferBump > 255 || m.VaultBump > 255 {
		return errors.Wrap(ErrInvalidBump, "bump out of range")
	}
	return nil
}

var _ barter.Msg = (*AcceptMsg)(nil)

// Path implements barter.Msg.
func (*AcceptMsg) Path() string {
	return PathAcceptMsg
}

// Validate checks the message content without touching the state.
func (m *AcceptMsg) Validate() error {
	err := validateAddresses(map[string]barter.Address{
		"taker":                       m.Taker,
		"offer":                       m.Offer,
		"taker give account":          m.TakerGiveAccount,
		"taker receive account":       m.TakerReceiveAccount,
		"initializer receive account": m.InitializerReceiveAccount,
		"initializer mint":            m.InitializerMint,
		"taker mint":                  m.TakerMint,
	})
	if err != nil {
		return err
	}
	if m.GiveAmount == 0 {
		return errors.Wrap(ErrZeroAmount, "give amount")
	}
	return nil
}

var _ barter.Msg = (*CancelMsg)(nil)

// Path implements barter.Msg.
func (*CancelMsg) Path() string {
	return PathCancelMsg
}

// Validate checks the message content without touching the state.
func (m *CancelMsg) Validate() error {
	return errors.Wrap(m.Offer.Validate(), "offer")
}

func validateAddresses(addrs map[string]barter.Address) error {
	for name, a := range addrs {
		if err := a.Validate(); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}
