package token

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	PathCreateMintMsg              = "token/create_mint"
	PathCreateAccountMsg           = "token/create_account"
	PathCreateAssociatedAccountMsg = "token/create_associated_account"
	PathMintToMsg                  = "token/mint_to"
	PathTransferMsg                = "token/transfer"
	PathCloseAccountMsg            = "token/close_account"
)

func init() {
	barter.RegisterMsg(&CreateMintMsg{})
	barter.RegisterMsg(&CreateAccountMsg{})
	barter.RegisterMsg(&CreateAssociatedAccountMsg{})
	barter.RegisterMsg(&MintToMsg{})
	barter.RegisterMsg(&TransferMsg{})
	barter.RegisterMsg(&CloseAccountMsg{})
}

var _ barter.Msg = (*CreateMintMsg)(nil)

func (*CreateMintMsg) Path() string     { return PathCreateMintMsg }

func (m *CreateMintMsg) Validate() error {
	if err := validateAddresses("payer", m.Payer, "mint", m.Mint); err != nil {
		return err
	}
	if len(m.MintAuthority) != 0 {
		if err := m.MintAuthority.Validate(); err != nil {
			return errors.Wrap(err, "mint authority")
		}
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrInput, "at most %d decimals", MaxDecimals)
	}
	return nil
}

var _ barter.Msg = (*CreateAccountMsg)(nil)

func (*CreateAccountMsg) Path() string     { return PathCreateAccountMsg }

func (m *CreateAccountMsg) Validate() error {
	return validateAddresses("payer", m.Payer, "account", m.Account, "mint", m.Mint, "owner", m.Owner)
}

var _ barter.Msg = (*CreateAssociatedAccountMsg)(nil)

func (*CreateAssociatedAccountMsg) Path() string     { return PathCreateAssociatedAccountMsg }

func (m *CreateAssociatedAccountMsg) Validate() error {
	return validateAddresses("payer", m.Payer, "owner", m.Owner, "mint", m.Mint)
}

var _ barter.Msg = (*MintToMsg)(nil)

func (*MintToMsg) Path() string     { return PathMintToMsg }

func (m *MintToMsg) Validate() error {
	if err := validateAddresses("mint", m.Mint, "destination", m.Destination); err != nil {
		return err
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero amount")
	}
	return nil
}

var _ barter.Msg = (*TransferMsg)(nil)

func (*TransferMsg) Path() string     { return PathTransferMsg }

func (m *TransferMsg) Validate() error {
	if err := validateAddresses("source", m.Source, "destination", m.Destination); err != nil {
		return err
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero amount")
	}
	return nil
}

var _ barter.Msg = (*CloseAccountMsg)(nil)

func (*CloseAccountMsg) Path() string     { return PathCloseAccountMsg }

func (m *CloseAccountMsg) Validate() error {
	return validateAddresses("account", m.Account, "recipient", m.Recipient)
}

// validateAddresses takes name, address pairs.
func validateAddresses(pairs ...interface{}) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		addr := pairs[i+1].(barter.Address)
		if err := addr.Validate(); err != nil {
			return errors.Wrap(err, pairs[i].(string))
		}
	}
	return nil
}
