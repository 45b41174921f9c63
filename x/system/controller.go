package system

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

// Controller moves lamports and manages rent deposits. Other extensions
// call it to pay for the accounts they create.
type Controller interface {
	// Balance returns the lamports of a wallet, zero if it does not exist.
	Balance(db barter.ReadOnlyKVStore, addr barter.Address) (uint64, error)
	// Transfer moves lamports between wallets, creating the destination.
	Transfer(db barter.KVStore, from, to barter.Address, lamports uint64) error
	// Issue credits lamports out of nothing. Used by genesis only.
	Issue(db barter.KVStore, to barter.Address, lamports uint64) error
	// InUse reports whether addr holds an allocation or any record other
	// than a bare wallet.
	InUse(db barter.ReadOnlyKVStore, addr barter.Address) bool
	// Allocate reserves addr for an account of the given space owned by
	// program, charging the rent exempt minimum to payer. A wallet already
	// at addr is folded into the deposit.
	Allocate(db barter.KVStore, payer, addr, program barter.Address, space uint64) error
	// Reclaim drops the allocation of addr and credits its deposit to the
	// recipient wallet. The account record must already be deleted.
	Reclaim(db barter.KVStore, addr, recipient barter.Address) (uint64, error)
	// Allocation returns the rent record of addr.
	Allocation(db barter.ReadOnlyKVStore, addr barter.Address) (*Allocation, error)
}

// BaseController is the only Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller over the wallet bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

func (c BaseController) wallet(db barter.ReadOnlyKVStore, addr barter.Address) (*Wallet, error) {
	var w Wallet
	err := c.bucket.One(db, addr, &w)
	switch {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}

// Balance implements Controller.
func (c BaseController) Balance(db barter.ReadOnlyKVStore, addr barter.Address) (uint64, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Lamports, nil
}

// Transfer implements Controller.
func (c BaseController) Transfer(db barter.KVStore, from, to barter.Address, lamports uint64) error {
	if lamports == 0 {
		return errors.Wrap(errors.ErrAmount, "zero lamports")
	}
	if err := c.debit(db, from, lamports); err != nil {
		return err
	}
	return c.Issue(db, to, lamports)
}

func (c BaseController) debit(db barter.KVStore, from barter.Address, lamports uint64) error {
	w, err := c.wallet(db, from)
	if err != nil {
		return err
	}
	if w.Lamports < lamports {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d lamports, need %d", from, w.Lamports, lamports)
	}
	w.Lamports -= lamports
	return c.bucket.Put(db, from, w)
}

// Issue implements Controller.
func (c BaseController) Issue(db barter.KVStore, to barter.Address, lamports uint64) error {
	w, err := c.wallet(db, to)
	if err != nil {
		return err
	}
	if w.Lamports+lamports < w.Lamports {
		return errors.Wrap(errors.ErrOverflow, "lamports")
	}
	w.Lamports += lamports
	return c.bucket.Put(db, to, w)
}

// Allocate implements Controller.
func (c BaseController) Allocate(db barter.KVStore, payer, addr, program barter.Address, space uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if c.InUse(db, addr) {
		return errors.Wrapf(errors.ErrDuplicate, "address %s in use", addr)
	}
	rent := RentExemptMinimum(space)
	if err := c.debit(db, payer, rent); err != nil {
		return errors.Wrap(err, "rent")
	}
	deposit := rent
	if orm.Exists(db, addr) {
		w, err := c.wallet(db, addr)
		if err != nil {
			return err
		}
		if deposit+w.Lamports < deposit {
			return errors.Wrap(errors.ErrOverflow, "deposit")
		}
		deposit += w.Lamports
		if err := c.bucket.Delete(db, addr); err != nil {
			return err
		}
	}
	return saveAllocation(db, addr, &Allocation{
		Payer:    payer,
		Owner:    program,
		Space:    space,
		Lamports: deposit,
	})
}

// InUse implements Controller.
func (c BaseController) InUse(db barter.ReadOnlyKVStore, addr barter.Address) bool {
	if db.Has(allocationKey(addr)) {
		return true
	}
	kind, ok := orm.AccountKind(db, addr)
	return ok && kind != Kind
}

// Reclaim implements Controller.
func (c BaseController) Reclaim(db barter.KVStore, addr, recipient barter.Address) (uint64, error) {
	a, err := loadAllocation(db, addr)
	if err != nil {
		return 0, err
	}
	if orm.Exists(db, addr) {
		return 0, errors.Wrapf(errors.ErrState, "account %s still holds data", addr)
	}
	db.Delete(allocationKey(addr))
	if a.Lamports == 0 {
		return 0, nil
	}
	return a.Lamports, c.Issue(db, recipient, a.Lamports)
}

// Allocation implements Controller.
func (c BaseController) Allocation(db barter.ReadOnlyKVStore, addr barter.Address) (*Allocation, error) {
	return loadAllocation(db, addr)
}
