package offer

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/store"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startLamports = 1000000000

type fixture struct {
	db     barter.CacheableKVStore
	sys    system.BaseController
	tokens token.Controller
	offers Controller

	alice, bob         barter.Address
	apples, oranges    barter.Address
	aliceApples        barter.Address
	bobOranges         barter.Address
	asAlice, asBob     *bartertest.Auth
	aliceGets, bobGets barter.Address
}

// newFixture gives alice 200 apples and bob 200 oranges.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:          store.MemStore(),
		sys:         system.NewController(),
		alice:       bartertest.NewAddress(),
		bob:         bartertest.NewAddress(),
		apples:      bartertest.NewAddress(),
		oranges:     bartertest.NewAddress(),
		aliceApples: bartertest.NewAddress(),
		bobOranges:  bartertest.NewAddress(),
	}
	f.tokens = token.NewController(f.sys)
	f.offers = NewController(f.sys, f.tokens)
	f.asAlice = &bartertest.Auth{Signer: f.alice}
	f.asBob = &bartertest.Auth{Signer: f.bob}
	ctx := context.Background()

	require.NoError(t, f.sys.Issue(f.db, f.alice, startLamports))
	require.NoError(t, f.sys.Issue(f.db, f.bob, startLamports))
	require.NoError(t, f.tokens.CreateMint(f.db, f.alice, f.apples, f.alice, 0))
	require.NoError(t, f.tokens.CreateMint(f.db, f.bob, f.oranges, f.bob, 0))
	require.NoError(t, f.tokens.CreateAccount(f.db, f.alice, f.aliceApples, f.apples, f.alice))
	require.NoError(t, f.tokens.CreateAccount(f.db, f.bob, f.bobOranges, f.oranges, f.bob))
	require.NoError(t, f.tokens.MintTo(ctx, f.asAlice, f.db, f.apples, f.aliceApples, 200))
	require.NoError(t, f.tokens.MintTo(ctx, f.asBob, f.db, f.oranges, f.bobOranges, 200))

	var err error
	f.aliceGets, _, err = token.AssociatedAddress(f.alice, f.oranges)
	require.NoError(t, err)
	f.bobGets, _, err = token.AssociatedAddress(f.bob, f.apples)
	require.NoError(t, err)
	return f
}

// createMsg offers give apples for receive oranges.
func (f *fixture) createMsg(t *testing.T, give, receive uint64) *CreateMsg {
	t.Helper()
	_, obump, err := DeriveOfferAddress(f.aliceApples, give, f.bobOranges, receive)
	require.NoError(t, err)
	_, vbump, err := DeriveVaultAddress(f.aliceApples, f.bobOranges)
	require.NoError(t, err)
	return &CreateMsg{
		Initializer:   f.alice,
		GiveAccount:   f.aliceApples,
		TakerAccount:  f.bobOranges,
		Mint:          f.apples,
		GiveAmount:    give,
		ReceiveAmount: receive,
		OfferBump:     uint32(obump),
		VaultBump:     uint32(vbump),
	}
}

func (f *fixture) acceptMsg(offer barter.Address, amount uint64) *AcceptMsg {
	return &AcceptMsg{
		Taker:                     f.bob,
		Offer:                     offer,
		TakerGiveAccount:          f.bobOranges,
		TakerReceiveAccount:       f.bobGets,
		InitializerReceiveAccount: f.aliceGets,
		InitializerMint:           f.apples,
		TakerMint:                 f.oranges,
		GiveAmount:                amount,
	}
}

func (f *fixture) balance(t *testing.T, acc barter.Address) uint64 {
	t.Helper()
	got, err := f.tokens.Balance(f.db, acc)
	require.NoError(t, err)
	return got
}

func (f *fixture) lamports(t *testing.T, addr barter.Address) uint64 {
	t.Helper()
	got, err := f.sys.Balance(f.db, addr)
	require.NoError(t, err)
	return got
}

func TestApplesForOranges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.lamports(t, f.alice)

	addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
	require.NoError(t, err)

	o, err := f.offers.Get(f.db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), o.GiveAmount)
	assert.Equal(t, uint64(50), o.ReceiveAmount)
	assert.Equal(t, uint64(180), f.balance(t, f.aliceApples))
	assert.Equal(t, uint64(20), f.balance(t, o.Vault))
	rent := system.RentExemptMinimum(Space) + system.RentExemptMinimum(token.AccountSpace)
	assert.Equal(t, before-rent, f.lamports(t, f.alice))

	_, made, err := f.offers.ByInitializer(f.db, f.alice)
	require.NoError(t, err)
	assert.Len(t, made, 1)
	_, received, err := f.offers.ByTakerAccount(f.db, f.bobOranges)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	_, err = f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(addr, 50))
	require.NoError(t, err)

	assert.Equal(t, uint64(180), f.balance(t, f.aliceApples))
	assert.Equal(t, uint64(50), f.balance(t, f.aliceGets))
	assert.Equal(t, uint64(150), f.balance(t, f.bobOranges))
	assert.Equal(t, uint64(20), f.balance(t, f.bobGets))

	assert.False(t, orm.Exists(f.db, addr))
	assert.False(t, orm.Exists(f.db, o.Vault))
	assert.Equal(t, before, f.lamports(t, f.alice))
	// bob paid for both associated accounts
	assert.Equal(t, uint64(startLamports)-system.RentExemptMinimum(token.MintSpace)-
		system.RentExemptMinimum(token.AccountSpace)*3, f.lamports(t, f.bob))

	_, all, err := f.offers.All(f.db)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.lamports(t, f.alice)

	addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
	require.NoError(t, err)

	_, err = f.offers.Cancel(ctx, f.asBob, f.db, &CancelMsg{Offer: addr})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, uint64(180), f.balance(t, f.aliceApples))

	o, err := f.offers.Cancel(ctx, f.asAlice, f.db, &CancelMsg{Offer: addr})
	require.NoError(t, err)
	assert.Equal(t, uint64(200), f.balance(t, f.aliceApples))
	assert.False(t, orm.Exists(f.db, addr))
	assert.False(t, orm.Exists(f.db, o.Vault))
	assert.Equal(t, before, f.lamports(t, f.alice))

	_, err = f.offers.Cancel(ctx, f.asAlice, f.db, &CancelMsg{Offer: addr})
	assert.True(t, ErrOfferNotFound.Is(err))
	_, err = f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(addr, 50))
	assert.True(t, ErrOfferNotFound.Is(err))
	assert.Equal(t, uint64(200), f.balance(t, f.bobOranges))
}

func TestAcceptThenCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
	require.NoError(t, err)
	_, err = f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(addr, 50))
	require.NoError(t, err)
	_, err = f.offers.Cancel(ctx, f.asAlice, f.db, &CancelMsg{Offer: addr})
	assert.True(t, ErrOfferNotFound.Is(err))
	_, err = f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(addr, 50))
	assert.True(t, ErrOfferNotFound.Is(err))
}

func TestCreateChecks(t *testing.T) {
	cases := map[string]struct {
		mutate  func(f *fixture, m *CreateMsg)
		auth    func(f *fixture) *bartertest.Auth
		wantErr *errors.Error
	}{
		"zero give amount": {
			mutate:  func(f *fixture, m *CreateMsg) { m.GiveAmount = 0 },
			wantErr: ErrZeroAmount,
		},
		"zero receive amount": {
			mutate:  func(f *fixture, m *CreateMsg) { m.ReceiveAmount = 0 },
			wantErr: ErrZeroAmount,
		},
		"offer bump does not match": {
			mutate:  func(f *fixture, m *CreateMsg) { m.OfferBump = (m.OfferBump + 1) % 256 },
			wantErr: ErrInvalidBump,
		},
		"vault bump does not match": {
			mutate:  func(f *fixture, m *CreateMsg) { m.VaultBump = (m.VaultBump + 1) % 256 },
			wantErr: ErrInvalidBump,
		},
		"mint is not the give account mint": {
			mutate:  func(f *fixture, m *CreateMsg) { m.Mint = f.oranges },
			wantErr: token.ErrMintMismatch,
		},
		"signer is not the initializer": {
			auth:    func(f *fixture) *bartertest.Auth { return f.asBob },
			wantErr: errors.ErrUnauthorized,
		},
		"initializer does not own the give account": {
			mutate:  func(f *fixture, m *CreateMsg) { m.Initializer = f.bob },
			auth:    func(f *fixture) *bartertest.Auth { return f.asBob },
			wantErr: errors.ErrUnauthorized,
		},
		"taker account missing": {
			mutate:  func(f *fixture, m *CreateMsg) { m.TakerAccount = bartertest.NewAddress() },
			wantErr: errors.ErrNotFound,
		},
		"same account on both sides": {
			mutate:  func(f *fixture, m *CreateMsg) { m.TakerAccount = m.GiveAccount },
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			msg := f.createMsg(t, 20, 50)
			if tc.mutate != nil {
				tc.mutate(f, msg)
			}
			auth := f.asAlice
			if tc.auth != nil {
				auth = tc.auth(f)
			}
			_, err := f.offers.Create(context.Background(), auth, f.db, msg)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			assert.Equal(t, uint64(200), f.balance(t, f.aliceApples))
		})
	}
}

func TestCreateCollisions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
	require.NoError(t, err)

	cache := f.db.CacheWrap()
	_, err = f.offers.Create(ctx, f.asAlice, cache, f.createMsg(t, 20, 50))
	assert.True(t, errors.ErrDuplicate.Is(err))
	cache.Discard()

	cache = f.db.CacheWrap()
	_, err = f.offers.Create(ctx, f.asAlice, cache, f.createMsg(t, 10, 50))
	assert.True(t, ErrVaultInUse.Is(err))
	cache.Discard()
}

func TestCreateInsufficientAmount(t *testing.T) {
	f := newFixture(t)
	cache := f.db.CacheWrap()
	_, err := f.offers.Create(context.Background(), f.asAlice, cache, f.createMsg(t, 201, 50))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	cache.Discard()
	assert.Equal(t, uint64(200), f.balance(t, f.aliceApples))
}

func TestAcceptChecks(t *testing.T) {
	cases := map[string]struct {
		mutate  func(f *fixture, m *AcceptMsg)
		auth    func(f *fixture) *bartertest.Auth
		wantErr *errors.Error
	}{
		"amount differs from the offer": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.GiveAmount = 49 },
			wantErr: errors.ErrAmount,
		},
		"taker give account is not the offered one": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.TakerGiveAccount = f.aliceApples },
			wantErr: errors.ErrInput,
		},
		"taker does not sign": {
			auth:    func(f *fixture) *bartertest.Auth { return f.asAlice },
			wantErr: errors.ErrUnauthorized,
		},
		"taker does not own the give account": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.Taker = f.alice },
			auth:    func(f *fixture) *bartertest.Auth { return f.asAlice },
			wantErr: errors.ErrUnauthorized,
		},
		"initializer mint does not match the vault": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.InitializerMint = f.oranges },
			wantErr: token.ErrMintMismatch,
		},
		"taker mint does not match": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.TakerMint = f.apples },
			wantErr: token.ErrMintMismatch,
		},
		"receive account is neither existing nor associated": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.TakerReceiveAccount = bartertest.NewAddress() },
			wantErr: errors.ErrNotFound,
		},
		"receive account holds the wrong mint": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.InitializerReceiveAccount = f.aliceApples },
			wantErr: token.ErrMintMismatch,
		},
		"offer missing": {
			mutate:  func(f *fixture, m *AcceptMsg) { m.Offer = bartertest.NewAddress() },
			wantErr: ErrOfferNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
			require.NoError(t, err)

			msg := f.acceptMsg(addr, 50)
			if tc.mutate != nil {
				tc.mutate(f, msg)
			}
			auth := f.asBob
			if tc.auth != nil {
				auth = tc.auth(f)
			}
			cache := f.db.CacheWrap()
			_, err = f.offers.Accept(ctx, auth, cache, msg)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			cache.Discard()

			assert.True(t, orm.Exists(f.db, addr))
			assert.Equal(t, uint64(200), f.balance(t, f.bobOranges))
		})
	}
}

func TestVaultReleasesDonations(t *testing.T) {
	cases := map[string]struct {
		settle     func(ctx context.Context, f *fixture, offer barter.Address) error
		aliceFinal uint64
		bobGets    uint64
	}{
		"cancel returns everything to the initializer": {
			settle: func(ctx context.Context, f *fixture, offer barter.Address) error {
				_, err := f.offers.Cancel(ctx, f.asAlice, f.db, &CancelMsg{Offer: offer})
				return err
			},
			aliceFinal: 200,
		},
		"accept pays everything to the taker": {
			settle: func(ctx context.Context, f *fixture, offer barter.Address) error {
				_, err := f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(offer, 50))
				return err
			},
			aliceFinal: 179,
			bobGets:    21,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
			require.NoError(t, err)
			o, err := f.offers.Get(f.db, addr)
			require.NoError(t, err)

			// anyone holding apples can pay into the vault
			require.NoError(t, f.tokens.Transfer(ctx, f.asAlice, f.db, f.aliceApples, o.Vault, 1))
			assert.Equal(t, uint64(21), f.balance(t, o.Vault))

			require.NoError(t, tc.settle(ctx, f, addr))
			assert.Equal(t, tc.aliceFinal, f.balance(t, f.aliceApples))
			if tc.bobGets != 0 {
				assert.Equal(t, tc.bobGets, f.balance(t, f.bobGets))
			}
			assert.False(t, orm.Exists(f.db, addr))
			assert.False(t, orm.Exists(f.db, o.Vault))
		})
	}
}

func TestCreateOverFundedAddresses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.lamports(t, f.alice)

	msg := f.createMsg(t, 20, 50)
	offer, _, err := DeriveOfferAddress(msg.GiveAccount, msg.GiveAmount, msg.TakerAccount, msg.ReceiveAmount)
	require.NoError(t, err)
	vault, _, err := DeriveVaultAddress(msg.GiveAccount, msg.TakerAccount)
	require.NoError(t, err)

	// lamports sent ahead of time leave wallets at both derived addresses
	mallory := bartertest.NewAddress()
	require.NoError(t, f.sys.Issue(f.db, mallory, 10))
	require.NoError(t, f.sys.Transfer(f.db, mallory, offer, 3))
	require.NoError(t, f.sys.Transfer(f.db, mallory, vault, 4))

	addr, err := f.offers.Create(ctx, f.asAlice, f.db, msg)
	require.NoError(t, err)
	assert.Equal(t, offer, addr)
	assert.Equal(t, uint64(20), f.balance(t, vault))

	_, err = f.offers.Cancel(ctx, f.asAlice, f.db, &CancelMsg{Offer: addr})
	require.NoError(t, err)
	assert.Equal(t, uint64(200), f.balance(t, f.aliceApples))
	// the deposits carried the sent lamports back to the initializer
	assert.Equal(t, before+7, f.lamports(t, f.alice))
}

func TestAcceptIntoFundedAssociatedAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	addr, err := f.offers.Create(ctx, f.asAlice, f.db, f.createMsg(t, 20, 50))
	require.NoError(t, err)

	// a wallet sits where bob's apple account will be created
	require.NoError(t, f.sys.Transfer(f.db, f.alice, f.bobGets, 5))
	_, err = f.offers.Accept(ctx, f.asBob, f.db, f.acceptMsg(addr, 50))
	require.NoError(t, err)
	assert.Equal(t, uint64(20), f.balance(t, f.bobGets))
}

func TestHandlerTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	h := CreateHandler{auth: f.asAlice, control: f.offers}

	tx := &bartertest.Tx{Msg: f.createMsg(t, 20, 50)}
	_, err := h.Check(ctx, f.db, tx)
	require.NoError(t, err)
	res, err := h.Deliver(ctx, f.db, tx)
	require.NoError(t, err)
	addr := barter.Address(res.Data)
	require.Len(t, res.Tags, 2)
	assert.Equal(t, addr.String(), string(res.Tags[0].Value))
	assert.Equal(t, string(StatePending), string(res.Tags[1].Value))

	cancel := CancelHandler{auth: f.asBob, control: f.offers}
	_, err = cancel.Check(ctx, f.db, &bartertest.Tx{Msg: &CancelMsg{Offer: addr}})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	cancel = CancelHandler{auth: f.asAlice, control: f.offers}
	res, err = cancel.Deliver(ctx, f.db, &bartertest.Tx{Msg: &CancelMsg{Offer: addr}})
	require.NoError(t, err)
	assert.Equal(t, string(StateCancelled), string(res.Tags[1].Value))
}
