package vault

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	db      treasury.KVStore
	bucket  Bucket
	control token.LedgerController
}

// newEnv creates a vault with the given admins, prices 10/5 and a 20%
// withdrawal cap.
func newEnv(t *testing.T, admins ...treasury.Condition) env {
	t.Helper()
	e := env{
		db:      store.MemStore(),
		bucket:  NewBucket(),
		control: token.NewController(),
	}
	v := Vault{
		TokenTicker:   "TRS",
		NativeTicker:  "IOV",
		SellPrice:     10,
		BuyPrice:      5,
		MaxPercentage: 20,
	}
	for _, a := range admins {
		v.Admins = append(v.Admins, a.Address())
	}
	require.NoError(t, e.bucket.Save(e.db, &v))
	return e
}

func (e env) handler(signer treasury.Condition) vaultHandler {
	var auth x.Authenticator = &treasurytest.Auth{Signer: signer}
	return vaultHandler{auth: auth, bucket: e.bucket, control: e.control}
}

func (e env) vault(t *testing.T) *Vault {
	t.Helper()
	v, err := e.bucket.Load(e.db)
	require.NoError(t, err)
	return v
}

func (e env) fund(t *testing.T, addr treasury.Address, amount int64, ticker string) {
	t.Helper()
	require.NoError(t, e.control.IssueCoins(e.db, addr, coin.NewCoin(amount, ticker)))
}

func (e env) balance(t *testing.T, addr treasury.Address, ticker string) int64 {
	t.Helper()
	wallet, err := e.control.Balance(e.db, addr)
	require.NoError(t, err)
	return wallet.Amount(ticker)
}

func TestAddRemoveAdmin(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()
	stranger := treasurytest.NewCondition()

	e := newEnv(t, alice)
	ctx := context.Background()

	// A stranger cannot touch the admin set.
	_, err := AddAdminHandler{e.handler(stranger)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &AddAdminMsg{Admin: bob.Address()},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = AddAdminHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &AddAdminMsg{Admin: bob.Address()},
	})
	require.NoError(t, err)
	assert.Len(t, e.vault(t).Admins, 2)

	// Adding again changes nothing.
	_, err = AddAdminHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &AddAdminMsg{Admin: bob.Address()},
	})
	require.NoError(t, err)
	assert.Len(t, e.vault(t).Admins, 2)

	// The new admin has full powers.
	_, err = RemoveAdminHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: alice.Address()},
	})
	require.NoError(t, err)
	assert.Len(t, e.vault(t).Admins, 1)

	// Removing an unknown admin fails.
	_, err = RemoveAdminHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: stranger.Address()},
	})
	assert.True(t, errors.ErrNotFound.Is(err))

	// The vault can never lose its last admin.
	_, err = RemoveAdminHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: bob.Address()},
	})
	assert.True(t, ErrLastAdmin.Is(err))
}

func TestMintConsensus(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()

	e := newEnv(t, alice, bob)
	ctx := context.Background()

	// A single vote does not mint.
	_, err := MintVoteHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 1000},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.balance(t, Address(), "TRS"))
	assert.Equal(t, int64(0), e.vault(t).MintingNumber)

	// A disagreeing vote does not mint either.
	_, err = MintVoteHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 900},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.balance(t, Address(), "TRS"))

	// Changing the vote to match mints in the same delivery.
	res, err := MintVoteHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 1000},
	})
	require.NoError(t, err)
	assert.Len(t, res.Tags, 1)
	assert.Equal(t, int64(1000), e.balance(t, Address(), "TRS"))

	v := e.vault(t)
	assert.Equal(t, int64(1), v.MintingNumber)
	assert.Empty(t, v.MintVotes, "votes must be cleared after minting")

	// The next round starts from scratch.
	_, err = MintVoteHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 1000},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), e.balance(t, Address(), "TRS"))
	assert.Equal(t, int64(1), e.vault(t).MintingNumber)
}

func TestMintVoteRequiresAdmin(t *testing.T) {
	alice := treasurytest.NewCondition()
	stranger := treasurytest.NewCondition()

	e := newEnv(t, alice)
	_, err := MintVoteHandler{e.handler(stranger)}.Deliver(context.Background(), e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 10},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestRemovingAdminNeverMints(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()

	e := newEnv(t, alice, bob)
	ctx := context.Background()

	_, err := MintVoteHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 500},
	})
	require.NoError(t, err)

	// After removing bob every remaining admin has voted, but removal
	// must not execute the mint.
	_, err = RemoveAdminHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: bob.Address()},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.balance(t, Address(), "TRS"))

	// The next vote completes the round.
	_, err = MintVoteHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), e.balance(t, Address(), "TRS"))
	assert.Equal(t, int64(1), e.vault(t).MintingNumber)
}

func TestRemovedVoteDoesNotCount(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()
	carl := treasurytest.NewCondition()

	e := newEnv(t, alice, bob, carl)
	ctx := context.Background()

	for _, admin := range []treasury.Condition{alice, bob} {
		_, err := MintVoteHandler{e.handler(admin)}.Deliver(ctx, e.db, &treasurytest.Tx{
			Msg: &MintVoteMsg{Amount: 100},
		})
		require.NoError(t, err)
	}
	_, err := RemoveAdminHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: bob.Address()},
	})
	require.NoError(t, err)

	// Bob's vote is gone, so carl voting completes the round with
	// alice and carl only.
	_, err = MintVoteHandler{e.handler(carl)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &MintVoteMsg{Amount: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), e.balance(t, Address(), "TRS"))
}

func TestPriceBounds(t *testing.T) {
	alice := treasurytest.NewCondition()
	e := newEnv(t, alice)
	ctx := context.Background()

	// Initial prices are sell 10, buy 5.
	_, err := SetSellPriceHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetSellPriceMsg{Price: 4},
	})
	assert.True(t, ErrPriceBound.Is(err))

	_, err = SetBuyPriceHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetBuyPriceMsg{Price: 11},
	})
	assert.True(t, ErrPriceBound.Is(err))

	// Equal prices are allowed.
	_, err = SetBuyPriceHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetBuyPriceMsg{Price: 10},
	})
	require.NoError(t, err)

	_, err = SetSellPriceHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetSellPriceMsg{Price: 20},
	})
	require.NoError(t, err)

	v := e.vault(t)
	assert.Equal(t, int64(20), v.SellPrice)
	assert.Equal(t, int64(10), v.BuyPrice)

	stranger := treasurytest.NewCondition()
	_, err = SetSellPriceHandler{e.handler(stranger)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetSellPriceMsg{Price: 30},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestBuy(t *testing.T) {
	alice := treasurytest.NewCondition()
	buyer := treasurytest.NewCondition()

	e := newEnv(t, alice)
	ctx := context.Background()
	e.fund(t, Address(), 100, "TRS")
	e.fund(t, buyer.Address(), 1000, "IOV")

	// 25 native at sell price 10 buys 2 tokens, the remainder stays
	// with the vault.
	_, err := BuyHandler{e.handler(buyer)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BuyMsg{Buyer: buyer.Address(), Payment: 25},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.balance(t, buyer.Address(), "TRS"))
	assert.Equal(t, int64(975), e.balance(t, buyer.Address(), "IOV"))
	assert.Equal(t, int64(25), e.balance(t, Address(), "IOV"))
	assert.Equal(t, int64(98), e.balance(t, Address(), "TRS"))

	// Less than the sell price buys nothing and fails.
	_, err = BuyHandler{e.handler(buyer)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BuyMsg{Buyer: buyer.Address(), Payment: 9},
	})
	assert.True(t, ErrPayment.Is(err))

	// More than the vault stock fails.
	_, err = BuyHandler{e.handler(buyer)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BuyMsg{Buyer: buyer.Address(), Payment: 990},
	})
	assert.True(t, ErrLiquidity.Is(err))

	// A poor buyer is rejected by the ledger.
	_, err = BuyHandler{e.handler(buyer)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BuyMsg{Buyer: buyer.Address(), Payment: 980},
	})
	assert.True(t, token.ErrInsufficientFunds.Is(err))

	// Buying for someone else is not possible.
	_, err = BuyHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BuyMsg{Buyer: buyer.Address(), Payment: 10},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestBurn(t *testing.T) {
	alice := treasurytest.NewCondition()
	seller := treasurytest.NewCondition()

	e := newEnv(t, alice)
	ctx := context.Background()
	e.fund(t, Address(), 1000, "IOV")
	e.fund(t, seller.Address(), 50, "TRS")

	// Burning 6 tokens at buy price 5 pays 30 native.
	_, err := BurnHandler{e.handler(seller)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BurnMsg{Seller: seller.Address(), Amount: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(44), e.balance(t, seller.Address(), "TRS"))
	assert.Equal(t, int64(30), e.balance(t, seller.Address(), "IOV"))
	assert.Equal(t, int64(970), e.balance(t, Address(), "IOV"))
	// Burned tokens are destroyed, not returned to the vault.
	assert.Equal(t, int64(0), e.balance(t, Address(), "TRS"))

	// Burning more than held is rejected by the ledger.
	_, err = BurnHandler{e.handler(seller)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BurnMsg{Seller: seller.Address(), Amount: 45},
	})
	assert.True(t, token.ErrInsufficientFunds.Is(err))

	// A drained vault cannot pay.
	_, err = BurnHandler{e.handler(seller)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BurnMsg{Seller: seller.Address(), Amount: 200},
	})
	assert.True(t, ErrVaultFunds.Is(err))
}

func TestBurnWithZeroBuyPrice(t *testing.T) {
	alice := treasurytest.NewCondition()
	seller := treasurytest.NewCondition()

	e := newEnv(t, alice)
	ctx := context.Background()
	e.fund(t, seller.Address(), 10, "TRS")

	_, err := SetBuyPriceHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &SetBuyPriceMsg{Price: 0},
	})
	require.NoError(t, err)

	// The burn happens even though there is nothing to pay out.
	_, err = BurnHandler{e.handler(seller)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &BurnMsg{Seller: seller.Address(), Amount: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.balance(t, seller.Address(), "TRS"))
	assert.Equal(t, int64(0), e.balance(t, seller.Address(), "IOV"))
}

func TestWithdrawLifecycle(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()

	e := newEnv(t, alice, bob)
	ctx := context.Background()
	// With 1000 native in the vault and a 20% cap, requests may claim
	// up to 200 in total.
	e.fund(t, Address(), 1000, "IOV")

	_, err := RequestWithdrawHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RequestWithdrawMsg{Amount: 150},
	})
	require.NoError(t, err)

	// Not payable until every admin has a request.
	_, err = WithdrawHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &WithdrawMsg{},
	})
	assert.True(t, ErrNotPayable.Is(err))

	// Only one outstanding request per admin.
	_, err = RequestWithdrawHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RequestWithdrawMsg{Amount: 10},
	})
	assert.True(t, ErrDuplicateRequest.Is(err))

	// Over the cap.
	_, err = RequestWithdrawHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RequestWithdrawMsg{Amount: 60},
	})
	assert.True(t, ErrCapExceeded.Is(err))

	// Exactly at the cap is fine, and the last request makes all
	// requests payable.
	_, err = RequestWithdrawHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RequestWithdrawMsg{Amount: 50},
	})
	require.NoError(t, err)
	for _, req := range e.vault(t).Requests {
		assert.True(t, req.Payable)
	}

	// Each admin collects independently.
	_, err = WithdrawHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &WithdrawMsg{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150), e.balance(t, alice.Address(), "IOV"))
	assert.Equal(t, int64(850), e.balance(t, Address(), "IOV"))

	// Collecting twice is not possible.
	_, err = WithdrawHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &WithdrawMsg{},
	})
	assert.True(t, ErrNotPayable.Is(err))

	_, err = WithdrawHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &WithdrawMsg{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), e.balance(t, bob.Address(), "IOV"))
	assert.Empty(t, e.vault(t).Requests)
}

func TestWithdrawRequestDroppedWithAdmin(t *testing.T) {
	alice := treasurytest.NewCondition()
	bob := treasurytest.NewCondition()

	e := newEnv(t, alice, bob)
	ctx := context.Background()
	e.fund(t, Address(), 1000, "IOV")

	_, err := RequestWithdrawHandler{e.handler(bob)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RequestWithdrawMsg{Amount: 100},
	})
	require.NoError(t, err)

	_, err = RemoveAdminHandler{e.handler(alice)}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &RemoveAdminMsg{Admin: bob.Address()},
	})
	require.NoError(t, err)
	assert.Empty(t, e.vault(t).Requests)
}

type farmMock struct {
	rate   int64
	called int
	err    error
}

func (f *farmMock) UpdateRate(ctx treasury.Context, db treasury.KVStore, rate int64) error {
	if f.err != nil {
		return f.err
	}
	f.called++
	f.rate = rate
	return nil
}

func TestUpdateFarmRate(t *testing.T) {
	alice := treasurytest.NewCondition()
	stranger := treasurytest.NewCondition()

	e := newEnv(t, alice)
	ctx := context.Background()
	farm := &farmMock{}

	_, err := UpdateFarmRateHandler{e.handler(stranger), farm}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &UpdateFarmRateMsg{Rate: 7},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, farm.called)

	_, err = UpdateFarmRateHandler{e.handler(alice), farm}.Deliver(ctx, e.db, &treasurytest.Tx{
		Msg: &UpdateFarmRateMsg{Rate: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, farm.called)
	assert.Equal(t, int64(7), farm.rate)
}
