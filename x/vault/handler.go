package vault

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

const (
	adminTxCost    int64 = 50
	mintTxCost     int64 = 150
	priceTxCost    int64 = 50
	tradeTxCost    int64 = 200
	withdrawTxCost int64 = 150
	farmTxCost     int64 = 150
)

// TokenController is the part of the token ledger the vault relies on.
// It is satisfied by the controller of the token extension.
type TokenController interface {
	MoveCoins(db treasury.KVStore, src, dest treasury.Address, amount coin.Coin) error
	IssueCoins(db treasury.KVStore, dest treasury.Address, amount coin.Coin) error
	BurnCoins(db treasury.KVStore, src treasury.Address, amount coin.Coin) error
	Balance(db treasury.ReadOnlyKVStore, addr treasury.Address) (coin.Coins, error)
}

// FarmController is the part of the yield farm the vault relies on. It
// is satisfied by the controller of the farm extension.
type FarmController interface {
	UpdateRate(ctx treasury.Context, db treasury.KVStore, rate int64) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator, control TokenController, farm FarmController) {
	base := vaultHandler{auth: auth, bucket: NewBucket(), control: control}

	r.Handle(pathAddAdminMsg, AddAdminHandler{base})
	r.Handle(pathRemoveAdminMsg, RemoveAdminHandler{base})
	r.Handle(pathMintVoteMsg, MintVoteHandler{base})
	r.Handle(pathSetSellPriceMsg, SetSellPriceHandler{base})
	r.Handle(pathSetBuyPriceMsg, SetBuyPriceHandler{base})
	r.Handle(pathSetMaxPercentageMsg, SetMaxPercentageHandler{base})
	r.Handle(pathBuyMsg, BuyHandler{base})
	r.Handle(pathBurnMsg, BurnHandler{base})
	r.Handle(pathRequestWithdrawMsg, RequestWithdrawHandler{base})
	r.Handle(pathWithdrawMsg, WithdrawHandler{base})
	r.Handle(pathUpdateFarmRateMsg, UpdateFarmRateHandler{base, farm})
}

// RegisterQuery exposes the vault state to queries.
func RegisterQuery(qr treasury.QueryRouter) {
	NewBucket().Register("vault", qr)
}

// vaultHandler holds what all handlers of this package need.
type vaultHandler struct {
	auth    x.Authenticator
	bucket  Bucket
	control TokenController
}

// signerAdmin returns the first current admin that authorized this
// transaction, or an unauthorized error.
func (h vaultHandler) signerAdmin(ctx treasury.Context, v *Vault) (treasury.Address, error) {
	for _, admin := range v.Admins {
		if h.auth.HasAddress(ctx, admin) {
			return admin, nil
		}
	}
	return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
}

// nativeBalance returns the native currency held by the vault.
func (h vaultHandler) nativeBalance(db treasury.ReadOnlyKVStore, v *Vault) (int64, error) {
	wallet, err := h.control.Balance(db, Address())
	if err != nil {
		return 0, err
	}
	return wallet.Amount(v.NativeTicker), nil
}

// AddAdminHandler adds an admin to the vault. Adding an address that
// already is an admin changes nothing.
type AddAdminHandler struct {
	vaultHandler
}

var _ treasury.Handler = AddAdminHandler{}

func (h AddAdminHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: adminTxCost}, nil
}

func (h AddAdminHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if !v.IsAdmin(msg.Admin) {
		v.Admins = append(v.Admins, msg.Admin)
		if err := h.bucket.Save(db, v); err != nil {
			return nil, err
		}
	}
	return &treasury.DeliverResult{}, nil
}

func (h AddAdminHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*AddAdminMsg, *Vault, error) {
	var msg AddAdminMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, nil, err
	}
	return &msg, v, nil
}

// RemoveAdminHandler removes an admin together with its pending vote
// and withdrawal request. Removal never triggers a mint, even when the
// remaining votes would agree.
type RemoveAdminHandler struct {
	vaultHandler
}

var _ treasury.Handler = RemoveAdminHandler{}

func (h RemoveAdminHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: adminTxCost}, nil
}

func (h RemoveAdminHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	for i := range v.Admins {
		if v.Admins[i].Equals(msg.Admin) {
			v.Admins = append(v.Admins[:i], v.Admins[i+1:]...)
			break
		}
	}
	v.dropVote(msg.Admin)
	v.dropRequest(msg.Admin)
	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h RemoveAdminHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*RemoveAdminMsg, *Vault, error) {
	var msg RemoveAdminMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, nil, err
	}
	if !v.IsAdmin(msg.Admin) {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "admin %s", msg.Admin)
	}
	if len(v.Admins) == 1 {
		return nil, nil, errors.Wrap(ErrLastAdmin, "remove admin")
	}
	return &msg, v, nil
}

// MintVoteHandler records mint votes and executes the mint as soon as
// every current admin voted for the same amount.
type MintVoteHandler struct {
	vaultHandler
}

var _ treasury.Handler = MintVoteHandler{}

func (h MintVoteHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: mintTxCost}, nil
}

func (h MintVoteHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, voter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if vote := v.Vote(voter); vote != nil {
		vote.Amount = msg.Amount
	} else {
		v.MintVotes = append(v.MintVotes, MintVote{Admin: voter, Amount: msg.Amount})
	}

	res := &treasury.DeliverResult{}
	if amount, ok := unanimousAmount(v); ok {
		minted := coin.NewCoin(amount, v.TokenTicker)
		if err := h.control.IssueCoins(db, Address(), minted); err != nil {
			return nil, err
		}
		v.MintingNumber++
		v.MintVotes = nil
		res.Tags = append(res.Tags, treasury.NewTag("vault:mint", minted.String()))
	}

	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return res, nil
}

func (h MintVoteHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*MintVoteMsg, *Vault, treasury.Address, error) {
	var msg MintVoteMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, nil, err
	}
	voter, err := h.signerAdmin(ctx, v)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, v, voter, nil
}

// unanimousAmount returns the agreed amount if every current admin
// voted and all votes are equal.
func unanimousAmount(v *Vault) (int64, bool) {
	if len(v.MintVotes) != len(v.Admins) {
		return 0, false
	}
	amount := v.MintVotes[0].Amount
	for _, admin := range v.Admins {
		vote := v.Vote(admin)
		if vote == nil || vote.Amount != amount {
			return 0, false
		}
	}
	return amount, true
}

// SetSellPriceHandler updates the sell price.
type SetSellPriceHandler struct {
	vaultHandler
}

var _ treasury.Handler = SetSellPriceHandler{}

func (h SetSellPriceHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: priceTxCost}, nil
}

func (h SetSellPriceHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	v.SellPrice = msg.Price
	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h SetSellPriceHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*SetSellPriceMsg, *Vault, error) {
	var msg SetSellPriceMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, nil, err
	}
	if msg.Price < v.BuyPrice {
		return nil, nil, errors.Wrapf(ErrPriceBound, "sell %d below buy %d", msg.Price, v.BuyPrice)
	}
	return &msg, v, nil
}

// SetBuyPriceHandler updates the buy price.
type SetBuyPriceHandler struct {
	vaultHandler
}

var _ treasury.Handler = SetBuyPriceHandler{}

func (h SetBuyPriceHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: priceTxCost}, nil
}

func (h SetBuyPriceHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	v.BuyPrice = msg.Price
	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h SetBuyPriceHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*SetBuyPriceMsg, *Vault, error) {
	var msg SetBuyPriceMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, nil, err
	}
	if msg.Price > v.SellPrice {
		return nil, nil, errors.Wrapf(ErrPriceBound, "buy %d above sell %d", msg.Price, v.SellPrice)
	}
	return &msg, v, nil
}

// SetMaxPercentageHandler updates the withdrawal cap.
type SetMaxPercentageHandler struct {
	vaultHandler
}

var _ treasury.Handler = SetMaxPercentageHandler{}

func (h SetMaxPercentageHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: priceTxCost}, nil
}

func (h SetMaxPercentageHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	v.MaxPercentage = msg.Percentage
	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h SetMaxPercentageHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*SetMaxPercentageMsg, *Vault, error) {
	var msg SetMaxPercentageMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, nil, err
	}
	return &msg, v, nil
}

// BuyHandler sells vault tokens for native currency at the sell price.
type BuyHandler struct {
	vaultHandler
}

var _ treasury.Handler = BuyHandler{}

func (h BuyHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: tradeTxCost}, nil
}

func (h BuyHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, tokens, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The full payment goes to the vault, including the remainder that
	// did not buy a whole token.
	payment := coin.NewCoin(msg.Payment, v.NativeTicker)
	if err := h.control.MoveCoins(db, msg.Buyer, Address(), payment); err != nil {
		return nil, err
	}
	bought := coin.NewCoin(tokens, v.TokenTicker)
	if err := h.control.MoveCoins(db, Address(), msg.Buyer, bought); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{
		Tags: []treasury.Tag{treasury.NewTag("vault:buy", bought.String())},
	}, nil
}

func (h BuyHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*BuyMsg, *Vault, int64, error) {
	var msg BuyMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Buyer) {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "buyer signature missing")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, 0, err
	}

	tokens := msg.Payment / v.SellPrice
	if tokens == 0 {
		return nil, nil, 0, errors.Wrapf(ErrPayment, "%d below sell price %d", msg.Payment, v.SellPrice)
	}
	stock, err := h.control.Balance(db, Address())
	if err != nil {
		return nil, nil, 0, err
	}
	if stock.Amount(v.TokenTicker) < tokens {
		return nil, nil, 0, errors.Wrapf(ErrLiquidity, "want %d tokens", tokens)
	}
	return &msg, v, tokens, nil
}

// BurnHandler destroys seller tokens and pays the buy price for them.
type BurnHandler struct {
	vaultHandler
}

var _ treasury.Handler = BurnHandler{}

func (h BurnHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: tradeTxCost}, nil
}

func (h BurnHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, payout, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	burned := coin.NewCoin(msg.Amount, v.TokenTicker)
	if err := h.control.BurnCoins(db, msg.Seller, burned); err != nil {
		return nil, err
	}
	if payout > 0 {
		paid := coin.NewCoin(payout, v.NativeTicker)
		if err := h.control.MoveCoins(db, Address(), msg.Seller, paid); err != nil {
			return nil, err
		}
	}
	return &treasury.DeliverResult{
		Tags: []treasury.Tag{treasury.NewTag("vault:burn", burned.String())},
	}, nil
}

func (h BurnHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*BurnMsg, *Vault, int64, error) {
	var msg BurnMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Seller) {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, 0, err
	}

	paid, err := coin.NewCoin(v.BuyPrice, v.NativeTicker).Multiply(msg.Amount)
	if err != nil {
		return nil, nil, 0, errors.Wrap(err, "payout")
	}
	balance, err := h.nativeBalance(db, v)
	if err != nil {
		return nil, nil, 0, err
	}
	if balance < paid.Amount {
		return nil, nil, 0, errors.Wrapf(ErrVaultFunds, "payout %d, vault holds %d", paid.Amount, balance)
	}
	return &msg, v, paid.Amount, nil
}

// RequestWithdrawHandler files admin withdrawal requests and flips them
// all payable once every current admin has one.
type RequestWithdrawHandler struct {
	vaultHandler
}

var _ treasury.Handler = RequestWithdrawHandler{}

func (h RequestWithdrawHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: withdrawTxCost}, nil
}

func (h RequestWithdrawHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, v, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	v.Requests = append(v.Requests, WithdrawRequest{Admin: admin, Amount: msg.Amount})

	everyone := true
	for _, a := range v.Admins {
		if v.Request(a) == nil {
			everyone = false
			break
		}
	}
	if everyone {
		for i := range v.Requests {
			v.Requests[i].Payable = true
		}
	}

	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h RequestWithdrawHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*RequestWithdrawMsg, *Vault, treasury.Address, error) {
	var msg RequestWithdrawMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, nil, err
	}
	admin, err := h.signerAdmin(ctx, v)
	if err != nil {
		return nil, nil, nil, err
	}
	if v.Request(admin) != nil {
		return nil, nil, nil, errors.Wrapf(ErrDuplicateRequest, "admin %s", admin)
	}

	balance, err := h.nativeBalance(db, v)
	if err != nil {
		return nil, nil, nil, err
	}
	claimed, err := coin.NewCoin(v.RequestedTotal()+msg.Amount, v.NativeTicker).Multiply(100)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "claimed")
	}
	allowed, err := coin.NewCoin(balance, v.NativeTicker).Multiply(v.MaxPercentage)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "allowed")
	}
	if claimed.Amount > allowed.Amount {
		return nil, nil, nil, errors.Wrapf(ErrCapExceeded, "requested %d of %d at %d%%",
			v.RequestedTotal()+msg.Amount, balance, v.MaxPercentage)
	}
	return &msg, v, admin, nil
}

// WithdrawHandler pays out a payable request of the sending admin.
// Each admin collects on its own, one payable request does not wait for
// the others.
type WithdrawHandler struct {
	vaultHandler
}

var _ treasury.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: withdrawTxCost}, nil
}

func (h WithdrawHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	v, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	req := v.Request(admin)
	paid := coin.NewCoin(req.Amount, v.NativeTicker)
	if err := h.control.MoveCoins(db, Address(), admin, paid); err != nil {
		return nil, err
	}
	v.dropRequest(admin)
	if err := h.bucket.Save(db, v); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{
		Tags: []treasury.Tag{treasury.NewTag("vault:withdraw", paid.String())},
	}, nil
}

func (h WithdrawHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*Vault, treasury.Address, error) {
	var msg WithdrawMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, nil, err
	}
	admin, err := h.signerAdmin(ctx, v)
	if err != nil {
		return nil, nil, err
	}
	req := v.Request(admin)
	if req == nil || !req.Payable {
		return nil, nil, errors.Wrapf(ErrNotPayable, "admin %s", admin)
	}
	balance, err := h.nativeBalance(db, v)
	if err != nil {
		return nil, nil, err
	}
	if balance < req.Amount {
		return nil, nil, errors.Wrapf(ErrVaultFunds, "payout %d, vault holds %d", req.Amount, balance)
	}
	return v, admin, nil
}

// UpdateFarmRateHandler forwards a new yield rate to the farm.
type UpdateFarmRateHandler struct {
	vaultHandler
	farm FarmController
}

var _ treasury.Handler = UpdateFarmRateHandler{}

func (h UpdateFarmRateHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: farmTxCost}, nil
}

func (h UpdateFarmRateHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.farm.UpdateRate(ctx, db, msg.Rate); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h UpdateFarmRateHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*UpdateFarmRateMsg, error) {
	var msg UpdateFarmRateMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	v, err := h.bucket.Load(db)
	if err != nil {
		return nil, err
	}
	if _, err := h.signerAdmin(ctx, v); err != nil {
		return nil, err
	}
	return &msg, nil
}
