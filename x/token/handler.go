package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

const (
	sendTxCost     int64 = 100
	approveTxCost  int64 = 50
	transferTxCost int64 = 120
	configTxCost   int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
	r.Handle(pathApproveMsg, NewApproveHandler(auth, control))
	r.Handle(pathTransferFromMsg, NewTransferFromHandler(auth, control))
	r.Handle(pathUpdateConfigMsg, NewConfigHandler(auth))
}

// RegisterQuery exposes the buckets to queries.
func RegisterQuery(qr treasury.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
	NewAllowanceBucket().Register("allowances", qr)
	NewConfigBucket().Register("tokencfg", qr)
}

// SendHandler moves coins between wallets.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg.
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check verifies the message is properly formed and signed by the
// source, and returns the cost of executing it.
func (h SendHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg SendMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	return &treasury.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the coins if all preconditions are met.
func (h SendHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg SendMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

// ApproveHandler sets delegated spending limits.
type ApproveHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = ApproveHandler{}

// NewApproveHandler creates a handler for ApproveMsg.
func NewApproveHandler(auth x.Authenticator, control Controller) ApproveHandler {
	return ApproveHandler{
		auth:    auth,
		control: control,
	}
}

// Check verifies the message is properly formed and signed by the owner.
func (h ApproveHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg ApproveMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &treasury.CheckResult{GasAllocated: approveTxCost}, nil
}

// Deliver overwrites the allowance. The previous value is discarded, so
// repeated approvals do not accumulate.
func (h ApproveHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg ApproveMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if err := h.control.SetAllowance(db, msg.Owner, msg.Spender, *msg.Amount); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

// TransferFromHandler executes delegated transfers.
type TransferFromHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = TransferFromHandler{}

// NewTransferFromHandler creates a handler for TransferFromMsg.
func NewTransferFromHandler(auth x.Authenticator, control Controller) TransferFromHandler {
	return TransferFromHandler{
		auth:    auth,
		control: control,
	}
}

// Check verifies the message is properly formed and signed by the
// spender.
func (h TransferFromHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg TransferFromMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Spender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "spender signature missing")
	}
	return &treasury.CheckResult{GasAllocated: transferTxCost}, nil
}

// Deliver burns down the allowance first and only then moves the coins.
// Either both succeed or the whole transaction is void.
func (h TransferFromHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg TransferFromMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Spender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "spender signature missing")
	}
	if err := h.control.DeductAllowance(db, msg.Owner, msg.Spender, *msg.Amount); err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Owner, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

// ConfigHandler updates the ledger configuration.
type ConfigHandler struct {
	auth   x.Authenticator
	bucket ConfigBucket
}

var _ treasury.Handler = ConfigHandler{}

// NewConfigHandler creates a handler for UpdateConfigMsg.
func NewConfigHandler(auth x.Authenticator) ConfigHandler {
	return ConfigHandler{
		auth:   auth,
		bucket: NewConfigBucket(),
	}
}

// Check verifies the message is properly formed and signed by the
// current configuration owner.
func (h ConfigHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{GasAllocated: configTxCost}, nil
}

// Deliver stores the new configuration.
func (h ConfigHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, &msg.Config); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

func (h ConfigHandler) validate(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*UpdateConfigMsg, error) {
	var msg UpdateConfigMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := h.bucket.Load(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	// The ticker is fixed for the lifetime of the ledger. Renaming the
	// token or handing over ownership is fine.
	if conf.Ticker != msg.Config.Ticker {
		return nil, errors.Wrap(errors.ErrImmutable, "ticker")
	}
	return &msg, nil
}
