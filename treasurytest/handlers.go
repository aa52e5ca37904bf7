package treasurytest

import (
	"github.com/iov-one/treasury"
)

// Handler implements treasury.Handler and counts all calls. Use it to test
// routing and decorator chains.
type Handler struct {
	checkCall   int
	deliverCall int

	// CheckResult is returned by each Check call when CheckErr is nil.
	CheckResult treasury.CheckResult
	// CheckErr if set is returned by each Check call.
	CheckErr error

	// DeliverResult is returned by each Deliver call when DeliverErr is nil.
	DeliverResult treasury.DeliverResult
	// DeliverErr if set is returned by each Deliver call.
	DeliverErr error
}

var _ treasury.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// CallCount returns the total number of calls on this handler.
func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
