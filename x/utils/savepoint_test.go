package utils

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writingHandler writes a key and then optionally fails.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ treasury.Handler = writingHandler{}

func (h writingHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, h.err
}

func TestSavepointRollsBackOnError(t *testing.T) {
	db := store.MemStore()
	failing := writingHandler{key: []byte("k"), value: []byte("v"), err: errors.ErrState.New("boom")}
	stack := NewSavepoint().OnDeliver()

	_, err := stack.Deliver(context.Background(), db, &treasurytest.Tx{}, failing)
	assert.Error(t, err)

	raw, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, raw, "failed delivery must leave no trace")
}

func TestSavepointCommitsOnSuccess(t *testing.T) {
	db := store.MemStore()
	writing := writingHandler{key: []byte("k"), value: []byte("v")}
	stack := NewSavepoint().OnDeliver().OnCheck()

	_, err := stack.Deliver(context.Background(), db, &treasurytest.Tx{}, writing)
	require.NoError(t, err)

	raw, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), raw)

	_, err = stack.Check(context.Background(), db, &treasurytest.Tx{}, writing)
	require.NoError(t, err)
}

func TestSavepointInactiveWithoutTrigger(t *testing.T) {
	db := store.MemStore()
	failing := writingHandler{key: []byte("k"), value: []byte("v"), err: errors.ErrState.New("boom")}

	// Without OnDeliver the savepoint is pass-through and the write
	// survives the failure.
	_, err := NewSavepoint().Deliver(context.Background(), db, &treasurytest.Tx{}, failing)
	assert.Error(t, err)

	raw, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), raw)
}

func TestRecovery(t *testing.T) {
	var h panicHandler
	_, err := NewRecovery().Deliver(context.Background(), store.MemStore(), &treasurytest.Tx{}, h)
	assert.True(t, errors.ErrPanic.Is(err))
}

type panicHandler struct{}

var _ treasury.Handler = panicHandler{}

func (panicHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	panic("deliver panic")
}
