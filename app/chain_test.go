package app

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagger is a decorator that marks every result it has seen.
type tagger struct {
	name string
}

var _ treasury.Decorator = tagger{}

func (d tagger) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Checker) (*treasury.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (d tagger) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Deliverer) (*treasury.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, treasury.NewTag("decorator", d.name))
	return res, nil
}

func TestChainDecorators(t *testing.T) {
	h := &treasurytest.Handler{}
	stack := ChainDecorators(
		tagger{name: "outer"},
		nil, // nils are dropped
		tagger{name: "inner"},
	).WithHandler(h)

	res, err := stack.Deliver(context.Background(), store.MemStore(), &treasurytest.Tx{Msg: &treasurytest.Msg{RoutePath: "test/any"}})
	require.NoError(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())

	// The outer decorator runs first, so it appends its tag last.
	require.Len(t, res.Tags, 2)
	assert.Equal(t, "inner", string(res.Tags[0].Value))
	assert.Equal(t, "outer", string(res.Tags[1].Value))
}

func TestChainCanBeExtended(t *testing.T) {
	h := &treasurytest.Handler{}
	stack := ChainDecorators(tagger{name: "a"}).
		Chain(tagger{name: "b"}).
		WithHandler(h)

	res, err := stack.Deliver(context.Background(), store.MemStore(), &treasurytest.Tx{Msg: &treasurytest.Msg{RoutePath: "test/any"}})
	require.NoError(t, err)
	assert.Len(t, res.Tags, 2)
}
