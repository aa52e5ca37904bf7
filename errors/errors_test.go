package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantHit bool
	}{
		"direct instance": {
			kind:    ErrNotFound,
			err:     ErrNotFound,
			wantHit: true,
		},
		"wrapped once": {
			kind:    ErrNotFound,
			err:     Wrap(ErrNotFound, "gone"),
			wantHit: true,
		},
		"wrapped multiple times": {
			kind:    ErrState,
			err:     Wrap(Wrap(ErrState, "inner"), "outer"),
			wantHit: true,
		},
		"different kind": {
			kind:    ErrNotFound,
			err:     Wrap(ErrUnauthorized, "nope"),
			wantHit: false,
		},
		"stdlib error": {
			kind:    ErrNotFound,
			err:     fmt.Errorf("not registered"),
			wantHit: false,
		},
		"nil error": {
			kind:    ErrNotFound,
			err:     nil,
			wantHit: false,
		},
		"multi error with a match": {
			kind:    ErrEmpty,
			err:     Append(ErrDuplicate, Wrap(ErrEmpty, "missing")),
			wantHit: true,
		},
		"multi error without a match": {
			kind:    ErrExpired,
			err:     Append(ErrDuplicate, ErrEmpty),
			wantHit: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantHit, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapfMessage(t *testing.T) {
	err := Wrapf(ErrAmount, "got %d", 42)
	assert.Equal(t, "got 42: invalid amount", err.Error())
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrInput, "inner")
	st := stackTrace(inner)
	if st == nil {
		t.Fatal("expected a stack trace to be attached")
	}
	outer := Wrap(inner, "outer")
	assert.Equal(t, fmt.Sprintf("%v", st), fmt.Sprintf("%v", stackTrace(outer)))
}

func TestNewfIsWrap(t *testing.T) {
	err := ErrState.Newf("round %d", 3)
	assert.True(t, ErrState.Is(err))
	assert.Equal(t, "round 3: invalid state", err.Error())
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("oh no")
	}()
	assert.True(t, ErrPanic.Is(err))
}

func TestAppend(t *testing.T) {
	assert.Nil(t, Append(nil, nil))

	single := Append(nil, ErrEmpty)
	assert.Equal(t, ErrEmpty, single)

	multi := Append(ErrEmpty, nil, ErrDuplicate)
	u, ok := multi.(unpacker)
	if !ok {
		t.Fatalf("expected a multi error, got %T", multi)
	}
	assert.Len(t, u.Unpack(), 2)

	// Appending a multi error must flatten it.
	flat := Append(multi, ErrState)
	assert.Len(t, flat.(unpacker).Unpack(), 3)
}

func TestFieldErrors(t *testing.T) {
	err := AppendField(nil, "Name", ErrEmpty)
	err = AppendField(err, "Amount", ErrAmount)

	assert.Len(t, FieldErrors(err, "Name"), 1)
	assert.Len(t, FieldErrors(err, "Amount"), 1)
	assert.Len(t, FieldErrors(err, "Other"), 0)
	assert.True(t, ErrEmpty.Is(err))
	assert.True(t, ErrAmount.Is(err))
}
