package farm

import (
	"testing"

	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStakeHandler(t *testing.T) {
	e := newEnv(t, 3155692600)
	staker := treasurytest.NewCondition()
	auth := &treasurytest.Auth{Signer: staker}

	require.NoError(t, e.ledger.IssueCoins(e.db, staker.Address(), coin.NewCoin(50, "TRS")))
	require.NoError(t, e.ledger.SetAllowance(e.db, staker.Address(), Address(), coin.NewCoin(50, "TRS")))

	h := StakeHandler{auth: auth, control: e.control}
	_, err := h.Deliver(at(100), e.db, &treasurytest.Tx{Msg: &StakeMsg{
		Staker: staker.Address(),
		Amount: 50,
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), e.balance(t, Address()))

	// Nobody can stake someone else's tokens.
	stranger := treasurytest.NewCondition()
	h = StakeHandler{auth: &treasurytest.Auth{Signer: stranger}, control: e.control}
	_, err = h.Deliver(at(100), e.db, &treasurytest.Tx{Msg: &StakeMsg{
		Staker: staker.Address(),
		Amount: 1,
	}})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestUnstakeAndWithdrawHandlers(t *testing.T) {
	e := newEnv(t, 3155692600)
	staker := treasurytest.NewCondition()
	auth := &treasurytest.Auth{Signer: staker}

	e.join(t, at(100), staker.Address(), 20)
	require.NoError(t, e.ledger.IssueCoins(e.db, Address(), coin.NewCoin(100, "TRS")))

	unstake := UnstakeHandler{auth: auth, control: e.control}
	_, err := unstake.Deliver(at(101), e.db, &treasurytest.Tx{Msg: &UnstakeMsg{
		Staker: staker.Address(),
		Amount: 20,
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(20), e.balance(t, staker.Address()))

	withdraw := WithdrawYieldHandler{auth: auth, control: e.control}
	res, err := withdraw.Deliver(at(101), e.db, &treasurytest.Tx{Msg: &WithdrawYieldMsg{
		Staker: staker.Address(),
	}})
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "20", string(res.Tags[0].Value))
	assert.Equal(t, int64(40), e.balance(t, staker.Address()))

	// No position left, another withdrawal is rejected.
	_, err = withdraw.Deliver(at(102), e.db, &treasurytest.Tx{Msg: &WithdrawYieldMsg{
		Staker: staker.Address(),
	}})
	assert.True(t, ErrInsufficientStake.Is(err))
}
