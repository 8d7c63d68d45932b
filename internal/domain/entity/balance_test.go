package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyBalanceOperation_Add(t *testing.T) {
	got := ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, 3, 20, OpAdd)
	assert.Equal(t, Balance{CWT: 13, CWS: 120}, got)
}

func TestApplyBalanceOperation_SubtractClampsAtZero(t *testing.T) {
	got := ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, 30, 200, OpSubtract)
	assert.Equal(t, Balance{CWT: 0, CWS: 0}, got)
}

func TestApplyBalanceOperation_Set(t *testing.T) {
	got := ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, 7, 50, OpSet)
	assert.Equal(t, Balance{CWT: 7, CWS: 50}, got)
}

func TestApplyBalanceOperation_UnknownOperationActsAsSet(t *testing.T) {
	got := ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, 7, 50, BalanceOp("multiply"))
	assert.Equal(t, Balance{CWT: 7, CWS: 50}, got)

	got = ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, 7, 50, BalanceOp(""))
	assert.Equal(t, Balance{CWT: 7, CWS: 50}, got)
}

func TestApplyBalanceOperation_NonFiniteCWTTreatedAsZero(t *testing.T) {
	got := ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, math.NaN(), 0, OpAdd)
	assert.Equal(t, Balance{CWT: 10, CWS: 100}, got)

	got = ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, math.Inf(1), 0, OpAdd)
	assert.Equal(t, Balance{CWT: 10, CWS: 100}, got)

	got = ApplyBalanceOperation(Balance{CWT: 10, CWS: 100}, math.Inf(-1), 5, OpSubtract)
	assert.Equal(t, Balance{CWT: 10, CWS: 95}, got)
}

func TestApplyBalanceOperation_NeverNegative(t *testing.T) {
	cases := []struct {
		current  Balance
		deltaCWT float64
		deltaCWS int64
		op       BalanceOp
	}{
		{Balance{CWT: 1, CWS: 1}, 100, 100, OpSubtract},
		{Balance{}, 0.0001, 1, OpSubtract},
		{Balance{CWT: 5, CWS: 5}, -50, -50, OpAdd},
		{Balance{CWT: 5, CWS: 5}, -50, -50, OpSet},
	}
	for _, tc := range cases {
		got := ApplyBalanceOperation(tc.current, tc.deltaCWT, tc.deltaCWS, tc.op)
		assert.GreaterOrEqual(t, got.CWT, 0.0)
		assert.GreaterOrEqual(t, got.CWS, int64(0))
	}
}
