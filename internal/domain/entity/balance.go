package entity

import "math"

// Balance holds the two per-identity quantities tracked by the system.
// Both are clamped at zero after every mutation.
type Balance struct {
	CWT float64 `bson:"cwt" json:"cwt"`
	CWS int64   `bson:"cws" json:"cws"`
}

// BalanceOp selects how a balance adjustment is applied.
type BalanceOp string

const (
	OpAdd      BalanceOp = "add"
	OpSubtract BalanceOp = "subtract"
	// OpSet is the default: any operation value outside add/subtract,
	// including an absent one, replaces the balances outright.
	OpSet BalanceOp = "set"
)

// ApplyBalanceOperation computes the new balances for an adjustment.
// Non-finite CWT deltas are treated as zero rather than rejected, and
// would-be-negative results clamp to zero — they never error.
func ApplyBalanceOperation(current Balance, deltaCWT float64, deltaCWS int64, op BalanceOp) Balance {
	if math.IsNaN(deltaCWT) || math.IsInf(deltaCWT, 0) {
		deltaCWT = 0
	}

	var next Balance
	switch op {
	case OpAdd:
		next = Balance{CWT: current.CWT + deltaCWT, CWS: current.CWS + deltaCWS}
	case OpSubtract:
		next = Balance{CWT: current.CWT - deltaCWT, CWS: current.CWS - deltaCWS}
	default:
		next = Balance{CWT: deltaCWT, CWS: deltaCWS}
	}

	if next.CWT < 0 {
		next.CWT = 0
	}
	if next.CWS < 0 {
		next.CWS = 0
	}
	return next
}
