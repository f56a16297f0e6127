package ubi

import (
	"fmt"

	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// Params holds the chain-supplied, immutable-after-init configuration table
// from §6. Following the teacher's policy.go convention, every field here
// would be PARAM_SPEC-tagged in a deployed network; defaults below are the
// worked-example values used throughout §8's scenarios.
type Params struct {
	// UbiAmount is the number of tokens minted per eligible claim period.
	UbiAmount abi.TokenAmount
	// ClaimPeriodBlocks is the number of blocks in one claim period.
	ClaimPeriodBlocks uint32
	// ExpirationBlocks is the number of blocks a minted batch remains live.
	ExpirationBlocks uint32
	// MaxBacklogPeriods caps how many missed periods a single claim can mint.
	MaxBacklogPeriods uint32
}

// DefaultParams returns the §8 worked-example configuration
// (UbiAmount=100, ClaimPeriodBlocks=100, ExpirationBlocks=700, MaxBacklogPeriods=3).
func DefaultParams() Params {
	return Params{
		UbiAmount:         abi.NewTokenAmount(100),
		ClaimPeriodBlocks: 100,
		ExpirationBlocks:  700,
		MaxBacklogPeriods: 3,
	}
}

// validate runs the same kind of cross-field sanity pass the teacher's
// policy.go performs in its init(), just deferred to construction time since
// these parameters are chain-supplied rather than compile-time constants.
func (p Params) validate() error {
	if p.ClaimPeriodBlocks == 0 {
		return fmt.Errorf("ClaimPeriodBlocks must be non-zero")
	}
	if p.ExpirationBlocks == 0 {
		return fmt.Errorf("ExpirationBlocks must be non-zero")
	}
	if p.MaxBacklogPeriods == 0 {
		return fmt.Errorf("MaxBacklogPeriods must be non-zero")
	}
	return nil
}

// Bounded-collection caps (§3). Unlike Params these are protocol constants,
// not per-deployment configuration, matching the teacher's split between
// policy.go vars (tunable) and consts (structural).
const (
	// MaxBatches bounds the per-account batch ledger (§4.2).
	MaxBatches = 10
	// MaxUniqueRecipients bounds the breadth bonus a single account's
	// unique-recipient set may contribute (§3).
	MaxUniqueRecipients = 1000
	// StreakGracePeriods is the number of periods of grace permitted
	// between consecutive claims before the streak resets (§4.3).
	StreakGracePeriods = 2
)

// senderWeightTier implements the §4.1 tiered lookup: cheaper and more
// deterministic across integer widths than a true logarithm, and
// intentionally discontinuous (§4.5) to resist precise farming. The five
// thresholds and weights are retained verbatim per §9.
func senderWeightTier(score abi.TokenAmount) abi.TokenAmount {
	switch {
	case score.LessThan(big.NewInt(10)):
		return big.NewInt(500)
	case score.LessThan(big.NewInt(100)):
		return big.NewInt(750)
	case score.LessThan(big.NewInt(1000)):
		return big.NewInt(1000)
	case score.LessThan(big.NewInt(10000)):
		return big.NewInt(1500)
	default:
		return big.NewInt(2000)
	}
}

// fixedPointScale is the denominator for the /1000 fixed-point weights
// throughout §4.1 (e.g. weight 0.75 is stored as 750).
var fixedPointScale = big.NewInt(1000)

// decay applies the per-claim multiplicative reduction of §4.1:
// decay(x) = (x * 950) / 1000.
func decay(x abi.TokenAmount) abi.TokenAmount {
	return big.Div(big.Mul(x, big.NewInt(950)), fixedPointScale)
}

// streakBonus implements min(streak*10, 500) from §4.1.
func streakBonus(streak uint32) abi.TokenAmount {
	bonus := big.Mul(big.NewInt(int64(streak)), big.NewInt(10))
	return big.Min2(bonus, big.NewInt(500))
}
