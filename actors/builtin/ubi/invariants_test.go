package ubi

import (
	"errors"
	"math/rand"
	"testing"

	address "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/require"

	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

func errorIsOneOf(err error, candidates ...error) bool {
	for _, c := range candidates {
		if errors.Is(err, c) {
			return true
		}
	}
	return false
}

// checkInvariants asserts §8 invariant 1 and 5: TotalSupply tracks every
// minted-and-not-yet-removed batch, live or expired-but-not-yet-reaped —
// reaping only happens lazily, as a side effect of a Claim/Burn on that
// specific account, so an account untouched since one of its batches expired
// still counts toward TotalSupply until its next handler call sweeps it.
// Per-account, spendable (live) balance can never exceed the total.
func checkInvariants(t *testing.T, s *State, h abi.Height, accounts []abi.Account) {
	t.Helper()
	sum := big.Zero()
	q := NewQueries(s)
	for _, acct := range accounts {
		live := q.SpendableBalance(acct, h)
		total := q.TotalBalance(acct)
		require.True(t, total.GreaterThanEqual(live))
		sum = big.Add(sum, total)
	}
	require.True(t, s.TotalSupply().Equals(sum), "height %d: total supply %s != sum of account totals %s", h, s.TotalSupply(), sum)
}

// TestInvariantsHoldAcrossRandomSequence drives a long deterministic
// pseudo-random sequence of Claim/Burn messages across a small account set
// and checks the core invariants after every committed operation — a
// property-style check in the spirit of the teacher's own extensive
// scenario suites (miner_test.go), scaled down to this core's surface.
func TestInvariantsHoldAcrossRandomSequence(t *testing.T) {
	s := newTestState(t)
	actor := Actor{}
	rng := rand.New(rand.NewSource(42))

	accounts := make([]abi.Account, 6)
	for i := range accounts {
		a, err := address.NewIDAddress(uint64(1000 + i))
		require.NoError(t, err)
		accounts[i] = a
	}

	var h abi.Height
	for step := 0; step < 500; step++ {
		h += abi.Height(rng.Intn(40))
		from := accounts[rng.Intn(len(accounts))]

		if rng.Intn(2) == 0 {
			_, err := actor.Claim(s, from, h)
			if err != nil {
				require.ErrorIs(t, err, ErrNothingToClaim)
			}
		} else {
			to := accounts[rng.Intn(len(accounts))]
			amount := big.NewInt(int64(rng.Intn(250)))
			_, err := actor.Burn(s, from, to, amount, h)
			if err != nil {
				isKnown := errorIsOneOf(err, ErrCannotBurnToSelf, ErrAmountMustBePositive, ErrInsufficientBalance)
				require.True(t, isKnown, "unexpected burn error: %v", err)
			}
		}

		checkInvariants(t, s, h, accounts)
	}
}
