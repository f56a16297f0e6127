package ubi

import (
	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// recompute implements §4.5:
//
//	Recompute(rep) = unique_recipients_count*50 + burns_sent_volume
//	               + weighted_received*2 + min(claim_streak*10, 500)
//
// All component operations are saturating (actors/abi/big). Recompute is
// not a pure function of storage in the wider sense (last_claim_period
// affects only the *next* update's streak), but given a Reputation value it
// is a pure function of that value's current fields.
func recompute(rep *Reputation) abi.TokenAmount {
	breadth := big.Mul(big.NewInt(int64(rep.UniqueRecipientsCount)), big.NewInt(50))
	weighted := big.Mul(rep.WeightedReceived, big.NewInt(2))
	score := big.Add(breadth, rep.BurnsSentVolume)
	score = big.Add(score, weighted)
	score = big.Add(score, streakBonus(rep.ClaimStreak))
	return score
}

// applyDecay implements the §4.1/§9 decay step. Per §9's explicit
// instruction, this is preserved even though its effect on the committed
// score is immediately overwritten by recompute in the same call: the
// formula does not (yet) carry any component that decay alone would affect,
// so this is observably a no-op, not a bug — do not remove it.
func applyDecay(rep *Reputation) {
	rep.Score = decay(rep.Score)
}

// updateStreakOnClaim implements the §4.3 streak/grace rule: a gap (in
// periods) of at most StreakGracePeriods+1 (i.e. ≤ 3) increments the streak;
// a larger gap resets it to 1. A never-claimed account has
// LastClaimPeriod==ClaimStreak==0, so its first claim always lands with
// gap==currentPeriod: small currentPeriods increment 0→1 through the grace
// branch, large ones reset to 1 through the else branch — either way the
// first claim starts the streak at exactly 1, with no special case needed.
func updateStreakOnClaim(rep *Reputation, currentPeriod uint64) {
	gap := currentPeriod - rep.LastClaimPeriod
	if gap <= StreakGracePeriods+1 {
		rep.ClaimStreak++
	} else {
		rep.ClaimStreak = 1
	}
	rep.LastClaimPeriod = currentPeriod
}

// noteFirstActivity sets FirstActivity the first time an account becomes
// party to any claim or burn (§3: "first_activity = 0 iff the account has
// never claimed nor been party to a burn").
func noteFirstActivity(rep *Reputation, h abi.Height) {
	if rep.FirstActivity == 0 {
		rep.FirstActivity = h
	}
}

// hasUniqueRecipient reports whether from has already burned to to.
func (s *State) hasUniqueRecipient(from, to abi.Account) bool {
	set, ok := s.uniqueRecipients[from]
	if !ok {
		return false
	}
	_, ok = set[to]
	return ok
}

// recordUniqueRecipient inserts the (from, to) pair, returning whether it
// was newly inserted. When the sender's tracked set has already reached
// MaxUniqueRecipients, new pairs are still recorded for has_burned_to
// correctness but no longer grow unique_recipients_count (§3: "the tracking
// set may refuse to grow beyond this, capping the breadth bonus").
func (s *State) recordUniqueRecipient(from, to abi.Account) (isNew bool, countsTowardBreadth bool) {
	set, ok := s.uniqueRecipients[from]
	if !ok {
		set = make(map[abi.Account]struct{})
		s.uniqueRecipients[from] = set
	}
	if _, exists := set[to]; exists {
		return false, false
	}
	countsTowardBreadth = len(set) < MaxUniqueRecipients
	set[to] = struct{}{}
	return true, countsTowardBreadth
}

