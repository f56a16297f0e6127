package ubi

import (
	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// Actor groups the two message handlers the UBI core exposes (§2, §4.3,
// §4.4). It holds no state of its own — every method takes the State to
// mutate and the host-supplied height explicitly, keeping each handler a
// pure function of (store_before, H_now, message) as §5 requires.
type Actor struct{}

// Claim implements the Claim Engine (§4.3). It mints UbiAmount for every
// eligible period since the account's last claim (capped at
// MaxBacklogPeriods), sweeps any expired batches first, and drives the
// account's streak/decay/score update.
func (Actor) Claim(s *State, acct abi.Account, hNow abi.Height) ([]Event, error) {
	periodsSince := periodsSinceLastClaim(s, acct, hNow)
	if periodsSince == 0 {
		return nil, wrapf(ErrNothingToClaim, "account %s has no eligible claim periods at height %d", acct, hNow)
	}

	cp := s.newCheckpoint(acct)
	var events []Event

	if expired := s.reap(acct, hNow); !expired.IsZero() {
		s.totalSupply = big.Sub(s.totalSupply, expired)
		events = append(events, Expired{Account: acct, Amount: expired})
	}

	backlog := periodsSince
	if backlog > uint64(s.Params.MaxBacklogPeriods) {
		backlog = uint64(s.Params.MaxBacklogPeriods)
	}
	mint := big.Mul(s.Params.UbiAmount, big.NewIntUnsigned(backlog))

	expiresAt := hNow + abi.Height(s.Params.ExpirationBlocks)
	if err := s.appendBatch(acct, mint, expiresAt); err != nil {
		s.rollback(cp)
		return nil, wrapf(err, "account %s", acct)
	}

	s.lastClaim[acct] = hNow
	s.totalSupply = big.Add(s.totalSupply, mint)

	rep := s.repFor(acct)
	noteFirstActivity(rep, hNow)
	applyDecay(rep)
	currentPeriod := uint64(hNow) / uint64(s.Params.ClaimPeriodBlocks)
	updateStreakOnClaim(rep, currentPeriod)
	rep.Score = recompute(rep)

	events = append(events, Claimed{Account: acct, Amount: mint, Periods: uint32(backlog), ExpiresAt: expiresAt})
	return events, nil
}

// periodsSinceLastClaim computes the eligible-periods count of §4.3 step 1:
// 1 if the account has never claimed, otherwise the saturating integer
// division (H_now - LastClaim)/ClaimPeriodBlocks.
func periodsSinceLastClaim(s *State, acct abi.Account, hNow abi.Height) uint64 {
	last, ok := s.lastClaim[acct]
	if !ok {
		return 1
	}
	if hNow <= last {
		return 0
	}
	return uint64(hNow-last) / uint64(s.Params.ClaimPeriodBlocks)
}

// Burn implements the Burn Engine (§4.4). It validates sender/recipient/
// amount before any mutation, sweeps the sender's expired batches, consumes
// FIFO from the sender's live batches, and updates both parties' reputation
// — the sender's weight tier is read before this burn's own updates apply.
func (Actor) Burn(s *State, from, to abi.Account, amount abi.TokenAmount, hNow abi.Height) ([]Event, error) {
	if from == to {
		return nil, newActorError(classify(ErrCannotBurnToSelf), ErrCannotBurnToSelf)
	}
	if amount.IsZero() {
		return nil, newActorError(classify(ErrAmountMustBePositive), ErrAmountMustBePositive)
	}

	cp := s.newCheckpoint(from, to)
	var events []Event

	if expired := s.reap(from, hNow); !expired.IsZero() {
		s.totalSupply = big.Sub(s.totalSupply, expired)
		events = append(events, Expired{Account: from, Amount: expired})
	}

	if err := s.consumeFIFO(from, amount, hNow); err != nil {
		s.rollback(cp)
		return nil, wrapf(err, "burning from %s", from)
	}
	s.totalSupply = big.Sub(s.totalSupply, amount)

	// Sender's weight reflects standing *into* this burn, not including it
	// (§4.4 "Ordering requirement").
	senderScore := s.repFor(from).Score
	weight := senderWeightTier(senderScore)
	weighted := big.Div(big.Mul(amount, weight), fixedPointScale)

	isNew, countsTowardBreadth := s.recordUniqueRecipient(from, to)

	fromRep := s.repFor(from)
	fromRep.BurnsSentCount++
	fromRep.BurnsSentVolume = big.Add(fromRep.BurnsSentVolume, amount)
	if isNew && countsTowardBreadth {
		fromRep.UniqueRecipientsCount++
	}
	noteFirstActivity(fromRep, hNow)
	fromRep.Score = recompute(fromRep)

	toRep := s.repFor(to)
	toRep.BurnsReceivedCount++
	toRep.BurnsReceivedVolume = big.Add(toRep.BurnsReceivedVolume, amount)
	toRep.WeightedReceived = big.Add(toRep.WeightedReceived, weighted)
	noteFirstActivity(toRep, hNow)
	toRep.Score = recompute(toRep)

	events = append(events, Burned{From: from, To: to, Amount: amount})
	return events, nil
}
