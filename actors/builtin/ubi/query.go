package ubi

import (
	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// Queries groups the pure, read-only accessors §6 exposes to a host. None
// of these mutate State; callers supply H_now themselves.
type Queries struct{ s *State }

// NewQueries binds a read-only query surface to a store.
func NewQueries(s *State) Queries { return Queries{s: s} }

// SpendableBalance returns the sum of amounts in batches live at h.
func (q Queries) SpendableBalance(acct abi.Account, h abi.Height) abi.TokenAmount {
	return q.s.liveBalance(acct, h)
}

// TotalBalance returns the sum including not-yet-reaped expired batches.
func (q Queries) TotalBalance(acct abi.Account) abi.TokenAmount {
	return q.s.totalBalanceIncludingExpired(acct)
}

// CanClaim reports whether acct has at least one eligible period at h.
func (q Queries) CanClaim(acct abi.Account, h abi.Height) bool {
	return periodsSinceLastClaim(q.s, acct, h) > 0
}

// ClaimablePeriods returns the backlog-capped number of periods acct could
// claim right now.
func (q Queries) ClaimablePeriods(acct abi.Account, h abi.Height) uint32 {
	periods := periodsSinceLastClaim(q.s, acct, h)
	if periods > uint64(q.s.Params.MaxBacklogPeriods) {
		periods = uint64(q.s.Params.MaxBacklogPeriods)
	}
	return uint32(periods)
}

// ClaimableAmount returns UbiAmount * ClaimablePeriods(acct, h).
func (q Queries) ClaimableAmount(acct abi.Account, h abi.Height) abi.TokenAmount {
	periods := q.ClaimablePeriods(acct, h)
	return big.Mul(q.s.Params.UbiAmount, big.NewIntUnsigned(uint64(periods)))
}

// ReputationScore returns the last value Recompute produced for acct (the
// score is cached, not recomputed on read — §3).
func (q Queries) ReputationScore(acct abi.Account) abi.TokenAmount {
	rep, ok := q.s.reputation[acct]
	if !ok {
		return big.Zero()
	}
	return rep.Score
}

// HasBurnedTo reports whether from has ever burned to to.
func (q Queries) HasBurnedTo(from, to abi.Account) bool {
	return q.s.hasUniqueRecipient(from, to)
}

// TotalSupply returns the current running total supply.
func (q Queries) TotalSupply() abi.TokenAmount {
	return q.s.TotalSupply()
}
