package ubi

import (
	"sort"

	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// Batch is a single time-bounded allotment of tokens (§3). A batch is live
// at height h iff ExpiresAt > h.
type Batch struct {
	Amount    abi.TokenAmount
	ExpiresAt abi.Height
}

// Reputation is the per-account multi-factor score record (§3).
type Reputation struct {
	BurnsSentCount        uint64
	BurnsSentVolume       abi.TokenAmount
	BurnsReceivedCount    uint64
	BurnsReceivedVolume   abi.TokenAmount
	FirstActivity         abi.Height
	WeightedReceived      abi.TokenAmount
	UniqueRecipientsCount uint32
	ClaimStreak           uint32
	LastClaimPeriod       uint64
	Score                 abi.TokenAmount
}

func newReputation() *Reputation {
	return &Reputation{
		BurnsSentVolume:     big.Zero(),
		BurnsReceivedVolume: big.Zero(),
		WeightedReceived:    big.Zero(),
		Score:               big.Zero(),
	}
}

// State is the whole UBI core store (§3): the batch ledger, last-claim
// heights, reputation records, the unique-recipient relation, and the
// running total supply. Persistence/merklization of this structure is the
// host's concern (§1); State only holds it in memory and mutates it.
type State struct {
	Params Params

	ledger           map[abi.Account][]Batch
	lastClaim        map[abi.Account]abi.Height
	reputation       map[abi.Account]*Reputation
	uniqueRecipients map[abi.Account]map[abi.Account]struct{}
	totalSupply      abi.TokenAmount
}

// NewState constructs an empty store under the given parameters.
func NewState(params Params) (*State, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &State{
		Params:           params,
		ledger:           make(map[abi.Account][]Batch),
		lastClaim:        make(map[abi.Account]abi.Height),
		reputation:       make(map[abi.Account]*Reputation),
		uniqueRecipients: make(map[abi.Account]map[abi.Account]struct{}),
		totalSupply:      big.Zero(),
	}, nil
}

// TotalSupply returns the current running total supply.
func (s *State) TotalSupply() abi.TokenAmount { return s.totalSupply }

func (s *State) repFor(acct abi.Account) *Reputation {
	rep, ok := s.reputation[acct]
	if !ok {
		rep = newReputation()
		s.reputation[acct] = rep
	}
	return rep
}

// checkpoint captures enough of the mutable store to restore it verbatim on
// handler failure (§5: "no persistent store change from that handler is
// visible"). Batches and reputation are value/pointer-replaced wholesale
// rather than diffed, which is cheap given the bounded (≤10 batches,
// O(1) reputation record) size of any single account's state. A checkpoint
// spans every account a handler might touch (Burn touches both sender and
// recipient) plus the scalar totalSupply.
type checkpoint struct {
	totalSupply abi.TokenAmount
	accounts    map[abi.Account]accountSnapshot
}

type accountSnapshot struct {
	ledger       []Batch
	ledgerOK     bool
	lastClaim    abi.Height
	lastClaimOK  bool
	reputation   Reputation
	reputationOK bool
}

// newCheckpoint records the pre-mutation state of every given account.
func (s *State) newCheckpoint(accts ...abi.Account) checkpoint {
	cp := checkpoint{totalSupply: s.totalSupply, accounts: make(map[abi.Account]accountSnapshot, len(accts))}
	for _, acct := range accts {
		var snap accountSnapshot
		if b, ok := s.ledger[acct]; ok {
			snap.ledger = append([]Batch(nil), b...)
			snap.ledgerOK = true
		}
		if h, ok := s.lastClaim[acct]; ok {
			snap.lastClaim = h
			snap.lastClaimOK = true
		}
		if rep, ok := s.reputation[acct]; ok {
			snap.reputation = *rep
			snap.reputationOK = true
		}
		cp.accounts[acct] = snap
	}
	return cp
}

// rollback restores every account recorded in the checkpoint. Callers are
// responsible for undoing any other side effect taken after the checkpoint
// (e.g. a UniqueRecipients insertion) before calling this.
func (s *State) rollback(cp checkpoint) {
	s.totalSupply = cp.totalSupply
	for acct, snap := range cp.accounts {
		if snap.ledgerOK {
			s.ledger[acct] = snap.ledger
		} else {
			delete(s.ledger, acct)
		}
		if snap.lastClaimOK {
			s.lastClaim[acct] = snap.lastClaim
		} else {
			delete(s.lastClaim, acct)
		}
		if snap.reputationOK {
			rep := snap.reputation
			s.reputation[acct] = &rep
		} else {
			delete(s.reputation, acct)
		}
	}
}

// sortBatches keeps a ledger's entries ordered by ascending ExpiresAt, the
// order §4.2/§5 require FIFO consumption and deterministic iteration to use.
func sortBatches(batches []Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].ExpiresAt < batches[j].ExpiresAt
	})
}
