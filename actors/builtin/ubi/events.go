package ubi

import "github.com/ubi-network/ubi-core/actors/abi"

// Event is the common marker for the ordered event list a handler returns
// alongside its mutated store (§2, §6). Events carry enough data for an
// external indexer to reconstruct balance and reputation deltas without
// re-reading state.
type Event interface {
	isEvent()
}

// Claimed is emitted once per successful Claim (§4.3).
type Claimed struct {
	Account   abi.Account
	Amount    abi.TokenAmount
	Periods   uint32
	ExpiresAt abi.Height
}

// Burned is emitted once per successful Burn (§4.4).
type Burned struct {
	From   abi.Account
	To     abi.Account
	Amount abi.TokenAmount
}

// Expired is emitted whenever a reap sweeps a nonzero amount off an
// account's ledger, ahead of the Claimed or Burned event for the same call
// (§4.3 step 4, §4.4 step 1).
type Expired struct {
	Account abi.Account
	Amount  abi.TokenAmount
}

func (Claimed) isEvent() {}
func (Burned) isEvent()  {}
func (Expired) isEvent() {}
