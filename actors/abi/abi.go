// Package abi defines the scalar and identifier types shared by every layer
// of the UBI core, mirroring the role the teacher's own actors/abi package
// plays for specs-actors: a small, dependency-light vocabulary the rest of
// the tree builds on.
package abi

import (
	address "github.com/filecoin-project/go-address"

	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// Account is an opaque, equality- and hash-comparable party identifier.
// go-address's Address is a single comparable string field under the hood,
// so it can be used directly as a map key.
type Account = address.Address

// Height is the chain height supplied by the host on every call. It is
// monotonically non-decreasing across invocations (§5).
type Height uint32

// Period is a derived claim-period index (Height / ClaimPeriodBlocks).
type Period uint64

// TokenAmount is the saturating u128 balance/counter type used throughout.
type TokenAmount = big.Int

// NewTokenAmount constructs a TokenAmount from a non-negative int64.
func NewTokenAmount(n int64) TokenAmount {
	return big.NewInt(n)
}
