package ubi

import (
	"github.com/pkg/errors"

	"github.com/ubi-network/ubi-core/actors/abi"
	"github.com/ubi-network/ubi-core/actors/abi/big"
)

// liveBalance sums the amount of every batch live at height h (§4.2). Pure
// read, no mutation.
func (s *State) liveBalance(acct abi.Account, h abi.Height) abi.TokenAmount {
	total := big.Zero()
	for _, b := range s.ledger[acct] {
		if b.ExpiresAt > h {
			total = big.Add(total, b.Amount)
		}
	}
	return total
}

// totalBalanceIncludingExpired sums every batch regardless of liveness,
// i.e. the total_balance query (§6) before any reap has run.
func (s *State) totalBalanceIncludingExpired(acct abi.Account) abi.TokenAmount {
	total := big.Zero()
	for _, b := range s.ledger[acct] {
		total = big.Add(total, b.Amount)
	}
	return total
}

// reap removes every batch with ExpiresAt <= h and returns the total amount
// removed (§4.2). Must be called before any operation that trusts liveness
// implicitly (§5: "Must be called before any operation that trusts
// 'liveness' implicitly").
func (s *State) reap(acct abi.Account, h abi.Height) abi.TokenAmount {
	batches := s.ledger[acct]
	if len(batches) == 0 {
		return big.Zero()
	}
	removed := big.Zero()
	kept := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if b.ExpiresAt <= h {
			removed = big.Add(removed, b.Amount)
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) == 0 {
		delete(s.ledger, acct)
	} else {
		s.ledger[acct] = kept
	}
	return removed
}

// appendBatch merges into an existing same-expiry batch or appends a new
// entry, failing TooManyBatches if the cap would be exceeded without a merge
// (§4.2, §3: "at most one batch per distinct expires_at per account").
func (s *State) appendBatch(acct abi.Account, amount abi.TokenAmount, expiresAt abi.Height) error {
	if amount.IsZero() {
		return nil
	}
	batches := s.ledger[acct]
	for i := range batches {
		if batches[i].ExpiresAt == expiresAt {
			batches[i].Amount = big.Add(batches[i].Amount, amount)
			s.ledger[acct] = batches
			return nil
		}
	}
	if len(batches) >= MaxBatches {
		return errors.Wrapf(ErrTooManyBatches, "account already holds %d batches", len(batches))
	}
	batches = append(batches, Batch{Amount: amount, ExpiresAt: expiresAt})
	sortBatches(batches)
	s.ledger[acct] = batches
	return nil
}

// consumeFIFO deducts amount from acct's batches in ascending ExpiresAt
// order (earliest-expiring first), skipping any batch that is already
// expired as of h (defensive: reap should have removed those). Batches that
// reach zero are dropped. Fails InsufficientBalance with no state mutation
// if the live balance is less than amount (§4.2).
func (s *State) consumeFIFO(acct abi.Account, amount abi.TokenAmount, h abi.Height) error {
	if s.liveBalance(acct, h).LessThan(amount) {
		return errors.Wrap(ErrInsufficientBalance, "consumeFIFO")
	}

	batches := s.ledger[acct]
	remaining := amount
	kept := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if remaining.IsZero() || b.ExpiresAt <= h {
			kept = append(kept, b)
			continue
		}
		if b.Amount.LessThanEqual(remaining) {
			remaining = big.Sub(remaining, b.Amount)
			continue // fully consumed, dropped
		}
		kept = append(kept, Batch{Amount: big.Sub(b.Amount, remaining), ExpiresAt: b.ExpiresAt})
		remaining = big.Zero()
	}

	if len(kept) == 0 {
		delete(s.ledger, acct)
	} else {
		s.ledger[acct] = kept
	}
	return nil
}
