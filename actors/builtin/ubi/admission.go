package ubi

import "github.com/ubi-network/ubi-core/actors/abi"

// Admission error codes (§6), distinct from the handler sentinel errors:
// admission is a cheap prediction, not a commitment (§7).
const (
	AdmissionCodeClaimNotYetEligible = 1
	AdmissionCodeSelfBurn            = 2
	AdmissionCodeZeroAmount          = 3
	AdmissionCodeInsufficientBalance = 4
)

// defaultLongevity is the number of blocks an admitted message remains
// valid for pool purposes (§4.6: "longevity is small (5 blocks)").
const defaultLongevity = 5

// AdmissionTag is the abstract de-duplication key an admitted message
// carries (§9 Open Question). It is a small comparable struct so a host can
// use it directly as a map key or hash it, without this core depending on
// any host-specific tagging primitive.
type AdmissionTag struct {
	Kind    string
	Account abi.Account
	Period  uint64
}

// AdmissionResult is either a rejection with a numeric code or an
// acceptance carrying a de-duplication tag and longevity.
type AdmissionResult struct {
	Accepted  bool
	Code      int
	Tag       AdmissionTag
	Longevity uint32
}

func rejected(code int) AdmissionResult {
	return AdmissionResult{Accepted: false, Code: code}
}

func accepted(tag AdmissionTag) AdmissionResult {
	return AdmissionResult{Accepted: true, Tag: tag, Longevity: defaultLongevity}
}

// CheckClaim is the advisory admission predicate for Claim (§4.6). It
// rejects with code 1 unless the account has at least one eligible period
// at the host's current height; the authoritative check still happens at
// commit time in Actor.Claim.
func CheckClaim(s *State, acct abi.Account, hNow abi.Height) AdmissionResult {
	if periodsSinceLastClaim(s, acct, hNow) == 0 {
		return rejected(AdmissionCodeClaimNotYetEligible)
	}
	period := uint64(hNow) / uint64(s.Params.ClaimPeriodBlocks)
	return accepted(AdmissionTag{Kind: "UbiClaim", Account: acct, Period: period})
}

// CheckBurn is the advisory admission predicate for Burn (§4.6).
func CheckBurn(s *State, from, to abi.Account, amount abi.TokenAmount, hNow abi.Height) AdmissionResult {
	if from == to {
		return rejected(AdmissionCodeSelfBurn)
	}
	if amount.IsZero() {
		return rejected(AdmissionCodeZeroAmount)
	}
	if s.liveBalance(from, hNow).LessThan(amount) {
		return rejected(AdmissionCodeInsufficientBalance)
	}
	return accepted(AdmissionTag{Kind: "UbiBurn", Account: from, Period: uint64(hNow)})
}
