package ubi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ubi-network/ubi-core/actors/abi/big"
)

func TestRecomputeIsMonotoneInEachComponent(t *testing.T) {
	base := newReputation()
	baseScore := recompute(base)

	withVolume := *base
	withVolume.BurnsSentVolume = big.NewInt(10)
	assert.True(t, recompute(&withVolume).GreaterThan(baseScore))

	withBreadth := *base
	withBreadth.UniqueRecipientsCount = 1
	assert.True(t, recompute(&withBreadth).GreaterThan(baseScore))

	withWeighted := *base
	withWeighted.WeightedReceived = big.NewInt(10)
	assert.True(t, recompute(&withWeighted).GreaterThan(baseScore))

	withStreak := *base
	withStreak.ClaimStreak = 5
	assert.True(t, recompute(&withStreak).GreaterThan(baseScore))
}

func TestStreakBonusIsCapped(t *testing.T) {
	assert.True(t, streakBonus(1000).Equals(big.NewInt(500)))
	assert.True(t, streakBonus(49).Equals(big.NewInt(490)))
}

func TestSenderWeightTierBoundaries(t *testing.T) {
	cases := []struct {
		score    int64
		expected int64
	}{
		{0, 500},
		{9, 500},
		{10, 750},
		{99, 750},
		{100, 1000},
		{999, 1000},
		{1000, 1500},
		{9999, 1500},
		{10000, 2000},
		{1_000_000, 2000},
	}
	for _, c := range cases {
		got := senderWeightTier(big.NewInt(c.score))
		assert.Truef(t, got.Equals(big.NewInt(c.expected)), "score %d: want %d got %s", c.score, c.expected, got)
	}
}

func TestDecayIsOverwrittenByRecomputeButCallable(t *testing.T) {
	rep := newReputation()
	rep.Score = big.NewInt(1000)
	rep.BurnsSentVolume = big.NewInt(40)

	applyDecay(rep)
	assert.True(t, rep.Score.Equals(big.NewInt(950)))

	rep.Score = recompute(rep)
	// Recompute overwrites whatever decay left behind; decay has no
	// observable effect on the committed score under this formula (§9).
	assert.True(t, rep.Score.Equals(big.NewInt(40)))
}

func TestUpdateStreakOnClaimGraceWindow(t *testing.T) {
	rep := newReputation()
	updateStreakOnClaim(rep, 0)
	assert.Equal(t, uint32(1), rep.ClaimStreak)

	updateStreakOnClaim(rep, 1) // gap 1
	assert.Equal(t, uint32(2), rep.ClaimStreak)

	updateStreakOnClaim(rep, 3) // gap 2
	assert.Equal(t, uint32(3), rep.ClaimStreak)

	updateStreakOnClaim(rep, 4) // gap 1
	assert.Equal(t, uint32(4), rep.ClaimStreak)

	updateStreakOnClaim(rep, 9) // gap 5 -> reset
	assert.Equal(t, uint32(1), rep.ClaimStreak)
}
