package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"verse_contracts/rwa"
)

func defaultRoi() *RoiConfig {
	return &RoiConfig{
		AnnualRateBps:       DefaultAnnualRateBps,
		CompoundingBonusBps: DefaultCompoundingBonusBps,
		LoyaltyBonusBps:     DefaultLoyaltyBonusBps,
	}
}

func TestYieldFirstEpoch(t *testing.T) {
	// 10000.0 principal at 800 bps: 800/12 truncates to 66 monthly bps.
	pos := &UserPosition{Principal: 100_000_000_000, Compounding: true}
	base, compounding, loyalty := calculateYield(pos, defaultRoi())
	assert.Equal(t, rwa.Amount(660_000_000), base)
	assert.Equal(t, rwa.Amount(160_000_000), compounding)
	assert.Equal(t, rwa.Amount(0), loyalty)
}

func TestYieldSecondEpochAfterCompounding(t *testing.T) {
	// Principal after one compounded epoch, loyalty tier 1.
	pos := &UserPosition{Principal: 100_820_000_000, Compounding: true, LoyaltyTier: 1}
	base, compounding, loyalty := calculateYield(pos, defaultRoi())
	assert.Equal(t, rwa.Amount(665_412_000), base)
	assert.Equal(t, rwa.Amount(161_312_000), compounding)
	assert.Equal(t, rwa.Amount(20_164_000), loyalty)
}

func TestYieldWithoutCompoundingSkipsBonus(t *testing.T) {
	pos := &UserPosition{Principal: 100_000_000_000, Compounding: false, LoyaltyTier: 2}
	base, compounding, loyalty := calculateYield(pos, defaultRoi())
	assert.Equal(t, rwa.Amount(660_000_000), base)
	assert.Equal(t, rwa.Amount(0), compounding)
	// 2 * 25 / 12 truncates to 4 monthly bps.
	assert.Equal(t, rwa.Amount(40_000_000), loyalty)
}

func TestLoyaltyRateTruncatesPerTier(t *testing.T) {
	roi := defaultRoi()
	// tier * bonus is divided by 12 after the multiply, so tier 1 yields
	// 25/12 = 2 monthly bps, not zero.
	pos := &UserPosition{Principal: 100_000_000_000, LoyaltyTier: 1}
	_, _, loyalty := calculateYield(pos, roi)
	assert.Equal(t, rwa.Amount(20_000_000), loyalty)
}

func TestPreviewDayArithmetic(t *testing.T) {
	start := int64(1_700_000_000)
	pos := &UserPosition{Principal: 100_000_000_000, EpochStart: start}
	roi := defaultRoi()

	p := previewYield(pos, roi, start+5*DaySeconds)
	assert.Equal(t, int64(5), p.DaysElapsed)
	assert.Equal(t, int64(25), p.DaysRemaining)

	// Clock skew before the epoch start clamps to zero.
	p = previewYield(pos, roi, start-10)
	assert.Equal(t, int64(0), p.DaysElapsed)
	assert.Equal(t, int64(30), p.DaysRemaining)

	// Deep into the grace period the countdown bottoms out.
	p = previewYield(pos, roi, start+45*DaySeconds)
	assert.Equal(t, int64(45), p.DaysElapsed)
	assert.Equal(t, int64(0), p.DaysRemaining)
}

func TestEpochGates(t *testing.T) {
	start := int64(1_700_000_000)
	pos := &UserPosition{EpochStart: start}
	end := start + EpochDuration

	assert.False(t, epochComplete(pos, end-1))
	assert.True(t, epochComplete(pos, end))

	assert.False(t, inGracePeriod(pos, end-1))
	assert.True(t, inGracePeriod(pos, end))
	assert.True(t, inGracePeriod(pos, end+GracePeriod-1))
	assert.False(t, inGracePeriod(pos, end+GracePeriod))

	assert.False(t, adminRolloverAllowed(pos, end+GracePeriod-1))
	assert.True(t, adminRolloverAllowed(pos, end+GracePeriod))
}
