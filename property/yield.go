package property

import (
	"verse_contracts/rwa"
)

// calculateYield prices one full epoch on the current principal. All divisions
// truncate, and they truncate in exactly this order: the bps rate is divided
// by 12 first, then applied to the principal.
func calculateYield(pos *UserPosition, roi *RoiConfig) (base, compounding, loyalty rwa.Amount) {
	monthlyRate := roi.AnnualRateBps / MonthsPerYear
	base = rwa.MulChecked(pos.Principal, rwa.Amount(monthlyRate), "base yield") / rwa.Amount(BpsDenominator)

	if pos.Compounding {
		compoundingRate := roi.CompoundingBonusBps / MonthsPerYear
		compounding = rwa.MulChecked(pos.Principal, rwa.Amount(compoundingRate), "compounding bonus") / rwa.Amount(BpsDenominator)
	}

	loyaltyRate := pos.LoyaltyTier * roi.LoyaltyBonusBps / MonthsPerYear
	loyalty = rwa.MulChecked(pos.Principal, rwa.Amount(loyaltyRate), "loyalty bonus") / rwa.Amount(BpsDenominator)
	return base, compounding, loyalty
}

// previewYield bundles the components plus the epoch's day arithmetic.
func previewYield(pos *UserPosition, roi *RoiConfig, now int64) YieldPreview {
	base, compounding, loyalty := calculateYield(pos, roi)
	total := rwa.AddChecked(rwa.AddChecked(base, compounding, "yield total"), loyalty, "yield total")

	daysElapsed := (now - pos.EpochStart) / DaySeconds
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	daysRemaining := EpochDays - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	return YieldPreview{
		Base:             base,
		CompoundingBonus: compounding,
		LoyaltyBonus:     loyalty,
		Total:            total,
		DaysElapsed:      daysElapsed,
		DaysRemaining:    daysRemaining,
	}
}

// epochComplete is the gate for user rollover and liquidation.
func epochComplete(pos *UserPosition, now int64) bool {
	return now >= pos.EpochStart+EpochDuration
}

// inGracePeriod is the 24h window where only the user may act.
func inGracePeriod(pos *UserPosition, now int64) bool {
	epochEnd := pos.EpochStart + EpochDuration
	return now >= epochEnd && now < epochEnd+GracePeriod
}

// adminRolloverAllowed opens once the grace period fully elapsed.
func adminRolloverAllowed(pos *UserPosition, now int64) bool {
	return now >= pos.EpochStart+EpochDuration+GracePeriod
}
