package property

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// PropertyMetadata is the immutable offering description.
type PropertyMetadata struct {
	Name        string
	Symbol      string
	Decimals    uint64
	TotalSupply uint64
	TokenPrice  rwa.Amount
}

// PropertyConfig glues the metadata to its collaborators.
type PropertyConfig struct {
	Admin      sdk.Address
	Vault      sdk.Address
	Kyc        sdk.Address
	Stablecoin sdk.Asset
	Meta       PropertyMetadata
}

// RoiConfig carries the basis-point yield knobs plus the advisory cash flow
// figure forwarded to the vault.
type RoiConfig struct {
	AnnualRateBps       uint64
	CompoundingBonusBps uint64
	LoyaltyBonusBps     uint64
	CashFlowMonthly     rwa.Amount
}

// UserPosition is one user's stake; exactly one open position per address.
type UserPosition struct {
	User                 sdk.Address
	Tokens               uint64
	InitialInvestment    rwa.Amount
	Principal            rwa.Amount
	EpochStart           int64
	Compounding          bool
	ConsecutiveRollovers uint64
	LoyaltyTier          uint64
	TotalYieldEarned     rwa.Amount
}

// YieldPreview breaks one epoch's yield into its components.
type YieldPreview struct {
	Base             rwa.Amount
	CompoundingBonus rwa.Amount
	LoyaltyBonus     rwa.Amount
	Total            rwa.Amount
	DaysElapsed      int64
	DaysRemaining    int64
}
