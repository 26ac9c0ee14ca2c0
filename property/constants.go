// Package property manages tokenized positions in a single real-estate
// offering: compliance-gated purchases, a 30-day epoch state machine with a
// 24h grace period, integer basis-point yield and vault-routed liquidation.
package property

// -----------------------------------------------------------------------------
// Epoch State Machine
// -----------------------------------------------------------------------------

const (
	// EpochDuration is one 30-day yield period.
	EpochDuration int64 = 2_592_000
	// GracePeriod is the 24h window after an epoch where only the user may act.
	GracePeriod int64 = 86_400
	// EpochDays / DaySeconds feed the preview's day arithmetic.
	EpochDays  int64 = 30
	DaySeconds int64 = 86_400
)

// -----------------------------------------------------------------------------
// Yield Rules
// -----------------------------------------------------------------------------

const (
	// MaxLoyaltyTier caps the consecutive-rollover bonus multiplier.
	MaxLoyaltyTier uint64 = 4
	// BpsDenominator converts basis points into fractions; every division
	// in the yield math truncates on purpose.
	BpsDenominator int64 = 10_000
	// MonthsPerYear splits annual bps into the monthly rate (truncating).
	MonthsPerYear uint64 = 12
	// MaxAnnualRateBps bounds admin ROI updates.
	MaxAnnualRateBps uint64 = 2000
	// MaxDecimals matches the chain's asset precision.
	MaxDecimals uint64 = 7
)

// -----------------------------------------------------------------------------
// ROI Defaults
// -----------------------------------------------------------------------------

const (
	DefaultAnnualRateBps       uint64 = 800
	DefaultCompoundingBonusBps uint64 = 200
	DefaultLoyaltyBonusBps     uint64 = 25
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ConfigKey holds the encoded PropertyConfig blob.
	ConfigKey = "cfg"
	// RoiKey holds the encoded RoiConfig blob.
	RoiKey = "roi"
	// TotalActiveKey counts tokens locked in open positions.
	TotalActiveKey = "active"
	// HoldersKey counts open positions (reported to the vault as active users).
	HoldersKey = "holders"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kUserPosition stores encoded UserPosition records per address.
	kUserPosition byte = 0x01
)
