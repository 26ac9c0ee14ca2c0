// Package vault pools stablecoin liquidity for the property contracts.
// Liquidations pay out instantly while the buffer allows it; everything else
// lands in a strictly FIFO queue that only drains front to back.
package vault

// -----------------------------------------------------------------------------
// Buffer Rules
// -----------------------------------------------------------------------------

const (
	// DefaultBufferPercentage is applied at initialize.
	DefaultBufferPercentage uint64 = 15
	// MinBufferPercentage / MaxBufferPercentage bound admin updates.
	MinBufferPercentage uint64 = 10
	MaxBufferPercentage uint64 = 25
)

// -----------------------------------------------------------------------------
// Fulfillment Estimation
// -----------------------------------------------------------------------------

const (
	// SecondsPerMonth is the 30-day month used by the whole suite.
	SecondsPerMonth int64 = 2_592_000
	// FallbackFulfillmentSecs (90 days) applies when no cash flow is reported.
	FallbackFulfillmentSecs int64 = 7_776_000
	// MaxFulfillmentMonths caps the estimate regardless of queue depth.
	MaxFulfillmentMonths int64 = 12
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ConfigKey holds the encoded VaultConfig blob.
	ConfigKey = "cfg"
	// AuthorizedKey holds the encoded list of authorized property contracts.
	AuthorizedKey = "auth"
	// QueueHeadKey / QueueTailKey are the FIFO cursors. Requests live at the
	// ids in between; fulfilled ids are deleted, never compacted.
	QueueHeadKey = "q:head"
	QueueTailKey = "q:tail"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kLiquidationRequest stores encoded LiquidationRequest records by id.
	kLiquidationRequest byte = 0x01
	// kPropertyStats stores per-property liquidation statistics.
	kPropertyStats byte = 0x02
)
