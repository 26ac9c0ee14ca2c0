package vault

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// View responses are JSON written with tinyjson's jwriter: no reflection,
// which is what keeps these usable under a wasm build.

func finishJSON(w *jwriter.Writer) *string {
	buf, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("could not serialize view")
	}
	out := string(buf)
	return &out
}

// GetConfig returns the vault config snapshot.
func GetConfig(payload *string) *string {
	cfg := loadConfig()
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"admin":`)
	w.String(cfg.Admin.String())
	w.RawString(`,"stablecoin":`)
	w.String(cfg.Stablecoin.String())
	w.RawString(`,"total_capacity":`)
	w.Int64(int64(cfg.TotalCapacity))
	w.RawString(`,"available":`)
	w.Int64(int64(cfg.Available))
	w.RawString(`,"buffer_percentage":`)
	w.Uint64(cfg.BufferPercentage)
	w.RawString(`,"buffer_threshold":`)
	w.Int64(int64(bufferThreshold(cfg)))
	w.RawString(`,"controlled_mode":`)
	w.Bool(cfg.ControlledMode)
	w.RawString(`,"emergency_pause":`)
	w.Bool(cfg.EmergencyPause)
	w.RawByte('}')
	return finishJSON(w)
}

// AvailableLiquidity returns the raw base-unit figure as decimal text.
func AvailableLiquidity(payload *string) *string {
	cfg := loadConfig()
	return rwa.Strptr(rwa.FormatAmount(cfg.Available))
}

// TotalCapacity returns the raw base-unit figure as decimal text.
func TotalCapacity(payload *string) *string {
	cfg := loadConfig()
	return rwa.Strptr(rwa.FormatAmount(cfg.TotalCapacity))
}

// IsAuthorized returns "true"/"false" for a property address.
func IsAuthorized(payload *string) *string {
	raw := rwa.UnwrapPayload(payload, "property address required")
	property := rwa.ParseAddressField(raw, "property address")
	return rwa.Strptr(strconv.FormatBool(isAuthorizedProperty(property)))
}

// GetQueueStatus aggregates the live queue between the cursors.
func GetQueueStatus(payload *string) *string {
	cfg := loadConfig()
	count, total := queuedCount()
	status := QueueStatus{
		TotalQueued:    count,
		TotalAmount:    total,
		ControlledMode: cfg.ControlledMode,
		HeadIndex:      rwa.GetCount(QueueHeadKey),
		TailIndex:      rwa.GetCount(QueueTailKey),
	}
	if count > 0 {
		status.EstimatedClearTime = estimateFulfillment(total, rwa.NowUnix())
	}
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"total_queued":`)
	w.Uint64(status.TotalQueued)
	w.RawString(`,"total_amount":`)
	w.Int64(int64(status.TotalAmount))
	w.RawString(`,"controlled_mode":`)
	w.Bool(status.ControlledMode)
	w.RawString(`,"head_index":`)
	w.Uint64(status.HeadIndex)
	w.RawString(`,"tail_index":`)
	w.Uint64(status.TailIndex)
	w.RawString(`,"estimated_clear_time":`)
	w.Int64(status.EstimatedClearTime)
	w.RawByte('}')
	return finishJSON(w)
}

// QueueObligations returns the summed live queue amount as decimal text.
func QueueObligations(payload *string) *string {
	loadConfig()
	return rwa.Strptr(rwa.FormatAmount(calculateQueueObligations()))
}

// GetPropertyStats returns per-property liquidation statistics.
// Payload: "property"
func GetPropertyStats(payload *string) *string {
	loadConfig()
	raw := rwa.UnwrapPayload(payload, "property address required")
	property := rwa.ParseAddressField(raw, "property address")
	if !isAuthorizedProperty(property) {
		sdk.Abort("Property not authorized")
	}
	stats := loadStats(property)
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"property":`)
	w.String(stats.Property.String())
	w.RawString(`,"total_liquidated":`)
	w.Int64(int64(stats.TotalLiquidated))
	w.RawString(`,"last_liquidation":`)
	w.Int64(stats.LastLiquidation)
	w.RawString(`,"active_users":`)
	w.Uint64(stats.ActiveUsers)
	w.RawString(`,"cash_flow_monthly":`)
	w.Int64(int64(stats.CashFlowMonthly))
	w.RawByte('}')
	return finishJSON(w)
}
