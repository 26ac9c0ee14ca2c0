package vault

import (
	"fmt"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// emitInitialized marks the vault as live with its starting buffer.
func emitInitialized(admin string, bufferPct uint64) {
	sdk.Log(fmt.Sprintf("vi|adm:%s|bp:%d", admin, bufferPct))
}

// emitVaultFunded reports fresh capacity so dashboards can track fill level.
func emitVaultFunded(by string, amount rwa.Amount, totalCapacity rwa.Amount) {
	sdk.Log(fmt.Sprintf("vf|by:%s|am:%s|cap:%s", by, rwa.FormatAmount(amount), rwa.FormatAmount(totalCapacity)))
}

// emitPropertyAuthorized pings once per newly admitted property contract.
func emitPropertyAuthorized(property string) {
	sdk.Log(fmt.Sprintf("va|p:%s", property))
}

// emitLiquidityWithdrawn traces admin capacity withdrawals.
func emitLiquidityWithdrawn(to string, amount rwa.Amount) {
	sdk.Log(fmt.Sprintf("vw|to:%s|am:%s", to, rwa.FormatAmount(amount)))
}

// emitBufferUpdated spells out old and new values so audits catch the flip.
func emitBufferUpdated(oldPct uint64, newPct uint64) {
	sdk.Log(fmt.Sprintf("bp|old:%d|new:%d", oldPct, newPct))
}

// emitEmergencyPause / emitEmergencyUnpause are a matched pair.
func emitEmergencyPause() {
	sdk.Log("ep|1")
}

func emitEmergencyUnpause() {
	sdk.Log("ep|0")
}

// emitLiquidationExecuted covers instant payouts and queue drains alike; ids
// exist only for queued entries, so the payout event carries none.
func emitLiquidationExecuted(property string, user string, amount rwa.Amount) {
	sdk.Log(fmt.Sprintf("lx|p:%s|u:%s|am:%s", property, user, rwa.FormatAmount(amount)))
}

// emitLiquidationQueued reports the slot plus the advisory fulfill estimate.
func emitLiquidationQueued(id uint64, property string, user string, amount rwa.Amount, estFulfill int64) {
	sdk.Log(fmt.Sprintf("lq|id:%d|p:%s|u:%s|am:%s|est:%d", id, property, user, rwa.FormatAmount(amount), estFulfill))
}

// emitControlledMode flags queue-backlog mode entering (1) or clearing (0).
func emitControlledMode(active bool) {
	if active {
		sdk.Log("cm|1")
	} else {
		sdk.Log("cm|0")
	}
}

// emitCashFlowReported traces the advisory per-property figures.
func emitCashFlowReported(property string, monthly rwa.Amount, activeUsers uint64) {
	sdk.Log(fmt.Sprintf("cf|p:%s|m:%s|au:%d", property, rwa.FormatAmount(monthly), activeUsers))
}
