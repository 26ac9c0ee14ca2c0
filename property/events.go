package property

import (
	"fmt"
	"strconv"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// emitInitialized marks the offering as live.
func emitInitialized(admin string, symbol string, totalSupply uint64) {
	sdk.Log(fmt.Sprintf("pi|adm:%s|sym:%s|ts:%d", admin, symbol, totalSupply))
}

// emitRoiUpdated spells out the new knobs so yield replays stay possible from logs.
func emitRoiUpdated(annualBps, compBps, loyaltyBps uint64, cashFlow rwa.Amount) {
	sdk.Log(fmt.Sprintf("rc|a:%d|c:%d|l:%d|cf:%s", annualBps, compBps, loyaltyBps, rwa.FormatAmount(cashFlow)))
}

// emitTokensPurchased reports a new position with its cost basis.
func emitTokensPurchased(user string, tokens uint64, cost rwa.Amount, compounding bool) {
	sdk.Log(fmt.Sprintf("tp|u:%s|t:%d|am:%s|c:%s", user, tokens, rwa.FormatAmount(cost), strconv.FormatBool(compounding)))
}

// emitRollover carries the yield plus whether the admin forced it after grace.
func emitRollover(user string, yield rwa.Amount, tier uint64, adminTriggered bool) {
	sdk.Log(fmt.Sprintf("ro|u:%s|y:%s|lt:%d|adm:%s", user, rwa.FormatAmount(yield), tier, strconv.FormatBool(adminTriggered)))
}

// emitLiquidated reports the payout handed to the vault.
func emitLiquidated(user string, tokens uint64, payout rwa.Amount, vaultResult string) {
	sdk.Log(fmt.Sprintf("lp|u:%s|t:%d|am:%s|r:%s", user, tokens, rwa.FormatAmount(payout), vaultResult))
}
