package token

import (
	"fmt"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// emitInitialized marks the ledger as live.
func emitInitialized(symbol string, issuer string, totalSupply rwa.Amount) {
	sdk.Log(fmt.Sprintf("ti|sym:%s|iss:%s|ts:%s", symbol, issuer, rwa.FormatAmount(totalSupply)))
}

// emitTransfer traces every balance move, clawbacks included.
func emitTransfer(from string, to string, amount rwa.Amount) {
	sdk.Log(fmt.Sprintf("tt|f:%s|t:%s|am:%s", from, to, rwa.FormatAmount(amount)))
}

// emitClawback reports burned tokens.
func emitClawback(from string, amount rwa.Amount) {
	sdk.Log(fmt.Sprintf("tc|f:%s|am:%s", from, rwa.FormatAmount(amount)))
}

// emitAdminAdded pings when the admin set grows.
func emitAdminAdded(addr string) {
	sdk.Log(fmt.Sprintf("ta|a:%s", addr))
}

// emitPurchase reports a primary sale with its stablecoin cost.
func emitPurchase(buyer string, tokens rwa.Amount, cost rwa.Amount) {
	sdk.Log(fmt.Sprintf("ts|b:%s|t:%s|am:%s", buyer, rwa.FormatAmount(tokens), rwa.FormatAmount(cost)))
}

// emitUsdcWithdrawn traces proceeds leaving the contract.
func emitUsdcWithdrawn(to string, amount rwa.Amount) {
	sdk.Log(fmt.Sprintf("tw|to:%s|am:%s", to, rwa.FormatAmount(amount)))
}
