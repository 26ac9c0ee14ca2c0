package kyc

import (
	"fmt"

	"verse_contracts/sdk"
)

// emitInitialized pings explorers once the oracle goes live.
func emitInitialized(admin string) {
	sdk.Log(fmt.Sprintf("ki|adm:%s", admin))
}

// emitKycStatusSet leaves a one-liner per identity flip so audits can replay history.
func emitKycStatusSet(user string, verified bool) {
	sdk.Log(fmt.Sprintf("ks|u:%s|v:%t", user, verified))
}

// emitComplianceStatusSet mirrors the kyc line for trading status changes.
func emitComplianceStatusSet(user string, status ComplianceStatus) {
	sdk.Log(fmt.Sprintf("cs|u:%s|s:%s", user, status.String()))
}
