// Package kyc is the compliance oracle of the suite: an admin keeps a KYC
// flag plus a trading status per address, and other contracts gate their
// operations through check_compliance.
package kyc

import (
	"strings"

	"verse_contracts/sdk"
)

type ComplianceStatus uint8

const (
	StatusPending   ComplianceStatus = 0
	StatusApproved  ComplianceStatus = 1
	StatusRejected  ComplianceStatus = 2
	StatusSuspended ComplianceStatus = 3
)

// String renders the status for views and events.
func (s ComplianceStatus) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusSuspended:
		return "suspended"
	default:
		return "pending"
	}
}

// parseStatusField accepts the status name or its numeric value.
func parseStatusField(val string) ComplianceStatus {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "0", "pending":
		return StatusPending
	case "1", "approved":
		return StatusApproved
	case "2", "rejected":
		return StatusRejected
	case "3", "suspended":
		return StatusSuspended
	default:
		sdk.Abort("invalid compliance status")
		return StatusPending
	}
}
