// Package token is the security token ledger: compliance-gated balances with
// optional transfer restriction, clawback, and a primary sale settling in
// stablecoin. Token amounts are base units scaled by the token's decimals.
package token

import (
	"strings"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// MaxDecimals caps token precision at the chain asset's native scale.
const MaxDecimals = 7

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

// TokenConfig is the single mutable config blob; balances and compliance maps
// live under per-address keys instead.
type TokenConfig struct {
	Name                   string
	Symbol                 string
	Decimals               uint64
	TotalSupply            rwa.Amount
	Issuer                 sdk.Address
	UsdcPrice              rwa.Amount
	Stablecoin             sdk.Asset
	AuthorizationRequired  bool
	AuthorizationRevocable bool
	ClawbackEnabled        bool
	TransferRestricted     bool
	UsdcBalance            rwa.Amount
}
