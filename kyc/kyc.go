package kyc

import (
	"strconv"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Entry Points
// -----------------------------------------------------------------------------

// Initialize stores the caller as oracle admin. Must be called exactly once.
func Initialize(payload *string) *string {
	if isInitialized() {
		sdk.Abort("KYC contract already initialized")
	}
	admin := rwa.SenderAddress()
	sdk.StateSetObject(AdminKey, admin.String())
	emitInitialized(admin.String())
	return rwa.Strptr("kyc oracle initialized")
}

// SetKycStatus flips the identity verification flag for a user.
// Payload: "user|verified"
func SetKycStatus(payload *string) *string {
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "kyc payload requires user|verified")
	get := rwa.SplitFields(raw)
	user := rwa.ParseAddressField(get(0), "user address")
	verified := rwa.ParseBoolField(get(1))
	setKycVerified(user, verified)
	emitKycStatusSet(user.String(), verified)
	return rwa.Strptr("kyc status updated")
}

// SetComplianceStatus stores the trading status for a user.
// Payload: "user|status" where status is pending/approved/rejected/suspended or 0-3.
func SetComplianceStatus(payload *string) *string {
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "compliance payload requires user|status")
	get := rwa.SplitFields(raw)
	user := rwa.ParseAddressField(get(0), "user address")
	status := parseStatusField(get(1))
	setComplianceStatus(user, status)
	emitComplianceStatusSet(user.String(), status)
	return rwa.Strptr("compliance status updated")
}

// CheckCompliance aborts unless the user is verified AND approved, so caller
// contracts can gate purchases with a single nested call.
// Payload: "user"
func CheckCompliance(payload *string) *string {
	raw := rwa.UnwrapPayload(payload, "user address required")
	user := rwa.ParseAddressField(raw, "user address")
	if !kycVerified(user) {
		sdk.Abort("User not KYC verified")
	}
	if complianceStatus(user) != StatusApproved {
		sdk.Abort("User not approved for trading")
	}
	return rwa.Strptr("ok")
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// IsKycVerified returns "true"/"false", defaulting to false for unknown users.
func IsKycVerified(payload *string) *string {
	raw := rwa.UnwrapPayload(payload, "user address required")
	user := rwa.ParseAddressField(raw, "user address")
	return rwa.Strptr(strconv.FormatBool(kycVerified(user)))
}

// GetComplianceStatus returns the status name, defaulting to pending.
func GetComplianceStatus(payload *string) *string {
	raw := rwa.UnwrapPayload(payload, "user address required")
	user := rwa.ParseAddressField(raw, "user address")
	return rwa.Strptr(complianceStatus(user).String())
}

// GetAdmin returns the stored oracle admin.
func GetAdmin(payload *string) *string {
	return rwa.Strptr(loadAdmin().String())
}

// Methods maps action names onto entry points for dispatch and tests.
func Methods() map[string]sdk.ContractMethod {
	return map[string]sdk.ContractMethod{
		"initialize":            Initialize,
		"set_kyc_status":        SetKycStatus,
		"set_compliance_status": SetComplianceStatus,
		"check_compliance":      CheckCompliance,
		"is_kyc_verified":       IsKycVerified,
		"get_compliance_status": GetComplianceStatus,
		"get_admin":             GetAdmin,
	}
}
