package kyc

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

const (
	// AdminKey stores the oracle admin address.
	AdminKey = "cfg"
)

const (
	// kKycVerified flags per-address identity verification.
	kKycVerified byte = 0x01
	// kComplianceStatus stores the per-address trading status byte.
	kComplianceStatus byte = 0x02
)

func kycKey(user sdk.Address) string {
	return rwa.PrefixedAddressKey(kKycVerified, user)
}

func statusKey(user sdk.Address) string {
	return rwa.PrefixedAddressKey(kComplianceStatus, user)
}

// isInitialized returns true once an admin has been stored.
func isInitialized() bool {
	ptr := sdk.StateGetObject(AdminKey)
	return ptr != nil && *ptr != ""
}

// loadAdmin aborts when the oracle was never initialized.
func loadAdmin() sdk.Address {
	ptr := sdk.StateGetObject(AdminKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("KYC contract not initialized")
	}
	return sdk.Address(*ptr)
}

// requireAdmin gates the setter entry points.
func requireAdmin() sdk.Address {
	admin := loadAdmin()
	if rwa.SenderAddress() != admin {
		sdk.Abort("Not admin")
	}
	return admin
}

func setKycVerified(user sdk.Address, verified bool) {
	val := "0"
	if verified {
		val = "1"
	}
	rwa.StateSetIfChanged(kycKey(user), val)
}

func kycVerified(user sdk.Address) bool {
	ptr := sdk.StateGetObject(kycKey(user))
	return ptr != nil && *ptr == "1"
}

func setComplianceStatus(user sdk.Address, status ComplianceStatus) {
	rwa.StateSetIfChanged(statusKey(user), string([]byte{byte(status)}))
}

// complianceStatus defaults to pending for unknown addresses.
func complianceStatus(user sdk.Address) ComplianceStatus {
	ptr := sdk.StateGetObject(statusKey(user))
	if ptr == nil || len(*ptr) == 0 {
		return StatusPending
	}
	return ComplianceStatus((*ptr)[0])
}
