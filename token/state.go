package token

import (
	"strconv"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

const (
	// ConfigKey holds the encoded TokenConfig blob.
	ConfigKey = "cfg"
	// AdminsKey holds the encoded admin address list (the issuer starts it).
	AdminsKey = "admins"
)

const (
	// kBalance stores per-address token balances as decimal strings.
	kBalance byte = 0x01
	// kKycVerified / kComplianceStatus are the ledger's own compliance maps.
	kKycVerified      byte = 0x02
	kComplianceStatus byte = 0x03
)

// -----------------------------------------------------------------------------
// Config State
// -----------------------------------------------------------------------------

func isInitialized() bool {
	ptr := sdk.StateGetObject(ConfigKey)
	return ptr != nil && *ptr != ""
}

func loadConfig() *TokenConfig {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("Token not initialized")
	}
	cfg, err := decodeConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt token config")
	}
	return cfg
}

func saveConfig(cfg *TokenConfig) {
	sdk.StateSetObject(ConfigKey, encodeConfig(cfg))
}

// -----------------------------------------------------------------------------
// Admins
// -----------------------------------------------------------------------------

func loadAdmins() []sdk.Address {
	ptr := sdk.StateGetObject(AdminsKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	admins, err := decodeAddressList(*ptr)
	if err != nil {
		sdk.Abort("corrupt admin list")
	}
	return admins
}

func saveAdmins(admins []sdk.Address) {
	sdk.StateSetObject(AdminsKey, encodeAddressList(admins))
}

func isAdmin(addr sdk.Address) bool {
	for _, a := range loadAdmins() {
		if a == addr {
			return true
		}
	}
	return false
}

func requireAdmin() sdk.Address {
	sender := rwa.SenderAddress()
	if !isAdmin(sender) {
		sdk.Abort("Not admin")
	}
	return sender
}

// -----------------------------------------------------------------------------
// Balances
// -----------------------------------------------------------------------------

func balanceKey(addr sdk.Address) string {
	return rwa.PrefixedAddressKey(kBalance, addr)
}

func balanceOf(addr sdk.Address) rwa.Amount {
	ptr := sdk.StateGetObject(balanceKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return rwa.Amount(n)
}

func setBalance(addr sdk.Address, amount rwa.Amount) {
	sdk.StateSetObject(balanceKey(addr), rwa.FormatAmount(amount))
}

// -----------------------------------------------------------------------------
// Compliance Maps
// -----------------------------------------------------------------------------

func setKycVerified(user sdk.Address, verified bool) {
	val := "0"
	if verified {
		val = "1"
	}
	rwa.StateSetIfChanged(rwa.PrefixedAddressKey(kKycVerified, user), val)
}

func kycVerified(user sdk.Address) bool {
	ptr := sdk.StateGetObject(rwa.PrefixedAddressKey(kKycVerified, user))
	return ptr != nil && *ptr == "1"
}

func setComplianceStatus(user sdk.Address, status ComplianceStatus) {
	rwa.StateSetIfChanged(rwa.PrefixedAddressKey(kComplianceStatus, user), string([]byte{byte(status)}))
}

func complianceStatus(user sdk.Address) ComplianceStatus {
	ptr := sdk.StateGetObject(rwa.PrefixedAddressKey(kComplianceStatus, user))
	if ptr == nil || len(*ptr) == 0 {
		return StatusPending
	}
	return ComplianceStatus((*ptr)[0])
}

// requireCompliant aborts unless the party passes the internal kyc+status check.
func requireCompliant(cfg *TokenConfig, party sdk.Address) {
	if !cfg.AuthorizationRequired {
		return
	}
	if !kycVerified(party) {
		sdk.Abort("Party not KYC verified")
	}
	if complianceStatus(party) != StatusApproved {
		sdk.Abort("Party not approved for trading")
	}
}
