package vault

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

func requestKey(id uint64) string {
	return rwa.PrefixedU64Key(kLiquidationRequest, id)
}

func statsKey(property sdk.Address) string {
	return rwa.PrefixedAddressKey(kPropertyStats, property)
}

// -----------------------------------------------------------------------------
// Config State
// -----------------------------------------------------------------------------

func isInitialized() bool {
	ptr := sdk.StateGetObject(ConfigKey)
	return ptr != nil && *ptr != ""
}

// loadConfig aborts on a missing or corrupt blob; every entry point needs it.
func loadConfig() *VaultConfig {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("Vault not initialized")
	}
	cfg, err := decodeConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt vault config")
	}
	return cfg
}

func saveConfig(cfg *VaultConfig) {
	sdk.StateSetObject(ConfigKey, encodeConfig(cfg))
}

// requireAdmin loads the config and gates the call on the stored admin.
func requireAdmin() *VaultConfig {
	cfg := loadConfig()
	if rwa.SenderAddress() != cfg.Admin {
		sdk.Abort("Not admin")
	}
	return cfg
}

// -----------------------------------------------------------------------------
// Authorized Properties
// -----------------------------------------------------------------------------

func loadAuthorized() []sdk.Address {
	ptr := sdk.StateGetObject(AuthorizedKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	addrs, err := decodeAddressList(*ptr)
	if err != nil {
		sdk.Abort("corrupt authorized property list")
	}
	return addrs
}

func saveAuthorized(addrs []sdk.Address) {
	sdk.StateSetObject(AuthorizedKey, encodeAddressList(addrs))
}

func isAuthorizedProperty(property sdk.Address) bool {
	for _, a := range loadAuthorized() {
		if a == property {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Property Stats
// -----------------------------------------------------------------------------

// loadStats falls back to a zeroed record so callers never branch on presence.
func loadStats(property sdk.Address) *PropertyVaultStats {
	ptr := sdk.StateGetObject(statsKey(property))
	if ptr == nil || *ptr == "" {
		return &PropertyVaultStats{Property: property}
	}
	stats, err := decodeStats(*ptr)
	if err != nil {
		sdk.Abort("corrupt property stats")
	}
	return stats
}

func saveStats(stats *PropertyVaultStats) {
	sdk.StateSetObject(statsKey(stats.Property), encodeStats(stats))
}

// -----------------------------------------------------------------------------
// Liquidation Requests
// -----------------------------------------------------------------------------

// loadRequest returns ok=false for ids already fulfilled and deleted.
func loadRequest(id uint64) (*LiquidationRequest, bool) {
	ptr := sdk.StateGetObject(requestKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	req, err := decodeRequest(*ptr)
	if err != nil {
		sdk.Abort("corrupt liquidation request")
	}
	return req, true
}

func saveRequest(req *LiquidationRequest) {
	sdk.StateSetObject(requestKey(req.RequestId), encodeRequest(req))
}

func deleteRequest(id uint64) {
	sdk.StateDeleteObject(requestKey(id))
}
