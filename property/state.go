package property

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

func positionKey(user sdk.Address) string {
	return rwa.PrefixedAddressKey(kUserPosition, user)
}

// -----------------------------------------------------------------------------
// Config State
// -----------------------------------------------------------------------------

func isInitialized() bool {
	ptr := sdk.StateGetObject(ConfigKey)
	return ptr != nil && *ptr != ""
}

func loadConfig() *PropertyConfig {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("Property not initialized")
	}
	cfg, err := decodeConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt property config")
	}
	return cfg
}

func saveConfig(cfg *PropertyConfig) {
	sdk.StateSetObject(ConfigKey, encodeConfig(cfg))
}

func requireAdmin() *PropertyConfig {
	cfg := loadConfig()
	if rwa.SenderAddress() != cfg.Admin {
		sdk.Abort("Not admin")
	}
	return cfg
}

// -----------------------------------------------------------------------------
// ROI State
// -----------------------------------------------------------------------------

func loadRoi() *RoiConfig {
	ptr := sdk.StateGetObject(RoiKey)
	if ptr == nil || *ptr == "" {
		return &RoiConfig{
			AnnualRateBps:       DefaultAnnualRateBps,
			CompoundingBonusBps: DefaultCompoundingBonusBps,
			LoyaltyBonusBps:     DefaultLoyaltyBonusBps,
		}
	}
	roi, err := decodeRoi(*ptr)
	if err != nil {
		sdk.Abort("corrupt roi config")
	}
	return roi
}

func saveRoi(roi *RoiConfig) {
	sdk.StateSetObject(RoiKey, encodeRoi(roi))
}

// -----------------------------------------------------------------------------
// Positions
// -----------------------------------------------------------------------------

func loadPosition(user sdk.Address) (*UserPosition, bool) {
	ptr := sdk.StateGetObject(positionKey(user))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	pos, err := decodePosition(*ptr)
	if err != nil {
		sdk.Abort("corrupt user position")
	}
	return pos, true
}

func savePosition(pos *UserPosition) {
	sdk.StateSetObject(positionKey(pos.User), encodePosition(pos))
}

func deletePosition(user sdk.Address) {
	sdk.StateDeleteObject(positionKey(user))
}

// requirePosition aborts when the sender never bought in (or already exited).
func requirePosition(user sdk.Address) *UserPosition {
	pos, ok := loadPosition(user)
	if !ok {
		sdk.Abort("No active position")
	}
	return pos
}
