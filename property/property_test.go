package property_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"verse_contracts/sdk"
)

func TestInitializeValidation(t *testing.T) {
	ct := setupPropertyTest(t)

	res := callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|0|0|1000000000|%s|%s|hbd", vaultId, kycId), nil, adminUser, "", false)
	assert.Equal(t, "Total supply must be positive", res.Err)

	res = callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|8|1000|1000000000|%s|%s|hbd", vaultId, kycId), nil, adminUser, "", false)
	assert.Equal(t, "Decimals must be 7 or less", res.Err)

	res = callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|0|1000|0|%s|%s|hbd", vaultId, kycId), nil, adminUser, "", false)
	assert.Equal(t, "Token price must be positive", res.Err)

	res = callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|0|1000|1000000000|%s|%s|hbd", aliceUser, kycId), nil, adminUser, "", false)
	assert.Equal(t, "vault must be a contract address", res.Err)

	callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|0|1000|1000000000|%s|%s|hbd", vaultId, kycId), nil, adminUser, "", true)
	res = callProperty(t, ct, "initialize", fmt.Sprintf("Tower|TWR|0|1000|1000000000|%s|%s|hbd", vaultId, kycId), nil, adminUser, "", false)
	assert.Equal(t, "Property already initialized", res.Err)
}

func TestPurchaseTokens(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	aliceBefore := ct.Balance(aliceUser, sdk.AssetHbd)

	purchaseDefault(t, ct, true)

	// 100 tokens at 100.0 each cost 10000.0.
	assert.Equal(t, aliceBefore-1_000_0000000*10, ct.Balance(aliceUser, sdk.AssetHbd))
	assert.Equal(t, int64(100_000_000_000), ct.Balance(propertyId, sdk.AssetHbd))

	res := callProperty(t, ct, "total_active_tokens", "", nil, aliceUser, "", true)
	assert.Equal(t, "100", res.Ret)

	res = callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"tokens":100`)
	assert.Contains(t, res.Ret, `"principal":100000000000`)
	assert.Contains(t, res.Ret, `"compounding":true`)
	assert.Contains(t, res.Ret, `"loyalty_tier":0`)

	// One position per user.
	res = callProperty(t, ct, "purchase_tokens", "10|true", transferIntent("1000.000"), aliceUser, "", false)
	assert.Equal(t, "User already has an active position", res.Err)
}

func TestPurchaseRequiresCompliance(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	ct.Deposit(bobUser, 10_000_0000000, sdk.AssetHbd)

	res := callProperty(t, ct, "purchase_tokens", "100|true", transferIntent("10000.000"), bobUser, "", false)
	assert.Equal(t, "User not KYC verified", res.Err)

	call(t, ct, kycId, "set_kyc_status", bobUser+"|true", nil, adminUser, "", true)
	res = callProperty(t, ct, "purchase_tokens", "100|true", transferIntent("10000.000"), bobUser, "", false)
	assert.Equal(t, "User not approved for trading", res.Err)
}

func TestPurchaseSupplyCap(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 50)

	res := callProperty(t, ct, "purchase_tokens", "51|true", transferIntent("10000.000"), aliceUser, "", false)
	assert.Equal(t, "Insufficient tokens available", res.Err)

	callProperty(t, ct, "purchase_tokens", "50|true", transferIntent("5000.000"), aliceUser, "", true)
}

func TestPurchaseRequiresIntentAndBalance(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)

	res := callProperty(t, ct, "purchase_tokens", "100|true", nil, aliceUser, "", false)
	assert.Equal(t, "transfer.allow intent required", res.Err)

	res = callProperty(t, ct, "purchase_tokens", "0|true", transferIntent("10000.000"), aliceUser, "", false)
	assert.Equal(t, "Token amount must be positive", res.Err)

	// Alice holds 10000.0, 101 tokens cost 10100.0.
	res = callProperty(t, ct, "purchase_tokens", "101|true", transferIntent("10100.000"), aliceUser, "", false)
	assert.Equal(t, "Insufficient stablecoin balance", res.Err)
}

func TestRolloverGates(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	purchaseDefault(t, ct, true)

	res := callProperty(t, ct, "rollover_position", "", nil, aliceUser, tsAt(2_592_000-1), false)
	assert.Equal(t, "Epoch not yet complete", res.Err)

	res = callProperty(t, ct, "rollover_position", "", nil, bobUser, tsAt(2_592_000), false)
	assert.Equal(t, "No active position", res.Err)

	callProperty(t, ct, "rollover_position", "", nil, aliceUser, tsAt(2_592_000), true)
	res = callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"principal":100820000000`)
	assert.Contains(t, res.Ret, `"consecutive_rollovers":1`)
	assert.Contains(t, res.Ret, `"loyalty_tier":1`)
	assert.Contains(t, res.Ret, `"total_yield_earned":820000000`)
}

func TestAdminRolloverRespectsGracePeriod(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	purchaseDefault(t, ct, true)

	// Inside the 24h grace window only the user may act.
	res := callProperty(t, ct, "admin_rollover_position", aliceUser, nil, adminUser, tsAt(2_592_000+100), false)
	assert.Equal(t, "Grace period has not elapsed", res.Err)

	res = callProperty(t, ct, "admin_rollover_position", aliceUser, nil, bobUser, tsAt(2_592_000+86_400), false)
	assert.Equal(t, "Not admin", res.Err)

	callProperty(t, ct, "admin_rollover_position", aliceUser, nil, adminUser, tsAt(2_592_000+86_400), true)
	res = callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"principal":100820000000`)
}

func TestGracePeriodViews(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	purchaseDefault(t, ct, true)

	res := callProperty(t, ct, "can_take_action", aliceUser, nil, aliceUser, tsAt(2_592_000-1), true)
	assert.Equal(t, "false", res.Ret)
	res = callProperty(t, ct, "can_take_action", aliceUser, nil, aliceUser, tsAt(2_592_000), true)
	assert.Equal(t, "true", res.Ret)

	res = callProperty(t, ct, "is_in_grace_period", aliceUser, nil, aliceUser, tsAt(2_592_000+100), true)
	assert.Equal(t, "true", res.Ret)
	res = callProperty(t, ct, "can_admin_rollover", aliceUser, nil, aliceUser, tsAt(2_592_000+100), true)
	assert.Equal(t, "false", res.Ret)
	res = callProperty(t, ct, "can_admin_rollover", aliceUser, nil, aliceUser, tsAt(2_592_000+86_400), true)
	assert.Equal(t, "true", res.Ret)
}

func TestLoyaltyTierCapsAtFour(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	purchaseDefault(t, ct, true)

	// Six consecutive epochs, each rolled exactly at its boundary.
	for i := int64(1); i <= 6; i++ {
		callProperty(t, ct, "rollover_position", "", nil, aliceUser, tsAt(i*2_592_000), true)
	}
	res := callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"consecutive_rollovers":6`)
	assert.Contains(t, res.Ret, `"loyalty_tier":4`)
}

func TestNonCompoundingPrincipalStaysFlat(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)
	purchaseDefault(t, ct, false)

	callProperty(t, ct, "rollover_position", "", nil, aliceUser, tsAt(2_592_000), true)
	res := callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"principal":100000000000`)
	assert.Contains(t, res.Ret, `"total_yield_earned":660000000`)

	// Without compounding every epoch pays the same base yield.
	callProperty(t, ct, "rollover_position", "", nil, aliceUser, tsAt(2*2_592_000), true)
	res = callProperty(t, ct, "get_user_position", aliceUser, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"principal":100000000000`)
	// Second epoch adds tier-1 loyalty on top of the base.
	assert.Contains(t, res.Ret, `"total_yield_earned":1340000000`)
}

func TestUpdateRoiConfig(t *testing.T) {
	ct := setupPropertyTest(t)
	initDeployment(t, ct, 1000)

	res := callProperty(t, ct, "update_roi_config", "0|200|25|0", nil, adminUser, "", false)
	assert.Equal(t, "Annual rate must be between 1 and 2000 basis points", res.Err)
	res = callProperty(t, ct, "update_roi_config", "2001|200|25|0", nil, adminUser, "", false)
	assert.Equal(t, "Annual rate must be between 1 and 2000 basis points", res.Err)
	res = callProperty(t, ct, "update_roi_config", "1200|200|25|0", nil, aliceUser, "", false)
	assert.Equal(t, "Not admin", res.Err)

	callProperty(t, ct, "update_roi_config", "1200|300|50|1000000000", nil, adminUser, "", true)
	res = callProperty(t, ct, "get_roi_config", "", nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"annual_rate_bps":1200`)
	assert.Contains(t, res.Ret, `"cash_flow_monthly":1000000000`)

	// The changed cash flow figure lands in the vault's per-property stats.
	res = call(t, ct, vaultId, "get_property_stats", propertyId, nil, aliceUser, "", true)
	assert.Contains(t, res.Ret, `"cash_flow_monthly":1000000000`)
}
