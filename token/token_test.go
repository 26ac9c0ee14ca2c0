package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verse_contracts/sdk"
	"verse_contracts/token"
)

const (
	tokenId    = "contract:verse-token"
	issuerUser = "hive:issuer"
	aliceUser  = "hive:alice"
	bobUser    = "hive:bob"
	baseTime   = "1700000000"

	// 1M tokens at 7 decimals, priced 5.0 hbd per whole token.
	defaultInit = "Verse Share|VSH|7|10000000000000|50000000|hbd|true|true|true"
)

func setupTokenTest(t *testing.T) *sdk.ContractTest {
	t.Helper()
	ct := sdk.NewContractTest()
	ct.RegisterContract(tokenId, token.Methods())
	return ct
}

func callToken(t *testing.T, ct *sdk.ContractTest, action string, payload string, intents []sdk.Intent, caller string, expectSuccess bool) sdk.TxResult {
	t.Helper()
	res := ct.Call(sdk.Tx{
		Caller:     sdk.Address(caller),
		ContractId: tokenId,
		Action:     action,
		Payload:    payload,
		Intents:    intents,
		Timestamp:  baseTime,
	})
	if expectSuccess {
		require.True(t, res.Success, "action %s failed: %s", action, res.Err)
	} else {
		require.False(t, res.Success, "action %s unexpectedly succeeded: %s", action, res.Ret)
	}
	return res
}

func transferIntent(limit string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": "hbd"},
	}}
}

// approve marks the user verified and approved on the internal compliance map.
func approve(t *testing.T, ct *sdk.ContractTest, user string) {
	t.Helper()
	callToken(t, ct, "set_kyc_status", user+"|true", nil, issuerUser, true)
	callToken(t, ct, "set_compliance_status", user+"|approved", nil, issuerUser, true)
}

func TestInitialize(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)

	// The full supply lands with the issuer and transfers start restricted.
	res := callToken(t, ct, "balance_of", issuerUser, nil, aliceUser, true)
	assert.Equal(t, "10000000000000", res.Ret)
	res = callToken(t, ct, "get_metadata", "", nil, aliceUser, true)
	assert.Contains(t, res.Ret, `"symbol":"VSH"`)
	assert.Contains(t, res.Ret, `"transfer_restricted":true`)
	assert.Contains(t, res.Ret, `"issuer":"hive:issuer"`)

	res = callToken(t, ct, "is_admin", issuerUser, nil, aliceUser, true)
	assert.Equal(t, "true", res.Ret)

	res = callToken(t, ct, "initialize", defaultInit, nil, issuerUser, false)
	assert.Equal(t, "Token already initialized", res.Err)
}

func TestTransferRestriction(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, issuerUser)
	approve(t, ct, aliceUser)
	approve(t, ct, bobUser)

	// The issuer distributes while restricted, holders cannot.
	callToken(t, ct, "transfer", aliceUser+"|100000000", nil, issuerUser, true)
	res := callToken(t, ct, "transfer", bobUser+"|50000000", nil, aliceUser, false)
	assert.Equal(t, "Transfers are restricted", res.Err)

	callToken(t, ct, "set_transfer_restriction", "false", nil, issuerUser, true)
	callToken(t, ct, "transfer", bobUser+"|50000000", nil, aliceUser, true)

	res = callToken(t, ct, "balance_of", aliceUser, nil, aliceUser, true)
	assert.Equal(t, "50000000", res.Ret)
	res = callToken(t, ct, "balance_of", bobUser, nil, bobUser, true)
	assert.Equal(t, "50000000", res.Ret)
}

func TestTransferComplianceGate(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, issuerUser)

	// Bob was never verified, so even the issuer cannot send to him.
	res := callToken(t, ct, "transfer", bobUser+"|100000000", nil, issuerUser, false)
	assert.Equal(t, "Party not KYC verified", res.Err)

	callToken(t, ct, "set_kyc_status", bobUser+"|true", nil, issuerUser, true)
	res = callToken(t, ct, "transfer", bobUser+"|100000000", nil, issuerUser, false)
	assert.Equal(t, "Party not approved for trading", res.Err)

	callToken(t, ct, "set_compliance_status", bobUser+"|approved", nil, issuerUser, true)
	callToken(t, ct, "transfer", bobUser+"|100000000", nil, issuerUser, true)
}

func TestTransferBalanceChecks(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, issuerUser)
	approve(t, ct, aliceUser)

	res := callToken(t, ct, "transfer", aliceUser+"|0", nil, issuerUser, false)
	assert.Equal(t, "Transfer amount must be positive", res.Err)

	res = callToken(t, ct, "transfer", aliceUser+"|10000000000001", nil, issuerUser, false)
	assert.Equal(t, "Insufficient token balance", res.Err)
}

func TestClawbackBurns(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, issuerUser)
	approve(t, ct, aliceUser)
	callToken(t, ct, "transfer", aliceUser+"|100000000", nil, issuerUser, true)
	issuerBefore := callToken(t, ct, "balance_of", issuerUser, nil, issuerUser, true).Ret

	callToken(t, ct, "clawback", aliceUser+"|40000000", nil, issuerUser, true)

	// Burned, not returned: alice shrinks, the issuer stays flat.
	res := callToken(t, ct, "balance_of", aliceUser, nil, aliceUser, true)
	assert.Equal(t, "60000000", res.Ret)
	res = callToken(t, ct, "balance_of", issuerUser, nil, issuerUser, true)
	assert.Equal(t, issuerBefore, res.Ret)

	res = callToken(t, ct, "clawback", aliceUser+"|100000000", nil, issuerUser, false)
	assert.Equal(t, "Insufficient token balance", res.Err)
	res = callToken(t, ct, "clawback", aliceUser+"|10000000", nil, aliceUser, false)
	assert.Equal(t, "Not admin", res.Err)
}

func TestClawbackDisabled(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", "Verse Share|VSH|7|10000000000000|50000000|hbd|true|true|false", nil, issuerUser, true)
	res := callToken(t, ct, "clawback", aliceUser+"|10000000", nil, issuerUser, false)
	assert.Equal(t, "Clawback is disabled", res.Err)
}

func TestPurchaseFlow(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, aliceUser)
	ct.Deposit(aliceUser, 1000000000, sdk.AssetHbd)

	// 10 tokens (1e8 base units) at 5.0 each cost 50.0 hbd.
	callToken(t, ct, "purchase", "100000000", transferIntent("50.000"), aliceUser, true)

	res := callToken(t, ct, "balance_of", aliceUser, nil, aliceUser, true)
	assert.Equal(t, "100000000", res.Ret)
	res = callToken(t, ct, "balance_of", issuerUser, nil, issuerUser, true)
	assert.Equal(t, "9999900000000", res.Ret)
	res = callToken(t, ct, "get_usdc_balance", "", nil, aliceUser, true)
	assert.Equal(t, "500000000", res.Ret)
	assert.Equal(t, int64(500000000), ct.Balance(aliceUser, sdk.AssetHbd))
	assert.Equal(t, int64(500000000), ct.Balance(tokenId, sdk.AssetHbd))
}

func TestPurchaseGuards(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	ct.Deposit(aliceUser, 1000000000, sdk.AssetHbd)

	res := callToken(t, ct, "purchase", "100000000", transferIntent("50.000"), aliceUser, false)
	assert.Equal(t, "Party not KYC verified", res.Err)

	approve(t, ct, aliceUser)
	res = callToken(t, ct, "purchase", "0", transferIntent("50.000"), aliceUser, false)
	assert.Equal(t, "Purchase amount must be positive", res.Err)
	res = callToken(t, ct, "purchase", "100000000", nil, aliceUser, false)
	assert.Equal(t, "transfer.allow intent required", res.Err)

	// 1000.0 hbd worth of tokens against a 100.0 balance.
	res = callToken(t, ct, "purchase", "2000000000", transferIntent("1000.000"), aliceUser, false)
	assert.Equal(t, "Insufficient stablecoin balance", res.Err)
}

func TestWithdrawUsdc(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, aliceUser)
	ct.Deposit(aliceUser, 1000000000, sdk.AssetHbd)
	callToken(t, ct, "purchase", "100000000", transferIntent("50.000"), aliceUser, true)

	res := callToken(t, ct, "withdraw_usdc", "hive:treasury|600000000", nil, issuerUser, false)
	assert.Equal(t, "Insufficient usdc balance", res.Err)

	callToken(t, ct, "withdraw_usdc", "hive:treasury|500000000", nil, issuerUser, true)
	assert.Equal(t, int64(500000000), ct.Balance("hive:treasury", sdk.AssetHbd))
	res = callToken(t, ct, "get_usdc_balance", "", nil, aliceUser, true)
	assert.Equal(t, "0", res.Ret)
}

func TestAddAdmin(t *testing.T) {
	ct := setupTokenTest(t)
	callToken(t, ct, "initialize", defaultInit, nil, issuerUser, true)
	approve(t, ct, issuerUser)
	approve(t, ct, aliceUser)
	approve(t, ct, bobUser)
	callToken(t, ct, "transfer", aliceUser+"|100000000", nil, issuerUser, true)

	res := callToken(t, ct, "add_admin", aliceUser, nil, bobUser, false)
	assert.Equal(t, "Not admin", res.Err)

	callToken(t, ct, "add_admin", aliceUser, nil, issuerUser, true)
	res = callToken(t, ct, "add_admin", aliceUser, nil, issuerUser, false)
	assert.Equal(t, "Already an admin", res.Err)

	// Admins may originate transfers even while restricted.
	callToken(t, ct, "transfer", bobUser+"|50000000", nil, aliceUser, true)
}

func TestAuthorizationRevocability(t *testing.T) {
	ct := setupTokenTest(t)
	// Revocability given up at issuance.
	callToken(t, ct, "initialize", "Verse Share|VSH|7|10000000000000|50000000|hbd|true|false|true", nil, issuerUser, true)
	approve(t, ct, aliceUser)

	// Approval cannot be withdrawn once granted.
	res := callToken(t, ct, "set_compliance_status", aliceUser+"|suspended", nil, issuerUser, false)
	assert.Equal(t, "Authorization is not revocable", res.Err)

	// And revocability cannot be reclaimed afterwards.
	res = callToken(t, ct, "configure_authorization", "true|true", nil, issuerUser, false)
	assert.Equal(t, "Authorization revocability cannot be restored", res.Err)

	// Dropping the requirement entirely is still allowed.
	callToken(t, ct, "configure_authorization", "false|false", nil, issuerUser, true)
	res = callToken(t, ct, "get_metadata", "", nil, aliceUser, true)
	assert.Contains(t, res.Ret, `"authorization_required":false`)
}
