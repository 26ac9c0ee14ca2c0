package vault_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"verse_contracts/sdk"
	"verse_contracts/vault"
)

const (
	vaultId    = "contract:verse-vault"
	propertyId = "contract:verse-prop-a"
	adminUser  = "hive:admin"
	aliceUser  = "hive:alice"
	bobUser    = "hive:bob"
	baseTime   = "1700000000"
	baseUnix   = int64(1_700_000_000)
)

// setupVaultTest gives every test a fresh host with a registered vault and a
// well-funded admin account.
func setupVaultTest(t *testing.T) *sdk.ContractTest {
	t.Helper()
	ct := sdk.NewContractTest()
	ct.RegisterContract(vaultId, vault.Methods())
	ct.Deposit(adminUser, 2_000_000_0000000, sdk.AssetHbd)
	return ct
}

func callVault(t *testing.T, ct *sdk.ContractTest, action string, payload string, intents []sdk.Intent, caller string, ts string, expectSuccess bool) sdk.TxResult {
	t.Helper()
	if ts == "" {
		ts = baseTime
	}
	res := ct.Call(sdk.Tx{
		Caller:     sdk.Address(caller),
		ContractId: vaultId,
		Action:     action,
		Payload:    payload,
		Intents:    intents,
		Timestamp:  ts,
	})
	if expectSuccess {
		require.True(t, res.Success, "action %s failed: %s", action, res.Err)
	} else {
		require.False(t, res.Success, "action %s unexpectedly succeeded: %s", action, res.Ret)
	}
	return res
}

func transferIntent(limit string) []sdk.Intent {
	return transferIntentWithToken(limit, "hbd")
}

func transferIntentWithToken(limit string, token string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

// initFundedVault initializes the vault on hbd, funds it and authorizes the
// default property. Amounts are base units (7 decimals).
func initFundedVault(t *testing.T, ct *sdk.ContractTest, amount string, limit string) {
	t.Helper()
	callVault(t, ct, "initialize", "hbd", nil, adminUser, "", true)
	callVault(t, ct, "fund_vault", amount, transferIntent(limit), adminUser, "", true)
	callVault(t, ct, "authorize_property", propertyId, nil, adminUser, "", true)
}

// requestLiquidation issues a payout request as if the property contract
// called in (the caller address is the capability).
func requestLiquidation(t *testing.T, ct *sdk.ContractTest, user string, amount string, ts string) sdk.TxResult {
	t.Helper()
	payload := propertyId + "|" + user + "|" + amount
	return callVault(t, ct, "request_liquidation", payload, nil, propertyId, ts, true)
}
