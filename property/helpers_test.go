package property_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"verse_contracts/kyc"
	"verse_contracts/property"
	"verse_contracts/sdk"
	"verse_contracts/vault"
)

const (
	propertyId = "contract:verse-property"
	vaultId    = "contract:verse-vault"
	kycId      = "contract:verse-kyc"
	adminUser  = "hive:admin"
	aliceUser  = "hive:alice"
	bobUser    = "hive:bob"
	baseUnix   = int64(1_700_000_000)
)

// setupPropertyTest wires the full three-contract deployment: vault, kyc
// oracle and the property itself, with a funded admin and buyer.
func setupPropertyTest(t *testing.T) *sdk.ContractTest {
	t.Helper()
	ct := sdk.NewContractTest()
	ct.RegisterContract(propertyId, property.Methods())
	ct.RegisterContract(vaultId, vault.Methods())
	ct.RegisterContract(kycId, kyc.Methods())
	ct.Deposit(adminUser, 2_000_000_0000000, sdk.AssetHbd)
	ct.Deposit(aliceUser, 10_000_0000000, sdk.AssetHbd)
	return ct
}

func tsAt(offset int64) string {
	return strconv.FormatInt(baseUnix+offset, 10)
}

func call(t *testing.T, ct *sdk.ContractTest, contractId string, action string, payload string, intents []sdk.Intent, caller string, ts string, expectSuccess bool) sdk.TxResult {
	t.Helper()
	if ts == "" {
		ts = tsAt(0)
	}
	res := ct.Call(sdk.Tx{
		Caller:     sdk.Address(caller),
		ContractId: contractId,
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

func callProperty(t *testing.T, ct *sdk.ContractTest, action string, payload string, intents []sdk.Intent, caller string, ts string, expectSuccess bool) sdk.TxResult {
	t.Helper()
	return call(t, ct, propertyId, action, payload, intents, caller, ts, expectSuccess)
}

func transferIntent(limit string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": "hbd"},
	}}
}

// approveUser clears the user through the kyc oracle.
func approveUser(t *testing.T, ct *sdk.ContractTest, user string) {
	t.Helper()
	call(t, ct, kycId, "set_kyc_status", user+"|true", nil, adminUser, "", true)
	call(t, ct, kycId, "set_compliance_status", user+"|approved", nil, adminUser, "", true)
}

// initDeployment initializes all three contracts. The vault is funded with
// 100000.0 hbd, the property offers totalSupply tokens at 100.0 each.
func initDeployment(t *testing.T, ct *sdk.ContractTest, totalSupply uint64) {
	t.Helper()
	call(t, ct, vaultId, "initialize", "hbd", nil, adminUser, "", true)
	call(t, ct, vaultId, "fund_vault", "1000000000000", transferIntent("100000.000"), adminUser, "", true)
	call(t, ct, vaultId, "authorize_property", propertyId, nil, adminUser, "", true)
	call(t, ct, kycId, "initialize", "", nil, adminUser, "", true)
	approveUser(t, ct, aliceUser)

	payload := fmt.Sprintf("Verse Tower|VTWR|0|%d|1000000000|%s|%s|hbd", totalSupply, vaultId, kycId)
	callProperty(t, ct, "initialize", payload, nil, adminUser, "", true)
}

// purchase opens alice's position: 100 tokens at 100.0 cost 10000.0 hbd.
func purchaseDefault(t *testing.T, ct *sdk.ContractTest, compounding bool) {
	t.Helper()
	payload := "100|false"
	if compounding {
		payload = "100|true"
	}
	callProperty(t, ct, "purchase_tokens", payload, transferIntent("10000.000"), aliceUser, "", true)
}
