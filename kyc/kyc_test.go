package kyc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verse_contracts/kyc"
	"verse_contracts/sdk"
)

const (
	kycId     = "contract:verse-kyc"
	adminUser = "hive:admin"
	aliceUser = "hive:alice"
	bobUser   = "hive:bob"
	baseTime  = "1700000000"
)

func setupKycTest(t *testing.T) *sdk.ContractTest {
	t.Helper()
	ct := sdk.NewContractTest()
	ct.RegisterContract(kycId, kyc.Methods())
	return ct
}

func callKyc(t *testing.T, ct *sdk.ContractTest, action string, payload string, caller string, expectSuccess bool) sdk.TxResult {
	t.Helper()
	res := ct.Call(sdk.Tx{
		Caller:     sdk.Address(caller),
		ContractId: kycId,
		Action:     action,
		Payload:    payload,
		Timestamp:  baseTime,
	})
	if expectSuccess {
		require.True(t, res.Success, "action %s failed: %s", action, res.Err)
	} else {
		require.False(t, res.Success, "action %s unexpectedly succeeded: %s", action, res.Ret)
	}
	return res
}

func TestInitializeSetsAdmin(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)
	res := callKyc(t, ct, "get_admin", "", aliceUser, true)
	assert.Equal(t, adminUser, res.Ret)

	res = callKyc(t, ct, "initialize", "", adminUser, false)
	assert.Equal(t, "KYC contract already initialized", res.Err)
}

func TestSetKycStatusRequiresAdmin(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)
	res := callKyc(t, ct, "set_kyc_status", aliceUser+"|true", bobUser, false)
	assert.Equal(t, "Not admin", res.Err)

	res = callKyc(t, ct, "set_compliance_status", aliceUser+"|approved", bobUser, false)
	assert.Equal(t, "Not admin", res.Err)
}

func TestComplianceLifecycle(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)

	// Unknown users fail the kyc leg first.
	res := callKyc(t, ct, "check_compliance", aliceUser, aliceUser, false)
	assert.Equal(t, "User not KYC verified", res.Err)

	// Verified but still pending fails the status leg.
	callKyc(t, ct, "set_kyc_status", aliceUser+"|true", adminUser, true)
	res = callKyc(t, ct, "check_compliance", aliceUser, aliceUser, false)
	assert.Equal(t, "User not approved for trading", res.Err)

	callKyc(t, ct, "set_compliance_status", aliceUser+"|approved", adminUser, true)
	res = callKyc(t, ct, "check_compliance", aliceUser, aliceUser, true)
	assert.Equal(t, "ok", res.Ret)

	// Suspension closes the gate again without touching the kyc flag.
	callKyc(t, ct, "set_compliance_status", aliceUser+"|suspended", adminUser, true)
	res = callKyc(t, ct, "check_compliance", aliceUser, aliceUser, false)
	assert.Equal(t, "User not approved for trading", res.Err)
	res = callKyc(t, ct, "is_kyc_verified", aliceUser, aliceUser, true)
	assert.Equal(t, "true", res.Ret)
}

func TestStatusAcceptsNamesAndDigits(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)

	callKyc(t, ct, "set_compliance_status", aliceUser+"|2", adminUser, true)
	res := callKyc(t, ct, "get_compliance_status", aliceUser, aliceUser, true)
	assert.Equal(t, "rejected", res.Ret)

	callKyc(t, ct, "set_compliance_status", aliceUser+"|approved", adminUser, true)
	res = callKyc(t, ct, "get_compliance_status", aliceUser, aliceUser, true)
	assert.Equal(t, "approved", res.Ret)

	res = callKyc(t, ct, "set_compliance_status", aliceUser+"|nonsense", adminUser, false)
	assert.Equal(t, "invalid compliance status", res.Err)
}

func TestViewsDefaultForUnknownUsers(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)

	res := callKyc(t, ct, "is_kyc_verified", bobUser, bobUser, true)
	assert.Equal(t, "false", res.Ret)
	res = callKyc(t, ct, "get_compliance_status", bobUser, bobUser, true)
	assert.Equal(t, "pending", res.Ret)
}

func TestRevokingKycClosesGate(t *testing.T) {
	ct := setupKycTest(t)
	callKyc(t, ct, "initialize", "", adminUser, true)
	callKyc(t, ct, "set_kyc_status", aliceUser+"|true", adminUser, true)
	callKyc(t, ct, "set_compliance_status", aliceUser+"|approved", adminUser, true)
	callKyc(t, ct, "check_compliance", aliceUser, aliceUser, true)

	callKyc(t, ct, "set_kyc_status", aliceUser+"|false", adminUser, true)
	res := callKyc(t, ct, "check_compliance", aliceUser, aliceUser, false)
	assert.Equal(t, "User not KYC verified", res.Err)
}
