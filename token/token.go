package token

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Entry Points
// -----------------------------------------------------------------------------

// Initialize mints the full supply to the issuer (the sender). Transfers start
// restricted: the issuer has to lift the restriction explicitly once the
// offering is ready to trade.
// Payload: "name|symbol|decimals|totalSupply|usdcPrice|stablecoin|authRequired|authRevocable|clawbackEnabled"
func Initialize(payload *string) *string {
	if isInitialized() {
		sdk.Abort("Token already initialized")
	}
	raw := rwa.UnwrapPayload(payload, "token payload missing")
	get := rwa.SplitFields(raw)

	cfg := &TokenConfig{
		Name:                   get(0),
		Symbol:                 get(1),
		Decimals:               rwa.ParseUintField(get(2), "decimals"),
		TotalSupply:            rwa.ParseAmountField(get(3), "total supply"),
		Issuer:                 rwa.SenderAddress(),
		UsdcPrice:              rwa.ParseAmountField(get(4), "usdc price"),
		Stablecoin:             sdk.Asset(get(5)),
		AuthorizationRequired:  rwa.ParseBoolField(get(6)),
		AuthorizationRevocable: rwa.ParseBoolField(get(7)),
		ClawbackEnabled:        rwa.ParseBoolField(get(8)),
		TransferRestricted:     true,
	}
	if cfg.TotalSupply <= 0 {
		sdk.Abort("Total supply must be positive")
	}
	if cfg.Decimals > MaxDecimals {
		sdk.Abort("Decimals must be 7 or less")
	}
	if cfg.UsdcPrice <= 0 {
		sdk.Abort("Token price must be positive")
	}
	if !rwa.IsValidAsset(cfg.Stablecoin.String()) {
		sdk.Abort("unsupported stablecoin asset")
	}

	saveConfig(cfg)
	saveAdmins([]sdk.Address{cfg.Issuer})
	setBalance(cfg.Issuer, cfg.TotalSupply)
	emitInitialized(cfg.Symbol, cfg.Issuer.String(), cfg.TotalSupply)
	return rwa.Strptr("token initialized")
}

// Transfer moves tokens between holders. While the restriction flag is on,
// only admins may originate transfers; both parties must clear compliance
// whenever authorization is required.
// Payload: "to|amount"
func Transfer(payload *string) *string {
	cfg := loadConfig()
	from := rwa.SenderAddress()
	raw := rwa.UnwrapPayload(payload, "transfer payload requires to|amount")
	get := rwa.SplitFields(raw)
	to := rwa.ParseAddressField(get(0), "recipient address")
	amount := rwa.ParseAmountField(get(1), "amount")
	if amount <= 0 {
		sdk.Abort("Transfer amount must be positive")
	}
	if cfg.TransferRestricted && !isAdmin(from) {
		sdk.Abort("Transfers are restricted")
	}
	requireCompliant(cfg, from)
	requireCompliant(cfg, to)

	fromBal := balanceOf(from)
	if fromBal < amount {
		sdk.Abort("Insufficient token balance")
	}
	setBalance(from, fromBal-amount)
	setBalance(to, rwa.AddChecked(balanceOf(to), amount, "recipient balance"))
	emitTransfer(from.String(), to.String(), amount)
	return rwa.Strptr("transfer complete")
}

// Clawback burns tokens out of a holder's balance. The tokens are not
// re-credited anywhere, so total circulating supply shrinks.
// Payload: "from|amount"
func Clawback(payload *string) *string {
	cfg := loadConfig()
	requireAdmin()
	if !cfg.ClawbackEnabled {
		sdk.Abort("Clawback is disabled")
	}
	raw := rwa.UnwrapPayload(payload, "clawback payload requires from|amount")
	get := rwa.SplitFields(raw)
	from := rwa.ParseAddressField(get(0), "holder address")
	amount := rwa.ParseAmountField(get(1), "amount")
	if amount <= 0 {
		sdk.Abort("Clawback amount must be positive")
	}
	bal := balanceOf(from)
	if bal < amount {
		sdk.Abort("Insufficient token balance")
	}
	setBalance(from, bal-amount)
	emitClawback(from.String(), amount)
	return rwa.Strptr("clawback complete")
}

// AddAdmin grows the admin set. Admins cannot be removed.
// Payload: "admin"
func AddAdmin(payload *string) *string {
	loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "admin address required")
	addr := rwa.ParseAddressField(raw, "admin address")
	if isAdmin(addr) {
		sdk.Abort("Already an admin")
	}
	saveAdmins(append(loadAdmins(), addr))
	emitAdminAdded(addr.String())
	return rwa.Strptr("admin added")
}

// ConfigureAuthorization flips the compliance flags. Once revocability is
// given up it cannot be reclaimed.
// Payload: "required|revocable"
func ConfigureAuthorization(payload *string) *string {
	cfg := loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "authorization payload requires required|revocable")
	get := rwa.SplitFields(raw)
	required := rwa.ParseBoolField(get(0))
	revocable := rwa.ParseBoolField(get(1))
	if !cfg.AuthorizationRevocable && revocable {
		sdk.Abort("Authorization revocability cannot be restored")
	}
	cfg.AuthorizationRequired = required
	cfg.AuthorizationRevocable = revocable
	saveConfig(cfg)
	return rwa.Strptr("authorization configured")
}

// SetTransferRestriction toggles the global transfer gate.
// Payload: "restricted"
func SetTransferRestriction(payload *string) *string {
	cfg := loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "restriction flag required")
	cfg.TransferRestricted = rwa.ParseBoolField(raw)
	saveConfig(cfg)
	return rwa.Strptr("transfer restriction updated")
}

// SetKycStatus records the holder's verification flag on the ledger's own
// compliance map.
// Payload: "user|verified"
func SetKycStatus(payload *string) *string {
	loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "kyc payload requires user|verified")
	get := rwa.SplitFields(raw)
	user := rwa.ParseAddressField(get(0), "user address")
	verified := rwa.ParseBoolField(get(1))
	setKycVerified(user, verified)
	return rwa.Strptr("kyc status updated")
}

// SetComplianceStatus moves a holder through the compliance lifecycle.
// Payload: "user|status"
func SetComplianceStatus(payload *string) *string {
	cfg := loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "compliance payload requires user|status")
	get := rwa.SplitFields(raw)
	user := rwa.ParseAddressField(get(0), "user address")
	status := parseStatusField(get(1))
	if status != StatusApproved && !cfg.AuthorizationRevocable {
		// Once granted, approval can only be withdrawn while revocable.
		if complianceStatus(user) == StatusApproved {
			sdk.Abort("Authorization is not revocable")
		}
	}
	setComplianceStatus(user, status)
	return rwa.Strptr("compliance status updated")
}

// Purchase sells tokens out of the issuer's balance at the fixed usdc price.
// The cost is tokenAmount * price / 10^decimals because token amounts carry
// the token's own decimal scaling.
// Payload: "tokenAmount", requires a covering transfer.allow intent.
func Purchase(payload *string) *string {
	cfg := loadConfig()
	buyer := rwa.SenderAddress()
	raw := rwa.UnwrapPayload(payload, "token amount required")
	amount := rwa.ParseAmountField(raw, "token amount")
	if amount <= 0 {
		sdk.Abort("Purchase amount must be positive")
	}
	requireCompliant(cfg, buyer)

	cost := rwa.MulChecked(amount, cfg.UsdcPrice, "purchase cost")
	cost /= rwa.Amount(pow10(cfg.Decimals))
	if cost <= 0 {
		sdk.Abort("Purchase cost rounds to zero")
	}

	issuerBal := balanceOf(cfg.Issuer)
	if issuerBal < amount {
		sdk.Abort("Insufficient tokens available")
	}
	if rwa.Amount(sdk.GetBalance(buyer, cfg.Stablecoin)) < cost {
		sdk.Abort("Insufficient stablecoin balance")
	}
	rwa.RequireTransferAllow(cfg.Stablecoin, cost)

	self := rwa.SelfAddress()
	before := sdk.GetBalance(self, cfg.Stablecoin)
	sdk.HiveDraw(rwa.AmountToInt64(cost), cfg.Stablecoin)
	after := sdk.GetBalance(self, cfg.Stablecoin)
	if rwa.Amount(after-before) != cost {
		sdk.Abort("purchase transfer verification failed")
	}

	setBalance(cfg.Issuer, issuerBal-amount)
	setBalance(buyer, rwa.AddChecked(balanceOf(buyer), amount, "buyer balance"))
	cfg.UsdcBalance = rwa.AddChecked(cfg.UsdcBalance, cost, "usdc balance")
	saveConfig(cfg)
	emitPurchase(buyer.String(), amount, cost)
	return rwa.Strptr("purchase complete")
}

// WithdrawUsdc pays accumulated sale proceeds out to an admin-chosen address.
// Payload: "to|amount"
func WithdrawUsdc(payload *string) *string {
	cfg := loadConfig()
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "withdraw payload requires to|amount")
	get := rwa.SplitFields(raw)
	to := rwa.ParseAddressField(get(0), "recipient address")
	amount := rwa.ParseAmountField(get(1), "amount")
	if amount <= 0 {
		sdk.Abort("Withdrawal amount must be positive")
	}
	if cfg.UsdcBalance < amount {
		sdk.Abort("Insufficient usdc balance")
	}
	cfg.UsdcBalance -= amount
	saveConfig(cfg)
	sdk.HiveTransfer(to, rwa.AmountToInt64(amount), cfg.Stablecoin)
	emitUsdcWithdrawn(to.String(), amount)
	return rwa.Strptr("usdc withdrawn")
}

func pow10(n uint64) int64 {
	out := int64(1)
	for i := uint64(0); i < n; i++ {
		out *= 10
	}
	return out
}

// Methods maps action names onto entry points for dispatch and tests.
func Methods() map[string]sdk.ContractMethod {
	return map[string]sdk.ContractMethod{
		"initialize":               Initialize,
		"transfer":                 Transfer,
		"clawback":                 Clawback,
		"add_admin":                AddAdmin,
		"configure_authorization":  ConfigureAuthorization,
		"set_transfer_restriction": SetTransferRestriction,
		"set_kyc_status":           SetKycStatus,
		"set_compliance_status":    SetComplianceStatus,
		"purchase":                 Purchase,
		"withdraw_usdc":            WithdrawUsdc,
		"balance_of":               BalanceOf,
		"get_metadata":             GetMetadata,
		"get_usdc_balance":         GetUsdcBalance,
		"is_admin":                 IsAdmin,
		"is_kyc_verified":          IsKycVerified,
		"get_compliance_status":    GetComplianceStatus,
	}
}
