package property

import (
	"fmt"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Entry Points
// -----------------------------------------------------------------------------

// Initialize stores the offering metadata with the caller as admin.
// Payload: "name|symbol|decimals|totalSupply|tokenPrice|vault|kyc|stablecoin"
func Initialize(payload *string) *string {
	if isInitialized() {
		sdk.Abort("Property already initialized")
	}
	raw := rwa.UnwrapPayload(payload, "property payload missing")
	get := rwa.SplitFields(raw)

	meta := PropertyMetadata{
		Name:        get(0),
		Symbol:      get(1),
		Decimals:    rwa.ParseUintField(get(2), "decimals"),
		TotalSupply: rwa.ParseUintField(get(3), "total supply"),
		TokenPrice:  rwa.ParseAmountField(get(4), "token price"),
	}
	if meta.TotalSupply == 0 {
		sdk.Abort("Total supply must be positive")
	}
	if meta.Decimals > MaxDecimals {
		sdk.Abort("Decimals must be 7 or less")
	}
	if meta.TokenPrice <= 0 {
		sdk.Abort("Token price must be positive")
	}

	cfg := &PropertyConfig{
		Admin:      rwa.SenderAddress(),
		Vault:      rwa.ParseAddressField(get(5), "vault address"),
		Kyc:        rwa.ParseAddressField(get(6), "kyc address"),
		Stablecoin: sdk.Asset(get(7)),
		Meta:       meta,
	}
	if cfg.Vault.Domain() != sdk.AddressDomainContract {
		sdk.Abort("vault must be a contract address")
	}
	if cfg.Kyc.Domain() != sdk.AddressDomainContract {
		sdk.Abort("kyc must be a contract address")
	}
	if !rwa.IsValidAsset(cfg.Stablecoin.String()) {
		sdk.Abort("unsupported stablecoin asset")
	}

	saveConfig(cfg)
	saveRoi(&RoiConfig{
		AnnualRateBps:       DefaultAnnualRateBps,
		CompoundingBonusBps: DefaultCompoundingBonusBps,
		LoyaltyBonusBps:     DefaultLoyaltyBonusBps,
	})
	rwa.SetCount(TotalActiveKey, 0)
	rwa.SetCount(HoldersKey, 0)
	emitInitialized(cfg.Admin.String(), meta.Symbol, meta.TotalSupply)
	return rwa.Strptr("property initialized")
}

// UpdateRoiConfig tunes the yield knobs. A changed cash flow figure is
// forwarded to the vault so fulfillment estimates track reality.
// Payload: "annualBps|compoundingBps|loyaltyBps|cashFlowMonthly"
func UpdateRoiConfig(payload *string) *string {
	cfg := requireAdmin()
	raw := rwa.UnwrapPayload(payload, "roi payload missing")
	get := rwa.SplitFields(raw)

	roi := &RoiConfig{
		AnnualRateBps:       rwa.ParseUintField(get(0), "annual rate"),
		CompoundingBonusBps: rwa.ParseUintField(get(1), "compounding bonus"),
		LoyaltyBonusBps:     rwa.ParseUintField(get(2), "loyalty bonus"),
		CashFlowMonthly:     rwa.ParseAmountField(get(3), "monthly cash flow"),
	}
	if roi.AnnualRateBps == 0 || roi.AnnualRateBps > MaxAnnualRateBps {
		sdk.Abort("Annual rate must be between 1 and 2000 basis points")
	}
	if roi.CashFlowMonthly < 0 {
		sdk.Abort("invalid monthly cash flow")
	}

	old := loadRoi()
	saveRoi(roi)
	emitRoiUpdated(roi.AnnualRateBps, roi.CompoundingBonusBps, roi.LoyaltyBonusBps, roi.CashFlowMonthly)

	if roi.CashFlowMonthly != old.CashFlowMonthly {
		report := fmt.Sprintf("%s|%d", rwa.FormatAmount(roi.CashFlowMonthly), rwa.GetCount(HoldersKey))
		sdk.ContractCall(cfg.Vault.String(), "report_cash_flow", report, nil)
	}
	return rwa.Strptr("roi config updated")
}

// PurchaseTokens opens the sender's position: compliance check against the
// kyc oracle, overflow-checked cost, verified stablecoin draw.
// Payload: "tokenAmount|compounding", requires a covering transfer.allow intent.
func PurchaseTokens(payload *string) *string {
	cfg := loadConfig()
	buyer := rwa.SenderAddress()
	if _, exists := loadPosition(buyer); exists {
		sdk.Abort("User already has an active position")
	}

	raw := rwa.UnwrapPayload(payload, "purchase payload requires tokenAmount|compounding")
	get := rwa.SplitFields(raw)
	tokens := rwa.ParseUintField(get(0), "token amount")
	compounding := rwa.ParseBoolField(get(1))
	if tokens == 0 {
		sdk.Abort("Token amount must be positive")
	}
	totalActive := rwa.GetCount(TotalActiveKey)
	if totalActive+tokens > cfg.Meta.TotalSupply {
		sdk.Abort("Insufficient tokens available")
	}

	// Aborts inside the oracle (not verified / not approved) fail the purchase.
	sdk.ContractCall(cfg.Kyc.String(), "check_compliance", buyer.String(), nil)

	cost := rwa.MulChecked(rwa.Amount(tokens), cfg.Meta.TokenPrice, "purchase cost")
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

	savePosition(&UserPosition{
		User:              buyer,
		Tokens:            tokens,
		InitialInvestment: cost,
		Principal:         cost,
		EpochStart:        rwa.NowUnix(),
		Compounding:       compounding,
	})
	rwa.SetCount(TotalActiveKey, totalActive+tokens)
	rwa.SetCount(HoldersKey, rwa.GetCount(HoldersKey)+1)
	emitTokensPurchased(buyer.String(), tokens, cost, compounding)
	return rwa.Strptr("tokens purchased")
}

// RolloverPosition lets the user roll a completed epoch into the next one.
func RolloverPosition(payload *string) *string {
	loadConfig()
	user := rwa.SenderAddress()
	pos := requirePosition(user)
	now := rwa.NowUnix()
	if !epochComplete(pos, now) {
		sdk.Abort("Epoch not yet complete")
	}
	applyRollover(pos, now, false)
	return rwa.Strptr("position rolled over")
}

// AdminRolloverPosition rolls a position the user abandoned, but only after
// the grace period fully elapsed.
// Payload: "user"
func AdminRolloverPosition(payload *string) *string {
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "user address required")
	user := rwa.ParseAddressField(raw, "user address")
	pos := requirePosition(user)
	now := rwa.NowUnix()
	if !adminRolloverAllowed(pos, now) {
		sdk.Abort("Grace period has not elapsed")
	}
	applyRollover(pos, now, true)
	return rwa.Strptr("position rolled over")
}

// applyRollover books one epoch of yield: principal grows only when
// compounding, the loyalty tier climbs to its cap, and the next epoch
// starts now (not at the old epoch's end).
func applyRollover(pos *UserPosition, now int64, adminTriggered bool) {
	roi := loadRoi()
	base, compounding, loyalty := calculateYield(pos, roi)
	total := rwa.AddChecked(rwa.AddChecked(base, compounding, "yield total"), loyalty, "yield total")

	if pos.Compounding {
		pos.Principal = rwa.AddChecked(pos.Principal, total, "principal")
	}
	pos.TotalYieldEarned = rwa.AddChecked(pos.TotalYieldEarned, total, "total yield earned")
	pos.ConsecutiveRollovers++
	pos.LoyaltyTier = pos.ConsecutiveRollovers
	if pos.LoyaltyTier > MaxLoyaltyTier {
		pos.LoyaltyTier = MaxLoyaltyTier
	}
	pos.EpochStart = now
	savePosition(pos)
	emitRollover(pos.User.String(), total, pos.LoyaltyTier, adminTriggered)
}

// LiquidatePosition closes the sender's position after a completed epoch.
// The payout (principal plus one final epoch of yield) is requested from the
// vault; whether the vault pays instantly or queues is not this contract's
// concern, the position is gone either way.
func LiquidatePosition(payload *string) *string {
	cfg := loadConfig()
	user := rwa.SenderAddress()
	pos := requirePosition(user)
	now := rwa.NowUnix()
	if !epochComplete(pos, now) {
		sdk.Abort("Epoch not yet complete")
	}

	roi := loadRoi()
	base, compounding, loyalty := calculateYield(pos, roi)
	finalYield := rwa.AddChecked(rwa.AddChecked(base, compounding, "yield total"), loyalty, "yield total")
	payout := rwa.AddChecked(pos.Principal, finalYield, "liquidation payout")

	request := fmt.Sprintf("%s|%s|%s", rwa.SelfAddress(), user, rwa.FormatAmount(payout))
	ret := sdk.ContractCall(cfg.Vault.String(), "request_liquidation", request, nil)
	result := ""
	if ret != nil {
		result = *ret
	}

	rwa.SetCount(TotalActiveKey, rwa.GetCount(TotalActiveKey)-pos.Tokens)
	if holders := rwa.GetCount(HoldersKey); holders > 0 {
		rwa.SetCount(HoldersKey, holders-1)
	}
	deletePosition(user)
	emitLiquidated(user.String(), pos.Tokens, payout, result)
	return rwa.Strptr(result)
}

// Methods maps action names onto entry points for dispatch and tests.
func Methods() map[string]sdk.ContractMethod {
	return map[string]sdk.ContractMethod{
		"initialize":              Initialize,
		"update_roi_config":       UpdateRoiConfig,
		"purchase_tokens":         PurchaseTokens,
		"rollover_position":       RolloverPosition,
		"admin_rollover_position": AdminRolloverPosition,
		"liquidate_position":      LiquidatePosition,
		"get_user_position":       GetUserPosition,
		"preview_yield":           PreviewYield,
		"can_take_action":         CanTakeAction,
		"is_in_grace_period":      IsInGracePeriod,
		"can_admin_rollover":      CanAdminRollover,
		"total_active_tokens":     TotalActiveTokens,
		"get_metadata":            GetMetadata,
		"get_roi_config":          GetRoiConfig,
		"get_admin":               GetAdmin,
	}
}
