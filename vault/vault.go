package vault

import (
	"fmt"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Entry Points
// -----------------------------------------------------------------------------

// Initialize sets the caller as vault admin with the default buffer.
// Payload: "stablecoinAsset"
func Initialize(payload *string) *string {
	if isInitialized() {
		sdk.Abort("Vault already initialized")
	}
	asset := rwa.UnwrapPayload(payload, "stablecoin asset required")
	if !rwa.IsValidAsset(asset) {
		sdk.Abort("unsupported stablecoin asset")
	}
	cfg := &VaultConfig{
		Admin:            rwa.SenderAddress(),
		Stablecoin:       sdk.Asset(asset),
		BufferPercentage: DefaultBufferPercentage,
	}
	saveConfig(cfg)
	rwa.SetCount(QueueHeadKey, 0)
	rwa.SetCount(QueueTailKey, 0)
	emitInitialized(cfg.Admin.String(), cfg.BufferPercentage)
	return rwa.Strptr("vault initialized")
}

// FundVault pulls stablecoin from the admin into the pool, growing both
// capacity and available liquidity, then drains the queue if one built up.
// Payload: "amount" (base units), requires a covering transfer.allow intent.
func FundVault(payload *string) *string {
	cfg := requireAdmin()
	if cfg.EmergencyPause {
		sdk.Abort("Emergency paused")
	}
	raw := rwa.UnwrapPayload(payload, "funding amount required")
	amount := rwa.ParseAmountField(raw, "funding amount")
	if amount <= 0 {
		sdk.Abort("Funding amount must be positive")
	}
	rwa.RequireTransferAllow(cfg.Stablecoin, amount)

	sender := rwa.SenderAddress()
	if rwa.Amount(sdk.GetBalance(sender, cfg.Stablecoin)) < amount {
		sdk.Abort("insufficient balance to fund vault")
	}
	// Re-read our own balance around the draw; a silently short transfer
	// would corrupt the accounting, so verify the delta.
	self := rwa.SelfAddress()
	before := sdk.GetBalance(self, cfg.Stablecoin)
	sdk.HiveDraw(rwa.AmountToInt64(amount), cfg.Stablecoin)
	after := sdk.GetBalance(self, cfg.Stablecoin)
	if rwa.Amount(after-before) != amount {
		sdk.Abort("funding transfer verification failed")
	}

	cfg.TotalCapacity = rwa.AddChecked(cfg.TotalCapacity, amount, "total capacity")
	cfg.Available = rwa.AddChecked(cfg.Available, amount, "available liquidity")
	emitVaultFunded(sender.String(), amount, cfg.TotalCapacity)

	if cfg.ControlledMode {
		attemptProcessQueue(cfg, rwa.NowUnix())
	}
	saveConfig(cfg)
	return rwa.Strptr("vault funded")
}

// AuthorizeProperty admits a property contract and creates its zeroed stats.
// Payload: "property"
func AuthorizeProperty(payload *string) *string {
	requireAdmin()
	raw := rwa.UnwrapPayload(payload, "property address required")
	property := rwa.ParseAddressField(raw, "property address")
	if property.Domain() != sdk.AddressDomainContract {
		sdk.Abort("property must be a contract address")
	}
	authorized := loadAuthorized()
	for _, a := range authorized {
		if a == property {
			sdk.Abort("Property already authorized")
		}
	}
	saveAuthorized(append(authorized, property))
	saveStats(&PropertyVaultStats{Property: property})
	emitPropertyAuthorized(property.String())
	return rwa.Strptr("property authorized")
}

// WithdrawLiquidity lets the admin shrink the pool, but never below the
// buffer plus everything the queue is still owed.
// Payload: "amount"
func WithdrawLiquidity(payload *string) *string {
	cfg := requireAdmin()
	if cfg.EmergencyPause {
		sdk.Abort("Emergency paused")
	}
	raw := rwa.UnwrapPayload(payload, "withdraw amount required")
	amount := rwa.ParseAmountField(raw, "withdraw amount")
	if amount <= 0 {
		sdk.Abort("Withdraw amount must be positive")
	}
	if amount > cfg.Available {
		sdk.Abort("Insufficient available liquidity")
	}
	minRequired := rwa.AddChecked(bufferThreshold(cfg), calculateQueueObligations(), "withdraw floor")
	if rwa.SubChecked(cfg.Available, amount, "available liquidity") < minRequired {
		sdk.Abort("Would violate buffer requirements")
	}
	cfg.Available = rwa.SubChecked(cfg.Available, amount, "available liquidity")
	cfg.TotalCapacity = rwa.SubChecked(cfg.TotalCapacity, amount, "total capacity")
	saveConfig(cfg)
	transferOut(cfg.Admin, amount, cfg)
	emitLiquidityWithdrawn(cfg.Admin.String(), amount)
	return rwa.Strptr("liquidity withdrawn")
}

// UpdateBufferPercentage changes the protected floor within [10,25].
// Takes effect on the next admission check only.
// Payload: "pct"
func UpdateBufferPercentage(payload *string) *string {
	cfg := requireAdmin()
	raw := rwa.UnwrapPayload(payload, "buffer percentage required")
	pct := rwa.ParseUintField(raw, "buffer percentage")
	if pct < MinBufferPercentage || pct > MaxBufferPercentage {
		sdk.Abort("Buffer percentage must be between 10 and 25")
	}
	old := cfg.BufferPercentage
	cfg.BufferPercentage = pct
	saveConfig(cfg)
	emitBufferUpdated(old, pct)
	return rwa.Strptr("buffer percentage updated")
}

// EmergencyPause halts funding, withdrawals and liquidation requests.
func EmergencyPause(payload *string) *string {
	cfg := requireAdmin()
	if cfg.EmergencyPause {
		sdk.Abort("Already paused")
	}
	cfg.EmergencyPause = true
	saveConfig(cfg)
	emitEmergencyPause()
	return rwa.Strptr("vault paused")
}

// EmergencyUnpause resumes operation and immediately tries to drain whatever
// backlog exists.
func EmergencyUnpause(payload *string) *string {
	cfg := requireAdmin()
	if !cfg.EmergencyPause {
		sdk.Abort("Not paused")
	}
	cfg.EmergencyPause = false
	emitEmergencyUnpause()
	if cfg.ControlledMode {
		attemptProcessQueue(cfg, rwa.NowUnix())
	}
	saveConfig(cfg)
	return rwa.Strptr("vault unpaused")
}

// RequestLiquidation is the property contracts' payout path. The caller
// identity is the capability: only the property named in the payload may
// request for itself, and it must be authorized. Aborts while the vault is
// paused. Pays instantly when the buffer allows and no backlog exists; queues
// otherwise. Returns "instant" or "queued:<id>".
// Payload: "property|user|amount"
func RequestLiquidation(payload *string) *string {
	cfg := loadConfig()
	if cfg.EmergencyPause {
		sdk.Abort("Emergency paused")
	}
	raw := rwa.UnwrapPayload(payload, "liquidation payload requires property|user|amount")
	get := rwa.SplitFields(raw)
	property := rwa.ParseAddressField(get(0), "property address")
	user := rwa.ParseAddressField(get(1), "user address")
	amount := rwa.ParseAmountField(get(2), "liquidation amount")

	if rwa.CallerAddress() != property {
		sdk.Abort("caller is not the property contract")
	}
	if !isAuthorizedProperty(property) {
		sdk.Abort("Property not authorized")
	}
	if amount <= 0 {
		sdk.Abort("Liquidation amount must be positive")
	}

	now := rwa.NowUnix()
	if !cfg.ControlledMode && canPay(cfg, amount) {
		req := &LiquidationRequest{
			Property:  property,
			User:      user,
			Amount:    amount,
			Timestamp: now,
		}
		payRequest(cfg, req, now)
		saveConfig(cfg)
		return rwa.Strptr("instant")
	}

	if !cfg.ControlledMode {
		cfg.ControlledMode = true
		emitControlledMode(true)
	}
	id := rwa.GetCount(QueueTailKey)
	req := &LiquidationRequest{
		RequestId:        id,
		Property:         property,
		User:             user,
		Amount:           amount,
		Timestamp:        now,
		EstimatedFulfill: estimateFulfillment(amount, now),
	}
	saveRequest(req)
	rwa.SetCount(QueueTailKey, id+1)
	saveConfig(cfg)
	emitLiquidationQueued(id, property.String(), user.String(), amount, req.EstimatedFulfill)
	return rwa.Strptr(fmt.Sprintf("queued:%d", id))
}

// ReportCashFlow lets an authorized property update its own advisory figures
// feeding the fulfillment estimate. Caller identity doubles as the property.
// Payload: "monthlyCashFlow|activeUsers"
func ReportCashFlow(payload *string) *string {
	loadConfig()
	property := rwa.CallerAddress()
	if !isAuthorizedProperty(property) {
		sdk.Abort("Property not authorized")
	}
	raw := rwa.UnwrapPayload(payload, "cash flow payload requires monthlyCashFlow|activeUsers")
	get := rwa.SplitFields(raw)
	monthly := rwa.ParseAmountField(get(0), "monthly cash flow")
	if monthly < 0 {
		sdk.Abort("invalid monthly cash flow")
	}
	activeUsers := rwa.ParseUintField(get(1), "active users")

	stats := loadStats(property)
	stats.CashFlowMonthly = monthly
	stats.ActiveUsers = activeUsers
	saveStats(stats)
	emitCashFlowReported(property.String(), monthly, activeUsers)
	return rwa.Strptr("cash flow reported")
}

// transferOut pays stablecoin from the vault's own balance.
func transferOut(to sdk.Address, amount rwa.Amount, cfg *VaultConfig) {
	sdk.HiveTransfer(to, rwa.AmountToInt64(amount), cfg.Stablecoin)
}

// Methods maps action names onto entry points for dispatch and tests.
func Methods() map[string]sdk.ContractMethod {
	return map[string]sdk.ContractMethod{
		"initialize":               Initialize,
		"fund_vault":               FundVault,
		"authorize_property":       AuthorizeProperty,
		"withdraw_liquidity":       WithdrawLiquidity,
		"update_buffer_percentage": UpdateBufferPercentage,
		"emergency_pause":          EmergencyPause,
		"emergency_unpause":        EmergencyUnpause,
		"request_liquidation":      RequestLiquidation,
		"report_cash_flow":         ReportCashFlow,
		"get_config":               GetConfig,
		"available_liquidity":      AvailableLiquidity,
		"total_capacity":           TotalCapacity,
		"is_authorized":            IsAuthorized,
		"get_queue_status":         GetQueueStatus,
		"queue_obligations":        QueueObligations,
		"get_property_stats":       GetPropertyStats,
	}
}
