package vault

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// VaultConfig is the single mutable config blob under ConfigKey.
type VaultConfig struct {
	Admin            sdk.Address
	Stablecoin       sdk.Asset
	TotalCapacity    rwa.Amount
	Available        rwa.Amount
	BufferPercentage uint64
	ControlledMode   bool
	EmergencyPause   bool
}

// LiquidationRequest is one queued payout; its id doubles as the queue slot.
type LiquidationRequest struct {
	RequestId        uint64
	Property         sdk.Address
	User             sdk.Address
	Amount           rwa.Amount
	Timestamp        int64
	EstimatedFulfill int64
}

// PropertyVaultStats aggregates per-property liquidation history plus the
// advisory cash flow figures feeding the fulfillment estimate.
type PropertyVaultStats struct {
	Property        sdk.Address
	TotalLiquidated rwa.Amount
	LastLiquidation int64
	ActiveUsers     uint64
	CashFlowMonthly rwa.Amount
}

// QueueStatus is a view-only aggregate of the live queue.
type QueueStatus struct {
	TotalQueued        uint64
	TotalAmount        rwa.Amount
	ControlledMode     bool
	HeadIndex          uint64
	TailIndex          uint64
	EstimatedClearTime int64
}

// bufferThreshold recomputes the protected floor from the current config.
// Integer division truncates on purpose.
func bufferThreshold(cfg *VaultConfig) rwa.Amount {
	return rwa.MulChecked(cfg.TotalCapacity, rwa.Amount(cfg.BufferPercentage), "buffer threshold") / 100
}
