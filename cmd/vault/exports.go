//go:build wasm

package main

import "verse_contracts/vault"

//go:wasmexport initialize
func initialize(payload *string) *string { return vault.Initialize(payload) }

//go:wasmexport fund_vault
func fundVault(payload *string) *string { return vault.FundVault(payload) }

//go:wasmexport authorize_property
func authorizeProperty(payload *string) *string { return vault.AuthorizeProperty(payload) }

//go:wasmexport withdraw_liquidity
func withdrawLiquidity(payload *string) *string { return vault.WithdrawLiquidity(payload) }

//go:wasmexport update_buffer_percentage
func updateBufferPercentage(payload *string) *string { return vault.UpdateBufferPercentage(payload) }

//go:wasmexport emergency_pause
func emergencyPause(payload *string) *string { return vault.EmergencyPause(payload) }

//go:wasmexport emergency_unpause
func emergencyUnpause(payload *string) *string { return vault.EmergencyUnpause(payload) }

//go:wasmexport request_liquidation
func requestLiquidation(payload *string) *string { return vault.RequestLiquidation(payload) }

//go:wasmexport report_cash_flow
func reportCashFlow(payload *string) *string { return vault.ReportCashFlow(payload) }

//go:wasmexport get_config
func getConfig(payload *string) *string { return vault.GetConfig(payload) }

//go:wasmexport available_liquidity
func availableLiquidity(payload *string) *string { return vault.AvailableLiquidity(payload) }

//go:wasmexport total_capacity
func totalCapacity(payload *string) *string { return vault.TotalCapacity(payload) }

//go:wasmexport is_authorized
func isAuthorized(payload *string) *string { return vault.IsAuthorized(payload) }

//go:wasmexport get_queue_status
func getQueueStatus(payload *string) *string { return vault.GetQueueStatus(payload) }

//go:wasmexport queue_obligations
func queueObligations(payload *string) *string { return vault.QueueObligations(payload) }

//go:wasmexport get_property_stats
func getPropertyStats(payload *string) *string { return vault.GetPropertyStats(payload) }
