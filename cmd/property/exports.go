//go:build wasm

package main

import "verse_contracts/property"

//go:wasmexport initialize
func initialize(payload *string) *string { return property.Initialize(payload) }

//go:wasmexport update_roi_config
func updateRoiConfig(payload *string) *string { return property.UpdateRoiConfig(payload) }

//go:wasmexport purchase_tokens
func purchaseTokens(payload *string) *string { return property.PurchaseTokens(payload) }

//go:wasmexport rollover_position
func rolloverPosition(payload *string) *string { return property.RolloverPosition(payload) }

//go:wasmexport admin_rollover_position
func adminRolloverPosition(payload *string) *string { return property.AdminRolloverPosition(payload) }

//go:wasmexport liquidate_position
func liquidatePosition(payload *string) *string { return property.LiquidatePosition(payload) }

//go:wasmexport get_user_position
func getUserPosition(payload *string) *string { return property.GetUserPosition(payload) }

//go:wasmexport preview_yield
func previewYield(payload *string) *string { return property.PreviewYield(payload) }

//go:wasmexport can_take_action
func canTakeAction(payload *string) *string { return property.CanTakeAction(payload) }

//go:wasmexport is_in_grace_period
func isInGracePeriod(payload *string) *string { return property.IsInGracePeriod(payload) }

//go:wasmexport can_admin_rollover
func canAdminRollover(payload *string) *string { return property.CanAdminRollover(payload) }

//go:wasmexport total_active_tokens
func totalActiveTokens(payload *string) *string { return property.TotalActiveTokens(payload) }

//go:wasmexport get_metadata
func getMetadata(payload *string) *string { return property.GetMetadata(payload) }

//go:wasmexport get_roi_config
func getRoiConfig(payload *string) *string { return property.GetRoiConfig(payload) }

//go:wasmexport get_admin
func getAdmin(payload *string) *string { return property.GetAdmin(payload) }
