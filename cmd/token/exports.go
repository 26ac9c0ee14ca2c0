//go:build wasm

package main

import "verse_contracts/token"

//go:wasmexport initialize
func initialize(payload *string) *string { return token.Initialize(payload) }

//go:wasmexport transfer
func transfer(payload *string) *string { return token.Transfer(payload) }

//go:wasmexport clawback
func clawback(payload *string) *string { return token.Clawback(payload) }

//go:wasmexport add_admin
func addAdmin(payload *string) *string { return token.AddAdmin(payload) }

//go:wasmexport configure_authorization
func configureAuthorization(payload *string) *string { return token.ConfigureAuthorization(payload) }

//go:wasmexport set_transfer_restriction
func setTransferRestriction(payload *string) *string { return token.SetTransferRestriction(payload) }

//go:wasmexport set_kyc_status
func setKycStatus(payload *string) *string { return token.SetKycStatus(payload) }

//go:wasmexport set_compliance_status
func setComplianceStatus(payload *string) *string { return token.SetComplianceStatus(payload) }

//go:wasmexport purchase
func purchase(payload *string) *string { return token.Purchase(payload) }

//go:wasmexport withdraw_usdc
func withdrawUsdc(payload *string) *string { return token.WithdrawUsdc(payload) }

//go:wasmexport balance_of
func balanceOf(payload *string) *string { return token.BalanceOf(payload) }

//go:wasmexport get_metadata
func getMetadata(payload *string) *string { return token.GetMetadata(payload) }

//go:wasmexport get_usdc_balance
func getUsdcBalance(payload *string) *string { return token.GetUsdcBalance(payload) }

//go:wasmexport is_admin
func isAdmin(payload *string) *string { return token.IsAdmin(payload) }

//go:wasmexport is_kyc_verified
func isKycVerified(payload *string) *string { return token.IsKycVerified(payload) }

//go:wasmexport get_compliance_status
func getComplianceStatus(payload *string) *string { return token.GetComplianceStatus(payload) }
