//go:build wasm

package main

import "verse_contracts/kyc"

//go:wasmexport initialize
func initialize(payload *string) *string { return kyc.Initialize(payload) }

//go:wasmexport set_kyc_status
func setKycStatus(payload *string) *string { return kyc.SetKycStatus(payload) }

//go:wasmexport set_compliance_status
func setComplianceStatus(payload *string) *string { return kyc.SetComplianceStatus(payload) }

//go:wasmexport check_compliance
func checkCompliance(payload *string) *string { return kyc.CheckCompliance(payload) }

//go:wasmexport is_kyc_verified
func isKycVerified(payload *string) *string { return kyc.IsKycVerified(payload) }

//go:wasmexport get_compliance_status
func getComplianceStatus(payload *string) *string { return kyc.GetComplianceStatus(payload) }

//go:wasmexport get_admin
func getAdmin(payload *string) *string { return kyc.GetAdmin(payload) }
