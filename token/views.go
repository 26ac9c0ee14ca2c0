package token

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

func finishJSON(w *jwriter.Writer) *string {
	buf, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("could not serialize view")
	}
	out := string(buf)
	return &out
}

func parseUserArg(payload *string) sdk.Address {
	raw := rwa.UnwrapPayload(payload, "address required")
	return rwa.ParseAddressField(raw, "address")
}

// BalanceOf returns the holder's token balance in base units.
// Payload: "user"
func BalanceOf(payload *string) *string {
	loadConfig()
	return rwa.Strptr(rwa.FormatAmount(balanceOf(parseUserArg(payload))))
}

// GetMetadata returns the token description and the compliance flags.
func GetMetadata(payload *string) *string {
	cfg := loadConfig()
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"name":`)
	w.String(cfg.Name)
	w.RawString(`,"symbol":`)
	w.String(cfg.Symbol)
	w.RawString(`,"decimals":`)
	w.Uint64(cfg.Decimals)
	w.RawString(`,"total_supply":`)
	w.Int64(int64(cfg.TotalSupply))
	w.RawString(`,"issuer":`)
	w.String(cfg.Issuer.String())
	w.RawString(`,"usdc_price":`)
	w.Int64(int64(cfg.UsdcPrice))
	w.RawString(`,"stablecoin":`)
	w.String(cfg.Stablecoin.String())
	w.RawString(`,"authorization_required":`)
	w.Bool(cfg.AuthorizationRequired)
	w.RawString(`,"authorization_revocable":`)
	w.Bool(cfg.AuthorizationRevocable)
	w.RawString(`,"clawback_enabled":`)
	w.Bool(cfg.ClawbackEnabled)
	w.RawString(`,"transfer_restricted":`)
	w.Bool(cfg.TransferRestricted)
	w.RawByte('}')
	return finishJSON(w)
}

// GetUsdcBalance returns the proceeds held by the contract.
func GetUsdcBalance(payload *string) *string {
	return rwa.Strptr(rwa.FormatAmount(loadConfig().UsdcBalance))
}

// IsAdmin reports whether the address is in the admin set.
// Payload: "addr"
func IsAdmin(payload *string) *string {
	loadConfig()
	return rwa.Strptr(strconv.FormatBool(isAdmin(parseUserArg(payload))))
}

// IsKycVerified reports the holder's verification flag.
// Payload: "user"
func IsKycVerified(payload *string) *string {
	loadConfig()
	return rwa.Strptr(strconv.FormatBool(kycVerified(parseUserArg(payload))))
}

// GetComplianceStatus returns the holder's lifecycle status by name.
// Payload: "user"
func GetComplianceStatus(payload *string) *string {
	loadConfig()
	return rwa.Strptr(complianceStatus(parseUserArg(payload)).String())
}
