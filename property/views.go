package property

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
	raw := rwa.UnwrapPayload(payload, "user address required")
	return rwa.ParseAddressField(raw, "user address")
}

// GetUserPosition returns the full position record.
// Payload: "user"
func GetUserPosition(payload *string) *string {
	loadConfig()
	pos := requirePosition(parseUserArg(payload))
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"user":`)
	w.String(pos.User.String())
	w.RawString(`,"tokens":`)
	w.Uint64(pos.Tokens)
	w.RawString(`,"initial_investment":`)
	w.Int64(int64(pos.InitialInvestment))
	w.RawString(`,"principal":`)
	w.Int64(int64(pos.Principal))
	w.RawString(`,"epoch_start":`)
	w.Int64(pos.EpochStart)
	w.RawString(`,"compounding":`)
	w.Bool(pos.Compounding)
	w.RawString(`,"consecutive_rollovers":`)
	w.Uint64(pos.ConsecutiveRollovers)
	w.RawString(`,"loyalty_tier":`)
	w.Uint64(pos.LoyaltyTier)
	w.RawString(`,"total_yield_earned":`)
	w.Int64(int64(pos.TotalYieldEarned))
	w.RawByte('}')
	return finishJSON(w)
}

// PreviewYield prices the running epoch without touching state.
// Payload: "user"
func PreviewYield(payload *string) *string {
	loadConfig()
	pos := requirePosition(parseUserArg(payload))
	preview := previewYield(pos, loadRoi(), rwa.NowUnix())
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"base_yield":`)
	w.Int64(int64(preview.Base))
	w.RawString(`,"compounding_bonus":`)
	w.Int64(int64(preview.CompoundingBonus))
	w.RawString(`,"loyalty_bonus":`)
	w.Int64(int64(preview.LoyaltyBonus))
	w.RawString(`,"total_yield":`)
	w.Int64(int64(preview.Total))
	w.RawString(`,"days_elapsed":`)
	w.Int64(preview.DaysElapsed)
	w.RawString(`,"days_remaining":`)
	w.Int64(preview.DaysRemaining)
	w.RawByte('}')
	return finishJSON(w)
}

// CanTakeAction reports whether the user's epoch is complete.
// Payload: "user"
func CanTakeAction(payload *string) *string {
	loadConfig()
	pos := requirePosition(parseUserArg(payload))
	return rwa.Strptr(strconv.FormatBool(epochComplete(pos, rwa.NowUnix())))
}

// IsInGracePeriod reports whether only the user may currently act.
// Payload: "user"
func IsInGracePeriod(payload *string) *string {
	loadConfig()
	pos := requirePosition(parseUserArg(payload))
	return rwa.Strptr(strconv.FormatBool(inGracePeriod(pos, rwa.NowUnix())))
}

// CanAdminRollover reports whether the grace period fully elapsed.
// Payload: "user"
func CanAdminRollover(payload *string) *string {
	loadConfig()
	pos := requirePosition(parseUserArg(payload))
	return rwa.Strptr(strconv.FormatBool(adminRolloverAllowed(pos, rwa.NowUnix())))
}

// TotalActiveTokens returns the tokens locked in open positions.
func TotalActiveTokens(payload *string) *string {
	loadConfig()
	return rwa.Strptr(strconv.FormatUint(rwa.GetCount(TotalActiveKey), 10))
}

// GetMetadata returns the immutable offering description.
func GetMetadata(payload *string) *string {
	cfg := loadConfig()
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"name":`)
	w.String(cfg.Meta.Name)
	w.RawString(`,"symbol":`)
	w.String(cfg.Meta.Symbol)
	w.RawString(`,"decimals":`)
	w.Uint64(cfg.Meta.Decimals)
	w.RawString(`,"total_supply":`)
	w.Uint64(cfg.Meta.TotalSupply)
	w.RawString(`,"token_price":`)
	w.Int64(int64(cfg.Meta.TokenPrice))
	w.RawString(`,"vault":`)
	w.String(cfg.Vault.String())
	w.RawString(`,"kyc":`)
	w.String(cfg.Kyc.String())
	w.RawString(`,"stablecoin":`)
	w.String(cfg.Stablecoin.String())
	w.RawByte('}')
	return finishJSON(w)
}

// GetRoiConfig returns the current yield knobs.
func GetRoiConfig(payload *string) *string {
	loadConfig()
	roi := loadRoi()
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"annual_rate_bps":`)
	w.Uint64(roi.AnnualRateBps)
	w.RawString(`,"compounding_bonus_bps":`)
	w.Uint64(roi.CompoundingBonusBps)
	w.RawString(`,"loyalty_bonus_bps":`)
	w.Uint64(roi.LoyaltyBonusBps)
	w.RawString(`,"cash_flow_monthly":`)
	w.Int64(int64(roi.CashFlowMonthly))
	w.RawByte('}')
	return finishJSON(w)
}

// GetAdmin returns the stored admin address.
func GetAdmin(payload *string) *string {
	return rwa.Strptr(loadConfig().Admin.String())
}
