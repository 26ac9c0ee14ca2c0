package rwa

import (
	"strconv"
	"time"

	"verse_contracts/sdk"
)

// CurrentEnv fetches the env snapshot of the running call. Nested contract
// calls get their own env, so no per-tx memoization here.
func CurrentEnv() sdk.Env {
	return sdk.GetEnv()
}

// SenderAddress returns the address of the current transaction sender.
func SenderAddress() sdk.Address {
	return CurrentEnv().Sender.Address
}

// CallerAddress returns the invoking address: the sender at the top level,
// the calling contract inside a nested contract call.
func CallerAddress() sdk.Address {
	return CurrentEnv().Caller
}

// SelfAddress returns the executing contract's own address.
func SelfAddress() sdk.Address {
	return sdk.Address(CurrentEnv().ContractId)
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// FirstTransferAllow scans the call intents and returns the first valid
// transfer.allow intent, or nil when the caller attached none.
func FirstTransferAllow() *TransferAllow {
	for _, intent := range CurrentEnv().Intents {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !IsValidAsset(token) {
				sdk.Abort("invalid intent asset")
			}
			limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
			if err != nil {
				sdk.Abort("invalid intent limit")
			}
			return &TransferAllow{
				Limit: FloatToAmount(limit),
				Token: sdk.Asset(token),
			}
		}
	}
	return nil
}

// RequireTransferAllow aborts unless an intent covers amount in the given asset.
func RequireTransferAllow(asset sdk.Asset, amount Amount) {
	ta := FirstTransferAllow()
	if ta == nil {
		sdk.Abort("transfer.allow intent required")
	}
	if ta.Token != asset {
		sdk.Abort("intent token does not match")
	}
	if ta.Limit < amount {
		sdk.Abort("intent limit below required amount")
	}
}

// NowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func NowUnix() int64 {
	if ts := CurrentEnv().Timestamp; ts != "" {
		if v, ok := ParseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := ParseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// ParseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func ParseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
