// Package rwa carries the plumbing shared by the real-estate contract suite:
// scaled amounts with checked arithmetic, payload parsing, the binary record
// codec and env access helpers.
package rwa

import (
	"fmt"
	"math"
	"strconv"

	"verse_contracts/sdk"
)

// AmountScale matches the chain's 7-decimal base units, so 1.0 USDC == 10^7.
const AmountScale = sdk.AssetScale

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for ledger transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// FormatAmount renders the raw base units as decimal text for views and events.
func FormatAmount(v Amount) string {
	return strconv.FormatInt(int64(v), 10)
}

// AddChecked aborts the transaction on int64 overflow instead of wrapping.
// Every balance figure in this suite is money, so wrapping is never ok.
func AddChecked(a, b Amount, field string) Amount {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		sdk.Abort(fmt.Sprintf("arithmetic overflow in %s", field))
	}
	return sum
}

// SubChecked aborts when the subtraction would wrap.
func SubChecked(a, b Amount, field string) Amount {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		sdk.Abort(fmt.Sprintf("arithmetic overflow in %s", field))
	}
	return diff
}

// MulChecked aborts on overflow, used for cost = tokens * price style math.
func MulChecked(a, b Amount, field string) Amount {
	if a == 0 || b == 0 {
		return 0
	}
	prod := a * b
	if prod/b != a {
		sdk.Abort(fmt.Sprintf("arithmetic overflow in %s", field))
	}
	return prod
}

// validAssets lists the supported stablecoin assets for vault and purchases.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
}

// IsValidAsset checks if a given token string is one of the supported assets.
func IsValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}
