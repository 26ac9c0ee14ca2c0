package rwa

import (
	"fmt"
	"strconv"
	"strings"

	"verse_contracts/sdk"
)

// UnwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func UnwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// SplitFields splits the pipe-delimited payload and hands out a safe getter.
func SplitFields(raw string) func(i int) string {
	parts := strings.Split(raw, "|")
	return func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
}

// ParseUintField is the uint variant used for counts and ids.
func ParseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// ParseAmountField reads raw base units (7 decimals) as a signed integer.
func ParseAmountField(val string, field string) Amount {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return Amount(n)
}

// ParseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func ParseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// ParseAddressField validates the address prefix and aborts with the field name.
func ParseAddressField(val string, field string) sdk.Address {
	addr := sdk.Address(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return addr
}

// Strptr is a tiny helper for the *string returns the wasm abi wants.
func Strptr(s string) *string {
	return &s
}
