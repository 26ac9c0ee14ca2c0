package rwa

import (
	"strconv"

	"verse_contracts/sdk"
)

// StateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func StateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// GetCount reads the string counter under the key and defaults to zero.
func GetCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// SetCount stores uint64 counters back as decimal strings for the host kv.
func SetCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// PackU64LEInline sprinkles a uint64 into dst in little-endian order so keys stay compact.
func PackU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// PrefixedU64Key builds a 1-byte-prefix + packed-id storage key.
func PrefixedU64Key(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	PackU64LEInline(id, buf[1:])
	return string(buf[:])
}

// PrefixedAddressKey mixes a prefix plus address bytes to avoid nested maps in host storage.
func PrefixedAddressKey(prefix byte, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}
