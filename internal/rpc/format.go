// Package rpc talks JSON-RPC 2.0 to Ethereum nodes and converts the
// hex-encoded wire data into native Go types. This file holds the parsing
// and display helpers: hex-to-decimal conversion, wei-to-ETH and
// wei-to-gwei scaling, and timestamp formatting.
package rpc

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseHexUint64 converts a hex-encoded string (with or without "0x" prefix)
// to uint64. Used for values that fit in 64 bits: block numbers, timestamps,
// gas counts, nonces.
//
// Examples:
//   - "0x172721e" -> 24277534
//   - "0x0" -> 0
//   - "" -> 0 (empty string treated as zero)
func ParseHexUint64(hex string) (uint64, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return 0, nil
	}

	val := new(big.Int)
	_, ok := val.SetString(hex, 16)
	if !ok || !val.IsUint64() {
		return 0, fmt.Errorf("invalid hex: %s", hex)
	}
	return val.Uint64(), nil
}

// ParseHexBigInt converts a hex-encoded string to *big.Int for values that
// may exceed uint64 range, such as gas prices in wei or transfer values.
func ParseHexBigInt(hex string) (*big.Int, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return big.NewInt(0), nil
	}

	val := new(big.Int)
	_, ok := val.SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex: %s", hex)
	}
	return val, nil
}

// Uint64ToHex converts a uint64 to a 0x-prefixed hex string for RPC params.
func Uint64ToHex(n uint64) string {
	return fmt.Sprintf("0x%x", n)
}

// NormalizeTxHash validates a transaction hash and returns it in canonical
// 0x-prefixed lowercase-hex form. A missing 0x prefix is tolerated; anything
// that is not 32 bytes of hex fails with a ValidationError.
func NormalizeTxHash(hash string) (string, error) {
	h := strings.TrimSpace(hash)
	if !strings.HasPrefix(h, "0x") && !strings.HasPrefix(h, "0X") {
		h = "0x" + h
	}
	h = "0x" + strings.ToLower(h[2:])

	if len(h) != 66 {
		return "", &ValidationError{Msg: fmt.Sprintf("invalid transaction hash %q: want 0x followed by 64 hex characters", hash)}
	}
	for _, c := range h[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", &ValidationError{Msg: fmt.Sprintf("invalid transaction hash %q: not a hex string", hash)}
		}
	}
	return h, nil
}

// FormatEther renders a wei amount as ETH with 6 fixed decimal places.
// Rounding is banker's rounding (round half to even) via
// decimal.StringFixedBank, so repeated displays are bias-free.
//
// A nil amount (unknown fee) renders as "-".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "-"
	}
	return decimal.NewFromBigInt(wei, -18).StringFixedBank(6)
}

// FormatGwei renders a per-gas wei price as gwei with 2 fixed decimal
// places, same rounding mode as FormatEther. Nil renders as "-".
func FormatGwei(wei *big.Int) string {
	if wei == nil {
		return "-"
	}
	return decimal.NewFromBigInt(wei, -9).StringFixedBank(2)
}

// FormatTimestamp renders a Unix timestamp as UTC wall-clock time,
// e.g. "2025-01-20 17:02:23 UTC".
func FormatTimestamp(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// FormatElapsed renders a wall-clock duration compactly: millisecond
// precision under one second, two decimals of seconds otherwise.
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
