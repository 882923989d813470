package rpc

import (
	"math/big"
	"testing"
	"time"
)

func TestParseHexUint64(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    uint64
		wantErr bool
	}{
		{"with_prefix", "0x172721e", 24277534, false},
		{"without_prefix", "172721e", 24277534, false},
		{"zero", "0x0", 0, false},
		{"empty", "", 0, false},
		{"bare_prefix", "0x", 0, false},
		{"invalid_hex", "0xZZZ", 0, true},
		{"overflows_uint64", "0x10000000000000000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexUint64(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexUint64(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexUint64(%q) = %d, want %d", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHexBigInt(t *testing.T) {
	got, err := ParseHexBigInt("0x59682f000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(big.NewInt(24000000000)) != 0 {
		t.Errorf("ParseHexBigInt = %s, want 24000000000", got)
	}

	if _, err := ParseHexBigInt("0xnope"); err == nil {
		t.Error("expected error for invalid hex")
	}

	zero, err := ParseHexBigInt("")
	if err != nil || zero.Sign() != 0 {
		t.Errorf("ParseHexBigInt(\"\") = %v, %v; want 0, nil", zero, err)
	}
}

func TestNormalizeTxHash(t *testing.T) {
	const canonical = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"already_canonical", canonical, canonical, false},
		{"missing_prefix", canonical[2:], canonical, false},
		{"uppercase_hex", "0x88DF016429689C079F3B2F6AD39FA052532C56795B733DA78A91EBE6A713944B", canonical, false},
		{"surrounding_space", "  " + canonical + "\n", canonical, false},
		{"too_short", "0x88df0164", "", true},
		{"not_hex", "0x" + "zz" + canonical[4:], "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTxHash(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeTxHash(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if _, ok := err.(*ValidationError); !ok {
					t.Errorf("error type = %T, want *ValidationError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("NormalizeTxHash(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		// 64231 gas * 24310000000 wei/gas
		{"fee_example", big.NewInt(1561455610000000), "0.001561"},
		{"one_ether", big.NewInt(1000000000000000000), "1.000000"},
		{"zero", big.NewInt(0), "0.000000"},
		{"nil", nil, "-"},
		// Banker's rounding: half rounds to the even neighbour.
		{"half_to_even_down", big.NewInt(500000000000), "0.000000"},
		{"half_to_even_up", big.NewInt(1500000000000), "0.000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEther(tt.wei); got != tt.want {
				t.Errorf("FormatEther(%v) = %q, want %q", tt.wei, got, tt.want)
			}
		})
	}
}

func TestFormatGwei(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"fee_example", big.NewInt(24310000000), "24.31"},
		{"sub_gwei", big.NewInt(500000000), "0.50"},
		{"nil", nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGwei(tt.wei); got != tt.want {
				t.Errorf("FormatGwei(%v) = %q, want %q", tt.wei, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(1737392543)
	want := "2025-01-20 17:02:23 UTC"
	if got != want {
		t.Errorf("FormatTimestamp = %q, want %q", got, want)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{420 * time.Millisecond, "420ms"},
		{time.Second + 500*time.Millisecond, "1.50s"},
		{2 * time.Second, "2.00s"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestUint64ToHex(t *testing.T) {
	if got := Uint64ToHex(24277534); got != "0x172721e" {
		t.Errorf("Uint64ToHex = %q, want %q", got, "0x172721e")
	}
}
