package report

import (
	"fmt"
	"math/big"
	"testing"
)

func resolvedResult(label string, block uint64, status Status, price int64) EndpointResult {
	fee := new(big.Int).Mul(big.NewInt(21000), big.NewInt(price))
	return EndpointResult{
		Label: label,
		Report: &Report{
			ChainID:     1,
			Hash:        "0xaaa",
			From:        "0xfrom",
			Status:      status,
			BlockNumber: block,
			GasUsed:     21000,
			GasPrice:    big.NewInt(price),
			TotalFee:    fee,
		},
	}
}

func TestCheckConsistency(t *testing.T) {
	tests := []struct {
		name           string
		results        []EndpointResult
		wantCompared   int
		wantConsistent bool
		wantIssues     int
	}{
		{
			name: "all_agree",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
				resolvedResult("b", 100, StatusSuccess, 24310000000),
				resolvedResult("c", 100, StatusSuccess, 24310000000),
			},
			wantCompared:   3,
			wantConsistent: true,
		},
		{
			name: "status_mismatch",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
				resolvedResult("b", 100, StatusFailed, 24310000000),
			},
			wantCompared:   2,
			wantConsistent: false,
			wantIssues:     1,
		},
		{
			name: "block_and_price_mismatch",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
				resolvedResult("b", 101, StatusSuccess, 25000000000),
			},
			wantCompared:   2,
			wantConsistent: false,
			wantIssues:     3, // block, gasPrice, totalFee
		},
		{
			name: "single_endpoint_trivially_consistent",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
			},
			wantCompared:   1,
			wantConsistent: true,
		},
		{
			name: "errored_endpoints_excluded",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
				{Label: "b", Err: fmt.Errorf("connection refused")},
				resolvedResult("c", 100, StatusSuccess, 24310000000),
			},
			wantCompared:   2,
			wantConsistent: true,
		},
		{
			name: "pending_endpoints_excluded",
			results: []EndpointResult{
				resolvedResult("a", 100, StatusSuccess, 24310000000),
				{Label: "b", Report: &Report{ChainID: 1, Hash: "0xaaa", Status: StatusPending}},
			},
			wantCompared:   1,
			wantConsistent: true,
		},
		{
			name:           "no_results",
			results:        nil,
			wantCompared:   0,
			wantConsistent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := CheckConsistency(tt.results)
			if cr.Compared != tt.wantCompared {
				t.Errorf("Compared = %d, want %d", cr.Compared, tt.wantCompared)
			}
			if cr.Consistent != tt.wantConsistent {
				t.Errorf("Consistent = %v, want %v", cr.Consistent, tt.wantConsistent)
			}
			if len(cr.Issues) != tt.wantIssues {
				t.Errorf("Issues = %v, want %d entries", cr.Issues, tt.wantIssues)
			}
		})
	}
}

func TestCheckConsistencyChainIDMismatch(t *testing.T) {
	a := resolvedResult("a", 100, StatusSuccess, 24310000000)
	b := resolvedResult("b", 100, StatusSuccess, 24310000000)
	b.Report.ChainID = 137

	cr := CheckConsistency([]EndpointResult{a, b})
	if cr.Consistent {
		t.Error("mismatched chain ids should not be consistent")
	}
	if len(cr.Issues) != 1 {
		t.Errorf("Issues = %v, want exactly the chainId note", cr.Issues)
	}
}
