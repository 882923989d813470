package report

import (
	"sort"

	"txfee/internal/rpc"
)

// EndpointResult is the outcome of inspecting one transaction hash through
// one endpoint. Exactly one of Report and Err is meaningful; Err covers
// both unreachable endpoints and not-found responses.
type EndpointResult struct {
	Label  string
	URL    string
	Report *Report
	Err    error
}

// ConsistencyReport summarizes field agreement across endpoints that
// returned a resolved (non-pending) report for the same hash.
type ConsistencyReport struct {
	Compared   int      // endpoints included in the comparison
	Consistent bool
	Issues     []string // one entry per mismatched field
}

// CheckConsistency compares the resolved reports field by field. Fewer than
// two comparable endpoints yields a trivially consistent report: there is
// nothing to disagree about.
func CheckConsistency(results []EndpointResult) *ConsistencyReport {
	var ok []*Report
	for _, r := range results {
		if r.Err == nil && r.Report != nil && !r.Report.Pending() {
			ok = append(ok, r.Report)
		}
	}

	cr := &ConsistencyReport{Compared: len(ok), Consistent: true}
	if len(ok) < 2 {
		return cr
	}

	checks := []struct {
		field string
		note  string
		value func(*Report) string
	}{
		{"chainId", "Mismatched chainId across endpoints.", func(r *Report) string { return rpc.Uint64ToHex(r.ChainID) }},
		{"status", "Mismatched transaction status across endpoints.", func(r *Report) string { return r.Status.String() }},
		{"block", "Mismatched block number across endpoints.", func(r *Report) string { return rpc.Uint64ToHex(r.BlockNumber) }},
		{"gasUsed", "Mismatched gasUsed across endpoints.", func(r *Report) string { return rpc.Uint64ToHex(r.GasUsed) }},
		{"gasPrice", "Mismatched gas price across endpoints (can happen with different EIP-1559 views).", func(r *Report) string { return bigString(r) }},
		{"totalFee", "Mismatched total fee across endpoints.", func(r *Report) string { return feeString(r) }},
	}

	for _, c := range checks {
		if distinct(ok, c.value) > 1 {
			cr.Consistent = false
			cr.Issues = append(cr.Issues, c.note)
		}
	}

	sort.Strings(cr.Issues)
	return cr
}

func distinct(reports []*Report, value func(*Report) string) int {
	seen := make(map[string]struct{}, len(reports))
	for _, r := range reports {
		seen[value(r)] = struct{}{}
	}
	return len(seen)
}

func bigString(r *Report) string {
	if r.GasPrice == nil {
		return "-"
	}
	return r.GasPrice.String()
}

func feeString(r *Report) string {
	if r.TotalFee == nil {
		return "-"
	}
	return r.TotalFee.String()
}
