package output

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"txfee/internal/report"
)

// endpointView is the JSON form of one endpoint's result. Wei amounts
// render as decimal strings so consumers keep full precision; optional
// numeric fields are pointers so pending endpoints omit them instead of
// emitting zeroes.
type endpointView struct {
	Label         string  `json:"label"`
	URL           string  `json:"url,omitempty"`
	OK            bool    `json:"ok"`
	Error         string  `json:"error,omitempty"`
	ChainID       uint64  `json:"chainId,omitempty"`
	Status        string  `json:"status,omitempty"`
	BlockNumber   *uint64 `json:"blockNumber,omitempty"`
	BlockTime     *uint64 `json:"blockTime,omitempty"`
	GasUsed       *uint64 `json:"gasUsed,omitempty"`
	GasPriceWei   string  `json:"gasPriceWei,omitempty"`
	TotalFeeWei   string  `json:"totalFeeWei,omitempty"`
	Confirmations *uint64 `json:"confirmations,omitempty"`
}

type comparisonView struct {
	Compared   int      `json:"compared"`
	Consistent bool     `json:"consistent"`
	Issues     []string `json:"issues,omitempty"`
}

type compareDocument struct {
	TxHash     string         `json:"txHash"`
	Endpoints  []endpointView `json:"endpoints"`
	Comparison comparisonView `json:"comparison"`
	TimingSec  float64        `json:"timingSec"`
}

// RenderCompareJSON writes the comparison as indented JSON: the hash, one
// view per endpoint, the consistency result, and the wall-clock timing in
// seconds (millisecond precision).
func RenderCompareJSON(w io.Writer, hash string, results []report.EndpointResult, cons *report.ConsistencyReport, elapsed time.Duration) error {
	doc := compareDocument{
		TxHash:    hash,
		Endpoints: make([]endpointView, 0, len(results)),
		Comparison: comparisonView{
			Compared:   cons.Compared,
			Consistent: cons.Consistent,
			Issues:     cons.Issues,
		},
		TimingSec: math.Round(elapsed.Seconds()*1000) / 1000,
	}

	for _, res := range results {
		doc.Endpoints = append(doc.Endpoints, endpointJSON(res))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func endpointJSON(res report.EndpointResult) endpointView {
	view := endpointView{Label: res.Label, URL: res.URL}

	if res.Err != nil {
		view.Error = res.Err.Error()
		return view
	}

	r := res.Report
	view.OK = true
	view.ChainID = r.ChainID
	view.Status = r.Status.String()

	if r.Pending() {
		return view
	}

	view.BlockNumber = u64ptr(r.BlockNumber)
	if r.BlockTime != 0 {
		view.BlockTime = u64ptr(r.BlockTime)
	}
	view.GasUsed = u64ptr(r.GasUsed)
	if r.GasPrice != nil {
		view.GasPriceWei = r.GasPrice.String()
	}
	if r.TotalFee != nil {
		view.TotalFeeWei = r.TotalFee.String()
	}
	view.Confirmations = u64ptr(r.Confirmations)

	return view
}

func u64ptr(n uint64) *uint64 { return &n }
