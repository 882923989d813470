package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"txfee/internal/report"
	"txfee/internal/rpc"
)

// RenderCompare prints the multi-endpoint view: a one-line summary per
// endpoint, a field-by-field table across the endpoints that answered,
// and the consistency notes.
func RenderCompare(w io.Writer, hash string, results []report.EndpointResult, cons *report.ConsistencyReport, elapsed time.Duration, opts Options) {
	fmt.Fprintf(w, "%s\n", bold("Transaction comparison"))
	fmt.Fprintf(w, "Tx Hash: %s\n\n", hash)

	for i, res := range results {
		fmt.Fprintf(w, "[%d] %s: %s\n", i+1, res.Label, endpointSummary(res, opts))
	}

	fmt.Fprintln(w)
	renderCompareTable(w, results)

	fmt.Fprintln(w)
	if cons.Consistent {
		if cons.Compared >= 2 {
			fmt.Fprintf(w, "%sAll checked fields are consistent across reachable endpoints.\n", opts.sym("✅ ", ""))
		}
	} else {
		for _, issue := range cons.Issues {
			Warnf(w, opts, "%s", issue)
		}
	}

	fmt.Fprintf(w, "%sElapsed: %s\n", opts.sym("⏱  ", ""), rpc.FormatElapsed(elapsed))
}

func endpointSummary(res report.EndpointResult, opts Options) string {
	if res.Err != nil {
		var notFound *rpc.NotFoundError
		if errors.As(res.Err, &notFound) {
			return yellow(opts.sym("⚠️  ", "") + "connected, tx NOT FOUND")
		}
		return red(fmt.Sprintf("%scannot connect (%v)", opts.sym("❌ ", ""), res.Err))
	}

	r := res.Report
	if r.Pending() {
		return yellow(fmt.Sprintf("%sconnected (chainId %d), tx PENDING (no receipt yet)", opts.sym("⏳ ", ""), r.ChainID))
	}

	marker := green(opts.sym("✅ ", "") + "connected")
	if r.Status == report.StatusFailed {
		marker = red(opts.sym("❌ ", "") + "connected")
	}
	return fmt.Sprintf("%s (chainId %d), block %d, fee %s ETH", marker, r.ChainID, r.BlockNumber, rpc.FormatEther(r.TotalFee))
}

func renderCompareTable(w io.Writer, results []report.EndpointResult) {
	answered := make([]report.EndpointResult, 0, len(results))
	for _, res := range results {
		if res.Err == nil && res.Report != nil {
			answered = append(answered, res)
		}
	}
	if len(answered) == 0 {
		return
	}

	headers := make([]interface{}, 0, len(answered)+1)
	headers = append(headers, "Field")
	for _, res := range answered {
		headers = append(headers, res.Label)
	}

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New(headers...)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	addRow := func(field string, value func(*report.Report) string) {
		cells := make([]interface{}, 0, len(answered)+1)
		cells = append(cells, field)
		for _, res := range answered {
			cells = append(cells, value(res.Report))
		}
		tbl.AddRow(cells...)
	}

	dash := func(pending bool, s string) string {
		if pending {
			return "-"
		}
		return s
	}

	addRow("status", func(r *report.Report) string { return r.Status.String() })
	addRow("chainId", func(r *report.Report) string { return fmt.Sprintf("%d", r.ChainID) })
	addRow("block", func(r *report.Report) string { return dash(r.Pending(), fmt.Sprintf("%d", r.BlockNumber)) })
	addRow("block time", func(r *report.Report) string { return dash(r.Pending(), blockTime(r)) })
	addRow("from", func(r *report.Report) string { return r.From })
	addRow("to", func(r *report.Report) string { return toLabel(r) })
	addRow("gasUsed", func(r *report.Report) string { return dash(r.Pending(), fmt.Sprintf("%d", r.GasUsed)) })
	addRow("gasPrice (Gwei)", func(r *report.Report) string { return dash(r.Pending(), rpc.FormatGwei(r.GasPrice)) })
	addRow("fee (ETH)", func(r *report.Report) string { return dash(r.Pending(), rpc.FormatEther(r.TotalFee)) })
	addRow("confirmations", func(r *report.Report) string { return dash(r.Pending(), fmt.Sprintf("%d", r.Confirmations)) })

	tbl.Print()
}
