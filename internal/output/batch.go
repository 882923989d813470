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

// BatchRow is the outcome of checking one hash in a batch run. Report is
// nil for rows that failed before a report could be built (invalid hash,
// not found, endpoint error).
type BatchRow struct {
	Hash   string
	Report *report.Report
	Err    error
}

// RenderBatch prints the per-transaction result table followed by the
// processed-count summary.
func RenderBatch(w io.Writer, rows []BatchRow, elapsed time.Duration, opts Options) {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Tx", "Status", "Block", "Time (UTC)", "Conf", "Fee (ETH)", "Gas Used", "Gas Price (Gwei)")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, row := range rows {
		if row.Err != nil {
			tbl.AddRow(row.Hash, errLabel(row.Err, opts), "-", "-", "-", "-", "-", "-")
			continue
		}

		r := row.Report
		if r.Pending() {
			tbl.AddRow(r.Hash, statusLabel(r.Status, opts), "-", "-", "-", "-", "-", "-")
			continue
		}

		tbl.AddRow(
			r.Hash,
			statusLabel(r.Status, opts),
			fmt.Sprintf("%d", r.BlockNumber),
			blockTime(r),
			fmt.Sprintf("%d", r.Confirmations),
			rpc.FormatEther(r.TotalFee),
			fmt.Sprintf("%d", r.GasUsed),
			rpc.FormatGwei(r.GasPrice),
		)
	}

	tbl.Print()
	fmt.Fprintf(w, "\nProcessed %d transaction(s) in %s.\n", len(rows), rpc.FormatElapsed(elapsed))
}

func errLabel(err error, opts Options) string {
	var notFound *rpc.NotFoundError
	var validation *rpc.ValidationError
	switch {
	case errors.As(err, &notFound):
		return red(opts.sym("❌ ", "") + "not found")
	case errors.As(err, &validation):
		return red(opts.sym("❌ ", "") + "invalid hash")
	default:
		return red(opts.sym("❌ ", "") + "error")
	}
}
