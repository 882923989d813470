package output

import (
	"fmt"
	"io"
	"strings"

	"txfee/internal/report"
	"txfee/internal/rpc"
)

// RenderBanner prints the connection line naming the network, printed as
// soon as the chain id is known so the user sees progress before the
// transaction lookups complete. Suppressed in short mode.
func RenderBanner(w io.Writer, network string, chainID uint64, opts Options) {
	if opts.Short {
		return
	}
	fmt.Fprintf(w, "%sConnected to %s (chainId %d)\n", opts.sym("🌐 ", ""), cyan(network), chainID)
}

// RenderReport prints a report in either the multi-line or the single-line
// layout. Both layouts carry the same field values in the same order; only
// the separators differ. Pending transactions render the reduced variant
// without block, gas, fee, or confirmation fields.
func RenderReport(w io.Writer, r *report.Report, opts Options) {
	if opts.Short {
		fmt.Fprintln(w, shortLine(r))
		return
	}

	fmt.Fprintf(w, "%sTx Hash: %s\n", opts.sym("🔗 ", ""), r.Hash)
	fmt.Fprintf(w, "%sFrom: %s\n", opts.sym("👤 ", ""), r.From)
	fmt.Fprintf(w, "%sTo: %s\n", opts.sym("🎯 ", ""), toLabel(r))

	if r.Pending() {
		fmt.Fprintf(w, "%sStatus: %s\n", opts.sym("📦 ", ""), statusLabel(r.Status, opts))
		fmt.Fprintf(w, "%sTransaction is still pending and not yet mined.\n", opts.sym("⏳ ", "PENDING: "))
		fmt.Fprintf(w, "%sElapsed: %s\n", opts.sym("⏱  ", ""), rpc.FormatElapsed(r.Elapsed))
		return
	}

	fmt.Fprintf(w, "%sBlock: %d\n", opts.sym("🔢 ", ""), r.BlockNumber)
	fmt.Fprintf(w, "%sBlock Time: %s\n", opts.sym("🕒 ", ""), blockTime(r))
	fmt.Fprintf(w, "%sStatus: %s\n", opts.sym("📦 ", ""), statusLabel(r.Status, opts))
	fmt.Fprintf(w, "%sGas Used: %d\n", opts.sym("⛽ ", ""), r.GasUsed)
	fmt.Fprintf(w, "%sGas Price: %s Gwei\n", opts.sym("⛽ ", ""), rpc.FormatGwei(r.GasPrice))
	fmt.Fprintf(w, "%sTotal Fee: %s ETH\n", opts.sym("💰 ", ""), rpc.FormatEther(r.TotalFee))
	fmt.Fprintf(w, "%sConfirmations: %d\n", opts.sym("✅ ", ""), r.Confirmations)
	fmt.Fprintf(w, "%sElapsed: %s\n", opts.sym("⏱  ", ""), rpc.FormatElapsed(r.Elapsed))
}

// Warnf prints a one-line warning, typically to stderr.
func Warnf(w io.Writer, opts Options, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s%s\n", opts.sym("⚠️  ", "WARN: "), yellow(fmt.Sprintf(format, args...)))
}

func shortLine(r *report.Report) string {
	fields := []string{
		r.Hash,
		"from=" + r.From,
		"to=" + toLabel(r),
	}

	if !r.Pending() {
		fields = append(fields,
			fmt.Sprintf("block=%d", r.BlockNumber),
			"time="+blockTime(r),
		)
	}

	fields = append(fields, "status="+r.Status.String())

	if !r.Pending() {
		fields = append(fields,
			fmt.Sprintf("gasUsed=%d", r.GasUsed),
			"gasPrice="+rpc.FormatGwei(r.GasPrice)+" Gwei",
			"fee="+rpc.FormatEther(r.TotalFee)+" ETH",
			fmt.Sprintf("conf=%d", r.Confirmations),
		)
	}

	fields = append(fields, "elapsed="+rpc.FormatElapsed(r.Elapsed))
	return strings.Join(fields, " | ")
}

func toLabel(r *report.Report) string {
	if r.To == nil {
		return "(contract creation)"
	}
	return *r.To
}

func blockTime(r *report.Report) string {
	if r.BlockTime == 0 {
		return "-"
	}
	return rpc.FormatTimestamp(r.BlockTime)
}

func statusLabel(s report.Status, opts Options) string {
	switch s {
	case report.StatusSuccess:
		return green(opts.sym("✅ ", "") + "Success")
	case report.StatusFailed:
		return red(opts.sym("❌ ", "") + "Failed")
	default:
		return yellow(opts.sym("⏳ ", "") + "Pending")
	}
}
