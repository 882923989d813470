package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"txfee/internal/report"
	"txfee/internal/rpc"
)

func TestRenderBatch(t *testing.T) {
	rows := []BatchRow{
		{Hash: "0xaaa", Report: resolvedReport()},
		{Hash: "0xbbb", Report: pendingReport()},
		{Hash: "0xccc", Err: &rpc.NotFoundError{Hash: "0xccc"}},
		{Hash: "zzz", Err: &rpc.ValidationError{Msg: "invalid transaction hash"}},
	}

	var buf bytes.Buffer
	RenderBatch(&buf, rows, 2*time.Second, Options{Emoji: false})
	out := buf.String()

	for _, want := range []string{
		"Tx", "Status", "Fee (ETH)",
		"0.001561", "24.31",
		"not found", "invalid hash",
		"Processed 4 transaction(s) in 2.00s.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("batch output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBatchPendingRowHasNoNumbers(t *testing.T) {
	rows := []BatchRow{{Hash: pendingReport().Hash, Report: pendingReport()}}

	var buf bytes.Buffer
	RenderBatch(&buf, rows, time.Second, Options{Emoji: false})

	if !strings.Contains(buf.String(), "Pending") {
		t.Errorf("pending row missing status:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "0.00") {
		t.Errorf("pending row should not render a fee:\n%s", buf.String())
	}
}

func TestRenderCompare(t *testing.T) {
	results := []report.EndpointResult{
		{Label: "rpc1", Report: resolvedReport()},
		{Label: "rpc2", Report: resolvedReport()},
	}
	cons := report.CheckConsistency(results)

	var buf bytes.Buffer
	RenderCompare(&buf, resolvedReport().Hash, results, cons, time.Second, Options{Emoji: false})
	out := buf.String()

	for _, want := range []string{
		"Transaction comparison",
		"[1] rpc1", "[2] rpc2",
		"gasPrice (Gwei)", "fee (ETH)",
		"All checked fields are consistent",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("compare output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCompareMismatch(t *testing.T) {
	a := resolvedReport()
	b := resolvedReport()
	b.BlockNumber = a.BlockNumber + 1

	results := []report.EndpointResult{
		{Label: "rpc1", Report: a},
		{Label: "rpc2", Report: b},
	}
	cons := report.CheckConsistency(results)

	var buf bytes.Buffer
	RenderCompare(&buf, a.Hash, results, cons, time.Second, Options{Emoji: false})

	if !strings.Contains(buf.String(), "Mismatched block number") {
		t.Errorf("compare output missing mismatch note:\n%s", buf.String())
	}
}

func TestRenderCompareUnreachableEndpoint(t *testing.T) {
	results := []report.EndpointResult{
		{Label: "rpc1", Report: resolvedReport()},
		{Label: "rpc2", Err: &rpc.ConnectivityError{URL: "http://down.example", Err: errors.New("connection refused")}},
	}
	cons := report.CheckConsistency(results)

	var buf bytes.Buffer
	RenderCompare(&buf, resolvedReport().Hash, results, cons, time.Second, Options{Emoji: false})

	if !strings.Contains(buf.String(), "cannot connect") {
		t.Errorf("compare output missing connect failure:\n%s", buf.String())
	}
}
