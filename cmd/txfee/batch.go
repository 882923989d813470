package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"txfee/internal/output"
	"txfee/internal/report"
	"txfee/internal/rpc"
)

func batchCmd() *cobra.Command {
	var (
		rpcURL    string
		txHashes  []string
		filePath  string
		maxFeeEth float64
		minConf   uint64
	)

	cmd := &cobra.Command{
		Use:   "batch --rpc <url> [--tx HASH]... [--file PATH]",
		Short: "Check fees and confirmations for many transactions at once",
		Long: `Batch-check transaction fees against a single RPC endpoint.

Hashes come from repeated --tx flags and/or a file with one hash per line
(blank lines and # comments ignored). Duplicates are dropped, first
occurrence wins. The run exits non-zero if any hash fails its checks.

Examples:
  txfee batch --rpc $RPC_URL --tx 0xabc... --tx 0xdef...
  txfee batch --rpc $RPC_URL --file hashes.txt --max-fee-eth 0.01
  txfee batch --rpc $RPC_URL --file hashes.txt --min-confirmations 12 --no-emoji`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetInt("timeout")
			noEmoji, _ := cmd.Flags().GetBool("no-emoji")
			endpoint, err := requireEndpoint(rpcURL)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), endpoint, txHashes, filePath, batchOptions{
				timeout:   time.Duration(timeout) * time.Second,
				minConf:   minConf,
				maxFeeEth: maxFeeEth,
				checkFee:  cmd.Flags().Changed("max-fee-eth"),
				emoji:     !noEmoji,
			})
		},
	}

	cmd.Flags().StringVar(&rpcURL, "rpc", "", "RPC endpoint URL (defaults to $RPC_URL)")
	cmd.Flags().StringArrayVar(&txHashes, "tx", nil, "Transaction hash (repeatable)")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to a file with one transaction hash per line")
	cmd.Flags().Float64Var(&maxFeeEth, "max-fee-eth", 0, "Flag transactions whose total fee exceeds this many ETH")
	cmd.Flags().Uint64Var(&minConf, "min-confirmations", 0, "Flag transactions with fewer confirmations than this")

	return cmd
}

type batchOptions struct {
	timeout   time.Duration
	minConf   uint64
	maxFeeEth float64
	checkFee  bool
	emoji     bool
}

func runBatch(ctx context.Context, rpcURL string, txHashes []string, filePath string, o batchOptions) error {
	start := time.Now()
	opts := output.Options{Emoji: o.emoji}

	hashes, err := loadHashes(txHashes, filePath)
	if err != nil {
		return err
	}
	if len(hashes) == 0 {
		return &rpc.ValidationError{Msg: "no transaction hashes provided (use --tx and/or --file)"}
	}

	client, err := rpc.NewClient(rpcURL, o.timeout)
	if err != nil {
		return err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return err
	}
	output.RenderBanner(os.Stdout, report.NetworkName(chainID), chainID, opts)

	if o.checkFee {
		fmt.Printf("Max fee threshold enabled: %.6f ETH (transactions exceeding this will be flagged).\n", o.maxFeeEth)
	}
	if o.minConf > 0 {
		fmt.Printf("Minimum confirmations required per transaction: %d\n", o.minConf)
	}

	// One head fetch for the whole batch; slightly stale confirmation
	// counts are acceptable here.
	latest, err := client.BlockNumber(ctx)
	if err != nil {
		return err
	}

	var (
		rows         []output.BatchRow
		anyError     bool
		feeViolation bool
	)
	maxFee := decimal.NewFromFloat(o.maxFeeEth)

	for _, raw := range hashes {
		hash, err := rpc.NormalizeTxHash(raw)
		if err != nil {
			rows = append(rows, output.BatchRow{Hash: raw, Err: err})
			anyError = true
			continue
		}

		tx, err := client.TransactionByHash(ctx, hash)
		if err != nil {
			rows = append(rows, output.BatchRow{Hash: hash, Err: err})
			anyError = true
			continue
		}

		rcpt, err := client.TransactionReceipt(ctx, hash)
		if err != nil {
			rows = append(rows, output.BatchRow{Hash: hash, Err: err})
			anyError = true
			continue
		}

		// Block time is cosmetic in the table; a failed block lookup
		// leaves it blank rather than failing the whole row.
		var blk *rpc.ParsedBlock
		if rcpt != nil {
			blk, _ = client.BlockByNumber(ctx, rcpt.BlockNumber)
		}

		rep := report.Build(chainID, tx, rcpt, blk, latest)
		rep.MinConfirmations = o.minConf
		rows = append(rows, output.BatchRow{Hash: hash, Report: rep})

		if rep.BelowThreshold() {
			anyError = true
			output.Warnf(os.Stderr, opts, "Confirmations %d below minimum %d for tx %s", rep.Confirmations, rep.MinConfirmations, hash)
		}

		if o.checkFee && rep.TotalFee != nil {
			feeEth := decimal.NewFromBigInt(rep.TotalFee, -18)
			if feeEth.GreaterThan(maxFee) {
				feeViolation = true
				output.Warnf(os.Stderr, opts, "Fee %s ETH exceeds threshold %.6f ETH for tx %s", rpc.FormatEther(rep.TotalFee), o.maxFeeEth, hash)
			}
		}
	}

	fmt.Println()
	output.RenderBatch(os.Stdout, rows, time.Since(start), opts)

	if anyError || feeViolation {
		return fmt.Errorf("batch completed with failed checks")
	}
	return nil
}

// loadHashes merges --tx flags with the optional hash file, dropping
// duplicates while preserving first-seen order.
func loadHashes(txHashes []string, filePath string) ([]string, error) {
	hashes := append([]string(nil), txHashes...)

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, &rpc.ValidationError{Msg: fmt.Sprintf("failed to read file %s: %v", filePath, err)}
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			hashes = append(hashes, line)
		}
	}

	seen := make(map[string]struct{}, len(hashes))
	unique := hashes[:0]
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}

	return unique, nil
}
