package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"txfee/internal/config"
	"txfee/internal/output"
	"txfee/internal/report"
	"txfee/internal/rpc"
)

func rootCmd() *cobra.Command {
	var f inspectFlags

	cmd := &cobra.Command{
		Use:   "txfee --rpc <url> [flags] <tx-hash>",
		Short: "Inspect an Ethereum transaction's fee and confirmations over JSON-RPC",
		Long: `Fetch a transaction and its receipt from an Ethereum JSON-RPC endpoint
and print gas usage, effective gas price, total fee, and confirmations.

Examples:
  txfee --rpc https://eth.llamarpc.com 0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b
  txfee --rpc $RPC_URL --short 0x88df01...
  txfee --rpc $RPC_URL --min-confirmations 12 0x88df01...`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			if noEmoji, _ := cmd.Flags().GetBool("no-emoji"); noEmoji {
				output.DisableColors()
			}
		},
		RunE: f.run,
	}

	cmd.PersistentFlags().Int("timeout", 10, "Per-request timeout in seconds")
	cmd.PersistentFlags().Bool("no-emoji", false, "Disable emoji and colors in output (useful for CI logs)")

	f.register(cmd)

	cmd.AddCommand(inspectCmd(), batchCmd(), compareCmd())

	return cmd
}

// inspectCmd is the explicit spelling of the root command, so both
// "txfee <hash>" and "txfee inspect <hash>" work.
func inspectCmd() *cobra.Command {
	var f inspectFlags

	cmd := &cobra.Command{
		Use:          "inspect --rpc <url> [flags] <tx-hash>",
		Short:        "Inspect a single transaction's fee and confirmations",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         f.run,
	}

	f.register(cmd)

	return cmd
}

// inspectFlags holds the flags shared by the root command and its
// "inspect" alias.
type inspectFlags struct {
	rpcURL  string
	short   bool
	minConf uint64
}

func (f *inspectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rpcURL, "rpc", "", "RPC endpoint URL (defaults to $RPC_URL)")
	cmd.Flags().BoolVar(&f.short, "short", false, "Print a single-line summary instead of the full report")
	cmd.Flags().Uint64Var(&f.minConf, "min-confirmations", 0, "Warn when the transaction has fewer confirmations than this")
}

func (f *inspectFlags) run(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetInt("timeout")
	noEmoji, _ := cmd.Flags().GetBool("no-emoji")
	rpcURL := f.rpcURL
	if rpcURL == "" {
		rpcURL = os.Getenv("RPC_URL")
	}
	return runInspect(cmd.Context(), rpcURL, args[0], inspectOptions{
		timeout: time.Duration(timeout) * time.Second,
		minConf: f.minConf,
		short:   f.short,
		emoji:   !noEmoji,
	})
}

type inspectOptions struct {
	timeout time.Duration
	minConf uint64
	short   bool
	emoji   bool
}

func runInspect(ctx context.Context, rpcURL, rawHash string, o inspectOptions) error {
	start := time.Now()

	if rpcURL == "" {
		return &rpc.ValidationError{Msg: "no RPC endpoint configured: pass --rpc or set RPC_URL"}
	}

	hash, err := rpc.NormalizeTxHash(rawHash)
	if err != nil {
		return err
	}

	client, err := rpc.NewClient(rpcURL, o.timeout)
	if err != nil {
		return err
	}

	opts := output.Options{Short: o.short, Emoji: o.emoji}

	// Strictly sequential: chain id, transaction, receipt, block, head.
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return err
	}
	output.RenderBanner(os.Stdout, report.NetworkName(chainID), chainID, opts)

	tx, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		return err
	}

	rcpt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		return err
	}

	var blk *rpc.ParsedBlock
	var latest uint64
	if rcpt != nil {
		if blk, err = client.BlockByNumber(ctx, rcpt.BlockNumber); err != nil {
			return err
		}
		if latest, err = client.BlockNumber(ctx); err != nil {
			return err
		}
	}

	rep := report.Build(chainID, tx, rcpt, blk, latest)
	rep.MinConfirmations = o.minConf
	rep.Elapsed = time.Since(start)

	output.RenderReport(os.Stdout, rep, opts)

	// The threshold check is informational for a single inspection: the
	// report was produced, so the run still exits 0.
	if rep.BelowThreshold() {
		output.Warnf(os.Stderr, opts, "Confirmations %d below minimum %d", rep.Confirmations, rep.MinConfirmations)
	}

	return nil
}

// requireEndpoint resolves the endpoint URL shared by batch and compare
// subcommands, falling back to the RPC_URL environment variable.
func requireEndpoint(rpcURL string) (string, error) {
	if rpcURL == "" {
		rpcURL = os.Getenv("RPC_URL")
	}
	if rpcURL == "" {
		return "", &rpc.ValidationError{Msg: "no RPC endpoint configured: pass --rpc or set RPC_URL"}
	}
	return rpcURL, nil
}
