package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"txfee/internal/config"
	"txfee/internal/output"
	"txfee/internal/report"
	"txfee/internal/rpc"
)

func compareCmd() *cobra.Command {
	var (
		rpcURLs       []string
		endpointsPath string
		minConf       uint64
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:   "compare [--rpc URL]... [--endpoints FILE] <tx-hash>",
		Short: "Compare one transaction across multiple RPC endpoints",
		Long: `Query the same transaction through several endpoints concurrently and
report field-by-field agreement: status, block, gas used, gas price, fee.

Endpoints come from repeated --rpc flags and/or a YAML endpoints file:

  endpoints:
    - name: alchemy
      url: ${ALCHEMY_URL}
    - name: local
      url: http://localhost:8545
  defaults:
    timeout: 10s

Examples:
  txfee compare --rpc https://eth.llamarpc.com --rpc https://rpc.ankr.com/eth 0xabc...
  txfee compare --endpoints endpoints.yaml 0xabc...
  txfee compare --endpoints endpoints.yaml --json 0xabc...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetInt("timeout")
			noEmoji, _ := cmd.Flags().GetBool("no-emoji")
			return runCompare(cmd.Context(), rpcURLs, endpointsPath, args[0], compareOptions{
				timeout:    time.Duration(timeout) * time.Second,
				timeoutSet: cmd.Flags().Changed("timeout"),
				minConf:    minConf,
				emoji:      !noEmoji,
				jsonOut:    jsonOut,
			})
		},
	}

	cmd.Flags().StringArrayVar(&rpcURLs, "rpc", nil, "RPC endpoint URL (repeatable)")
	cmd.Flags().StringVar(&endpointsPath, "endpoints", "", "Path to a YAML endpoints file")
	cmd.Flags().Uint64Var(&minConf, "min-confirmations", 0, "Warn when any endpoint reports fewer confirmations than this")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print machine-readable JSON instead of the text report")

	return cmd
}

type compareOptions struct {
	timeout    time.Duration
	timeoutSet bool
	minConf    uint64
	emoji      bool
	jsonOut    bool
}

type endpoint struct {
	label string
	url   string
}

func runCompare(ctx context.Context, rpcURLs []string, endpointsPath, rawHash string, o compareOptions) error {
	start := time.Now()
	opts := output.Options{Emoji: o.emoji}

	hash, err := rpc.NormalizeTxHash(rawHash)
	if err != nil {
		return err
	}

	var endpoints []endpoint
	if endpointsPath != "" {
		cfg, err := config.Load(endpointsPath)
		if err != nil {
			return err
		}
		for _, e := range cfg.Endpoints {
			endpoints = append(endpoints, endpoint{label: e.Name, url: e.URL})
		}
		// The config timeout applies only when the flag was left at its
		// default.
		if !o.timeoutSet && cfg.Defaults.Timeout > 0 {
			o.timeout = time.Duration(cfg.Defaults.Timeout)
		}
	}
	for i, u := range rpcURLs {
		endpoints = append(endpoints, endpoint{label: fmt.Sprintf("rpc%d", i+1), url: u})
	}

	if len(endpoints) == 0 {
		return &rpc.ValidationError{Msg: "no endpoints configured (use --rpc and/or --endpoints)"}
	}

	results := make([]report.EndpointResult, len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range endpoints {
		i, ep := i, ep
		g.Go(func() error {
			results[i] = checkEndpoint(gctx, ep, hash, o)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; failures live in results

	for _, res := range results {
		if res.Report != nil && res.Report.BelowThreshold() {
			output.Warnf(os.Stderr, opts, "Endpoint %s: confirmations %d below minimum %d", res.Label, res.Report.Confirmations, res.Report.MinConfirmations)
		}
	}

	cons := report.CheckConsistency(results)
	if o.jsonOut {
		if err := output.RenderCompareJSON(os.Stdout, hash, results, cons, time.Since(start)); err != nil {
			return err
		}
	} else {
		output.RenderCompare(os.Stdout, hash, results, cons, time.Since(start), opts)
	}

	for _, res := range results {
		if res.Err == nil {
			return nil
		}
	}
	return fmt.Errorf("no endpoint returned a usable response")
}

// checkEndpoint runs the full inspection pipeline against one endpoint.
// Failures are captured in the result rather than aborting the run, so
// one dead endpoint does not hide what the others report.
func checkEndpoint(ctx context.Context, ep endpoint, hash string, o compareOptions) report.EndpointResult {
	res := report.EndpointResult{Label: ep.label, URL: ep.url}

	client, err := rpc.NewClient(ep.url, o.timeout)
	if err != nil {
		res.Err = err
		return res
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	tx, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		res.Err = err
		return res
	}

	rcpt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		res.Err = err
		return res
	}

	var blk *rpc.ParsedBlock
	var latest uint64
	if rcpt != nil {
		if blk, err = client.BlockByNumber(ctx, rcpt.BlockNumber); err != nil {
			res.Err = err
			return res
		}
		if latest, err = client.BlockNumber(ctx); err != nil {
			res.Err = err
			return res
		}
	}

	rep := report.Build(chainID, tx, rcpt, blk, latest)
	rep.MinConfirmations = o.minConf
	res.Report = rep
	return res
}
