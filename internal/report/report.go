// Package report builds the transaction fee report from raw RPC data:
// status derivation, fee arithmetic, confirmation counting, and the
// chain-id to network-name mapping.
package report

import (
	"math/big"
	"time"
)

// Status is the tri-state outcome of a transaction.
type Status int

const (
	StatusPending Status = iota // no receipt yet
	StatusSuccess               // receipt status == 1
	StatusFailed                // receipt present, any other status
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Report is the fully resolved view of one transaction on one endpoint.
// It is built fresh per invocation and discarded after rendering.
//
// A report is either pending (Status == StatusPending, block fields unset)
// or fully resolved (block, fee, and confirmation fields all populated);
// no in-between state is ever rendered.
type Report struct {
	ChainID uint64
	Network string

	Hash string
	From string
	To   *string // nil for contract creation

	BlockNumber   uint64
	BlockTime     uint64 // Unix seconds, 0 if the block lookup failed
	Status        Status
	GasUsed       uint64
	GasPrice      *big.Int // effective price actually paid, wei per gas
	TotalFee      *big.Int // GasUsed * GasPrice, wei
	Confirmations uint64

	// MinConfirmations is the configured threshold; zero means no check.
	MinConfirmations uint64

	Elapsed time.Duration
}

// Pending reports whether the transaction has no receipt yet.
func (r *Report) Pending() bool { return r.Status == StatusPending }

// BelowThreshold reports whether a configured minimum-confirmations check
// failed. The check is informational for a single inspection; batch mode
// treats it as a per-transaction failure.
func (r *Report) BelowThreshold() bool {
	return r.MinConfirmations > 0 && !r.Pending() && r.Confirmations < r.MinConfirmations
}
