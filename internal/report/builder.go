package report

import (
	"math/big"

	"txfee/internal/rpc"
)

// Build combines the raw transaction, its receipt (nil while pending), the
// including block (nil while pending or when the lookup failed), and the
// chain head into a Report.
//
// Status derivation: no receipt means pending; receipt status 1 means
// success; any other explicit status means failed.
//
// Fee computation prefers the receipt's effectiveGasPrice (EIP-1559
// networks) and falls back to the transaction's declared gasPrice for
// legacy transactions or networks that omit the field.
func Build(chainID uint64, tx *rpc.ParsedTransaction, rcpt *rpc.ParsedReceipt, blk *rpc.ParsedBlock, latest uint64) *Report {
	r := &Report{
		ChainID: chainID,
		Network: NetworkName(chainID),
		Hash:    tx.Hash,
		From:    tx.From,
		To:      tx.To,
		Status:  StatusPending,
	}

	if rcpt == nil {
		return r
	}

	if rcpt.Status == 1 {
		r.Status = StatusSuccess
	} else {
		r.Status = StatusFailed
	}

	r.BlockNumber = rcpt.BlockNumber
	if blk != nil {
		r.BlockTime = blk.Timestamp
	}
	r.GasUsed = rcpt.GasUsed

	price := rcpt.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice
	}
	r.GasPrice = price
	if price != nil {
		r.TotalFee = new(big.Int).Mul(new(big.Int).SetUint64(rcpt.GasUsed), price)
	}

	r.Confirmations = Confirmations(latest, rcpt.BlockNumber)

	return r
}

// Confirmations counts blocks mined on top of the including block,
// inclusive. A head temporarily behind the transaction's block (mid-reorg
// view) clamps to zero rather than going negative.
func Confirmations(latest, blockNumber uint64) uint64 {
	if latest < blockNumber {
		return 0
	}
	return latest - blockNumber + 1
}
