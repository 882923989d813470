package rpc

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Request represents a JSON-RPC 2.0 request sent to an Ethereum node.
//
// Params uses []interface{} because different RPC methods take different
// parameter types: eth_getTransactionByHash takes a single hash string,
// eth_getBlockByNumber takes a hex block number and a boolean. The ID is
// hardcoded to 1 everywhere since we issue one request per HTTP exchange.
type Request struct {
	JSONRPC string        `json:"jsonrpc"` // Always "2.0"
	Method  string        `json:"method"`  // RPC method name, e.g. "eth_getTransactionByHash"
	Params  []interface{} `json:"params"`  // Method arguments, varies per method
	ID      int           `json:"id"`
}

// Response represents a JSON-RPC 2.0 response from an Ethereum node.
//
// Result is json.RawMessage because its shape depends on the method called:
// a bare hex string for eth_blockNumber, a full object for
// eth_getTransactionByHash, or JSON null when the node has no data for the
// requested hash. Error is a pointer so a missing "error" key decodes to nil.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents an error object returned by the JSON-RPC server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Transaction holds the raw eth_getTransactionByHash response fields we
// consume. All numeric fields arrive as hex strings per the Ethereum
// JSON-RPC spec; call Parsed to convert them to native types.
//
// To is a pointer because contract-creation transactions have a JSON null
// "to" field. BlockNumber is a pointer because pending transactions have
// not been included in a block yet.
type Transaction struct {
	Hash        string  `json:"hash"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	BlockNumber *string `json:"blockNumber"`
	GasPrice    string  `json:"gasPrice,omitempty"`
	Gas         string  `json:"gas"`
	Nonce       string  `json:"nonce"`
	Value       string  `json:"value"`
}

// ParsedTransaction holds transaction data as native Go types.
type ParsedTransaction struct {
	Hash        string
	From        string
	To          *string  // nil for contract creation
	BlockNumber *uint64  // nil while pending
	GasPrice    *big.Int // declared price; nil when the node omits the field
	Gas         uint64
	Nonce       uint64
	Value       *big.Int
}

// Parsed converts the raw hex-encoded transaction into native Go types.
// Hash and From are required; a transaction object missing either is
// considered malformed.
func (t *Transaction) Parsed() (*ParsedTransaction, error) {
	if t.Hash == "" || t.From == "" {
		return nil, fmt.Errorf("transaction object missing hash or from field")
	}

	p := &ParsedTransaction{
		Hash: t.Hash,
		From: t.From,
		To:   t.To,
	}

	if t.BlockNumber != nil {
		num, err := ParseHexUint64(*t.BlockNumber)
		if err != nil {
			return nil, fmt.Errorf("invalid blockNumber: %w", err)
		}
		p.BlockNumber = &num
	}

	if t.GasPrice != "" {
		price, err := ParseHexBigInt(t.GasPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid gasPrice: %w", err)
		}
		p.GasPrice = price
	}

	var err error
	if p.Gas, err = ParseHexUint64(t.Gas); err != nil {
		return nil, fmt.Errorf("invalid gas: %w", err)
	}
	if p.Nonce, err = ParseHexUint64(t.Nonce); err != nil {
		return nil, fmt.Errorf("invalid nonce: %w", err)
	}
	if p.Value, err = ParseHexBigInt(t.Value); err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}

	return p, nil
}

// Receipt holds the raw eth_getTransactionReceipt response fields we consume.
//
// EffectiveGasPrice is absent on networks that predate EIP-1559; the fee
// computation then falls back to the transaction's declared gas price.
type Receipt struct {
	TransactionHash   string `json:"transactionHash"`
	BlockNumber       string `json:"blockNumber"`
	Status            string `json:"status"`
	GasUsed           string `json:"gasUsed"`
	EffectiveGasPrice string `json:"effectiveGasPrice,omitempty"`
}

// ParsedReceipt holds receipt data as native Go types.
type ParsedReceipt struct {
	TransactionHash   string
	BlockNumber       uint64
	Status            uint64 // 1 success, 0 failed
	GasUsed           uint64
	EffectiveGasPrice *big.Int // nil pre-EIP-1559
}

// Parsed converts the raw hex-encoded receipt into native Go types.
// BlockNumber, Status, and GasUsed are required: without the first two
// the report cannot derive an outcome, and without gasUsed there is no
// fee arithmetic. Pre-Byzantium receipts carry "root" instead of
// "status" and are rejected rather than misreported as failed.
func (r *Receipt) Parsed() (*ParsedReceipt, error) {
	if r.BlockNumber == "" {
		return nil, fmt.Errorf("receipt missing blockNumber field")
	}
	if r.Status == "" {
		return nil, fmt.Errorf("receipt missing status field")
	}
	if r.GasUsed == "" {
		return nil, fmt.Errorf("receipt missing gasUsed field")
	}

	p := &ParsedReceipt{TransactionHash: r.TransactionHash}

	var err error
	if p.BlockNumber, err = ParseHexUint64(r.BlockNumber); err != nil {
		return nil, fmt.Errorf("invalid blockNumber: %w", err)
	}
	if p.Status, err = ParseHexUint64(r.Status); err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}
	if p.GasUsed, err = ParseHexUint64(r.GasUsed); err != nil {
		return nil, fmt.Errorf("invalid gasUsed: %w", err)
	}

	if r.EffectiveGasPrice != "" {
		price, err := ParseHexBigInt(r.EffectiveGasPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid effectiveGasPrice: %w", err)
		}
		p.EffectiveGasPrice = price
	}

	return p, nil
}

// Block holds the raw eth_getBlockByNumber response fields we consume.
// Only the number and timestamp matter for the report; transactions are
// requested as hashes only (fullTx=false) to keep the call light.
type Block struct {
	Number    string `json:"number"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

// ParsedBlock holds block data as native Go types.
type ParsedBlock struct {
	Number    uint64
	Hash      string
	Timestamp uint64 // Unix seconds
}

// Parsed converts the raw hex-encoded block into native Go types.
func (b *Block) Parsed() (*ParsedBlock, error) {
	if b.Number == "" || b.Timestamp == "" {
		return nil, fmt.Errorf("block object missing number or timestamp field")
	}

	p := &ParsedBlock{Hash: b.Hash}

	var err error
	if p.Number, err = ParseHexUint64(b.Number); err != nil {
		return nil, fmt.Errorf("invalid number: %w", err)
	}
	if p.Timestamp, err = ParseHexUint64(b.Timestamp); err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return p, nil
}
