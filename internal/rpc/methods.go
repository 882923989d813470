package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// ChainID calls eth_chainId and returns the network's chain identifier.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	return c.hexUint64Call(ctx, "eth_chainId")
}

// BlockNumber calls eth_blockNumber and returns the current block height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.hexUint64Call(ctx, "eth_blockNumber")
}

func (c *Client) hexUint64Call(ctx context.Context, method string) (uint64, error) {
	raw, err := c.Call(ctx, method)
	if err != nil {
		return 0, err
	}

	var hexStr string
	if err := json.Unmarshal(raw, &hexStr); err != nil {
		return 0, &ConnectivityError{URL: c.url, Err: fmt.Errorf("%s: unexpected result shape: %w", method, err)}
	}

	num, err := ParseHexUint64(hexStr)
	if err != nil {
		return 0, &ConnectivityError{URL: c.url, Err: fmt.Errorf("%s: %w", method, err)}
	}
	return num, nil
}

// TransactionByHash calls eth_getTransactionByHash. A null result means the
// endpoint does not know the hash and fails with a NotFoundError.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (*ParsedTransaction, error) {
	raw, err := c.Call(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &NotFoundError{Hash: hash}
	}

	var tx Transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid transaction object: %w", err)}
	}

	parsed, err := tx.Parsed()
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid transaction object: %w", err)}
	}
	return parsed, nil
}

// TransactionReceipt calls eth_getTransactionReceipt. A null result is not
// an error: it means the transaction is pending, and (nil, nil) is returned.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*ParsedReceipt, error) {
	raw, err := c.Call(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	var rcpt Receipt
	if err := json.Unmarshal(raw, &rcpt); err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid receipt object: %w", err)}
	}

	parsed, err := rcpt.Parsed()
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid receipt object: %w", err)}
	}
	return parsed, nil
}

// BlockByNumber calls eth_getBlockByNumber with fullTx=false, returning only
// the header fields the report needs.
func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*ParsedBlock, error) {
	raw, err := c.Call(ctx, "eth_getBlockByNumber", Uint64ToHex(number), false)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("block %d not available on endpoint", number)}
	}

	var blk Block
	if err := json.Unmarshal(raw, &blk); err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid block object: %w", err)}
	}

	parsed, err := blk.Parsed()
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid block object: %w", err)}
	}
	return parsed, nil
}
