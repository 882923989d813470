package rpc

import "fmt"

// ValidationError reports malformed input (endpoint URL or transaction hash)
// caught before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConnectivityError reports a failure to get a usable response from the
// endpoint: connection refused, timeout, non-200 status, malformed JSON,
// or a JSON-RPC error object.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("rpc endpoint %s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// NotFoundError reports a transaction hash the endpoint does not recognize.
type NotFoundError struct {
	Hash string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.Hash)
}
