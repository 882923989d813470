package report

import "fmt"

// networkNames maps well-known EVM chain ids to display names.
var networkNames = map[uint64]string{
	1:        "Ethereum Mainnet",
	5:        "Goerli",
	10:       "Optimism",
	137:      "Polygon",
	8453:     "Base",
	42161:    "Arbitrum One",
	11155111: "Sepolia",
}

// NetworkName returns a human label for a chain id, or an "Unknown" label
// carrying the id for chains not in the table.
func NetworkName(chainID uint64) string {
	if name, ok := networkNames[chainID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (chain ID %d)", chainID)
}
