package config

import (
	"os"
	"strings"
)

// LoadEnv reads KEY=VALUE pairs from a .env file in the working directory
// and sets them with os.Setenv, so a default RPC_URL or config-file ${VAR}
// references resolve without exporting anything in the shell. A missing
// .env file is not an error.
//
// Lines starting with # are comments; surrounding single or double quotes
// on values are stripped. Variables already present in the environment
// keep their exported value; the file only fills in what is unset.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, value)
	}
}
