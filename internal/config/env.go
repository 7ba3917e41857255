// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// jsonPathKey names the variable holding the optional JSON config path.
const jsonPathKey = "CONFIG"

// defaultDotenvFiles are tried, in order, when no explicit env file is given.
// .env.local overrides .env.
var defaultDotenvFiles = []string{".env", ".env.local"}

// parseEnv populates cfg from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envDefault` tags. The process
// environment is not consulted.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// readDotenv reads a dotenv file without exporting it into the process
// environment. See [configBuilder.withDotenv] for the empty-path behavior.
func readDotenv(path string) (map[string]string, error) {
	if path != "" {
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, path, err)
		}
		return vars, nil
	}

	merged := make(map[string]string)
	for _, name := range defaultDotenvFiles {
		vars, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, name, err)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}

	return merged, nil
}

// environToMap converts os.Environ-style KEY=VALUE pairs into a map.
// Entries without "=" are ignored.
func environToMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}
