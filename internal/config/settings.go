// Package config loads runtime settings from the environment and graph
// definitions from HCL or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ASTAR"

// Settings are the process-wide defaults. Command-line flags override them.
// Workers is the size of the expansion worker pool; 0 means one per CPU.
type Settings struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Workers   int    `envconfig:"WORKERS" default:"0"`
	GraphFile string `envconfig:"GRAPH_FILE"`
}

// LoadSettings reads the given dotenv files, or ".env" when none are given,
// and then decodes ASTAR_* variables. Missing dotenv files are skipped and
// variables already set in the environment win over dotenv values.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %w", file, err)
		}
	}

	var settings Settings
	if err := envconfig.Process(EnvPrefix, &settings); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	return &settings, nil
}
