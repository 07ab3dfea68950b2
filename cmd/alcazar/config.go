package main

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config mirrors the command-line flags; values from the file are defaults
// that explicitly set flags override.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Count  int
	Solver string
}

func configFromJSON(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Config{}, err
	}

	var config Config
	if err := mapstructure.Decode(raw, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
