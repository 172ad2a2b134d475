package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-hamming"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// LogLevel is one of critical, error, warning, notice, info or debug.
	LogLevel string

	// Encoder and Decoder are used by -encode and -decode.
	Encoder hamming.Strategy
	Decoder hamming.Strategy

	// Quiet only prints failed rows of the verification report.
	Quiet bool
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Encoder:  hamming.Table,
		Decoder:  hamming.PackedTable,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. An empty
// name returns the defaults.
func LoadConfig(name string) (*Config, error) {
	config := DefaultConfig()
	if name == "" {
		return config, nil
	}

	d, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, config); err != nil {
		return nil, fmt.Errorf("hamming: error parsing %s: %v", name, err)
	}
	if _, err := logging.LogLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("hamming: %s: invalid log level %q", name, config.LogLevel)
	}
	if _, err := hamming.Encoder(config.Encoder); err != nil {
		return nil, fmt.Errorf("hamming: %s: %v", name, err)
	}
	return config, nil
}
