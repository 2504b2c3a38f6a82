package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds optional settings read from a TOML file. Fields missing
// from the file keep their defaults; command-line flags override both.
type Config struct {
	OutputPuzzle   string `toml:"output_puzzle"`
	OutputKey      string `toml:"output_key"`
	OutputSolution string `toml:"output_solution"`
	Alphabet       string `toml:"alphabet"`
	MaxAttempts    int    `toml:"max_attempts"`
	Port           string `toml:"port"`
}

func defaultConfig() Config {
	return Config{
		OutputPuzzle:   "wordPuzzle_new.txt",
		OutputKey:      "wordPuzzle_key.txt",
		OutputSolution: "wordSearchResults.json",
		Alphabet:       defaultAlphabet,
		Port:           "8080",
	}
}

// LoadConfig reads settings from a TOML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
