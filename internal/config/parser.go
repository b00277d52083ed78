// Package config loads and validates deck files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	stackerrors "github.com/alexisbeaulieu97/stackcards/pkg/errors"
)

//go:embed default_deck.yaml
var defaultDeck []byte

// DefaultSource names the embedded demo deck in errors and logs.
const DefaultSource = "<embedded>"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a deck file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stackerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates deck YAML. source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, stackerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded demo deck.
func Default() (*Config, error) {
	return Parse(defaultDeck, DefaultSource)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
