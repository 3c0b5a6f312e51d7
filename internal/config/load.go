package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay decodes a YAML balance document on top of Default(). Fields
// absent from the document keep their defaults; maps merge key-wise,
// slices replace wholesale. The result is validated before returning.
func Overlay(b []byte) (Economy, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Economy{}, fmt.Errorf("decode economy overlay: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Economy{}, fmt.Errorf("economy overlay: %w", err)
	}
	return cfg, nil
}

// LoadFile is a convenience wrapper over Overlay for a file path. A
// missing file yields the defaults.
func LoadFile(path string) (Economy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Economy{}, fmt.Errorf("read economy config: %w", err)
	}
	return Overlay(b)
}
