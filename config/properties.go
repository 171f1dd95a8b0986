// Package config implements the synchronizer's Property Surface
// (spec.md §6) as a YAML-backed struct, grounded on the teacher's device
// identification loader (src/deviceid.go, which unmarshals a YAML file
// with gopkg.in/yaml.v3).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Properties is the recognized configuration surface from spec.md §6.
type Properties struct {
	AGCBandwidth0 float32 `yaml:"agc_bw0"`
	AGCBandwidth1 float32 `yaml:"agc_bw1"`

	SymBandwidth0 float32 `yaml:"sym_bw0"`
	SymBandwidth1 float32 `yaml:"sym_bw1"`

	PLLBandwidth0 float32 `yaml:"pll_bw0"`
	PLLBandwidth1 float32 `yaml:"pll_bw1"`

	SquelchThreshold float32 `yaml:"squelch_threshold"`
	SquelchTimeout   int     `yaml:"squelch_timeout"`
}

// Defaults returns the Property Surface defaults from spec.md §3.
func Defaults() Properties {
	return Properties{
		AGCBandwidth0:    3e-3,
		AGCBandwidth1:    1e-5,
		SymBandwidth0:    1e-2,
		SymBandwidth1:    1e-3,
		PLLBandwidth0:    2e-3,
		PLLBandwidth1:    1e-3,
		SquelchThreshold: -15,
		SquelchTimeout:   32,
	}
}

// Load reads a YAML properties file, falling back to Defaults() for any
// field the file omits (zero-value fields after unmarshal are treated as
// "not set").
func Load(path string) (Properties, error) {
	p := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Properties{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var overrides Properties
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Properties{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	mergeNonZero(&p, overrides)
	return p, nil
}

func mergeNonZero(dst *Properties, src Properties) {
	if src.AGCBandwidth0 != 0 {
		dst.AGCBandwidth0 = src.AGCBandwidth0
	}
	if src.AGCBandwidth1 != 0 {
		dst.AGCBandwidth1 = src.AGCBandwidth1
	}
	if src.SymBandwidth0 != 0 {
		dst.SymBandwidth0 = src.SymBandwidth0
	}
	if src.SymBandwidth1 != 0 {
		dst.SymBandwidth1 = src.SymBandwidth1
	}
	if src.PLLBandwidth0 != 0 {
		dst.PLLBandwidth0 = src.PLLBandwidth0
	}
	if src.PLLBandwidth1 != 0 {
		dst.PLLBandwidth1 = src.PLLBandwidth1
	}
	if src.SquelchThreshold != 0 {
		dst.SquelchThreshold = src.SquelchThreshold
	}
	if src.SquelchTimeout != 0 {
		dst.SquelchTimeout = src.SquelchTimeout
	}
}

// Save writes Properties out as YAML, used by tests that round-trip a
// modified configuration. The CLI does not call it.
func Save(path string, p Properties) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
