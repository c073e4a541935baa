// Package config holds the predictor sweep configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/sarchlab/bpsim/trace"
)

// Config describes which predictor configurations to evaluate and how trace
// lines are laid out. The defaults reproduce the reference sweep.
type Config struct {
	// BimodalSizes are the table sizes for both bimodal predictors, in
	// report order. Default: 16, 32, 128, 256, 512, 1024, 2048.
	BimodalSizes []int `json:"bimodal_sizes" yaml:"bimodal_sizes"`

	// GShareTableSize is the number of gshare counters. Default: 2048.
	GShareTableSize int `json:"gshare_table_size" yaml:"gshare_table_size"`

	// GShareHistoryWidths are the history mask widths swept by gshare, in
	// report order. Default: 3 through 11.
	GShareHistoryWidths []uint `json:"gshare_history_widths" yaml:"gshare_history_widths"`

	// HistoryWidth is the global history register width shared by gshare and
	// the tournament predictor. Default: 11.
	HistoryWidth uint `json:"history_width" yaml:"history_width"`

	// TournamentTableSize is the size of each tournament table. Default: 2048.
	TournamentTableSize int `json:"tournament_table_size" yaml:"tournament_table_size"`

	// AddressWidth is the number of leading characters of a trace line that
	// hold the branch address. Default: 10.
	AddressWidth int `json:"address_width" yaml:"address_width"`

	// OutcomeOffset is the column of the T/N outcome character. Default: 11.
	OutcomeOffset int `json:"outcome_offset" yaml:"outcome_offset"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	format := trace.DefaultFormat()

	return &Config{
		// The step from 32 to 128 is deliberate; every other step doubles.
		BimodalSizes:        []int{16, 32, 128, 256, 512, 1024, 2048},
		GShareTableSize:     2048,
		GShareHistoryWidths: []uint{3, 4, 5, 6, 7, 8, 9, 10, 11},
		HistoryWidth:        11,
		TournamentTableSize: 2048,
		AddressWidth:        format.AddressWidth,
		OutcomeOffset:       format.OutcomeOffset,
	}
}

// LoadConfig loads a Config from a YAML (.yaml, .yml) or JSON file. Fields
// missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a file, as YAML or JSON depending on the
// extension.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every table size and history width can be built.
func (c *Config) Validate() error {
	if len(c.BimodalSizes) == 0 {
		return fmt.Errorf("bimodal_sizes must not be empty")
	}
	for i, s := range c.BimodalSizes {
		if s <= 0 {
			return fmt.Errorf("bimodal_sizes[%d] must be > 0, got %d", i, s)
		}
		if i > 0 && s <= c.BimodalSizes[i-1] {
			return fmt.Errorf("bimodal_sizes must be strictly ascending")
		}
	}

	if c.GShareTableSize <= 0 {
		return fmt.Errorf("gshare_table_size must be > 0")
	}
	if c.TournamentTableSize <= 0 {
		return fmt.Errorf("tournament_table_size must be > 0")
	}

	if c.HistoryWidth == 0 || c.HistoryWidth > 32 {
		return fmt.Errorf("history_width must be between 1 and 32, got %d", c.HistoryWidth)
	}

	if len(c.GShareHistoryWidths) == 0 {
		return fmt.Errorf("gshare_history_widths must not be empty")
	}
	for i, w := range c.GShareHistoryWidths {
		if w == 0 || w > c.HistoryWidth {
			return fmt.Errorf("gshare_history_widths[%d] must be between 1 and history_width (%d), got %d",
				i, c.HistoryWidth, w)
		}
		if i > 0 && w <= c.GShareHistoryWidths[i-1] {
			return fmt.Errorf("gshare_history_widths must be strictly ascending")
		}
	}

	if c.AddressWidth <= 0 {
		return fmt.Errorf("address_width must be > 0")
	}
	if c.OutcomeOffset < c.AddressWidth {
		return fmt.Errorf("outcome_offset must be >= address_width")
	}

	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.BimodalSizes = slices.Clone(c.BimodalSizes)
	clone.GShareHistoryWidths = slices.Clone(c.GShareHistoryWidths)
	return &clone
}

// TraceFormat returns the trace line layout.
func (c *Config) TraceFormat() trace.Format {
	return trace.Format{
		AddressWidth:  c.AddressWidth,
		OutcomeOffset: c.OutcomeOffset,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
