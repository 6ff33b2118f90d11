package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var presetsFilePath string // Path to presets.yaml

// Preset is a named seed in presets.yaml.
type Preset struct {
	Name        string `yaml:"name"`
	Seed        string `yaml:"seed"` // decimal, arbitrary precision
	Description string `yaml:"description"`
}

// PresetsConfig represents the full presets.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetsConfig struct {
	Version string   `yaml:"version"`
	Presets []Preset `yaml:"presets"`
}

// Lookup returns the preset with the given name.
func (c PresetsConfig) Lookup(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// loadPresetsConfig parses presets.yaml into a PresetsConfig.
// Uses strict field checking: typos must cause errors.
func loadPresetsConfig(path string) (PresetsConfig, error) {
	var cfg PresetsConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read presets file %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse presets YAML %s: %w", path, err)
	}

	seen := make(map[string]bool, len(cfg.Presets))
	for _, p := range cfg.Presets {
		if p.Name == "" {
			return cfg, fmt.Errorf("preset with seed %q has no name", p.Seed)
		}
		if seen[p.Name] {
			return cfg, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if _, err := parseBigInt(p.Seed); err != nil {
			return cfg, fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}
	logrus.Debugf("Loaded %d presets from %s", len(cfg.Presets), path)
	return cfg, nil
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named seeds and their factor sets",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadPresetsConfig(presetsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := writePresetsReport(os.Stdout, cfg); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	presetsCmd.Flags().StringVar(&presetsFilePath, "file", "presets.yaml", "Path to the presets file")

	rootCmd.AddCommand(presetsCmd)
}
