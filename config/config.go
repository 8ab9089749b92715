package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the editor. Fields may be loaded
// from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// BaseHandlePx is the on-screen size of resize handles and vertex dots
	// in pixels. The image-space hot zone is this divided by the zoom.
	BaseHandlePx float64 `json:"base_handle_px"`

	// Zoom limits for the viewport.
	MinZoom float64 `json:"min_zoom"`
	MaxZoom float64 `json:"max_zoom"`

	// OutputDir receives exported crops and zip bundles.
	OutputDir string `json:"output_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		BaseHandlePx: 10,
		MinZoom:      0.1,
		MaxZoom:      10,
		OutputDir:    "output",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.BaseHandlePx <= 0 {
		c.BaseHandlePx = 10
	}
	if c.MinZoom <= 0 {
		c.MinZoom = 0.1
	}
	if c.MaxZoom <= c.MinZoom {
		c.MaxZoom = c.MinZoom * 100
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
