package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodeConfig describes the output codec settings for re-encoded clips.
type EncodeConfig struct {
	VideoCodec string `yaml:"video_codec"`
	AudioCodec string `yaml:"audio_codec"`
	Preset     string `yaml:"preset"`
	CRF        int    `yaml:"crf"`
}

// Config holds the tool-wide defaults.
type Config struct {
	// DataDir is the base directory task output directories are created in.
	DataDir string `yaml:"data_dir"`
	// MaxClipDuration is the default per-clip cap in seconds, zero disables.
	MaxClipDuration float64      `yaml:"max_clip_duration"`
	Encode          EncodeConfig `yaml:"encode"`
}

var allowedPresets = map[string]struct{}{
	"ultrafast": {},
	"superfast": {},
	"veryfast":  {},
	"faster":    {},
	"fast":      {},
	"medium":    {},
	"slow":      {},
	"slower":    {},
	"veryslow":  {},
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:         "tasks",
		MaxClipDuration: 3,
		Encode: EncodeConfig{
			VideoCodec: "libx264",
			AudioCodec: "aac",
			Preset:     "fast",
			CRF:        23,
		},
	}
}

// Load reads the YAML config at path, falling back to defaults for any
// unset field. An empty path returns the defaults. The VIDCLIP_DATA_DIR
// environment variable overrides the data directory either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv("VIDCLIP_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.MaxClipDuration < 0 {
		return fmt.Errorf("max_clip_duration must not be negative")
	}
	if c.Encode.Preset != "" {
		if _, ok := allowedPresets[c.Encode.Preset]; !ok {
			return fmt.Errorf("unknown encode preset %q", c.Encode.Preset)
		}
	}
	if c.Encode.CRF < 0 || c.Encode.CRF > 51 {
		return fmt.Errorf("encode crf %d out of range 0-51", c.Encode.CRF)
	}
	return nil
}
