package wtile

import (
	"crypto/sha256"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/edwin0cheng/omega-tile/pkg/sample"
	"github.com/edwin0cheng/omega-tile/pkg/variation"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Config is the YAML-loadable description of one build run.
type Config struct {
	Mode      string `yaml:"mode"`       // "generate" or "split"
	Input     string `yaml:"input"`      // path to the input texture
	Variation string `yaml:"variation"`  // "v4", "v16" or "full"
	CacheDir  string `yaml:"cache_dir"`  // cache directory; "" disables caching entirely is not supported, a dir is always required
	AtlasSize int    `yaml:"atlas_size"` // n, the atlas's edge length
	Seed      uint64 `yaml:"seed"`       // atlas solver seed
}

// LoadConfig parses YAML into a Config and validates it.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, wtileerr.Wrap(wtileerr.Parse, "fail to parse config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field names something this package
// understands.
func (c *Config) Validate() error {
	if c.Input == "" {
		return wtileerr.New(wtileerr.InvalidInput, "config: input is required")
	}
	if c.CacheDir == "" {
		return wtileerr.New(wtileerr.InvalidInput, "config: cache_dir is required")
	}
	if c.AtlasSize <= 0 {
		return wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("config: atlas_size must be positive, got %d", c.AtlasSize))
	}
	if _, err := c.SampleMode(); err != nil {
		return err
	}
	if _, err := variation.Parse(c.Variation); err != nil {
		return err
	}
	return nil
}

// SampleMode translates the config's Mode string into a sample.Mode.
func (c *Config) SampleMode() (sample.Mode, error) {
	switch c.Mode {
	case "generate":
		return sample.Generate, nil
	case "split":
		return sample.Split, nil
	default:
		return 0, wtileerr.New(wtileerr.Parse, "config: mode must be \"generate\" or \"split\", got "+c.Mode)
	}
}

// Hash fingerprints the fields that affect the build's output, for
// callers that want to key a cache or log entry on "this exact
// config" without re-deriving a seed from the whole YAML document.
func (c *Config) Hash() []byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%d|%d", c.Mode, c.Input, c.Variation, c.AtlasSize, c.Seed)
	return h.Sum(nil)
}
