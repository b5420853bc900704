package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eunmann/searchbench/pkg/dataset"
)

// DefaultSizes mirrors the dataset sizes of the original experiment.
var DefaultSizes = []int{
	100, 1_000, 5_000, 10_000, 50_000, 100_000,
	200_000, 500_000, 750_000, 1_000_000,
}

// DefaultBucketFactor sizes the hash table at 2n+1 buckets.
const DefaultBucketFactor = 2.0

// Config controls a benchmark run.
type Config struct {
	// Sizes are the dataset sizes, processed in the given order.
	Sizes []int `yaml:"sizes"`
	// Seed feeds the dataset generator. 0 = dataset.DefaultSeed.
	Seed int64 `yaml:"seed"`
	// BucketFactor sets the hash table bucket count to n*factor+1.
	BucketFactor float64 `yaml:"bucket_factor"`
	// Progress renders a progress bar over dataset sizes.
	Progress bool `yaml:"progress"`
}

// DefaultConfig returns the configuration of the reference experiment.
func DefaultConfig() Config {
	return Config{
		Sizes:        append([]int(nil), DefaultSizes...),
		Seed:         dataset.DefaultSeed,
		BucketFactor: DefaultBucketFactor,
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(file.Sizes) > 0 {
		cfg.Sizes = file.Sizes
	}
	if file.Seed != 0 {
		cfg.Seed = file.Seed
	}
	if file.BucketFactor != 0 {
		cfg.BucketFactor = file.BucketFactor
	}
	cfg.Progress = file.Progress
	return cfg, nil
}

// Validate rejects configs the runner cannot execute.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("config: at least one dataset size is required")
	}
	for i, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("config: size %d at position %d must be positive", n, i)
		}
	}
	if c.BucketFactor <= 0 {
		return errors.New("config: bucket_factor must be positive")
	}
	return nil
}
