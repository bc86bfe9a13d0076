package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfig returns the configuration mixplan runs with when no file is
// present: a 10% sampling block repeated 3 times, a conservative gzip
// ladder, and a global budget of 0, meaning "not set" (it is not treated as
// unbounded: a zero budget is infeasible for any query).
func DefaultConfig() Config {
	return Config{
		Estimator: EstimatorConfig{
			BlockRatio: 0.1,
			BlockCount: 3,
		},
		CodecLadder:         []string{"gzip-1", "gzip-5", "gzip-9"},
		GlobalBudgetSeconds: 0,
	}
}

// Validate reports whether c's fields are within their documented domains.
func (c Config) Validate() error {
	if c.Estimator.BlockRatio <= 0 || c.Estimator.BlockRatio > 1 {
		return fmt.Errorf("%w: estimator.block_ratio must be in (0,1], got %v", ErrInvalidConfig, c.Estimator.BlockRatio)
	}
	if c.Estimator.BlockCount < 1 {
		return fmt.Errorf("%w: estimator.block_count must be >= 1, got %d", ErrInvalidConfig, c.Estimator.BlockCount)
	}
	if len(c.CodecLadder) == 0 {
		return fmt.Errorf("%w: codec_ladder must name at least one codec", ErrInvalidConfig)
	}
	if c.GlobalBudgetSeconds < 0 {
		return fmt.Errorf("%w: global_budget_seconds must be >= 0, got %v", ErrInvalidConfig, c.GlobalBudgetSeconds)
	}
	return nil
}

// GetConfigPath returns the default config file path: the current
// directory first, falling back to $HOME/.config/mixplan/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./mixplan.toml"); err == nil {
		return "./mixplan.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./mixplan.toml"
	}
	return filepath.Join(home, ".config", "mixplan", "config.toml")
}

// Load reads and parses a TOML config file at path. A missing file is not
// an error: Load returns DefaultConfig. A present-but-invalid file is.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating any missing parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
