package config

import "time"

// EstimatorConfig surfaces codec.EstimatorDescriptor's fields as
// configuration, restoring the original's `block_ratio`/`block_number`
// CLI knobs (spec.md §6 defines the descriptor; the distillation dropped
// its configurability).
type EstimatorConfig struct {
	BlockRatio float64 `toml:"block_ratio"`
	BlockCount int     `toml:"block_count"`
}

// Config is a mixplan run's full configuration.
type Config struct {
	// Estimator configures sample-based measurement for every codec in
	// CodecLadder.
	Estimator EstimatorConfig `toml:"estimator"`

	// CodecLadder names, in the order they should be measured, the codec
	// configurations a document is compared against (e.g.
	// "gzip-1".."gzip-9"). Resolving names to codec.Codec values is the
	// caller's job; config only carries the list.
	CodecLadder []string `toml:"codec_ladder"`

	// GlobalBudgetSeconds is the total time budget a run's query is
	// answered against, for one document or several. Stored as seconds
	// because TOML has no native duration type.
	GlobalBudgetSeconds float64 `toml:"global_budget_seconds"`
}

// GlobalBudget returns GlobalBudgetSeconds as a time.Duration.
func (c Config) GlobalBudget() time.Duration {
	return time.Duration(c.GlobalBudgetSeconds * float64(time.Second))
}
