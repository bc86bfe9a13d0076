// Package config loads and hot-reloads the TOML configuration a mixplan
// run needs: the estimator's sampling knobs, the codec ladder to measure,
// and the global time budget.
//
// # What & Why
//
// Load falls back to DefaultConfig when the file is absent, the same
// "missing config is not an error" convention playlist-sorter's config
// package uses. Watch layers a filesystem watch on top so a long-running
// process can pick up edits without a restart. cmd/mixplan loads its
// config once per run and does not call Watch.
package config
