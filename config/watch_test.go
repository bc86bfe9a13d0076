package config_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mixplan/config"
)

func TestWatch_EmitsReloadedConfigOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixplan.toml")
	require.NoError(t, config.Save(path, config.DefaultConfig()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates, errs, err := config.Watch(ctx, path)
	require.NoError(t, err)

	changed := config.DefaultConfig()
	changed.GlobalBudgetSeconds = 42
	require.NoError(t, config.Save(path, changed))

	select {
	case cfg := <-updates:
		require.Equal(t, 42.0, cfg.GlobalBudgetSeconds)
	case err := <-errs:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(4 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatch_RejectsUnwatchableFile(t *testing.T) {
	_, _, err := config.Watch(context.Background(), filepath.Join(t.TempDir(), "nonexistent", "file.toml"))
	require.Error(t, err)
}

func TestWatch_ClosesChannelsWhenContextCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixplan.toml")
	require.NoError(t, config.Save(path, config.DefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	updates, errs, err := config.Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("updates channel did not close after cancel")
	}
	select {
	case _, ok := <-errs:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("errs channel did not close after cancel")
	}
}
