package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/oascan/pkg/errors"
)

func TestWatchWithoutSources(t *testing.T) {
	err := Watch(context.Background(), isolatedOptions(t.TempDir()), func(*Config, error) {})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".oascan.toml")
	writeFile(t, path, "[scan]\ndisable = false\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	err := Watch(ctx, isolatedOptions(dir), func(cfg *Config, err error) {
		if err != nil {
			return
		}
		select {
		case changes <- cfg:
		default:
		}
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[scan]\ndisable = true\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.ScanDisable() {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
