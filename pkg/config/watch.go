package config

import (
	"context"
	"sync"

	"github.com/knadh/koanf/providers/file"

	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/logging"
)

// Watch re-derives the configuration each time one of its source files is
// written and hands the result to onChange. A failed reload is passed as err
// with a nil Config. Watch returns once every watcher is running; watching
// stops when ctx is done. Calls to onChange never overlap.
func Watch(ctx context.Context, opts LoadOptions, onChange func(cfg *Config, err error)) error {
	logger := logging.GetLogger("config.watch")

	sources := DiscoverSources(opts)
	if len(sources) == 0 {
		return errors.New(errors.ErrNotFound, "no configuration files to watch").
			WithDetail("project_dir", opts.projectDir())
	}

	var mu sync.Mutex
	reload := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		logger.Info().Str("path", path).Msg("configuration source changed")
		onChange(Load(opts))
	}

	providers := make([]*file.File, 0, len(sources))
	stopAll := func() {
		for _, p := range providers {
			if err := p.Unwatch(); err != nil {
				logger.Debug().Err(err).Msg("failed to stop watcher")
			}
		}
	}

	for _, src := range sources {
		path := src.Path
		p := file.Provider(path)
		err := p.Watch(func(_ interface{}, err error) {
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("watch error")
				mu.Lock()
				defer mu.Unlock()
				if ctx.Err() == nil {
					onChange(nil, errors.Wrapf(err, errors.ErrFileAccess, "watching %s", path).WithDetail("path", path))
				}
				return
			}
			reload(path)
		})
		if err != nil {
			stopAll()
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to watch %s", path).WithDetail("path", path)
		}
		providers = append(providers, p)
		logger.Debug().Str("path", path).Msg("watching configuration source")
	}

	go func() {
		<-ctx.Done()
		stopAll()
	}()
	return nil
}
