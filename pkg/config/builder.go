package config

import (
	"sync"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/oascan/pkg/errors"
)

// Builder collects MicroProfile properties and turns them into a Config.
// It is the mutable counterpart of OpenAPIConfig and is safe for concurrent use.
type Builder struct {
	mu    sync.Mutex
	props map[string]string
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{props: make(map[string]string)}
}

// Set records one property. An empty value unsets it.
func (b *Builder) Set(property, value string) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if value == "" {
		delete(b.props, property)
	} else {
		b.props[property] = value
	}
	return b
}

// SetProperties records every entry of props
func (b *Builder) SetProperties(props map[string]string) *Builder {
	for k, v := range props {
		b.Set(k, v)
	}
	return b
}

// DoAllowNakedPathParameter turns on the allow-naked-path-parameter option
func (b *Builder) DoAllowNakedPathParameter() *Builder {
	return b.Set(smallrye+"allow-naked-path-parameter", "true")
}

// Properties returns a copy of the recorded properties
func (b *Builder) Properties() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.props))
	for k, v := range b.props {
		out[k] = v
	}
	return out
}

// Build decodes the recorded properties into a Config. Unknown properties
// under mp.openapi. are rejected with the closest known key as a hint.
func (b *Builder) Build() (*Config, error) {
	translated, unknown := TranslateProperties(b.Properties())
	if len(unknown) > 0 {
		u := unknown[0]
		err := errors.Newf(errors.ErrConfigValid, "unknown property %q", u.Property).
			WithDetail("property", u.Property)
		if u.Suggestion != "" {
			err = err.WithDetail("suggestion", u.Suggestion)
		}
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(translated, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load properties")
	}
	values, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg := &Config{values: values}
	if err := cfg.validatePatterns(""); err != nil {
		return nil, err
	}
	return cfg, nil
}
