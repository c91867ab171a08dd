package config

import "sync/atomic"

var globalConfig atomic.Pointer[Config]

// Initialize sets the process-wide configuration. A nil cfg resets it to
// the defaults.
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalConfig.Store(cfg)
}

// Get returns the process-wide configuration
func Get() *Config {
	if cfg := globalConfig.Load(); cfg != nil {
		return cfg
	}
	globalConfig.CompareAndSwap(nil, Default())
	return globalConfig.Load()
}
