// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the inline storage size of a Delegate in bytes.
	// It fits a method with its receiver and two pointer payload values.
	DefaultCapacity = 32

	// DefaultAlign is the inline storage alignment in bytes.
	DefaultAlign = 8
)

// Config controls the inline storage of a Delegate.
type Config struct {
	InlineCapacity int `env:"DELEGATE_INLINE_CAPACITY" envDefault:"32"`
	InlineAlign    int `env:"DELEGATE_INLINE_ALIGN"    envDefault:"8"`
}

// DefaultConfig returns the configuration used by zero-value delegates.
func DefaultConfig() Config {
	return Config{InlineCapacity: DefaultCapacity, InlineAlign: DefaultAlign}
}

// Validate reports whether c describes a usable StackStorage.
func (c Config) Validate() error {
	if c.InlineCapacity <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "inline capacity %d", c.InlineCapacity)
	}
	if c.InlineAlign <= 0 || c.InlineAlign&(c.InlineAlign-1) != 0 {
		return errors.Wrapf(ErrInvalidConfig, "inline alignment %d is not a power of two", c.InlineAlign)
	}
	return nil
}

// LoadConfigFromEnv reads DELEGATE_INLINE_CAPACITY and DELEGATE_INLINE_ALIGN.
// On error it returns DefaultConfig alongside the error.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), errors.Wrap(err, "delegate: parse env")
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Option adjusts the Config of a Delegate created by New.
type Option func(*Config)

// WithCapacity sets the inline storage size in bytes.
func WithCapacity(n int) Option {
	return func(c *Config) { c.InlineCapacity = n }
}

// WithAlign sets the inline storage alignment in bytes.
func WithAlign(n int) Option {
	return func(c *Config) { c.InlineAlign = n }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
