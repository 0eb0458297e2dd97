package types

import (
	"sync"
)

// DefaultSS58Prefix is the generic Substrate address format.
const DefaultSS58Prefix uint16 = 42

// Config holds the address format used when rendering account identifiers.
// It is configured once at process start and sealed afterwards.
type Config struct {
	mtx        sync.RWMutex
	ss58Prefix uint16
	sealed     bool
}

var config = &Config{ss58Prefix: DefaultSS58Prefix}

// GetConfig returns the process-wide address config.
func GetConfig() *Config {
	return config
}

// SetSS58Prefix sets the network prefix used for SS58 addresses.
func (c *Config) SetSS58Prefix(prefix uint16) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.sealed {
		panic("config is sealed")
	}
	if prefix > MaxSS58Prefix {
		panic("ss58 prefix out of range")
	}
	c.ss58Prefix = prefix
}

// Seal freezes the config. Further setter calls panic.
func (c *Config) Seal() *Config {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.sealed = true
	return c
}

// GetSS58Prefix returns the configured network prefix.
func (c *Config) GetSS58Prefix() uint16 {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.ss58Prefix
}

// IsSealed reports whether the config has been sealed.
func (c *Config) IsSealed() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.sealed
}
