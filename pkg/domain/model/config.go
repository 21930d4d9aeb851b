package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// StorageKind selects the record store backend
type StorageKind string

const (
	StorageSQLite StorageKind = "sqlite"
	StorageMemory StorageKind = "memory"
)

// ServerConfig represents the runtime configuration of the HTTP service
type ServerConfig struct {
	Addr        string
	Storage     StorageKind
	DBPath      string
	Encoding    string
	ExecTimeout time.Duration
}

// DefaultServerConfig returns the configuration used when no flag is given
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:     ":8000",
		Storage:  StorageSQLite,
		DBPath:   "syscmd.db",
		Encoding: "utf-8",
	}
}

// Validate checks the configuration for values the server cannot start with.
// Encoding names are checked separately by the decoder registry.
func (c *ServerConfig) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return goerr.New("listen address is required")
	}

	switch c.Storage {
	case StorageSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return goerr.New("sqlite storage requires a database path")
		}
	case StorageMemory:
	default:
		return goerr.New("unknown storage kind", goerr.V("storage", c.Storage))
	}

	if c.ExecTimeout < 0 {
		return goerr.New("exec timeout must not be negative", goerr.V("timeout", c.ExecTimeout))
	}

	return nil
}
