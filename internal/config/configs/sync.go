package configs

import (
	"fmt"
	"strings"
)

// Storage backends accepted by Sync.Storage.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Partner transports accepted by Sync.Transport.
const (
	TransportHTTP      = "http"
	TransportSimulated = "simulated"
)

// Sync holds engine settings.
type Sync struct {
	// BatchSize is the number of partners synced concurrently.
	BatchSize int `env:"BATCH_SIZE" envDefault:"5"`
	// Storage selects the repository backend: postgres or memory.
	Storage string `env:"STORAGE" envDefault:"postgres"`
	// Transport selects the partner transport: http or simulated.
	Transport string `env:"TRANSPORT" envDefault:"simulated"`
}

// Validate checks the enumerated fields.
func (c Sync) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("sync batch size must be positive, got %d", c.BatchSize)
	}
	switch strings.ToLower(c.Storage) {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown sync storage %q", c.Storage)
	}
	switch strings.ToLower(c.Transport) {
	case TransportHTTP, TransportSimulated:
	default:
		return fmt.Errorf("unknown sync transport %q", c.Transport)
	}
	return nil
}
