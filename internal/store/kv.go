package store

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ErrClosed is returned by backends used after Close
var ErrClosed = errors.New("store: backend closed")

// KV is the key-value backend behind Adapter
type KV interface {
	// Get returns the stored value and whether the key exists
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Backends lists the accepted backend names
func Backends() []string {
	return []string{BackendSQLite, BackendFile, BackendMemory}
}

// Open creates the named backend. dataDir holds the database file or the
// per-key JSON files; it is ignored by the memory backend.
func Open(backend, dataDir string) (KV, error) {
	switch strings.ToLower(backend) {
	case "", BackendSQLite:
		return OpenSQLite(sqlitePath(dataDir))
	case BackendFile:
		return OpenFile(dataDir)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
}
