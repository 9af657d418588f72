// Package store provides key-value storage for settings.
package store

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Interface is the key-value storage contract used by settings.
type Interface interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	List() ([]KeyInfo, error)
	Close() error
}

// KeyInfo holds metadata about a stored key.
type KeyInfo struct {
	Key       string    `db:"key"`
	Size      int       `db:"size"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DBType identifies the database backend.
type DBType int

// supported database types
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker is a lock abstraction, real mutex for sqlite and no-op for postgres.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
