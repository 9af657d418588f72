// Package settings provides typed access to namespaced keys of the key-value store,
// with defaults from a schema and per-key change notification.
// Keys are addressed as "<namespace>.<key>", e.g. "nightswitch.commands.sunrise".
package settings

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightswitch/app/store"
)

// KV is the storage used by settings.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// HandlerID identifies a change handler, zero value means "no handler".
type HandlerID uint64

// Handler is called with the short key name after the key's value changed.
type Handler func(key string)

// Settings is a handle scoped to one namespace. Handles made with Child share
// storage, schema and change notification with their parent.
type Settings struct {
	kv        KV
	schema    Schema
	namespace string
	hub       *hub
}

// New makes a root settings handle for the namespace.
func New(kv KV, schema Schema, namespace string) *Settings {
	return &Settings{kv: kv, schema: schema, namespace: namespace, hub: newHub()}
}

// Child returns a handle for the "<namespace>.<name>" sub-namespace.
func (s *Settings) Child(name string) *Settings {
	return &Settings{kv: s.kv, schema: s.schema, namespace: s.namespace + "." + name, hub: s.hub}
}

// Namespace returns the full namespace of the handle.
func (s *Settings) Namespace() string { return s.namespace }

// GetString returns the string value of the key, schema default if not set.
func (s *Settings) GetString(key string) string {
	raw, ok := s.raw(key)
	if !ok {
		v, _ := s.schema.Default(s.fullKey(key)).(string)
		return v
	}
	return raw
}

// GetBoolean returns the boolean value of the key, schema default if not set or malformed.
func (s *Settings) GetBoolean(key string) bool {
	def, _ := s.schema.Default(s.fullKey(key)).(bool)
	raw, ok := s.raw(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[WARN] malformed boolean %s=%q, using default %v", s.fullKey(key), raw, def)
		return def
	}
	return v
}

// GetDouble returns the float value of the key, schema default if not set or malformed.
func (s *Settings) GetDouble(key string) float64 {
	def, _ := s.schema.Default(s.fullKey(key)).(float64)
	raw, ok := s.raw(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[WARN] malformed number %s=%q, using default %v", s.fullKey(key), raw, def)
		return def
	}
	return v
}

// SetString stores a string value and notifies handlers if it changed.
func (s *Settings) SetString(key, value string) error {
	return s.set(key, value)
}

// SetBoolean stores a boolean value and notifies handlers if it changed.
func (s *Settings) SetBoolean(key string, value bool) error {
	return s.set(key, strconv.FormatBool(value))
}

// SetDouble stores a float value and notifies handlers if it changed.
func (s *Settings) SetDouble(key string, value float64) error {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// Reset removes the stored value, so the key reads as its schema default.
func (s *Settings) Reset(key string) error {
	full := s.fullKey(key)
	if err := s.kv.Delete(full); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to reset %s: %w", full, err)
	}
	s.hub.emit(full, unsetValue)
	return nil
}

// Connect registers a handler called after the key changes. Returns the handler id
// to pass to Disconnect.
func (s *Settings) Connect(key string, fn Handler) HandlerID {
	return s.hub.add(s.fullKey(key), key, fn)
}

// Disconnect removes a handler. Unknown ids are ignored.
func (s *Settings) Disconnect(id HandlerID) {
	s.hub.remove(id)
}

// Notify re-reads the full key and dispatches change handlers if its value differs
// from the last one seen. Used by Watcher for changes made outside this process.
func (s *Settings) Notify(fullKey string) {
	raw, err := s.kv.Get(fullKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.hub.emit(fullKey, unsetValue)
	case err != nil:
		log.Printf("[WARN] failed to read changed key %s: %v", fullKey, err)
	default:
		s.hub.emit(fullKey, string(raw))
	}
}

func (s *Settings) set(key, value string) error {
	full := s.fullKey(key)
	if err := s.kv.Set(full, []byte(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", full, err)
	}
	s.hub.emit(full, value)
	return nil
}

// raw returns the stored string value; ok is false for missing keys and read errors.
func (s *Settings) raw(key string) (string, bool) {
	v, err := s.kv.Get(s.fullKey(key))
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		log.Printf("[WARN] failed to read %s, using default: %v", s.fullKey(key), err)
		return "", false
	}
	return string(v), true
}

func (s *Settings) fullKey(key string) string {
	return s.namespace + "." + key
}

// unsetValue marks a deleted key in the hub; can't collide with stored text values
// since the store never returns it for an existing key.
const unsetValue = "\x00unset"

type handler struct {
	fullKey string
	key     string
	fn      Handler
}

// hub keeps handlers and the last value seen per key, so the same change reported
// twice (in-process write, then watcher scan) is dispatched once.
type hub struct {
	mu       sync.Mutex
	nextID   HandlerID
	handlers map[HandlerID]handler
	last     map[string]string
}

func newHub() *hub {
	return &hub{handlers: map[HandlerID]handler{}, last: map[string]string{}}
}

func (h *hub) add(fullKey, key string, fn Handler) HandlerID {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.handlers[h.nextID] = handler{fullKey: fullKey, key: key, fn: fn}
	return h.nextID
}

func (h *hub) remove(id HandlerID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handlers, id)
}

func (h *hub) emit(fullKey, value string) {
	h.mu.Lock()
	if prev, ok := h.last[fullKey]; ok && prev == value {
		h.mu.Unlock()
		return
	}
	h.last[fullKey] = value

	ids := make([]HandlerID, 0, len(h.handlers))
	for id, hd := range h.handlers {
		if hd.fullKey == fullKey {
			ids = append(ids, id)
		}
	}
	h.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		// handler may be removed by an earlier handler in this dispatch
		h.mu.Lock()
		hd, ok := h.handlers[id]
		h.mu.Unlock()
		if ok {
			hd.fn(hd.key)
		}
	}
}

// count returns number of active handlers, for tests
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}
