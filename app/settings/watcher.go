package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightswitch/app/store"
)

// Lister lists stored keys with their modification times.
type Lister interface {
	List() ([]store.KeyInfo, error)
}

// invalidator is implemented by caching stores
type invalidator interface {
	Invalidate(key string)
}

// WatcherParams configures a Watcher.
type WatcherParams struct {
	Store    Lister
	Settings *Settings     // root handle, receives Notify for changed keys
	Post     func(func())  // dispatcher, notifications are delivered through it
	Interval time.Duration // poll interval
	Path     string        // sqlite file to watch for writes, optional
}

// Watcher detects keys changed by other processes, e.g. by the "set" command, and
// dispatches their change notifications. Changes are found by comparing updated_at
// of every key between scans; the sqlite file is watched to scan right after a write,
// polling covers postgres and missed file events.
type Watcher struct {
	WatcherParams
	seen map[string]time.Time
}

// NewWatcher makes a watcher. Default interval is 5s.
func NewWatcher(p WatcherParams) *Watcher {
	if p.Interval <= 0 {
		p.Interval = 5 * time.Second
	}
	if p.Post == nil {
		p.Post = func(fn func()) { fn() }
	}
	return &Watcher{WatcherParams: p}
}

// Scan compares the store with the previous scan and posts notifications for changed,
// added and removed keys. The first scan only records the baseline.
func (w *Watcher) Scan() ([]string, error) {
	keys, err := w.Store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	prefix := w.Settings.Namespace() + "."
	current := make(map[string]time.Time, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k.Key, prefix) {
			current[k.Key] = k.UpdatedAt
		}
	}

	if w.seen == nil {
		w.seen = current
		return nil, nil
	}

	var changed []string
	for key, ts := range current {
		if prev, ok := w.seen[key]; !ok || !prev.Equal(ts) {
			changed = append(changed, key)
		}
	}
	for key := range w.seen {
		if _, ok := current[key]; !ok {
			changed = append(changed, key)
		}
	}
	w.seen = current

	for _, key := range changed {
		if inv, ok := w.Store.(invalidator); ok {
			inv.Invalidate(key)
		}
		log.Printf("[DEBUG] settings key %s changed externally", key)
		w.Post(func() { w.Settings.Notify(key) })
	}
	return changed, nil
}

// Run scans on every interval tick and shortly after writes to the sqlite file,
// until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := w.Scan(); err != nil {
		return err
	}

	var events <-chan fsnotify.Event
	var fsErrors <-chan error
	if w.Path != "" {
		fw, err := w.watchFile()
		if err != nil {
			log.Printf("[WARN] can't watch %s, polling only: %v", w.Path, err)
		} else {
			defer fw.Close()
			events, fsErrors = fw.Events, fw.Errors
			log.Printf("[DEBUG] watching %s for settings changes", w.Path)
		}
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	// debounce bursts of file events into one scan
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	base := filepath.Base(w.Path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.scanLogged()
		case <-debounce.C:
			w.scanLogged()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if strings.HasPrefix(filepath.Base(ev.Name), base) && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				debounce.Reset(100 * time.Millisecond)
			}
		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			log.Printf("[WARN] settings file watcher error: %v", err)
		}
	}
}

// watchFile watches the directory of the db file, sqlite writes go to the -wal file first
func (w *Watcher) watchFile() (*fsnotify.Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.Path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	return fw, nil
}

func (w *Watcher) scanLogged() {
	if _, err := w.Scan(); err != nil {
		log.Printf("[WARN] settings scan failed: %v", err)
	}
}
