package session

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	errors2 "github.com/pkg/errors"
)

// FileName is the name of the session file in the data directory.
const FileName = "session.json"

// Store is a persistent key/value store for client state. Values are kept in memory and every change is
// written through to the session file.
type Store struct {
	location string
	mutex    sync.RWMutex
	values   map[string]string
	watcher  *fsnotify.Watcher
	closer   chan struct{}
	done     chan struct{}
}

// Open loads the session file from the given data directory. A missing file is an empty session.
func Open(location string) (*Store, error) {
	s := &Store{location: location, values: map[string]string{}}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores the value under key. When the session can't be written, the previous value is kept.
func (s *Store) Set(key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	previous := s.values[key]
	delete(s.values, key)
	if err := s.persist(); err != nil {
		s.values[key] = previous
		return err
	}
	return nil
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// must be called with the write lock held
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if err := db.WriteFile(s.location, FileName, data); err != nil {
		return errors2.Wrap(err, "unable to write session")
	}
	return nil
}

func (s *Store) reload() error {
	data, err := db.ReadFile(s.location, FileName)
	if err != nil {
		return errors2.Wrap(err, "unable to read session")
	}
	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return errors2.Wrapf(err, "unable to parse %s", FileName)
		}
	}
	s.mutex.Lock()
	s.values = values
	s.mutex.Unlock()
	return nil
}

// Watch reloads the session whenever the session file is changed by another process. It returns an error when
// the watcher can't be started. Calling Watch on a watching store is a no-op.
func (s *Store) Watch() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// The directory is watched since the file is replaced on every write.
	if err := watcher.Add(s.location); err != nil {
		watcher.Close()
		return errors2.Wrapf(err, "unable to watch %s", s.location)
	}
	s.watcher = watcher
	s.closer = make(chan struct{})
	s.done = make(chan struct{})
	go s.watch(watcher, s.closer, s.done)
	return nil
}

func (s *Store) watch(watcher *fsnotify.Watcher, closer chan struct{}, done chan struct{}) {
	defer close(done)
	target := filepath.Join(s.location, FileName)
	for {
		select {
		case <-closer:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(target) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logging.Log().Debugf("Session file changed (%s), reloading", event.Op)
			if err := s.reload(); err != nil {
				logging.Log().Warnf("Unable to reload session: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Log().Errorf("Session watcher error: %v", err)
		}
	}
}

// Close stops watching the session file.
func (s *Store) Close() error {
	s.mutex.Lock()
	watcher, closer, done := s.watcher, s.closer, s.done
	s.watcher = nil
	s.mutex.Unlock()

	if watcher == nil {
		return nil
	}
	close(closer)
	<-done
	return watcher.Close()
}
