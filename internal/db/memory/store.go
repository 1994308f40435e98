// Package memory is an in-process db.Store for local runs without Redis and
// for repository tests. Only the root JSON path "$" is supported.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/kailas-cloud/tripdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

const rootPath = "$"

// Store keeps documents, strings and sorted sets in maps guarded by one mutex.
type Store struct {
	mu     sync.RWMutex
	json   map[string][]byte
	kv     map[string][]byte
	zsets  map[string]map[string]float64
	closed bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		json:  make(map[string][]byte),
		kv:    make(map[string][]byte),
		zsets: make(map[string]map[string]float64),
	}
}

// Ping fails only after Close.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("store closed")}
	}
	return nil
}

// Close marks the store unavailable.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// WaitForReady returns immediately; an in-process store is always ready.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// JSONSet stores a copy of data. Only the root path is supported.
func (s *Store) JSONSet(_ context.Context, key, path string, data []byte) error {
	if path != rootPath {
		return &db.Error{Op: db.OpJSONSet, Err: fmt.Errorf("unsupported path %q", path)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.json[key] = slices.Clone(data)
	return nil
}

// JSONGet mirrors JSON.GET key $, which wraps the document in an array.
func (s *Store) JSONGet(_ context.Context, key string, paths ...string) ([]byte, error) {
	for _, p := range paths {
		if p != rootPath {
			return nil, &db.Error{Op: db.OpJSONGet, Err: fmt.Errorf("unsupported path %q", p)}
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.json[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	if len(paths) == 0 {
		return slices.Clone(doc), nil
	}
	return wrap(doc), nil
}

// JSONMGet mirrors JSON.MGET keys... $.
func (s *Store) JSONMGet(_ context.Context, keys []string, path string) ([][]byte, error) {
	if path != rootPath {
		return nil, &db.Error{Op: db.OpJSONMGet, Err: fmt.Errorf("unsupported path %q", path)}
	}
	if len(keys) == 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]byte, len(keys))
	for i, k := range keys {
		if doc, ok := s.json[k]; ok {
			out[i] = wrap(doc)
		}
	}
	return out, nil
}

// Del removes key from every keyspace.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.json, key)
	delete(s.kv, key)
	delete(s.zsets, key)
	return nil
}

// Exists reports whether key holds a value of any kind.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, inJSON := s.json[key]
	_, inKV := s.kv[key]
	_, inZ := s.zsets[key]
	return inJSON || inKV || inZ, nil
}

// Get returns a string value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.kv[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

// SetNX stores value unless key already holds a string.
func (s *Store) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kv[key]; ok {
		return false, nil
	}
	s.kv[key] = slices.Clone(value)
	return true, nil
}

// ZAdd adds or rescores a member.
func (s *Store) ZAdd(_ context.Context, key string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	z, ok := s.zsets[key]
	if !ok {
		z = make(map[string]float64)
		s.zsets[key] = z
	}
	z[member] = score
	return nil
}

// ZRem removes a member; the set is dropped once empty.
func (s *Store) ZRem(_ context.Context, key, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if z, ok := s.zsets[key]; ok {
		delete(z, member)
		if len(z) == 0 {
			delete(s.zsets, key)
		}
	}
	return nil
}

// ZRevRange orders by score descending, then member descending, as Redis does.
func (s *Store) ZRevRange(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	z := s.zsets[key]
	members := make([]string, 0, len(z))
	for m := range z {
		members = append(members, m)
	}
	slices.SortFunc(members, func(a, b string) int {
		if c := cmp.Compare(z[b], z[a]); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	return members, nil
}

func wrap(doc []byte) []byte {
	out := make([]byte, 0, len(doc)+2)
	out = append(out, '[')
	out = append(out, doc...)
	return append(out, ']')
}
