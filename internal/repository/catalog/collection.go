// Package catalog stores raw JSON documents of one collection together with
// a creation-ordered index, so a full listing is ZREVRANGE plus one JSON.MGET.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/logger"
)

// store is the consumer interface for catalog collections (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONMGet(ctx context.Context, keys []string, path string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key, member string) error
	ZRevRange(ctx context.Context, key string) ([]string, error)
}

// Entry is one stored document. Data is nil when the index points at a
// document that no longer exists.
type Entry struct {
	ID   string
	Data []byte
}

// Collection is a named document set under a key prefix.
type Collection struct {
	store  store
	prefix string
	name   string
}

// NewCollection creates a collection handle. Keys are "<prefix>{<name>}:<id>"
// and the index is "<prefix>{<name>}:index". The hash tag pins a collection
// to one cluster slot so All can fetch it with a single JSON.MGET.
func NewCollection(s store, prefix, name string) *Collection {
	return &Collection{store: s, prefix: prefix, name: name}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Insert stores a new document and indexes it by createdAt.
// The document is removed again if indexing fails.
func (c *Collection) Insert(ctx context.Context, id string, createdAt time.Time, data []byte) error {
	key := c.docKey(id)

	exists, err := c.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return fmt.Errorf("%s %s: %w", c.name, id, domain.ErrAlreadyExists)
	}

	if err := c.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	if err := c.store.ZAdd(ctx, c.indexKey(), float64(createdAt.UnixMilli()), id); err != nil {
		if delErr := c.store.Del(ctx, key); delErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback %s: %w", key, delErr))
		}
		return fmt.Errorf("index %s: %w", key, err)
	}
	return nil
}

// Replace overwrites an existing document. The index entry is kept.
func (c *Collection) Replace(ctx context.Context, id string, data []byte) error {
	key := c.docKey(id)

	exists, err := c.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", c.name, id, domain.ErrNotFound)
	}

	if err := c.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// Get returns the raw document.
func (c *Collection) Get(ctx context.Context, id string) ([]byte, error) {
	key := c.docKey(id)
	raw, err := c.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s %s: %w", c.name, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("json.get %s: %w", key, err)
	}
	doc, err := unwrapRoot(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s %s: %w", c.name, id, domain.ErrNotFound)
	}
	return doc, nil
}

// All returns every indexed document, newest first.
func (c *Collection) All(ctx context.Context) ([]Entry, error) {
	ids, err := c.store.ZRevRange(ctx, c.indexKey())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.docKey(id)
	}
	raws, err := c.store.JSONMGet(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.name, err)
	}

	entries := make([]Entry, 0, len(ids))
	for i, id := range ids {
		var raw []byte
		if i < len(raws) {
			raw = raws[i]
		}
		if raw == nil {
			// index entry without a document
			continue
		}
		doc, err := unwrapRoot(raw)
		if err != nil || doc == nil {
			logger.FromContext(ctx).Warn("unreadable document, using defaults",
				zap.String("collection", c.name),
				zap.String("id", id),
				zap.Error(err),
			)
			entries = append(entries, Entry{ID: id})
			continue
		}
		entries = append(entries, Entry{ID: id, Data: doc})
	}
	return entries, nil
}

// Delete removes the document and its index entry.
func (c *Collection) Delete(ctx context.Context, id string) error {
	key := c.docKey(id)

	exists, err := c.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", c.name, id, domain.ErrNotFound)
	}

	if err := c.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := c.store.ZRem(ctx, c.indexKey(), id); err != nil {
		return fmt.Errorf("unindex %s: %w", key, err)
	}
	return nil
}

func (c *Collection) docKey(id string) string {
	return c.keyspace() + id
}

func (c *Collection) indexKey() string {
	return c.keyspace() + "index"
}

func (c *Collection) keyspace() string {
	return c.prefix + "{" + c.name + "}:"
}

// unwrapRoot extracts the document from a "$" path reply, which is a
// one-element JSON array. An empty array yields nil.
func unwrapRoot(raw []byte) ([]byte, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, err
	}
	if len(arr) == 0 {
		return nil, nil
	}
	return arr[0], nil
}
