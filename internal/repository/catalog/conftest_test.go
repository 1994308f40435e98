package catalog

import (
	"context"

	"github.com/kailas-cloud/tripdex/internal/db/memory"
)

// failingStore wraps the in-memory store and lets a test override single calls.
type failingStore struct {
	*memory.Store
	zaddFn     func(ctx context.Context, key string, score float64, member string) error
	jsonMGetFn func(ctx context.Context, keys []string, path string) ([][]byte, error)
	delCalls   []string
}

func newFailingStore() *failingStore {
	return &failingStore{Store: memory.NewStore()}
}

func (f *failingStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if f.zaddFn != nil {
		return f.zaddFn(ctx, key, score, member)
	}
	return f.Store.ZAdd(ctx, key, score, member)
}

func (f *failingStore) JSONMGet(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if f.jsonMGetFn != nil {
		return f.jsonMGetFn(ctx, keys, path)
	}
	return f.Store.JSONMGet(ctx, keys, path)
}

func (f *failingStore) Del(ctx context.Context, key string) error {
	f.delCalls = append(f.delCalls, key)
	return f.Store.Del(ctx, key)
}
