package redis

import (
	"context"
	"strconv"

	"github.com/kailas-cloud/tripdex/internal/db"
)

// ZAdd adds or updates a member of a sorted set.
func (s *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	cmd := s.b().Arbitrary("ZADD").Keys(key).
		Args(strconv.FormatFloat(score, 'f', -1, 64), member).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpZAdd, Err: err}
	}
	return nil
}

// ZRem removes a member from a sorted set.
func (s *Store) ZRem(ctx context.Context, key, member string) error {
	cmd := s.b().Arbitrary("ZREM").Keys(key).Args(member).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpZRem, Err: err}
	}
	return nil
}

// ZRevRange returns every member of a sorted set, highest score first.
func (s *Store) ZRevRange(ctx context.Context, key string) ([]string, error) {
	cmd := s.b().Arbitrary("ZREVRANGE").Keys(key).Args("0", "-1").Build()
	members, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpZRevRange, Err: err}
	}
	return members, nil
}
