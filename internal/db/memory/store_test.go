package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/tripdex/internal/db"
)

func TestJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.JSONSet(ctx, "k", "$", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.JSONGet(ctx, "k", "$")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[{"a":1}]` {
		t.Errorf("JSONGet = %s", got)
	}

	multi, err := s.JSONMGet(ctx, []string{"k", "missing"}, "$")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(multi[0]) != `[{"a":1}]` || multi[1] != nil {
		t.Errorf("JSONMGet = %q", multi)
	}
}

func TestJSON_UnsupportedPath(t *testing.T) {
	s := NewStore()
	err := s.JSONSet(context.Background(), "k", "$.a", []byte(`1`))
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Errorf("expected db.Error, got %v", err)
	}
}

func TestJSONGet_NotFound(t *testing.T) {
	_, err := NewStore().JSONGet(context.Background(), "nope", "$")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetNX(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	ok, _ := s.SetNX(ctx, "email", []byte("u1"))
	if !ok {
		t.Fatal("first SetNX should store")
	}
	ok, _ = s.SetNX(ctx, "email", []byte("u2"))
	if ok {
		t.Fatal("second SetNX should not store")
	}
	v, _ := s.Get(ctx, "email")
	if string(v) != "u1" {
		t.Errorf("Get = %s", v)
	}
}

func TestZRevRange_Order(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.ZAdd(ctx, "z", 1, "old")
	_ = s.ZAdd(ctx, "z", 3, "new")
	_ = s.ZAdd(ctx, "z", 2, "b")
	_ = s.ZAdd(ctx, "z", 2, "a")

	got, _ := s.ZRevRange(ctx, "z")
	want := []string{"new", "b", "a", "old"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}

	_ = s.ZRem(ctx, "z", "new")
	got, _ = s.ZRevRange(ctx, "z")
	if len(got) != 3 || got[0] != "b" {
		t.Errorf("after ZRem got %v", got)
	}
}

func TestPing_AfterClose(t *testing.T) {
	s := NewStore()
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("expected error after Close")
	}
}
