package tripdex

import (
	"context"
	"strings"
	"sync"
)

// SuggestFunc fetches suggestions for one query.
type SuggestFunc func(ctx context.Context, q string) (SearchResult, error)

// SuggestUpdate is what a Suggester hands to its consumer: the settled
// response for the latest query, or an empty list when the query was cleared.
type SuggestUpdate struct {
	Query   string
	Items   []Record
	Partial []string
	Err     error
}

// Suggester drives type-ahead suggestions for a single input. Each Update
// starts a new generation, cancels the request of the previous one and
// guarantees that a response from an older generation is never delivered.
// The consumer therefore sees at most one update per current request, in
// the order the queries were typed.
type Suggester struct {
	fetch   SuggestFunc
	deliver func(SuggestUpdate)

	mu        sync.Mutex
	gen       uint64
	cancel    context.CancelFunc
	closed    bool
	discarded uint64
	wg        sync.WaitGroup
}

// NewSuggester returns a Suggester that calls fetch per query and passes
// current results to deliver. deliver runs with the Suggester's lock held
// and must not call back into it.
func NewSuggester(fetch SuggestFunc, deliver func(SuggestUpdate)) *Suggester {
	return &Suggester{fetch: fetch, deliver: deliver}
}

// NewSuggester wires a Suggester to the suggestions endpoint.
func (c *Client) NewSuggester(limit int, deliver func(SuggestUpdate)) *Suggester {
	return NewSuggester(func(ctx context.Context, q string) (SearchResult, error) {
		return c.Suggest(ctx, q, limit)
	}, deliver)
}

// Update makes q the current query. A blank q clears the suggestions
// synchronously; anything else is fetched in the background.
func (s *Suggester) Update(ctx context.Context, q string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if strings.TrimSpace(q) == "" {
		s.deliver(SuggestUpdate{Query: q})
		s.mu.Unlock()
		return
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		res, err := s.fetch(reqCtx, q)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			s.discarded++
			return
		}
		s.cancel = nil
		s.deliver(SuggestUpdate{
			Query:   q,
			Items:   res.Records,
			Partial: res.Partial,
			Err:     err,
		})
	}()
}

// Discarded counts responses dropped because a newer query superseded them.
func (s *Suggester) Discarded() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discarded
}

// Wait blocks until every started request has settled.
func (s *Suggester) Wait() {
	s.wg.Wait()
}

// Close cancels the in-flight request, stops further deliveries and waits
// for background work to finish.
func (s *Suggester) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}
