package services

import (
	"context"
	"sync"
	"time"

	"github.com/aliyacapital/seriesdash/internal/errors"
)

// Sequencer keeps at most one live request per key. Starting a request
// cancels the one before it, and a request that was overtaken reports
// errors.ErrSuperseded instead of its result.
type Sequencer struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]*ticket
	debounce time.Duration
}

type ticket struct {
	seq    uint64
	cancel context.CancelFunc
}

// NewSequencer returns a sequencer that waits debounce before running each
// request, so bursts for the same key collapse into the last one.
func NewSequencer(debounce time.Duration) *Sequencer {
	return &Sequencer{inflight: make(map[string]*ticket), debounce: debounce}
}

// Do runs fn for key.
func (s *Sequencer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	runCtx, seq := s.begin(ctx, key)
	defer s.end(key, seq)

	if s.debounce > 0 {
		timer := time.NewTimer(s.debounce)
		select {
		case <-runCtx.Done():
			timer.Stop()
			return s.outcome(ctx, key, seq, runCtx.Err())
		case <-timer.C:
		}
	}

	err := fn(runCtx)
	return s.outcome(ctx, key, seq, err)
}

// Run is Do for functions that produce a value.
func Run[T any](ctx context.Context, s *Sequencer, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := s.Do(ctx, key, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (s *Sequencer) begin(ctx context.Context, key string) (context.Context, uint64) {
	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if prev, ok := s.inflight[key]; ok {
		prev.cancel()
	}
	s.inflight[key] = &ticket{seq: s.seq, cancel: cancel}
	return runCtx, s.seq
}

func (s *Sequencer) end(key string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.inflight[key]; ok && t.seq == seq {
		t.cancel()
		delete(s.inflight, key)
	}
}

func (s *Sequencer) current(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.inflight[key]
	return ok && t.seq == seq
}

func (s *Sequencer) outcome(parent context.Context, key string, seq uint64, err error) error {
	if !s.current(key, seq) {
		return errors.ErrSuperseded
	}
	if err == nil {
		return nil
	}
	if parent.Err() != nil {
		return parent.Err()
	}
	return err
}
