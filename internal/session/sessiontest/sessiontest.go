// Package sessiontest provides an in-memory config store and a seeded
// controller for tests of packages built on top of session.
package sessiontest

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/abhisek/mathtrainer/internal/problemgen"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/training"
)

// MemStore is an in-memory session.ConfigStore.
type MemStore struct {
	mu    sync.Mutex
	cfg   *training.Configuration
	Saves int
}

// NewMemStore returns a store holding cfg, or nothing when cfg is nil.
func NewMemStore(cfg *training.Configuration) *MemStore {
	m := &MemStore{}
	if cfg != nil {
		c := cfg.Clone()
		m.cfg = &c
	}
	return m
}

func (m *MemStore) Load(_ context.Context) (training.Configuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return training.Default(), nil
	}
	return m.cfg.Clone(), nil
}

func (m *MemStore) Save(_ context.Context, cfg training.Configuration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := cfg.Clone()
	m.cfg = &c
	m.Saves++
	return nil
}

// Saved returns the last saved configuration, if any.
func (m *MemStore) Saved() (training.Configuration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return training.Configuration{}, false
	}
	return m.cfg.Clone(), true
}

// NewController returns a controller with a fixed-seed generator, sequential
// session IDs and a discarding logger.
func NewController(store session.ConfigStore) *session.Controller {
	ids := 0
	gen := problemgen.New(rand.NewPCG(7, 11), problemgen.DefaultConfig())
	return session.NewController(gen, store,
		session.WithIDFunc(func() string {
			ids++
			return "test-session-" + strconv.Itoa(ids)
		}),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// WrongOption returns an option of s that is not the answer.
func WrongOption(s session.State) (int, bool) {
	for _, o := range s.Options {
		if o != s.Problem.Answer {
			return o, true
		}
	}
	return 0, false
}
