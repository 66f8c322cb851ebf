// Package manager owns the shared classifier's lifecycle: one load per
// process, an explicit teardown, and a permanent mock fallback when the
// real model cannot be loaded.
package manager

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/verdant-labs/paddydoc/internal/engine/infer"
	"github.com/verdant-labs/paddydoc/internal/model"
)

// LoadFunc constructs the real classifier. Invoked at most once per load
// attempt; a returned error sends the manager into permanent mock mode.
type LoadFunc func(ctx context.Context) (infer.Classifier, error)

// Manager is the process-wide classifier lifecycle state machine. All
// methods are safe for concurrent use; racing EnsureLoaded calls collapse
// into a single load attempt and observe the same terminal state.
type Manager struct {
	load LoadFunc

	group singleflight.Group

	mu         sync.Mutex
	state      model.ModelState
	classifier infer.Classifier
}

// New creates an unloaded Manager that will construct its classifier with
// load on first use.
func New(load LoadFunc) *Manager {
	return &Manager{load: load, state: model.StateUnloaded}
}

// State returns the current lifecycle state.
func (m *Manager) State() model.ModelState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Classifier returns the loaded classifier, or nil in mock mode.
func (m *Manager) Classifier() infer.Classifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.classifier
}

// EnsureLoaded brings the manager into a servable state and returns it.
// Idempotent: once Ready or MockReady it returns immediately without
// reloading. A failed load is not an error — the manager transitions
// through Failed into MockReady and stays there for the rest of the
// process, so the pipeline remains usable without a working model. The
// returned state is always Ready or MockReady.
func (m *Manager) EnsureLoaded(ctx context.Context) model.ModelState {
	m.mu.Lock()
	if m.state.Servable() {
		s := m.state
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	v, _, _ := m.group.Do("load", func() (any, error) {
		// Re-check under the flight: a load may have completed between the
		// caller's state check and joining the group.
		m.mu.Lock()
		if m.state.Servable() {
			s := m.state
			m.mu.Unlock()
			return s, nil
		}
		m.state = model.StateLoading
		m.mu.Unlock()

		// Detach from the caller's context so one caller abandoning its
		// request cannot poison the shared state for everyone else.
		cls, err := m.load(context.WithoutCancel(ctx))
		if err != nil {
			m.setState(model.StateFailed)
			slog.Warn("model load failed, serving synthetic predictions", "error", err)
			// Failed is transient: degrade permanently to mock mode so the
			// pipeline stays available without a working model.
			m.setState(model.StateMockReady)
			return model.StateMockReady, nil
		}

		m.mu.Lock()
		m.classifier = cls
		m.state = model.StateReady
		m.mu.Unlock()
		slog.Info("model loaded")
		return model.StateReady, nil
	})
	return v.(model.ModelState)
}

func (m *Manager) setState(s model.ModelState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Close releases the classifier and returns the manager to Unloaded. This
// is also the explicit escape hatch from mock mode: the next EnsureLoaded
// after Close attempts a real load again.
func (m *Manager) Close() error {
	m.mu.Lock()
	cls := m.classifier
	m.classifier = nil
	m.state = model.StateUnloaded
	m.mu.Unlock()

	if cls != nil {
		return cls.Close()
	}
	return nil
}
