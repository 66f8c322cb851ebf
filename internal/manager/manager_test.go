package manager

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/verdant-labs/paddydoc/internal/engine/infer"
	"github.com/verdant-labs/paddydoc/internal/model"
)

// stubClassifier is a no-op classifier for lifecycle tests.
type stubClassifier struct {
	closed bool
}

func (s *stubClassifier) Classify(context.Context, image.Image) ([]float32, error) {
	return make([]float32, model.NumClasses), nil
}

func (s *stubClassifier) Close() error {
	s.closed = true
	return nil
}

func TestEnsureLoadedSuccess(t *testing.T) {
	var calls atomic.Int32
	m := New(func(context.Context) (infer.Classifier, error) {
		calls.Add(1)
		return &stubClassifier{}, nil
	})

	if got := m.State(); got != model.StateUnloaded {
		t.Fatalf("initial state = %v, want unloaded", got)
	}

	state := m.EnsureLoaded(context.Background())
	if state != model.StateReady {
		t.Fatalf("EnsureLoaded() = %v, want ready", state)
	}
	if m.Classifier() == nil {
		t.Fatal("Classifier() is nil after a successful load")
	}

	// Idempotent: no second load.
	if state := m.EnsureLoaded(context.Background()); state != model.StateReady {
		t.Fatalf("second EnsureLoaded() = %v, want ready", state)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times, want 1", n)
	}
}

func TestEnsureLoadedFailureDegradesToMock(t *testing.T) {
	var calls atomic.Int32
	m := New(func(context.Context) (infer.Classifier, error) {
		calls.Add(1)
		return nil, errors.New("artifact corrupt")
	})

	state := m.EnsureLoaded(context.Background())
	if state != model.StateMockReady {
		t.Fatalf("EnsureLoaded() = %v, want mock-ready", state)
	}
	if m.Classifier() != nil {
		t.Fatal("Classifier() should be nil in mock mode")
	}

	// Mock mode is permanent: no retry on later calls.
	for i := 0; i < 5; i++ {
		if state := m.EnsureLoaded(context.Background()); state != model.StateMockReady {
			t.Fatalf("call %d: state = %v, want mock-ready", i, state)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times, want 1 (no retries in mock mode)", n)
	}
}

func TestEnsureLoadedSingleFlight(t *testing.T) {
	const callers = 64

	var calls atomic.Int32
	release := make(chan struct{})
	m := New(func(context.Context) (infer.Classifier, error) {
		calls.Add(1)
		<-release // hold the load so every caller races on Loading
		return &stubClassifier{}, nil
	})

	var wg sync.WaitGroup
	states := make([]model.ModelState, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			states[i] = m.EnsureLoaded(context.Background())
		}(i)
	}

	close(start)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times under %d concurrent callers, want 1", n, callers)
	}
	for i, s := range states {
		if s != model.StateReady {
			t.Fatalf("caller %d observed %v, want ready", i, s)
		}
	}
	if got := m.State(); got != model.StateReady {
		t.Fatalf("terminal state = %v, want ready (no Loading leak)", got)
	}
}

func TestCallerCancellationDoesNotPoisonState(t *testing.T) {
	m := New(func(ctx context.Context) (infer.Classifier, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &stubClassifier{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // caller abandoned before the load even started

	if state := m.EnsureLoaded(ctx); state != model.StateReady {
		t.Fatalf("EnsureLoaded(cancelled ctx) = %v, want ready (load runs detached)", state)
	}
}

func TestCloseAllowsExplicitReload(t *testing.T) {
	fail := true
	var calls atomic.Int32
	m := New(func(context.Context) (infer.Classifier, error) {
		calls.Add(1)
		if fail {
			return nil, errors.New("artifact missing")
		}
		return &stubClassifier{}, nil
	})

	if state := m.EnsureLoaded(context.Background()); state != model.StateMockReady {
		t.Fatalf("state = %v, want mock-ready", state)
	}

	// Close is the explicit escape hatch from mock mode.
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if got := m.State(); got != model.StateUnloaded {
		t.Fatalf("state after Close = %v, want unloaded", got)
	}

	fail = false
	if state := m.EnsureLoaded(context.Background()); state != model.StateReady {
		t.Fatalf("state after reload = %v, want ready", state)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("loader called %d times, want 2", n)
	}
}

func TestCloseReleasesClassifier(t *testing.T) {
	stub := &stubClassifier{}
	m := New(func(context.Context) (infer.Classifier, error) {
		return stub, nil
	})

	m.EnsureLoaded(context.Background())
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !stub.closed {
		t.Fatal("classifier was not closed")
	}
	if m.Classifier() != nil {
		t.Fatal("Classifier() should be nil after Close")
	}
}
