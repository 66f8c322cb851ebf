package model

// ModelState tracks the shared classifier's lifecycle. It starts Unloaded
// at process start; a load request moves it through Loading to Ready, or
// through Failed to MockReady. MockReady is a permanent degraded mode for
// the remainder of the process unless a reload is explicitly requested.
type ModelState int

const (
	StateUnloaded ModelState = iota
	StateLoading
	StateReady
	StateFailed
	StateMockReady
)

func (s ModelState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateMockReady:
		return "mock-ready"
	default:
		return "unloaded"
	}
}

// Servable reports whether predictions may be served from this state.
func (s ModelState) Servable() bool {
	return s == StateReady || s == StateMockReady
}
