package cartclient

import "github.com/jayramanidev/portfolio/internal/model"

// State is the lifecycle of the client's cart view.
type State int

const (
	// StateLoading means a view refresh is in flight and no view has been
	// received yet, or the previous view is being replaced.
	StateLoading State = iota

	// StateReady means View holds the last server-confirmed view.
	StateReady

	// StateError means the last refresh failed; Err holds the reason and
	// the previous view, if any, is retained.
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ViewState is the client's rendering state: exactly one of loading, a
// server-confirmed view, or an error with the previous view retained.
type ViewState struct {
	State State
	View  *model.CartView
	Err   error
}
