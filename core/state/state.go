// Package state defines the application state machine.
package state

import "fmt"

// AppState represents the state of the analysis workflow.
type AppState int

const (
	// StateIdle is the initial state: no image loaded, analysis unavailable.
	StateIdle AppState = iota
	// StateImageLoaded indicates an image is displayed and ready for analysis.
	StateImageLoaded
	// StateAnalyzing indicates the classification pipeline is running.
	StateAnalyzing
	// StateResultShown indicates a prediction result is displayed.
	StateResultShown
)

// String returns the string representation of the state.
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateImageLoaded:
		return "ImageLoaded"
	case StateAnalyzing:
		return "Analyzing"
	case StateResultShown:
		return "ResultShown"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// Key is the current state, value is a list of valid target states.
// Selecting a new image while one is already loaded is a self-transition
// (the previous image and any stale result are discarded).
var validTransitions = map[AppState][]AppState{
	StateIdle:        {StateImageLoaded},
	StateImageLoaded: {StateImageLoaded, StateAnalyzing},
	StateAnalyzing:   {StateResultShown, StateImageLoaded},
	StateResultShown: {StateImageLoaded, StateAnalyzing},
}

// CanTransitionTo checks if transitioning from the current state to the target state is valid.
func (s AppState) CanTransitionTo(target AppState) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns the list of valid target states from the current state.
func (s AppState) ValidTransitions() []AppState {
	return validTransitions[s]
}

// CanLoadImage returns true if a new image selection is accepted in this state.
// Selection is allowed whenever analysis is not in flight.
func (s AppState) CanLoadImage() bool {
	return s != StateAnalyzing
}

// CanAnalyze returns true if analysis can be started in this state.
func (s AppState) CanAnalyze() bool {
	return s == StateImageLoaded || s == StateResultShown
}

// HasImage returns true if an image is loaded in this state.
func (s AppState) HasImage() bool {
	return s != StateIdle
}

// HasResult returns true if a prediction result is displayed in this state.
func (s AppState) HasResult() bool {
	return s == StateResultShown
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From   AppState
	To     AppState
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid state transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to AppState, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
