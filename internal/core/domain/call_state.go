package domain

import "fmt"

// CallState controla el ciclo de vida de una llamada despachada.
type CallState int

const (
	CallPending CallState = iota
	CallQueued
	CallRunning
	CallCompleted
	CallFailed
	CallTimedOut
)

var callStateNames = map[CallState]string{
	CallPending:   "Pending",
	CallQueued:    "Queued",
	CallRunning:   "Running",
	CallCompleted: "Completed",
	CallFailed:    "Failed",
	CallTimedOut:  "TimedOut",
}

func (s CallState) String() string {
	if name, ok := callStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s CallState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CallState) UnmarshalText(b []byte) error {
	for state, name := range callStateNames {
		if name == string(b) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown call state %q", b)
}

// Terminal indica si el estado ya no admite transiciones.
func (s CallState) Terminal() bool {
	return len(callStateTransitions[s]) == 0
}

// Una llamada puede fallar o agotar el plazo en cualquier punto previo a su
// finalización; la validación falla antes de encolarse.
var callStateTransitions = map[CallState][]CallState{
	CallPending:   {CallQueued, CallFailed},
	CallQueued:    {CallRunning, CallFailed, CallTimedOut},
	CallRunning:   {CallCompleted, CallFailed, CallTimedOut},
	CallCompleted: {},
	CallFailed:    {},
	CallTimedOut:  {},
}

// ValidCallTransition valida si es posible pasar de src a dst.
func ValidCallTransition(src, dst CallState) bool {
	for _, s := range callStateTransitions[src] {
		if s == dst {
			return true
		}
	}
	return false
}

// FinalState deriva el estado terminal a partir del código de salida.
func FinalState(exitCode int32) CallState {
	switch exitCode {
	case ExitOK:
		return CallCompleted
	case ExitTimeout:
		return CallTimedOut
	default:
		return CallFailed
	}
}
