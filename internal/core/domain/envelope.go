package domain

import (
	"fmt"
	"strings"
)

// Códigos de salida de una acción. Un backend puede devolver su propio código
// distinto de cero mediante ExitError.
const (
	ExitOK       int32 = 0
	ExitFailure  int32 = 1
	ExitUsage    int32 = 2
	ExitInternal int32 = 3
	ExitTimeout  int32 = 4
)

// StatusEnvelope es el resultado de una acción: código de salida y líneas de
// log en el orden en que se produjeron.
type StatusEnvelope struct {
	ExitCode int32
	Log      []string
}

func (s StatusEnvelope) OK() bool { return s.ExitCode == ExitOK }

// Err devuelve nil si la acción terminó bien y un *ExitError en otro caso.
func (s StatusEnvelope) Err() error {
	if s.OK() {
		return nil
	}
	msg := "no diagnostic output"
	if n := len(s.Log); n > 0 {
		msg = s.Log[n-1]
	}
	return &ExitError{Code: s.ExitCode, Msg: msg}
}

// ListEnvelope es el resultado de una enumeración. Items solo está definido
// cuando Status.OK().
type ListEnvelope struct {
	Status StatusEnvelope
	Items  []string
}

func (l ListEnvelope) OK() bool { return l.Status.OK() }

// ExitError transporta un código de salida de aplicación distinto de cero.
type ExitError struct {
	Code int32
	Msg  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %s", e.Code, strings.TrimSpace(e.Msg))
}

// Failf construye un ExitError con ExitFailure.
func Failf(format string, args ...interface{}) *ExitError {
	return &ExitError{Code: ExitFailure, Msg: fmt.Sprintf(format, args...)}
}
