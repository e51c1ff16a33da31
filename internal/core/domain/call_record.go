package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CallRecord es la entrada del diario para una llamada despachada.
type CallRecord struct {
	ID         uuid.UUID         `json:"id"`
	Operation  string            `json:"operation"`
	State      CallState         `json:"state"`
	Params     map[string]string `json:"params,omitempty"`
	ExitCode   int32             `json:"exit_code"`
	Log        []string          `json:"log"`
	ItemCount  int               `json:"item_count"`
	Peer       string            `json:"peer,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Transition mueve el registro a dst si la transición es válida.
func (r *CallRecord) Transition(dst CallState) error {
	if !ValidCallTransition(r.State, dst) {
		return fmt.Errorf("invalid call state transition from %s to %s", r.State, dst)
	}
	r.State = dst
	return nil
}

// Duration devuelve el tiempo de ejecución de la llamada.
func (r CallRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// NewCallRecord crea un registro con un ID nuevo para el comando dado.
func NewCallRecord(cmd Command, startedAt time.Time) CallRecord {
	params := make(map[string]string)
	for _, p := range cmd.Params() {
		params[p.Name] = p.Value
	}
	return CallRecord{
		ID:        uuid.New(),
		Operation: cmd.Op.String(),
		State:     CallPending,
		Params:    params,
		StartedAt: startedAt,
	}
}
