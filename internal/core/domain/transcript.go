package domain

import (
	"fmt"
	"strings"
	"sync"
)

// Transcript acumula las líneas de log de una única llamada. Es seguro para
// uso concurrente; el orden es el de llegada.
type Transcript struct {
	mu    sync.Mutex
	lines []string
}

func NewTranscript() *Transcript {
	return &Transcript{lines: []string{}}
}

// Add añade una línea sin el salto de línea final.
func (t *Transcript) Add(line string) {
	t.mu.Lock()
	t.lines = append(t.lines, strings.TrimRight(line, "\r\n"))
	t.mu.Unlock()
}

func (t *Transcript) Addf(format string, args ...interface{}) {
	t.Add(fmt.Sprintf(format, args...))
}

// Lines devuelve una copia de las líneas acumuladas.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}
