package tool

import (
	"fmt"

	"dev.rubentxu.step7-service/internal/core/ports"
)

type Backend string

const (
	BackendExec   Backend = "exec"
	BackendMemory Backend = "memory"
)

// Config selecciona y configura el backend de la herramienta.
type Config struct {
	Backend Backend
	Exec    ExecConfig
}

// New crea el backend indicado en cfg.
func New(cfg Config, logger ports.Logger) (ports.Step7Tool, error) {
	switch cfg.Backend {
	case BackendExec:
		return NewExecTool(cfg.Exec, logger)
	case BackendMemory:
		return NewMemoryTool(logger), nil
	default:
		return nil, fmt.Errorf("unsupported tool backend: %q", cfg.Backend)
	}
}
