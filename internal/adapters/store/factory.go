package store

import (
	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

type JournalType string

const (
	MemoryJournal JournalType = "memory"
	BoltJournal   JournalType = "bolt"
	SQLiteJournal JournalType = "sqlite"
)

// DefaultCapacity es el número de registros conservados si no se indica otro.
const DefaultCapacity = 1000

// ErrNotFound se devuelve cuando no existe un registro con el ID pedido.
var ErrNotFound = errors.New("call record not found")

// Config selecciona el backend del diario de llamadas.
type Config struct {
	Type JournalType
	// Ruta del fichero para bolt y sqlite.
	Path string
	// Registros conservados; los más antiguos se descartan. 0 usa DefaultCapacity.
	Capacity int
}

// NewJournal crea el diario indicado en cfg.
func NewJournal(cfg Config, logger ports.Logger) (ports.CallJournal, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	logger = logger.With("component", "journal", "type", string(cfg.Type))

	switch cfg.Type {
	case MemoryJournal, "":
		return NewMemory(cfg.Capacity, logger), nil
	case BoltJournal:
		if cfg.Path == "" {
			return nil, errors.New("bolt journal: path is required")
		}
		return NewBolt(cfg.Path, cfg.Capacity, logger)
	case SQLiteJournal:
		if cfg.Path == "" {
			return nil, errors.New("sqlite journal: path is required")
		}
		return NewSQLite(cfg.Path, cfg.Capacity, logger)
	default:
		return nil, errors.Errorf("unsupported journal type: %q", cfg.Type)
	}
}

// notify adapta Append a CallObserver; el dispatcher no espera errores.
func notify(j ports.CallJournal, logger ports.Logger, rec domain.CallRecord) {
	if err := j.Append(rec); err != nil {
		logger.Error("failed to append call record", "call_id", rec.ID.String(), "error", err)
	}
}
