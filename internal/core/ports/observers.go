package ports

import "dev.rubentxu.step7-service/internal/core/domain"

// CallObserver recibe un registro por cada llamada despachada, una vez que el
// sobre de respuesta está completo.
type CallObserver interface {
	Notify(record domain.CallRecord)
}

// CallJournal persiste y consulta los registros de llamadas.
type CallJournal interface {
	CallObserver
	Append(record domain.CallRecord) error
	Get(id string) (domain.CallRecord, error)
	// Recent devuelve como máximo limit registros, el más reciente primero.
	Recent(limit int) ([]domain.CallRecord, error)
	Close() error
}
