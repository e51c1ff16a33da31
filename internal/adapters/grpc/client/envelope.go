package client

import (
	"dev.rubentxu.step7-service/internal/core/domain"
)

// LineSink recibe las líneas de log de un sobre, en orden.
type LineSink func(line string)

// CheckStatus vuelca el log del sobre en sink y devuelve un *domain.ExitError
// si el código de salida no es cero.
func CheckStatus(env domain.StatusEnvelope, sink LineSink) error {
	if sink != nil {
		for _, line := range env.Log {
			sink(line)
		}
	}
	return env.Err()
}

// CheckList hace lo mismo que CheckStatus y devuelve los elementos solo si
// la enumeración terminó bien.
func CheckList(env domain.ListEnvelope, sink LineSink) ([]string, error) {
	if err := CheckStatus(env.Status, sink); err != nil {
		return nil, err
	}
	if env.Items == nil {
		return []string{}, nil
	}
	return env.Items, nil
}
