package forecasting

import "errors"

var (
	// ErrForecastUnavailable indica falha ao obter a série do provedor solar.
	// Nunca atravessa o motor de análise: vira ausência do bloco solar.
	ErrForecastUnavailable = errors.New("previsão solar indisponível")
)
