package domain

import "time"

// ForecastSample é uma amostra de geração fotovoltaica estimada
type ForecastSample struct {
	PeriodEnd  time.Time `json:"period_end"`
	Period     string    `json:"period"`
	PVEstimate float64   `json:"pv_estimate"`
}

// ForecastSeries contém as duas trilhas retornadas pelo provedor. Trilhas vazias são válidas.
type ForecastSeries struct {
	EstimatedActuals []ForecastSample `json:"estimated_actuals"`
	Forecasts        []ForecastSample `json:"forecasts"`
}

// IsEmpty indica se o provedor não retornou nenhuma amostra
func (s ForecastSeries) IsEmpty() bool {
	return len(s.EstimatedActuals) == 0 && len(s.Forecasts) == 0
}

// ForecastRequest descreve uma consulta ao provedor de irradiância
type ForecastRequest struct {
	Latitude   float64
	Longitude  float64
	CapacityKW float64
	Start      time.Time
	End        time.Time
	APIKey     string
}
