package domain

import "time"

// PVPowerSample é uma amostra de potência fotovoltaica retornada pela Solcast
type PVPowerSample struct {
	PeriodEnd  time.Time `json:"period_end"`
	Period     string    `json:"period"`
	PVEstimate float64   `json:"pv_estimate"`
}

// EstimatedActualsResponse é a resposta de /pv_power/estimated_actuals
type EstimatedActualsResponse struct {
	EstimatedActuals []PVPowerSample `json:"estimated_actuals"`
}

// ForecastsResponse é a resposta de /pv_power/forecasts
type ForecastsResponse struct {
	Forecasts []PVPowerSample `json:"forecasts"`
}
