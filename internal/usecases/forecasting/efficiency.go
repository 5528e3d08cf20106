// Package forecasting calcula a eficiência solar de uma conta a partir da série de previsão
package forecasting

import (
	"math"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

// CalculateEfficiency compara a geração informada na conta com a geração ideal prevista.
// A geração da conta é a referência; a trilha de estimativas realizadas é só informativa.
func CalculateEfficiency(actual float64, series domain.ForecastSeries, period *domain.Period) domain.SolarEfficiency {
	ideal := sumWithin(series.Forecasts, period)

	return domain.SolarEfficiency{
		Efficiency:       utils.Percentage(actual, ideal),
		IdealGeneration:  ideal,
		ActualGeneration: actual,
		PotentialSavings: math.Max(0, ideal-actual),
		EstimatedActual:  sumWithin(series.EstimatedActuals, period),
	}
}

// sumWithin soma as amostras cujo intervalo termina em (start, end]. Sem período, todas contam.
func sumWithin(samples []domain.ForecastSample, period *domain.Period) float64 {
	total := 0.0
	for _, sample := range samples {
		if period != nil && !period.CoversIntervalEnding(sample.PeriodEnd) {
			continue
		}
		total += sample.PVEstimate
	}
	return total
}
