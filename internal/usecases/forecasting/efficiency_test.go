package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

func sample(ts time.Time, pv float64) domain.ForecastSample {
	return domain.ForecastSample{PeriodEnd: ts, Period: "PT30M", PVEstimate: pv}
}

func TestCalculateEfficiency(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	period := &domain.Period{Start: start, End: start.AddDate(0, 1, 0)}

	tests := []struct {
		name          string
		actual        float64
		series        domain.ForecastSeries
		period        *domain.Period
		wantIdeal     float64
		wantEff       float64
		wantPotential float64
		wantEstimated float64
	}{
		{
			name:   "Geração abaixo do ideal resulta em 85,33% e potencial de 55 kWh",
			actual: 320,
			series: domain.ForecastSeries{
				Forecasts: []domain.ForecastSample{
					sample(start.Add(12*time.Hour), 200),
					sample(start.AddDate(0, 0, 10), 175),
				},
			},
			period:        period,
			wantIdeal:     375,
			wantEff:       320.0 / 375.0 * 100,
			wantPotential: 55,
		},
		{
			name:   "Amostras fora do período são ignoradas",
			actual: 100,
			series: domain.ForecastSeries{
				Forecasts: []domain.ForecastSample{
					sample(start.Add(-time.Minute), 999),
					sample(start.Add(30*time.Minute), 100),
					sample(period.End.Add(time.Minute), 999),
				},
				EstimatedActuals: []domain.ForecastSample{
					sample(start.Add(time.Hour), 90),
					sample(period.End.Add(time.Hour), 50),
				},
			},
			period:        period,
			wantIdeal:     100,
			wantEff:       100,
			wantEstimated: 90,
		},
		{
			name:   "Intervalo que termina no início fica fora e o que termina no fim entra",
			actual: 11,
			series: domain.ForecastSeries{
				Forecasts: []domain.ForecastSample{
					sample(start, 7),
					sample(period.End, 11),
				},
			},
			period:    period,
			wantIdeal: 11,
			wantEff:   100,
		},
		{
			name:   "Sem período todas as amostras contam",
			actual: 50,
			series: domain.ForecastSeries{
				Forecasts: []domain.ForecastSample{
					sample(start.AddDate(-1, 0, 0), 40),
					sample(start.AddDate(1, 0, 0), 60),
				},
			},
			wantIdeal:     100,
			wantEff:       50,
			wantPotential: 50,
		},
		{
			name:   "Geração acima do ideal não gera potencial negativo",
			actual: 500,
			series: domain.ForecastSeries{
				Forecasts: []domain.ForecastSample{sample(start.Add(time.Hour), 400)},
			},
			period:    period,
			wantIdeal: 400,
			wantEff:   125,
		},
		{
			name:   "Série vazia resulta em eficiência e potencial zerados",
			actual: 320,
			series: domain.ForecastSeries{},
			period: period,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateEfficiency(tt.actual, tt.series, tt.period)

			assert.InDelta(t, tt.wantIdeal, result.IdealGeneration, 1e-9)
			assert.InDelta(t, tt.wantEff, result.Efficiency, 1e-9)
			assert.InDelta(t, tt.wantPotential, result.PotentialSavings, 1e-9)
			assert.InDelta(t, tt.wantEstimated, result.EstimatedActual, 1e-9)
			assert.Equal(t, tt.actual, result.ActualGeneration)
			assert.GreaterOrEqual(t, result.Efficiency, 0.0)
		})
	}
}
