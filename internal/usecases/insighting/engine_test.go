package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	solcastmocks "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/mocks"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/internal/usecases/validating"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func solarRawBill() domain.RawBill {
	return domain.RawBill{
		AccountID:       "ACC-1",
		CustomerName:    "Maria",
		BillingPeriod:   "Mar 1, 2024 - Mar 31, 2024",
		DueDate:         "Apr 10, 2024",
		TotalAmount:     "$150.00",
		EnergyUsage:     "450 kWh",
		PreviousUsage:   380,
		SolarGeneration: "320 kWh",
		Location:        &domain.RawLocation{Latitude: -23.5505, Longitude: -46.6333},
		Rates:           map[string]any{"Tier 1 (0-500 kWh)": 0.12, "Tier 2 (501+ kWh)": 0.18},
		Charges:         map[string]any{"Energy Charge": 120, "Taxes": 30},
	}
}

func forecastFor375(_ context.Context, req domain.ForecastRequest) (*domain.ForecastSeries, error) {
	return &domain.ForecastSeries{
		EstimatedActuals: []domain.ForecastSample{
			{PeriodEnd: req.Start.Add(12 * time.Hour), PVEstimate: 300},
		},
		Forecasts: []domain.ForecastSample{
			{PeriodEnd: req.Start.Add(12 * time.Hour), PVEstimate: 200},
			{PeriodEnd: req.Start.AddDate(0, 0, 15), PVEstimate: 175},
		},
	}, nil
}

func newTestEngine(t *testing.T, integrator *solcastmocks.MockSolcastIntegrator) *Engine {
	t.Helper()

	validator, err := validating.NewService()
	require.NoError(t, err)

	cohort, err := ranking.NewFixtureCohort("")
	require.NoError(t, err)

	return NewEngine(
		validator,
		forecasting.NewService(integrator),
		ranking.NewSolarRankingService(nil, cohort),
	)
}

func TestEngine_Analyze(t *testing.T) {
	log.SetupTestLogger()

	opts := domain.AnalysisOptions{SolarAPIKey: "chave"}

	t.Run("Conta com solar produz bundle completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
		integrator.EXPECT().GetForecastSeries(gomock.Any(), gomock.Any()).DoAndReturn(forecastFor375)

		bundle, err := newTestEngine(t, integrator).Analyze(context.Background(), solarRawBill(), opts)
		require.NoError(t, err)

		assert.Equal(t, 150.0, bundle.Summary.TotalAmount)
		assert.Equal(t, "Apr 10, 2024", bundle.Summary.DueDate)
		assert.Equal(t, "Mar 1, 2024 - Mar 31, 2024", bundle.Summary.BillingPeriod)
		assert.InDelta(t, 18.42, bundle.Usage.Change, 0.01)
		assert.Equal(t, "Energy Charge", bundle.Costs.LargestExpense)
		assert.Equal(t, 80.0, bundle.Costs.Share)

		require.NotNil(t, bundle.Solar)
		assert.InDelta(t, 85.33, bundle.Solar.Efficiency, 0.01)
		assert.Equal(t, 55.0, bundle.Solar.PotentialSavings)
		assert.Equal(t, 300.0, bundle.Solar.EstimatedActual)

		require.NotNil(t, bundle.Comparison)
		assert.Equal(t, 9, bundle.Comparison.Total)
		assert.Equal(t, 6, bundle.Comparison.Rank)

		assert.Equal(t, []string{
			"Usage Increase Alert",
			"Daily Consumption",
			"Main Cost Driver",
			"Solar Efficiency",
			"Optimization Opportunity",
		}, titles(bundle.Insights))
	})

	t.Run("falha do provedor mantém consumo e custo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
		integrator.EXPECT().
			GetForecastSeries(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("dial tcp: i/o timeout"))

		bundle, err := newTestEngine(t, integrator).Analyze(context.Background(), solarRawBill(), opts)
		require.NoError(t, err)

		assert.Nil(t, bundle.Solar)
		assert.Equal(t, []string{"Usage Increase Alert", "Daily Consumption", "Main Cost Driver"}, titles(bundle.Insights))
		assert.InDelta(t, 18.42, bundle.Usage.Change, 0.01)
		assert.Equal(t, "Energy Charge", bundle.Costs.LargestExpense)

		// Sem previsão, o esperado do usuário é potência padrão x 150
		require.NotNil(t, bundle.Comparison)
		assert.Equal(t, 42.67, bundle.Comparison.Score)
	})

	t.Run("Sem credencial o provedor não é chamado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
		integrator.EXPECT().GetForecastSeries(gomock.Any(), gomock.Any()).Times(0)

		bundle, err := newTestEngine(t, integrator).Analyze(context.Background(), solarRawBill(), domain.AnalysisOptions{SkipComparison: true})
		require.NoError(t, err)

		assert.Nil(t, bundle.Solar)
		assert.Nil(t, bundle.Comparison)
	})

	t.Run("Conta sem consumo retorna IncompleteBillError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)

		raw := solarRawBill()
		raw.EnergyUsage = domain.UnknownSentinel

		bundle, err := newTestEngine(t, integrator).Analyze(context.Background(), raw, opts)
		assert.Nil(t, bundle)

		var incomplete *validating.IncompleteBillError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, "energyUsage", incomplete.Field)
	})

	t.Run("Período inválido desliga apenas o ramo solar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
		integrator.EXPECT().GetForecastSeries(gomock.Any(), gomock.Any()).Times(0)

		raw := solarRawBill()
		raw.BillingPeriod = "março de 2024"

		bundle, err := newTestEngine(t, integrator).Analyze(context.Background(), raw, opts)
		require.NoError(t, err)

		assert.Nil(t, bundle.Solar)
		assert.NotEmpty(t, bundle.Warnings)
		assert.Equal(t, "março de 2024", bundle.Summary.BillingPeriod)
	})
}

func TestEngine_Analyze_Idempotente(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
	integrator.EXPECT().GetForecastSeries(gomock.Any(), gomock.Any()).DoAndReturn(forecastFor375).Times(2)

	engine := newTestEngine(t, integrator)
	opts := domain.AnalysisOptions{SolarAPIKey: "chave"}

	first, err := engine.Analyze(context.Background(), solarRawBill(), opts)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), solarRawBill(), opts)
	require.NoError(t, err)

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestEngine_AnalyzePayload(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
	engine := newTestEngine(t, integrator)

	t.Run("cobranças vazias resultam em Uncategorized", func(t *testing.T) {
		payload := []byte(`{"totalAmount": 100, "energyUsage": 300, "charges": {}}`)

		analysis, err := engine.AnalyzePayload(context.Background(), payload, domain.AnalysisOptions{})
		require.NoError(t, err)

		assert.Equal(t, "Uncategorized", analysis.Bundle.Costs.LargestExpense)
		assert.Equal(t, 0.0, analysis.Bundle.Costs.Share)
		assert.Equal(t, 0.0, analysis.Bundle.Usage.Change)
		assert.Nil(t, analysis.Bundle.Comparison)
	})

	t.Run("Payload fora do schema é rejeitado", func(t *testing.T) {
		_, err := engine.AnalyzePayload(context.Background(), []byte(`{"energyUsage": 300}`), domain.AnalysisOptions{})

		var payloadErr *validating.PayloadError
		assert.ErrorAs(t, err, &payloadErr)
	})
}
