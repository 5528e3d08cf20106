package insighting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/bill-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/internal/usecases/validating"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
)

const (
	userEntryName     = "Your System"
	userEntryLocation = "Your Location"
)

// Analysis é o resultado de uma execução do motor junto com a conta validada
type Analysis struct {
	Bill   domain.BillRecord
	Bundle *domain.InsightBundle
}

// Engine executa a análise completa de uma conta
type Engine struct {
	validator  validating.Validator
	forecaster forecasting.Forecaster
	ranking    ranking.RankingService
}

// NewEngine cria o motor. forecaster e rankingService podem ser nil para desligar os respectivos ramos.
func NewEngine(
	validator validating.Validator,
	forecaster forecasting.Forecaster,
	rankingService ranking.RankingService,
) *Engine {
	return &Engine{
		validator:  validator,
		forecaster: forecaster,
		ranking:    rankingService,
	}
}

// Analyze valida o registro bruto e produz o bundle. Apenas *validating.IncompleteBillError é retornado;
// falhas do ramo solar resultam em bundle sem bloco solar.
func (e *Engine) Analyze(ctx context.Context, raw domain.RawBill, opts domain.AnalysisOptions) (*domain.InsightBundle, error) {
	analysis, err := e.run(ctx, opts, func() (*validating.ValidationResult, error) {
		return e.validator.Validate(ctx, raw)
	})
	if err != nil {
		return nil, err
	}
	return analysis.Bundle, nil
}

// AnalyzePayload confere o JSON do extrator contra o schema antes de analisar
func (e *Engine) AnalyzePayload(ctx context.Context, payload []byte, opts domain.AnalysisOptions) (*Analysis, error) {
	return e.run(ctx, opts, func() (*validating.ValidationResult, error) {
		return e.validator.ValidatePayload(ctx, payload)
	})
}

func (e *Engine) run(
	ctx context.Context,
	opts domain.AnalysisOptions,
	validate func() (*validating.ValidationResult, error),
) (*Analysis, error) {
	started := time.Now()
	logger := log.ForContext(ctx)

	result, err := validate()
	if err != nil {
		outcome := metrics.ResultError
		var incomplete *validating.IncompleteBillError
		if errors.As(err, &incomplete) {
			outcome = metrics.ResultIncomplete
		}
		metrics.ObserveAnalysis(outcome, time.Since(started))
		return nil, err
	}

	bill := result.Bill
	logger = logger.WithField("account_id", bill.AccountID)

	var (
		wg         sync.WaitGroup
		usage      domain.UsageBlock
		costs      domain.CostBlock
		solar      *domain.SolarEfficiency
		comparison *domain.PeerComparison
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		usage = analyzing.AnalyzeUsage(bill)
		costs = analyzing.AnalyzeCost(bill)
	}()

	go func() {
		defer wg.Done()
		if e.forecaster != nil {
			solar = e.forecaster.Estimate(ctx, bill, opts)
		}
		if !opts.SkipComparison {
			comparison = e.comparePeers(ctx, bill, solar, opts)
		}
	}()

	wg.Wait()

	insights := Synthesize(bill, usage, costs, solar)
	for _, insight := range insights {
		metrics.IncInsight(string(insight.Kind))
	}

	bundle := Assemble(BundleParts{
		Bill:       bill,
		Usage:      usage,
		Costs:      costs,
		Solar:      solar,
		Comparison: comparison,
		Insights:   insights,
		Warnings:   result.Warnings,
	})

	metrics.ObserveAnalysis(metrics.ResultSuccess, time.Since(started))

	logger.WithFields(log.Fields{
		"insights":    len(bundle.Insights),
		"solar_block": bundle.Solar != nil,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Análise da conta concluída")

	return &Analysis{Bill: bill, Bundle: &bundle}, nil
}

// comparePeers posiciona a conta no grupo de referência. A geração esperada do usuário é a ideal
// prevista quando há bloco solar; sem ele, potência instalada vezes o rendimento de referência.
func (e *Engine) comparePeers(
	ctx context.Context,
	bill domain.BillRecord,
	solar *domain.SolarEfficiency,
	opts domain.AnalysisOptions,
) *domain.PeerComparison {
	if e.ranking == nil || !bill.HasSolar() || !bill.Location.Known {
		return nil
	}

	capacity := forecasting.CapacityFor(bill, opts)
	expected := capacity * ranking.ExpectedYieldPerKW
	if solar != nil {
		expected = solar.IdealGeneration
	}

	name := bill.CustomerName
	if name == "" {
		name = userEntryName
	}

	subject := domain.PeerSubject{
		ID:                 bill.AccountID,
		Name:               name,
		ActualGeneration:   bill.SolarGeneration,
		ExpectedGeneration: expected,
		SystemSizeKW:       capacity,
		Location:           userEntryLocation,
	}

	scope := opts.CohortScope
	if !scope.Valid() {
		scope = domain.CohortScopeNeighborhood
	}

	query := domain.CohortQuery{
		Scope:            scope,
		Latitude:         bill.Location.Latitude,
		Longitude:        bill.Location.Longitude,
		ExcludeAccountID: bill.AccountID,
	}
	if bill.BillingPeriod.Period != nil {
		query.Month = bill.BillingPeriod.Period.Month()
	}

	return e.ranking.ComparePeers(ctx, subject, query)
}
