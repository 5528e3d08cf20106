package forecasting

import (
	"context"
	"fmt"

	"github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// DefaultCapacityKW é a potência instalada assumida quando nem a conta nem o chamador informam
const DefaultCapacityKW = 5.0

type Forecaster interface {
	Estimate(ctx context.Context, bill domain.BillRecord, opts domain.AnalysisOptions) *domain.SolarEfficiency
}

type Service struct {
	solcast solcast.SolcastIntegrator
}

func NewService(solcastIntegrator solcast.SolcastIntegrator) *Service {
	return &Service{
		solcast: solcastIntegrator,
	}
}

// Estimate executa o ramo solar da análise. Retorna nil quando o ramo é pulado
// ou quando o provedor falha; nenhum desses casos é erro para o chamador.
func (s *Service) Estimate(ctx context.Context, bill domain.BillRecord, opts domain.AnalysisOptions) *domain.SolarEfficiency {
	logger := log.ForContext(ctx).WithField("account_id", bill.AccountID)

	if reason, skip := skipReason(bill, opts); skip {
		logger.WithField("solar_skip", reason).Debug("Ramo solar ignorado")
		metrics.IncForecast(metrics.ForecastSkipped)
		return nil
	}

	req := domain.ForecastRequest{
		Latitude:   bill.Location.Latitude,
		Longitude:  bill.Location.Longitude,
		CapacityKW: CapacityFor(bill, opts),
		Start:      bill.BillingPeriod.Period.Start,
		End:        bill.BillingPeriod.Period.End,
		APIKey:     opts.SolarAPIKey,
	}

	series, err := s.solcast.GetForecastSeries(ctx, req)
	if err != nil {
		logger.WithError(fmt.Errorf("%w: %v", ErrForecastUnavailable, err)).
			Warn("Seguindo a análise sem bloco solar")
		return nil
	}

	efficiency := CalculateEfficiency(bill.SolarGeneration, *series, bill.BillingPeriod.Period)

	logger.WithFields(log.Fields{
		"solar_efficiency": efficiency.Efficiency,
		"solar_ideal":      efficiency.IdealGeneration,
	}).Info("Eficiência solar calculada")

	return &efficiency
}

// CapacityFor escolhe a potência do sistema: a da conta, depois a do chamador, depois o padrão
func CapacityFor(bill domain.BillRecord, opts domain.AnalysisOptions) float64 {
	if bill.SystemSizeKW > 0 {
		return bill.SystemSizeKW
	}
	if opts.SystemCapacityKW > 0 {
		return opts.SystemCapacityKW
	}
	return DefaultCapacityKW
}

func skipReason(bill domain.BillRecord, opts domain.AnalysisOptions) (string, bool) {
	switch {
	case bill.SolarGeneration <= 0:
		return "sem_geracao", true
	case opts.SolarAPIKey == "":
		return "sem_credencial", true
	case bill.BillingPeriod.Period == nil:
		return "periodo_invalido", true
	case !bill.Location.Known:
		return "sem_localizacao", true
	}
	return "", false
}
