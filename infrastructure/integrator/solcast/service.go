package solcast

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	solcastdomain "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/domain"
	"github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/solcastclient"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SolcastIntegrator interface {
	GetForecastSeries(ctx context.Context, req domain.ForecastRequest) (*domain.ForecastSeries, error)
	PurgeExpired() int
}

type SolcastService struct {
	Client solcastclient.Client
	cache  *forecastCache
	group  singleflight.Group
}

func New(cfg *config.Config, client solcastclient.Client) *SolcastService {
	return &SolcastService{
		Client: client,
		cache:  newForecastCache(cfg.Solcast.CacheTTL),
	}
}

// GetForecastSeries busca as estimativas realizadas e as previsões em paralelo.
// Qualquer falha de uma das duas chamadas invalida a série inteira.
func (s *SolcastService) GetForecastSeries(ctx context.Context, req domain.ForecastRequest) (*domain.ForecastSeries, error) {
	if req.APIKey == "" {
		return nil, fmt.Errorf("chave da API Solcast não informada")
	}

	key := cacheKey(req)
	if series, ok := s.cache.get(key); ok {
		metrics.IncForecast(metrics.ForecastCacheHit)
		return series, nil
	}

	// Análises simultâneas da mesma localização compartilham uma única ida ao provedor.
	// O cancelamento de quem chegou primeiro não derruba os demais; o cliente aplica o próprio timeout.
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), key, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.ForecastSeries), nil
}

func (s *SolcastService) fetch(ctx context.Context, key string, req domain.ForecastRequest) (*domain.ForecastSeries, error) {
	params := solcastclient.PVPowerParams{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CapacityKW: req.CapacityKW,
		Start:      req.Start,
		End:        req.End,
		APIKey:     req.APIKey,
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"solar_latitude":  req.Latitude,
		"solar_longitude": req.Longitude,
	})

	var (
		wg        sync.WaitGroup
		actuals   *solcastdomain.EstimatedActualsResponse
		forecasts *solcastdomain.ForecastsResponse
		errActual error
		errFcst   error
	)

	started := time.Now()

	wg.Add(2)
	go func() {
		defer wg.Done()
		actuals, errActual = s.Client.GetEstimatedActuals(ctx, params)
	}()
	go func() {
		defer wg.Done()
		forecasts, errFcst = s.Client.GetForecasts(ctx, params)
	}()
	wg.Wait()

	metrics.ObserveForecastFetch(time.Since(started))

	if errActual != nil {
		logger.WithError(errActual).Warn("Falha ao buscar estimativas realizadas na Solcast")
		metrics.IncForecast(metrics.ForecastUnavailable)
		return nil, fmt.Errorf("erro ao buscar estimativas realizadas: %w", errActual)
	}
	if errFcst != nil {
		logger.WithError(errFcst).Warn("Falha ao buscar previsões na Solcast")
		metrics.IncForecast(metrics.ForecastUnavailable)
		return nil, fmt.Errorf("erro ao buscar previsões: %w", errFcst)
	}

	series := &domain.ForecastSeries{
		EstimatedActuals: toSamples(actuals.EstimatedActuals),
		Forecasts:        toSamples(forecasts.Forecasts),
	}

	s.cache.set(key, series)
	metrics.IncForecast(metrics.ForecastFetched)

	logger.WithFields(log.Fields{
		"solar_actuals":   len(series.EstimatedActuals),
		"solar_forecasts": len(series.Forecasts),
	}).Debug("Série de previsão obtida")

	return series, nil
}

// PurgeExpired descarta do cache as séries vencidas
func (s *SolcastService) PurgeExpired() int {
	return s.cache.purgeExpired()
}

func toSamples(in []solcastdomain.PVPowerSample) []domain.ForecastSample {
	out := make([]domain.ForecastSample, 0, len(in))
	for _, sample := range in {
		out = append(out, domain.ForecastSample{
			PeriodEnd:  sample.PeriodEnd.UTC(),
			Period:     sample.Period,
			PVEstimate: sample.PVEstimate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PeriodEnd.Before(out[j].PeriodEnd)
	})

	return out
}
