package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast"
	"github.com/vfg2006/bill-insights-api/internal/config"
)

// ForecastCachePurgeService remove periodicamente as séries expiradas do cache de previsão
type ForecastCachePurgeService struct {
	scheduler       *gocron.Scheduler
	solcast         solcast.SolcastIntegrator
	cronSchedule    string
	enabled         bool
	mutex           sync.Mutex
	lastPurgeAt     time.Time
	lastPurgedItems int
}

func NewForecastCachePurgeService(solcastIntegrator solcast.SolcastIntegrator, cfg *config.Config) *ForecastCachePurgeService {
	return &ForecastCachePurgeService{
		scheduler:    gocron.NewScheduler(time.UTC),
		solcast:      solcastIntegrator,
		cronSchedule: cfg.ForecastCachePurge.CronSchedule,
		enabled:      cfg.ForecastCachePurge.Enabled,
	}
}

func (s *ForecastCachePurgeService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Cron de limpeza do cache de previsão desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.Purge)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache de previsão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do cache de previsão")
		s.scheduler.Stop()
	}()

	return nil
}

// Purge remove as entradas vencidas e devolve quantas saíram
func (s *ForecastCachePurgeService) Purge() int {
	removed := s.solcast.PurgeExpired()

	s.mutex.Lock()
	s.lastPurgeAt = time.Now()
	s.lastPurgedItems = removed
	s.mutex.Unlock()

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Cache de previsão limpo")
	}

	return removed
}

// TriggerManualSync executa a limpeza imediatamente
func (s *ForecastCachePurgeService) TriggerManualSync() {
	go s.Purge()
}

func (s *ForecastCachePurgeService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"purge_enabled":     s.enabled,
		"purge_cron":        s.cronSchedule,
		"last_purge_at":     s.lastPurgeAt,
		"last_purged_items": s.lastPurgedItems,
	}
}
