// Package scheduler contém os serviços de agendamento para manutenção do ranking e do cache
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bill-insights-api/infrastructure/repository"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

type SolarRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SolarRankingSyncService grava o ranking mensal de desempenho solar de cada bairro
type SolarRankingSyncService struct {
	scheduler           *gocron.Scheduler
	analysisRepo        repository.AnalysisRepository
	rankingRepo         repository.SolarRankingRepository
	config              SolarRankingSyncConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncMonth       string
	lastSyncItems       int
}

func NewSolarRankingSyncService(
	analysisRepo repository.AnalysisRepository,
	rankingRepo repository.SolarRankingRepository,
	cfg *config.Config,
) *SolarRankingSyncService {
	syncConfig := SolarRankingSyncConfig{
		CronSchedule: cfg.SolarRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.SolarRankingSync.SyncEnabled,  // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking solar carregada")

	return &SolarRankingSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		analysisRepo: analysisRepo,
		rankingRepo:  rankingRepo,
		config:       syncConfig,
		now:          time.Now,
	}
}

func (s *SolarRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking solar desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking solar")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSolarRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking solar")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do ranking solar: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking solar")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSolarRanking recalcula o ranking do mês anterior. Execuções concorrentes são ignoradas.
func (s *SolarRankingSyncService) SyncSolarRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização do ranking solar já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	month := utils.PreviousMonth(s.now())

	items, err := s.syncMonth(ctx, month)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncMonth = month
	s.lastSyncItems = len(items)
	s.syncMutex.Unlock()

	if err != nil {
		metrics.IncRankingSync(metrics.ResultError)
		return err
	}

	metrics.IncRankingSync(metrics.ResultSuccess)
	return nil
}

// syncMonth carrega as análises solares do mês, ranqueia cada bairro e grava o resultado
func (s *SolarRankingSyncService) syncMonth(ctx context.Context, month string) ([]*domain.SolarRankingItem, error) {
	logger := logrus.WithField("month", month)
	logger.Info("Iniciando atualização do ranking solar")

	records, err := s.analysisRepo.ListSolarByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar análises solares do mês %s: %w", month, err)
	}

	if len(records) == 0 {
		logger.Info("Nenhuma análise solar encontrada para o ranking")
		return []*domain.SolarRankingItem{}, nil
	}

	groups := groupByNeighborhood(records)
	buckets := make([]string, 0, len(groups))
	for bucket := range groups {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	previous, err := s.rankingRepo.GetByBuckets(ctx, buckets, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking anterior: %w", err)
	}

	rankingsBeforeUpdate := make(map[string]*domain.SolarRankingItem, len(previous))
	for _, item := range previous {
		rankingsBeforeUpdate[rankingKey(item.Bucket, item.AccountID)] = item
	}

	updatedRankings := make([]*domain.SolarRankingItem, 0, len(records))
	for _, bucket := range buckets {
		updatedRankings = append(updatedRankings, rankBucket(bucket, month, groups[bucket], rankingsBeforeUpdate)...)
	}

	if err := s.rankingRepo.SaveOrUpdate(ctx, updatedRankings); err != nil {
		return updatedRankings, fmt.Errorf("erro ao salvar ranking solar atualizado: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"buckets": len(buckets),
		"items":   len(updatedRankings),
	}).Info("Ranking solar atualizado")

	return updatedRankings, nil
}

func groupByNeighborhood(records []*domain.AnalysisRecord) map[string][]*domain.AnalysisRecord {
	groups := make(map[string][]*domain.AnalysisRecord)
	for _, record := range records {
		if record.NeighborhoodBucket == "" {
			continue
		}
		groups[record.NeighborhoodBucket] = append(groups[record.NeighborhoodBucket], record)
	}
	return groups
}

// rankBucket ordena as contas de um bairro. O ranking anterior do mesmo mês define a variação de posição.
func rankBucket(
	bucket, month string,
	records []*domain.AnalysisRecord,
	rankingsBeforeUpdate map[string]*domain.SolarRankingItem,
) []*domain.SolarRankingItem {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AccountID < records[j].AccountID
	})

	entries := make([]domain.RankingEntry, 0, len(records))
	names := make(map[string]string, len(records))
	for _, record := range records {
		entries = append(entries, domain.RankingEntry{
			ID:                 record.AccountID,
			Name:               record.CustomerName,
			ActualGeneration:   record.Generation,
			ExpectedGeneration: expectedGeneration(record),
			SystemSizeKW:       record.SystemSizeKW,
		})
		names[record.AccountID] = record.CustomerName
	}

	ranked := ranking.Rank(entries)

	items := make([]*domain.SolarRankingItem, 0, len(ranked))
	for _, entry := range ranked {
		item := &domain.SolarRankingItem{
			AccountID:          entry.ID,
			Bucket:             bucket,
			Month:              month,
			CustomerName:       names[entry.ID],
			Score:              entry.Score,
			ActualGeneration:   entry.ActualGeneration,
			ExpectedGeneration: entry.ExpectedGeneration,
			Position:           entry.Position,
		}

		if before, exists := rankingsBeforeUpdate[rankingKey(bucket, entry.ID)]; exists {
			item.PreviousPosition = before.Position
			item.PositionChange = before.Position - item.Position
		}

		items = append(items, item)
	}

	return items
}

// expectedGeneration usa a previsão gravada e, sem ela, a potência vezes o rendimento de referência
func expectedGeneration(record *domain.AnalysisRecord) float64 {
	if record.TotalForecast > 0 {
		return record.TotalForecast
	}
	return record.SystemSizeKW * ranking.ExpectedYieldPerKW
}

func rankingKey(bucket, accountID string) string {
	return bucket + "|" + accountID
}

// TriggerManualSync inicia manualmente uma sincronização do ranking solar
func (s *SolarRankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do ranking solar já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do ranking solar")
	go func() {
		if err := s.SyncSolarRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do ranking solar")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SolarRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_month":        s.lastSyncMonth,
		"last_sync_items":        s.lastSyncItems,
	}
}
