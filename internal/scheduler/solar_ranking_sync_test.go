package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	solcastmocks "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/mocks"
	"github.com/vfg2006/bill-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository) *SolarRankingSyncService {
	return &SolarRankingSyncService{
		analysisRepo: analysisRepo,
		rankingRepo:  rankingRepo,
		config:       SolarRankingSyncConfig{CronSchedule: "0 6 * * *", SyncEnabled: true},
		now: func() time.Time {
			return time.Date(2024, 4, 10, 6, 0, 0, 0, time.UTC)
		},
	}
}

func TestSolarRankingSyncService_SyncSolarRanking(t *testing.T) {
	month := "03-2024"

	records := []*domain.AnalysisRecord{
		{AccountID: "ACC3", CustomerName: "Carla", Generation: 500, TotalForecast: 1000, NeighborhoodBucket: "nb:A"},
		{AccountID: "ACC1", CustomerName: "Ana", Generation: 320, TotalForecast: 375, NeighborhoodBucket: "nb:A"},
		{AccountID: "ACC2", CustomerName: "Bruno", Generation: 700, SystemSizeKW: 5, NeighborhoodBucket: "nb:A"},
		{AccountID: "ACC4", CustomerName: "Davi", Generation: 100, TotalForecast: 100, NeighborhoodBucket: "nb:B"},
		{AccountID: "ACC5", CustomerName: "Sem local", Generation: 100, TotalForecast: 100},
	}

	tests := []struct {
		name     string
		setup    func(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository)
		saveErr  error
		wantErr  bool
		validate func(t *testing.T, saved []*domain.SolarRankingItem)
	}{
		{
			name: "Ranking por bairro com variação de posição",
			setup: func(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository) {
				analysisRepo.EXPECT().ListSolarByMonth(gomock.Any(), month).Return(records, nil)

				rankingRepo.EXPECT().
					GetByBuckets(gomock.Any(), []string{"nb:A", "nb:B"}, month).
					Return([]*domain.SolarRankingItem{
						{AccountID: "ACC1", Bucket: "nb:A", Month: month, Position: 1},
						{AccountID: "ACC3", Bucket: "nb:A", Month: month, Position: 3},
					}, nil)
			},
			validate: func(t *testing.T, saved []*domain.SolarRankingItem) {
				require.Len(t, saved, 4)

				// nb:A: Bruno 93.33, Ana 85.33, Carla 50
				assert.Equal(t, "ACC2", saved[0].AccountID)
				assert.Equal(t, 1, saved[0].Position)
				assert.Equal(t, 93.33, saved[0].Score)
				assert.Equal(t, 750.0, saved[0].ExpectedGeneration)
				assert.Equal(t, 0, saved[0].PreviousPosition)
				assert.Equal(t, 0, saved[0].PositionChange)

				assert.Equal(t, "ACC1", saved[1].AccountID)
				assert.Equal(t, "Ana", saved[1].CustomerName)
				assert.Equal(t, 2, saved[1].Position)
				assert.Equal(t, 1, saved[1].PreviousPosition)
				assert.Equal(t, -1, saved[1].PositionChange)

				assert.Equal(t, "ACC3", saved[2].AccountID)
				assert.Equal(t, 3, saved[2].Position)
				assert.Equal(t, 0, saved[2].PositionChange)

				assert.Equal(t, "ACC4", saved[3].AccountID)
				assert.Equal(t, "nb:B", saved[3].Bucket)
				assert.Equal(t, 1, saved[3].Position)

				for _, item := range saved {
					assert.Equal(t, month, item.Month)
				}
			},
		},
		{
			name: "Sem análises no mês não grava nada",
			setup: func(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository) {
				analysisRepo.EXPECT().ListSolarByMonth(gomock.Any(), month).Return(nil, nil)
				rankingRepo.EXPECT().GetByBuckets(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "Erro ao buscar análises",
			setup: func(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository) {
				analysisRepo.EXPECT().ListSolarByMonth(gomock.Any(), month).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "Erro ao gravar o ranking",
			setup: func(analysisRepo *mocks.MockAnalysisRepository, rankingRepo *mocks.MockSolarRankingRepository) {
				analysisRepo.EXPECT().ListSolarByMonth(gomock.Any(), month).Return(records[:1], nil)
				rankingRepo.EXPECT().GetByBuckets(gomock.Any(), []string{"nb:A"}, month).Return(nil, nil)
			},
			saveErr: errors.New("deadlock"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analysisRepo := mocks.NewMockAnalysisRepository(ctrl)
			rankingRepo := mocks.NewMockSolarRankingRepository(ctrl)
			tt.setup(analysisRepo, rankingRepo)

			var saved []*domain.SolarRankingItem
			if tt.validate != nil || tt.saveErr != nil {
				rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, items []*domain.SolarRankingItem) error {
						saved = items
						return tt.saveErr
					})
			}

			service := newTestSyncService(analysisRepo, rankingRepo)
			err := service.SyncSolarRanking(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.validate != nil {
				tt.validate(t, saved)
			}

			status := service.GetStatus()
			assert.Equal(t, month, status["last_sync_month"])
			assert.Equal(t, false, status["sync_running"])
		})
	}
}

func TestSolarRankingSyncService_Start(t *testing.T) {
	cfg := &config.Config{}
	cfg.SolarRankingSync.CronSchedule = "0 6 * * *"
	cfg.SolarRankingSync.SyncEnabled = false

	service := NewSolarRankingSyncService(nil, nil, cfg)
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestForecastCachePurgeService_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := solcastmocks.NewMockSolcastIntegrator(ctrl)
	integrator.EXPECT().PurgeExpired().Return(3)

	cfg := &config.Config{}
	cfg.ForecastCachePurge.CronSchedule = "*/30 * * * *"
	cfg.ForecastCachePurge.Enabled = true

	service := NewForecastCachePurgeService(integrator, cfg)

	assert.Equal(t, 3, service.Purge())
	assert.Equal(t, 3, service.GetStatus()["last_purged_items"])
}
