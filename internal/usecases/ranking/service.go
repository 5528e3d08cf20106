package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/bill-insights-api/infrastructure/repository"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type RankingService interface {
	GetSolarRanking(ctx context.Context, bucket string, month string) (*domain.SolarRankingResponse, error)
	ComparePeers(ctx context.Context, subject domain.PeerSubject, query domain.CohortQuery) *domain.PeerComparison
}

type SolarRankingService struct {
	SolarRankingRepository repository.SolarRankingRepository
	Cohort                 CohortProvider
	now                    func() time.Time
}

// NewSolarRankingService cria o serviço de ranking. O repositório pode ser nil quando o banco está desabilitado.
func NewSolarRankingService(solarRankingRepository repository.SolarRankingRepository, cohort CohortProvider) *SolarRankingService {
	return &SolarRankingService{
		SolarRankingRepository: solarRankingRepository,
		Cohort:                 cohort,
		now:                    time.Now,
	}
}

// GetSolarRanking retorna o ranking gravado de uma região. Sem mês, usa o mês anterior.
func (s *SolarRankingService) GetSolarRanking(ctx context.Context, bucket string, month string) (*domain.SolarRankingResponse, error) {
	if s.SolarRankingRepository == nil {
		return nil, ErrRankingUnavailable
	}
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	if month == "" {
		month = utils.PreviousMonth(s.now())
	} else if _, err := utils.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}

	ranking, err := s.SolarRankingRepository.GetRanking(ctx, bucket, month)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

// ComparePeers compara o usuário com o grupo de referência. Falhas do provedor do grupo
// são registradas e resultam em comparação ausente.
func (s *SolarRankingService) ComparePeers(ctx context.Context, subject domain.PeerSubject, query domain.CohortQuery) *domain.PeerComparison {
	if s.Cohort == nil {
		return nil
	}

	logger := log.ForContext(ctx).WithField("account_id", subject.ID)

	cohort, err := s.Cohort.ListCohort(ctx, query)
	if err != nil {
		logger.WithError(err).Warn("Falha ao carregar o grupo de referência, seguindo sem comparação")
		return nil
	}

	comparison := Compare(subject, cohort)

	logger.WithFields(log.Fields{
		"solar_rank":  comparison.Rank,
		"solar_total": comparison.Total,
		"solar_score": comparison.Score,
	}).Debug("Comparação com vizinhos concluída")

	return &comparison
}
