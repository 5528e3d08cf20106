package insighting

import (
	"context"

	"github.com/vfg2006/bill-insights-api/infrastructure/repository"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Insighter é a porta usada pela API para criar e consultar análises
type Insighter interface {
	CreateAnalysis(ctx context.Context, payload []byte, opts domain.AnalysisOptions) (*domain.AnalysisResponse, error)
	GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	ListAccountAnalyses(ctx context.Context, accountID string, limit uint64) ([]*domain.AnalysisRecord, error)
}

type Service struct {
	engine             *Engine
	analysisRepository repository.AnalysisRepository
}

// NewService cria o serviço de análises. Sem repositório, as análises não são gravadas.
func NewService(engine *Engine, analysisRepository repository.AnalysisRepository) *Service {
	return &Service{
		engine:             engine,
		analysisRepository: analysisRepository,
	}
}

// CreateAnalysis analisa a conta e grava a ficha quando há banco. Uma falha ao gravar
// é registrada e a análise é devolvida sem id. Contas sem identificador são anônimas
// e não exigem acesso.
func (s *Service) CreateAnalysis(ctx context.Context, payload []byte, opts domain.AnalysisOptions) (*domain.AnalysisResponse, error) {
	analysis, err := s.engine.AnalyzePayload(ctx, payload, opts)
	if err != nil {
		return nil, err
	}

	accountID := analysis.Bill.AccountID
	if opts.Requester != nil && accountID != "" && !opts.Requester.CanAccess(accountID) {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": accountID,
			"user_id":    opts.Requester.UserID,
		}).Warn("Análise recusada para conta sem acesso")
		return nil, ErrAccountAccessDenied
	}

	response := &domain.AnalysisResponse{Bundle: analysis.Bundle}
	if s.analysisRepository == nil {
		return response, nil
	}

	logger := log.ForContext(ctx).WithField("account_id", analysis.Bill.AccountID)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar id da análise")
		return response, nil
	}

	record := NewAnalysisRecord(id, analysis)
	if err := s.analysisRepository.Save(ctx, record); err != nil {
		logger.WithError(err).Error("Erro ao gravar a análise, devolvendo resultado sem id")
		return response, nil
	}

	logger.WithField("analysis_id", id).Info("Análise gravada")

	response.ID = id
	return response, nil
}

func (s *Service) GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	if s.analysisRepository == nil {
		return nil, ErrPersistenceDisabled
	}

	record, err := s.analysisRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAnalysisNotFound
	}

	return record, nil
}

func (s *Service) ListAccountAnalyses(ctx context.Context, accountID string, limit uint64) ([]*domain.AnalysisRecord, error) {
	if s.analysisRepository == nil {
		return nil, ErrPersistenceDisabled
	}

	return s.analysisRepository.ListByAccount(ctx, accountID, limit)
}
