package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bill-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analysisTable = "analyses a"

	defaultAnalysisListLimit = 50
)

var analysisColumns = []string{
	"a.id",
	"a.account_id",
	"a.customer_name",
	"a.address",
	"a.month",
	"a.consumption",
	"a.generation",
	"a.savings",
	"a.neighborhood_rank",
	"a.top_generation",
	"a.missed_savings",
	"a.latitude",
	"a.longitude",
	"a.neighborhood_bucket",
	"a.city_bucket",
	"a.billing_mode",
	"a.system_size_kw",
	"a.total_forecast",
	"a.efficiency",
	"a.bundle",
	"a.created_at",
}

type AnalysisRepository interface {
	Save(ctx context.Context, record *domain.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.AnalysisRecord, error)
	ListSolarByMonth(ctx context.Context, month string) ([]*domain.AnalysisRecord, error)
}

type analysisRepository struct {
	conn postgres.Queryer
}

func NewAnalysisRepository(conn postgres.Queryer) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

func (r *analysisRepository) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	bundle, err := json.Marshal(record.Bundle)
	if err != nil {
		return fmt.Errorf("erro ao serializar o bundle da análise: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("analyses").
		Columns(
			"id",
			"account_id",
			"customer_name",
			"address",
			"month",
			"consumption",
			"generation",
			"savings",
			"neighborhood_rank",
			"top_generation",
			"missed_savings",
			"latitude",
			"longitude",
			"neighborhood_bucket",
			"city_bucket",
			"billing_mode",
			"system_size_kw",
			"total_forecast",
			"efficiency",
			"bundle",
		).
		Values(
			record.ID,
			record.AccountID,
			record.CustomerName,
			record.Address,
			record.Month,
			record.Consumption,
			record.Generation,
			record.Savings,
			record.NeighborhoodRank,
			record.TopGeneration,
			record.MissedSavings,
			record.Latitude,
			record.Longitude,
			record.NeighborhoodBucket,
			record.CityBucket,
			record.BillingMode,
			record.SystemSizeKW,
			record.TotalForecast,
			record.Efficiency,
			string(bundle),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir análise: %w", err)
	}

	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	query, args, err := squirrel.
		Select(analysisColumns...).
		From(analysisTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanAnalysis(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear análise: %w", err)
	}

	return record, nil
}

func (r *analysisRepository) ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.AnalysisRecord, error) {
	if limit == 0 {
		limit = defaultAnalysisListLimit
	}

	queryBuilder := squirrel.
		Select(analysisColumns...).
		From(analysisTable).
		Where(squirrel.Eq{"a.account_id": accountID}).
		OrderBy("a.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, queryBuilder)
}

// ListSolarByMonth retorna a última análise de cada conta identificada com geração solar no mês
func (r *analysisRepository) ListSolarByMonth(ctx context.Context, month string) ([]*domain.AnalysisRecord, error) {
	columns := append([]string{"DISTINCT ON (a.account_id) a.id"}, analysisColumns[1:]...)

	queryBuilder := squirrel.
		Select(columns...).
		From(analysisTable).
		Where(squirrel.Eq{"a.month": month}).
		Where(squirrel.NotEq{"a.account_id": ""}).
		Where(squirrel.Gt{"a.generation": 0}).
		OrderBy("a.account_id", "a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, queryBuilder)
}

func (r *analysisRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.AnalysisRecord, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AnalysisRecord, 0)
	for rows.Next() {
		record, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear análise: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func scanAnalysis(row scanner) (*domain.AnalysisRecord, error) {
	record := &domain.AnalysisRecord{}
	var bundle []byte

	err := row.Scan(
		&record.ID,
		&record.AccountID,
		&record.CustomerName,
		&record.Address,
		&record.Month,
		&record.Consumption,
		&record.Generation,
		&record.Savings,
		&record.NeighborhoodRank,
		&record.TopGeneration,
		&record.MissedSavings,
		&record.Latitude,
		&record.Longitude,
		&record.NeighborhoodBucket,
		&record.CityBucket,
		&record.BillingMode,
		&record.SystemSizeKW,
		&record.TotalForecast,
		&record.Efficiency,
		&bundle,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(bundle) > 0 {
		record.Bundle = &domain.InsightBundle{}
		if err := json.Unmarshal(bundle, record.Bundle); err != nil {
			return nil, fmt.Errorf("erro ao decodificar o bundle da análise %s: %w", record.ID, err)
		}
	}

	return record, nil
}
