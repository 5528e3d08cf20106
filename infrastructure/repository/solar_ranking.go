// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/bill-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

//go:generate mockgen -source=solar_ranking.go -destination=mocks/mock_solar_ranking.go -package=mocks

const (
	solarRankingTable = "solar_ranking sr"
)

var solarRankingColumns = []string{
	"sr.id",
	"sr.account_id",
	"sr.bucket",
	"sr.month",
	"sr.customer_name",
	"sr.score",
	"sr.actual_generation",
	"sr.expected_generation",
	"sr.position",
	"sr.position_change",
	"sr.previous_position",
	"sr.created_at",
	"sr.updated_at",
}

type SolarRankingRepository interface {
	GetRanking(ctx context.Context, bucket string, month string) (*domain.SolarRankingResponse, error)
	GetByAccountID(ctx context.Context, accountID string, bucket string, month string) (*domain.SolarRankingItem, error)
	GetByBuckets(ctx context.Context, buckets []string, month string) ([]*domain.SolarRankingItem, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.SolarRankingItem) error
}

type solarRankingRepository struct {
	conn postgres.Queryer
}

func NewSolarRankingRepository(conn postgres.Queryer) SolarRankingRepository {
	return &solarRankingRepository{
		conn: conn,
	}
}

func (r *solarRankingRepository) GetRanking(ctx context.Context, bucket string, month string) (*domain.SolarRankingResponse, error) {
	// Construir a query base
	queryBuilder := squirrel.
		Select(solarRankingColumns...).
		From(solarRankingTable).
		Where(squirrel.Eq{"sr.bucket": bucket, "sr.month": month}).
		OrderBy("sr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.SolarRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanSolarRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.SolarRankingResponse{
		Bucket:     bucket,
		Month:      month,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *solarRankingRepository) GetByAccountID(ctx context.Context, accountID string, bucket string, month string) (*domain.SolarRankingItem, error) {
	query, args, err := squirrel.
		Select(solarRankingColumns...).
		From(solarRankingTable).
		Where(squirrel.Eq{"sr.account_id": accountID, "sr.bucket": bucket, "sr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	ranking, err := scanSolarRankingItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

// GetByBuckets carrega de uma vez as posições já gravadas de vários bairros
func (r *solarRankingRepository) GetByBuckets(ctx context.Context, buckets []string, month string) ([]*domain.SolarRankingItem, error) {
	if len(buckets) == 0 {
		return []*domain.SolarRankingItem{}, nil
	}

	query, args, err := squirrel.
		Select(solarRankingColumns...).
		From(solarRankingTable).
		Where(squirrel.Eq{"sr.month": month}).
		Where(squirrel.Expr("sr.bucket = ANY(?)", pq.Array(buckets))).
		OrderBy("sr.bucket ASC", "sr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.SolarRankingItem, 0)
	for rows.Next() {
		item, err := scanSolarRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *solarRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.SolarRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("solar_ranking").
		Columns(
			"account_id",
			"bucket",
			"month",
			"customer_name",
			"score",
			"actual_generation",
			"expected_generation",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.AccountID,
			ranking.Bucket,
			ranking.Month,
			ranking.CustomerName,
			ranking.Score,
			ranking.ActualGeneration,
			ranking.ExpectedGeneration,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (account_id, bucket, month) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			score = EXCLUDED.score,
			actual_generation = EXCLUDED.actual_generation,
			expected_generation = EXCLUDED.expected_generation,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// scanner cobre *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanSolarRankingItem(row scanner) (*domain.SolarRankingItem, error) {
	item := &domain.SolarRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.AccountID,
		&item.Bucket,
		&item.Month,
		&item.CustomerName,
		&item.Score,
		&item.ActualGeneration,
		&item.ExpectedGeneration,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
