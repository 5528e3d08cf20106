package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bill-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

// expectedYieldPerKW é a geração mensal de referência por kW instalado quando não há previsão gravada
const expectedYieldPerKW = 150.0

// CohortRepository monta o grupo de comparação a partir das análises gravadas na mesma região.
// Análises anônimas ficam de fora.
type CohortRepository struct {
	conn postgres.Queryer
}

func NewCohortRepository(conn postgres.Queryer) *CohortRepository {
	return &CohortRepository{
		conn: conn,
	}
}

func (r *CohortRepository) ListCohort(ctx context.Context, query domain.CohortQuery) ([]domain.RankingEntry, error) {
	scope := query.Scope
	if !scope.Valid() {
		scope = domain.CohortScopeNeighborhood
	}

	bucketColumn := "a.neighborhood_bucket"
	if scope == domain.CohortScopeCity {
		bucketColumn = "a.city_bucket"
	}
	bucket := domain.LocationBucket(query.Latitude, query.Longitude, scope)

	queryBuilder := squirrel.
		Select(
			"DISTINCT ON (a.account_id) a.account_id",
			"a.customer_name",
			"a.generation",
			"a.total_forecast",
			"a.system_size_kw",
			bucketColumn,
		).
		From(analysisTable).
		Where(squirrel.Eq{bucketColumn: bucket}).
		Where(squirrel.NotEq{"a.account_id": ""}).
		Where(squirrel.Gt{"a.generation": 0}).
		OrderBy("a.account_id", "a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if query.Month != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.month": query.Month})
	}
	if query.ExcludeAccountID != "" {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"a.account_id": query.ExcludeAccountID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RankingEntry, 0)
	for rows.Next() {
		var (
			entry         domain.RankingEntry
			totalForecast float64
		)

		err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.ActualGeneration,
			&totalForecast,
			&entry.SystemSizeKW,
			&entry.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear integrante do grupo: %w", err)
		}

		entry.ExpectedGeneration = totalForecast
		if entry.ExpectedGeneration <= 0 {
			entry.ExpectedGeneration = entry.SystemSizeKW * expectedYieldPerKW
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
