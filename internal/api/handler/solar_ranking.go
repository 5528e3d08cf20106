package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/pkg/apiErrors"
	"github.com/vfg2006/bill-insights-api/pkg/log"
)

// GetSolarRanking retorna o ranking gravado de desempenho solar de um bairro.
// A região pode vir como bucket pronto ou como lat/lon.
func GetSolarRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		bucket := query.Get("bucket")
		if bucket == "" && query.Get("lat") != "" && query.Get("lon") != "" {
			lat, latErr := parseCoordinate(query.Get("lat"))
			lon, lonErr := parseCoordinate(query.Get("lon"))
			if latErr != nil || lonErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "lat/lon inválidos", nil)
				return
			}
			bucket = domain.LocationBucket(lat, lon, domain.CohortScopeNeighborhood)
		}

		response, err := service.GetSolarRanking(r.Context(), bucket, query.Get("month"))
		if err != nil {
			switch {
			case errors.Is(err, ranking.ErrMissingBucket):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, ranking.ErrInvalidMonth):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, ranking.ErrRankingUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrCommunication, err.Error(), nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking solar")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking solar", nil)
			}
			return
		}

		if response == nil || len(response.Ranking) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func parseCoordinate(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value < -180 || value > 180 {
		return 0, errors.Errorf("coordenada fora do intervalo: %v", value)
	}
	return value, nil
}
