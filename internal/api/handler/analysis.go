package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/validating"
	"github.com/vfg2006/bill-insights-api/pkg/apiErrors"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/middleware"
)

// SolcastAPIKeyHeader permite que o chamador informe a própria credencial do provedor solar
const SolcastAPIKeyHeader = "X-Solcast-Api-Key"

const maxAnalysesLimit = 200

// CreateAnalysis recebe o JSON extraído da conta e devolve o bundle de insights
func CreateAnalysis(service insighting.Insighter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		payload, err := readBody(w, r, cfg.Server.MaxBodyBytes)
		if err != nil {
			logger.WithError(err).Warn("analysis: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		opts, err := analysisOptions(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}
		opts.Requester = claims

		response, err := service.CreateAnalysis(r.Context(), payload, opts)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"analysis_id": response.ID,
			"insights":    len(response.Bundle.Insights),
		}).Info("analysis: análise concluída")

		writeJSON(w, r, http.StatusOK, response)
	}
}

// GetAnalysis retorna uma análise gravada
func GetAnalysis(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, err := service.GetAnalysis(r.Context(), id)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if !claims.CanAccess(record.AccountID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta análise", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, record)
	}
}

// ListAccountAnalyses retorna o histórico de análises de uma conta, da mais recente para a mais antiga
func ListAccountAnalyses(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if !claims.CanAccess(accountID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta conta", nil)
			return
		}

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxAnalysesLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 200", nil)
				return
			}
			limit = parsed
		}

		records, err := service.ListAccountAnalyses(r.Context(), accountID, limit)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}

func readBody(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo")
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, errors.New("corpo vazio")
	}

	return payload, nil
}

// analysisOptions monta as opções da análise. A credencial do cabeçalho tem prioridade sobre a configurada.
func analysisOptions(r *http.Request, cfg *config.Config) (domain.AnalysisOptions, error) {
	query := r.URL.Query()

	opts := domain.AnalysisOptions{
		SolarAPIKey:      r.Header.Get(SolcastAPIKeyHeader),
		SystemCapacityKW: cfg.Solcast.CapacityKW,
		CohortScope:      domain.CohortScope(cfg.Cohort.Scope),
	}
	if opts.SolarAPIKey == "" {
		opts.SolarAPIKey = cfg.Solcast.APIKey
	}

	if raw := query.Get("system_size_kw"); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil || size <= 0 {
			return opts, errors.Errorf("system_size_kw inválido: %q", raw)
		}
		opts.SystemCapacityKW = size
	}

	if raw := query.Get("scope"); raw != "" {
		scope := domain.CohortScope(raw)
		if !scope.Valid() {
			return opts, errors.Errorf("scope inválido: %q (use neighborhood ou city)", raw)
		}
		opts.CohortScope = scope
	}

	if raw := query.Get("compare"); raw != "" {
		compare, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errors.Errorf("compare inválido: %q", raw)
		}
		opts.SkipComparison = !compare
	}

	return opts, nil
}

func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var incomplete *validating.IncompleteBillError
	if errors.As(err, &incomplete) {
		logger.WithField("field", incomplete.Field).Warn("analysis: conta incompleta")
		apiErrors.WriteError(w, incomplete.Code, "Conta sem dados obrigatórios", map[string]string{
			"field":   incomplete.Field,
			"details": incomplete.Details,
		})
		return
	}

	var payloadErr *validating.PayloadError
	if errors.As(err, &payloadErr) {
		logger.Warn("analysis: payload fora do schema")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload da conta inválido", payloadErr.Details)
		return
	}

	switch {
	case errors.Is(err, insighting.ErrAnalysisNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Análise não encontrada", nil)
	case errors.Is(err, insighting.ErrAccountAccessDenied):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta conta", nil)
	case errors.Is(err, insighting.ErrPersistenceDisabled):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Persistência de análises desabilitada", nil)
	default:
		logger.Error("analysis: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a análise", nil)
	}
}
