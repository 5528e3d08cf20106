package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/bill-insights-api/pkg/apiErrors"
	"github.com/vfg2006/bill-insights-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeSolarRanking       = "solar-ranking"
	CronJobTypeForecastCachePurge = "forecast-cache-purge"
	CronJobTypeAll                = "all"
)

// CronJob é um agendador que pode ser disparado manualmente e informar seu status
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SolarRankingSyncService   CronJob
	ForecastCachePurgeService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.SolarRankingSyncService != nil {
		jobs[CronJobTypeSolarRanking] = s.SolarRankingSyncService
	}
	if s.ForecastCachePurgeService != nil {
		jobs[CronJobTypeForecastCachePurge] = s.ForecastCachePurgeService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		case CronJobTypeSolarRanking, CronJobTypeForecastCachePurge:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de cron não disponível: "+cronType, nil)
				return
			}
			job.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: solar-ranking, forecast-cache-purge, all", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
