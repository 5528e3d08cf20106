package handler

import (
	"net/http"

	"github.com/vfg2006/bill-insights-api/internal/api/handler/router"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
	"github.com/vfg2006/bill-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Analyses(service insighting.Insighter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bills/insights",
			Method:      http.MethodPost,
			Handler:     CreateAnalysis(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analyses/:id",
			Method:      http.MethodGet,
			Handler:     GetAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/analyses",
			Method:      http.MethodGet,
			Handler:     ListAccountAnalyses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SolarRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/solar/ranking",
			Method:      http.MethodGet,
			Handler:     GetSolarRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
