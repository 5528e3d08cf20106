// Package metrics expõe os contadores e histogramas Prometheus do serviço
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "billinsights_"

	ResultSuccess    = "success"
	ResultError      = "error"
	ResultIncomplete = "incomplete"

	ForecastFetched     = "fetched"
	ForecastCacheHit    = "cache_hit"
	ForecastUnavailable = "unavailable"
	ForecastSkipped     = "skipped"
)

var (
	registerOnce sync.Once

	analysisTotal   *prometheus.CounterVec
	analysisLatency *prometheus.HistogramVec

	forecastTotal   *prometheus.CounterVec
	forecastLatency prometheus.Histogram

	insightsEmitted *prometheus.CounterVec

	rankingSyncTotal *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
)

// Init registra as métricas no registry padrão. Chamadas repetidas são ignoradas.
func Init() {
	registerOnce.Do(func() {
		analysisTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "analysis_total",
				Help: "Total bill analyses by result",
			},
			[]string{"result"},
		)
		analysisLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "analysis_latency_seconds",
				Help:    "Bill analysis latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		forecastTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "forecast_requests_total",
				Help: "Solar forecast lookups by outcome",
			},
			[]string{"outcome"},
		)
		forecastLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "forecast_fetch_latency_seconds",
				Help:    "Solar provider round trip in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
			},
		)

		insightsEmitted = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "insights_emitted_total",
				Help: "Insights emitted by kind",
			},
			[]string{"kind"},
		)

		rankingSyncTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "solar_ranking_sync_total",
				Help: "Solar ranking snapshot runs by result",
			},
			[]string{"result"},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by method and status code",
			},
			[]string{"method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		)

		prometheus.MustRegister(
			analysisTotal,
			analysisLatency,
			forecastTotal,
			forecastLatency,
			insightsEmitted,
			rankingSyncTotal,
			httpRequests,
			httpLatency,
		)
	})
}

// Handler retorna o handler HTTP de exposição das métricas
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAnalysis registra o resultado e a duração de uma análise
func ObserveAnalysis(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if analysisTotal != nil {
		analysisTotal.WithLabelValues(result).Inc()
	}
	if analysisLatency != nil {
		analysisLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncForecast incrementa o contador de consultas de previsão solar
func IncForecast(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	if forecastTotal != nil {
		forecastTotal.WithLabelValues(outcome).Inc()
	}
}

// ObserveForecastFetch registra a duração de uma ida ao provedor solar
func ObserveForecastFetch(duration time.Duration) {
	if forecastLatency != nil {
		forecastLatency.Observe(duration.Seconds())
	}
}

// IncInsight incrementa o contador de insights emitidos
func IncInsight(kind string) {
	if insightsEmitted != nil {
		insightsEmitted.WithLabelValues(kind).Inc()
	}
}

// IncRankingSync incrementa o contador de execuções do ranking solar
func IncRankingSync(result string) {
	if rankingSyncTotal != nil {
		rankingSyncTotal.WithLabelValues(result).Inc()
	}
}

// ObserveHTTP registra uma requisição HTTP concluída
func ObserveHTTP(method string, statusCode int, duration time.Duration) {
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method).Observe(duration.Seconds())
	}
}
