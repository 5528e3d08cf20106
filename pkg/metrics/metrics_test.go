package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		IncForecast(ForecastSkipped)
		IncInsight("info")
	})
}

func TestMetricsAfterInit(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(forecastTotal.WithLabelValues(ForecastCacheHit))
	IncForecast(ForecastCacheHit)
	assert.Equal(t, before+1, testutil.ToFloat64(forecastTotal.WithLabelValues(ForecastCacheHit)))

	ObserveAnalysis("", 150*time.Millisecond)
	ObserveHTTP(http.MethodPost, http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "billinsights_analysis_total"))
}
