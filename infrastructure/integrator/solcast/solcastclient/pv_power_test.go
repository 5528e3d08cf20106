package solcastclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	solcastdomain "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/domain"
	"github.com/vfg2006/bill-insights-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		Solcast: config.Solcast{
			BaseURL: srv.URL,
			Timeout: 2 * time.Second,
		},
	})
}

func testParams() PVPowerParams {
	return PVPowerParams{
		Latitude:   -23.5505,
		Longitude:  -46.6333,
		CapacityKW: 5,
		Start:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		APIKey:     "chave-teste",
	}
}

func TestSolcastClient_GetForecasts(t *testing.T) {
	var received *http.Request

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		received = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forecasts":[
			{"period_end":"2024-01-02T12:00:00Z","period":"PT30M","pv_estimate":2.5},
			{"period_end":"2024-01-02T12:30:00Z","period":"PT30M","pv_estimate":3}
		]}`))
	})

	resp, err := client.GetForecasts(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, resp.Forecasts, 2)
	assert.Equal(t, 2.5, resp.Forecasts[0].PVEstimate)
	assert.Equal(t, "PT30M", resp.Forecasts[1].Period)

	require.NotNil(t, received)
	assert.Equal(t, "/pv_power/forecasts", received.URL.Path)

	query := received.URL.Query()
	assert.Equal(t, "-23.5505", query.Get("latitude"))
	assert.Equal(t, "-46.6333", query.Get("longitude"))
	assert.Equal(t, "5", query.Get("capacity"))
	assert.Equal(t, "2024-01-01T00:00:00Z", query.Get("start"))
	assert.Equal(t, "2024-02-01T00:00:00Z", query.Get("end"))
	assert.Equal(t, "json", query.Get("format"))
	assert.Equal(t, "chave-teste", query.Get("api_key"))
}

func TestSolcastClient_GetEstimatedActuals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pv_power/estimated_actuals", r.URL.Path)
		_, _ = w.Write([]byte(`{"estimated_actuals":[{"period_end":"2024-01-01T10:00:00Z","period":"PT30M","pv_estimate":1.25}]}`))
	})

	resp, err := client.GetEstimatedActuals(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, resp.EstimatedActuals, 1)
	assert.Equal(t, 1.25, resp.EstimatedActuals[0].PVEstimate)
	assert.True(t, resp.EstimatedActuals[0].PeriodEnd.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestSolcastClient_Errors(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		wantAPIError  bool
		wantStatus    int
		wantMessage   string
		wantTemporary bool
	}{
		{
			name: "Chave inválida retorna APIError com mensagem do provedor",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"response_status":{"error_code":"Unauthorized","message":"Invalid API key"}}`))
			},
			wantAPIError: true,
			wantStatus:   http.StatusUnauthorized,
			wantMessage:  "Invalid API key",
		},
		{
			name: "Limite de requisições é temporário",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantAPIError:  true,
			wantStatus:    http.StatusTooManyRequests,
			wantTemporary: true,
		},
		{
			name: "Corpo inválido retorna erro de decodificação",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"forecasts":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			resp, err := client.GetForecasts(context.Background(), testParams())
			require.Error(t, err)
			assert.Nil(t, resp)

			var apiErr *solcastdomain.APIError
			if !tt.wantAPIError {
				assert.NotErrorAs(t, err, &apiErr)
				return
			}

			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantTemporary, apiErr.Temporary())
		})
	}
}

func TestSolcastClient_ContextCancelado(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetForecasts(ctx, testParams())
	assert.ErrorIs(t, err, context.Canceled)
}
