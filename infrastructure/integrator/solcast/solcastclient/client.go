package solcastclient

import (
	"context"
	"net/http"
	"time"

	solcastdomain "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/domain"
	"github.com/vfg2006/bill-insights-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	GetEstimatedActuals(ctx context.Context, params PVPowerParams) (*solcastdomain.EstimatedActualsResponse, error)
	GetForecasts(ctx context.Context, params PVPowerParams) (*solcastdomain.ForecastsResponse, error)
}

type SolcastClient struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// NewClient cria um cliente HTTP da Solcast com o timeout configurado
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Solcast.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &SolcastClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Solcast.BaseURL,
		timeout: timeout,
	}
}
