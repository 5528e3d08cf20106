package solcastclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	solcastdomain "github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	estimatedActualsPath = "/pv_power/estimated_actuals"
	forecastsPath        = "/pv_power/forecasts"

	maxErrorBodyBytes = 4 << 10
)

// PVPowerParams são os parâmetros comuns às consultas de potência fotovoltaica
type PVPowerParams struct {
	Latitude   float64
	Longitude  float64
	CapacityKW float64
	Start      time.Time
	End        time.Time
	APIKey     string
}

func (c *SolcastClient) GetEstimatedActuals(ctx context.Context, params PVPowerParams) (*solcastdomain.EstimatedActualsResponse, error) {
	var response solcastdomain.EstimatedActualsResponse
	if err := c.get(ctx, estimatedActualsPath, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *SolcastClient) GetForecasts(ctx context.Context, params PVPowerParams) (*solcastdomain.ForecastsResponse, error) {
	var response solcastdomain.ForecastsResponse
	if err := c.get(ctx, forecastsPath, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *SolcastClient) get(ctx context.Context, resource string, params PVPowerParams, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	query.Set("capacity", strconv.FormatFloat(params.CapacityKW, 'f', -1, 64))
	query.Set("start", params.Start.UTC().Format(time.RFC3339))
	query.Set("end", params.End.UTC().Format(time.RFC3339))
	query.Set("format", "json")
	query.Set("api_key", params.APIKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta de %s: %w", resource, err)
	}

	return nil
}

func newAPIError(resp *http.Response) error {
	apiErr := &solcastdomain.APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var status solcastdomain.ResponseStatus
	if err := json.Unmarshal(body, &status); err == nil {
		apiErr.ErrorCode = status.ResponseStatus.ErrorCode
		apiErr.Message = status.ResponseStatus.Message
	}

	return apiErr
}
