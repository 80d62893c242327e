package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// HTTPClient talks to a matricheckd instance. HTTP status is advisory;
// the payload is the contract, so bodies are returned as-is even on
// non-2xx responses and only connection-level failures become errors.
type HTTPClient struct {
	httpClient *resty.Client
	logger     zerolog.Logger
}

// NewHTTPClient builds a client for baseURL. Retries stay disabled: a
// failed call is reported once and never replayed.
func NewHTTPClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{
		httpClient: client,
		logger:     logger,
	}
}

func (c *HTTPClient) call(ctx context.Context, name string, body any) ([]byte, error) {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post("/rpc/" + name)
	if err != nil {
		c.logger.Error().Err(err).Str("call", name).Msg("bridge call failed")
		return nil, fmt.Errorf("bridge %s: %w", name, err)
	}
	c.logger.Debug().
		Str("call", name).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("bridge call completed")
	return resp.Body(), nil
}

func (c *HTTPClient) AssessRisk(ctx context.Context, req AssessRequest) ([]byte, error) {
	return c.call(ctx, CallAssessRisk, req)
}

func (c *HTTPClient) GeneratePatientID(ctx context.Context) ([]byte, error) {
	return c.call(ctx, CallGeneratePatientID, nil)
}

func (c *HTTPClient) SaveAssessment(ctx context.Context, req RecordRequest) ([]byte, error) {
	return c.call(ctx, CallSaveAssessment, req)
}

func (c *HTTPClient) GeneratePDFReport(ctx context.Context, req RecordRequest) ([]byte, error) {
	return c.call(ctx, CallGeneratePDFReport, req)
}

func (c *HTTPClient) LoadHistory(ctx context.Context) ([]byte, error) {
	return c.call(ctx, CallLoadHistory, nil)
}

func (c *HTTPClient) DashboardStats(ctx context.Context) ([]byte, error) {
	return c.call(ctx, CallDashboardStats, nil)
}

// Ping checks the daemon health endpoint once at startup.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.httpClient.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("bridge ping: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("bridge ping: status %d", resp.StatusCode())
	}
	return nil
}
