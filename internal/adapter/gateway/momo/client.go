package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Client talks to the mobile-money provider's REST API. All amounts travel
// as fixed-point decimal strings. A circuit breaker guards the provider so a
// hard outage fails fast instead of piling up timeouts.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*gatewayResponse]
	logger  *zap.Logger
}

type gatewayResponse struct {
	status int
	body   []byte
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	var st gobreaker.Settings
	st.Name = "momo"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker[*gatewayResponse](st),
		logger:  log,
	}, nil
}

type transferRequest struct {
	ExternalID  string `json:"externalId"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Msisdn      string `json:"msisdn"`
	CallbackURL string `json:"callbackUrl"`
}

type transferResponse struct {
	ReferenceID string `json:"referenceId"`
}

type statusResponse struct {
	ReferenceID            string `json:"referenceId"`
	Status                 string `json:"status"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	FinancialTransactionID string `json:"financialTransactionId"`
	Reason                 string `json:"reason"`
}

func (c *Client) RequestCollection(ctx context.Context, req port.CollectionRequest) (string, error) {
	msisdn, err := domain.SanitizeMSISDN(req.PayerMSISDN)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, "/v1/collections", transferRequest{
		ExternalID:  req.ExternalID,
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Msisdn:      msisdn,
		CallbackURL: req.CallbackURL,
	})
}

func (c *Client) RequestDisbursement(ctx context.Context, req port.DisbursementRequest) (string, error) {
	msisdn, err := domain.SanitizeMSISDN(req.PayeeMSISDN)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, "/v1/disbursements", transferRequest{
		ExternalID:  req.ExternalID,
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Msisdn:      msisdn,
		CallbackURL: req.CallbackURL,
	})
}

// submit posts one transfer. On 409 the provider already holds an active
// request for this external id; the existing reference is looked up and
// returned instead of an error.
func (c *Client) submit(ctx context.Context, path string, body transferRequest) (string, error) {
	if body.Amount == "" || body.Amount == "0" {
		return "", domain.ErrValidation
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal transfer request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}

	switch resp.status {
	case http.StatusAccepted, http.StatusCreated, http.StatusOK:
		var result transferResponse
		if err := json.Unmarshal(resp.body, &result); err != nil {
			return "", fmt.Errorf("decode transfer response: %w", err)
		}
		return result.ReferenceID, nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "", domain.ErrValidation
	case http.StatusConflict:
		c.logger.Debug("duplicate external id, resolving existing reference",
			zap.String("externalId", body.ExternalID))
		return c.lookupByExternalID(ctx, path, body.ExternalID)
	default:
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrGatewayUnavailable, resp.status)
	}
}

func (c *Client) lookupByExternalID(ctx context.Context, path string, externalID string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, path+"/external/"+externalID, nil)
	if err != nil {
		return "", err
	}
	if resp.status != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d on duplicate lookup",
			domain.ErrGatewayUnavailable, resp.status)
	}

	var result transferResponse
	if err := json.Unmarshal(resp.body, &result); err != nil {
		return "", fmt.Errorf("decode duplicate lookup response: %w", err)
	}
	return result.ReferenceID, nil
}

func (c *Client) QueryStatus(ctx context.Context, providerRef string) (*port.ProviderResult, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/transactions/"+providerRef, nil)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrDataNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status %d on query", domain.ErrGatewayUnavailable, resp.status)
	}

	var result statusResponse
	if err := json.Unmarshal(resp.body, &result); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	amount := decimal.Zero
	if result.Amount != "" {
		amount, err = decimal.Parse(result.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse status amount: %w", err)
		}
	}

	return &port.ProviderResult{
		ProviderRef:   result.ReferenceID,
		Status:        mapProviderStatus(result.Status),
		Amount:        amount,
		Currency:      result.Currency,
		FinancialTxID: result.FinancialTransactionID,
		FailureReason: result.Reason,
		RawPayload:    resp.body,
	}, nil
}

func (c *Client) do(ctx context.Context, method string, path string, payload []byte) (*gatewayResponse, error) {
	resp, err := c.breaker.Execute(func() (*gatewayResponse, error) {
		var body *bytes.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		} else {
			body = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, fmt.Errorf("error on %s %s: %w", method, path, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request error %s %s: %w", method, path, err)
		}
		defer func() { _ = resp.Body.Close() }()

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return nil, fmt.Errorf("read response %s %s: %w", method, path, err)
		}

		// a 5xx counts against the breaker, client errors do not
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("provider error status %d on %s %s", resp.StatusCode, method, path)
		}

		return &gatewayResponse{status: resp.StatusCode, body: buf.Bytes()}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("gateway circuit open", zap.String("path", path))
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err)
	}
	return resp, nil
}

func mapProviderStatus(status string) domain.TransactionStatus {
	switch status {
	case "SUCCESSFUL":
		return domain.TransactionStatusSuccessful
	case "FAILED", "REJECTED":
		return domain.TransactionStatusFailed
	case "EXPIRED", "TIMEOUT":
		return domain.TransactionStatusExpired
	default:
		return domain.TransactionStatusPending
	}
}
