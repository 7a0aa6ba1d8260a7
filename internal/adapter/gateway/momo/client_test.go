package momo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/adapter/gateway/momo"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*momo.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger, _ := zap.NewProduction()
	client, err := momo.NewClient(&config.Gateway{
		BaseURL: server.URL,
		APIKey:  "test-key",
	}, logger)
	require.NoError(t, err)
	return client, server
}

func collectionRequest() port.CollectionRequest {
	return port.CollectionRequest{
		Amount:      decimal.MustParse("1000"),
		Currency:    "KES",
		PayerMSISDN: "0712345678",
		ExternalID:  "ext-1",
		CallbackURL: "https://pay.example.com/api/v1/payments/webhook",
	}
}

func TestClient_RequestCollection(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/collections", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ext-1", body["externalId"])
			assert.Equal(t, "1000", body["amount"])
			assert.Equal(t, "KES", body["currency"])
			// the client normalizes the msisdn before submitting
			assert.Equal(t, "254712345678", body["msisdn"])

			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{"referenceId": "REF-1"})
		})

		ref, err := client.RequestCollection(context.Background(), collectionRequest())
		assert.NoError(t, err)
		assert.Equal(t, "REF-1", ref)
	})

	t.Run("duplicate external id resolves existing reference", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost:
				w.WriteHeader(http.StatusConflict)
			case r.Method == http.MethodGet:
				assert.Equal(t, "/v1/collections/external/ext-1", r.URL.Path)
				_ = json.NewEncoder(w).Encode(map[string]string{"referenceId": "REF-EXISTING"})
			}
		})

		ref, err := client.RequestCollection(context.Background(), collectionRequest())
		assert.NoError(t, err)
		assert.Equal(t, "REF-EXISTING", ref)
	})

	t.Run("rejected payload", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})

		_, err := client.RequestCollection(context.Background(), collectionRequest())
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("provider outage", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.RequestCollection(context.Background(), collectionRequest())
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})

	t.Run("bad msisdn never reaches the provider", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request to provider")
		})

		req := collectionRequest()
		req.PayerMSISDN = "12345"
		_, err := client.RequestCollection(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("zero amount never reaches the provider", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request to provider")
		})

		req := collectionRequest()
		req.Amount = decimal.Zero
		_, err := client.RequestCollection(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestClient_RequestDisbursement(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/disbursements", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ORDER-10-RESTAURANT", body["externalId"])

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"referenceId": "PAYOUT-REF"})
	})

	ref, err := client.RequestDisbursement(context.Background(), port.DisbursementRequest{
		Amount:      decimal.MustParse("750"),
		Currency:    "KES",
		PayeeMSISDN: "254722000111",
		ExternalID:  domain.DisbursementExternalID(10, domain.RecipientRestaurant),
	})
	assert.NoError(t, err)
	assert.Equal(t, "PAYOUT-REF", ref)
}

func TestClient_QueryStatus(t *testing.T) {
	t.Run("terminal result", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transactions/REF-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"referenceId":            "REF-1",
				"status":                 "SUCCESSFUL",
				"amount":                 "1000",
				"currency":               "KES",
				"financialTransactionId": "FT-99",
			})
		})

		result, err := client.QueryStatus(context.Background(), "REF-1")
		require.NoError(t, err)
		assert.Equal(t, "REF-1", result.ProviderRef)
		assert.Equal(t, domain.TransactionStatusSuccessful, result.Status)
		assert.True(t, result.Amount.Cmp(decimal.MustParse("1000")) == 0)
		assert.Equal(t, "FT-99", result.FinancialTxID)
	})

	t.Run("provider statuses map onto transaction statuses", func(t *testing.T) {
		type statusTest struct {
			provider string
			expected domain.TransactionStatus
		}
		tests := []statusTest{
			{provider: "SUCCESSFUL", expected: domain.TransactionStatusSuccessful},
			{provider: "FAILED", expected: domain.TransactionStatusFailed},
			{provider: "REJECTED", expected: domain.TransactionStatusFailed},
			{provider: "EXPIRED", expected: domain.TransactionStatusExpired},
			{provider: "TIMEOUT", expected: domain.TransactionStatusExpired},
			{provider: "PENDING", expected: domain.TransactionStatusPending},
			{provider: "PROCESSING", expected: domain.TransactionStatusPending},
		}

		for _, test := range tests {
			t.Run(test.provider, func(t *testing.T) {
				client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					_ = json.NewEncoder(w).Encode(map[string]string{
						"referenceId": "REF-1",
						"status":      test.provider,
					})
				})

				result, err := client.QueryStatus(context.Background(), "REF-1")
				require.NoError(t, err)
				assert.Equal(t, test.expected, result.Status)
			})
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.QueryStatus(context.Background(), "REF-GHOST")
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestClient_CircuitBreaker(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	})

	// enough consecutive failures trip the breaker
	for i := 0; i < 5; i++ {
		_, err := client.QueryStatus(context.Background(), "REF-1")
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	}

	served := requests
	_, err := client.QueryStatus(context.Background(), "REF-1")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	// the open breaker fails fast without touching the provider
	assert.Equal(t, served, requests)
}
