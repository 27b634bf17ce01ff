package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExchangeTestServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestExchangeGetRates(t *testing.T) {
	srv := newExchangeTestServer(t, `{
		"result": "success",
		"base_code": "USD",
		"time_last_update_unix": 1767225600,
		"conversion_rates": {"USD": 1, "CNY": 7.24, "EUR": 0.92}
	}`, http.StatusOK)
	defer srv.Close()

	svc := &ExchangeService{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Client:  srv.Client(),
		Logger:  zap.NewNop(),
	}

	rates, err := svc.GetRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.Equal(t, 7.24, rates.Rates["CNY"])
}

func TestExchangeConvert(t *testing.T) {
	srv := newExchangeTestServer(t, `{
		"result": "success",
		"base_code": "USD",
		"time_last_update_unix": 1767225600,
		"conversion_rates": {"USD": 1, "CNY": 7.24}
	}`, http.StatusOK)
	defer srv.Close()

	svc := &ExchangeService{BaseURL: srv.URL, APIKey: "k", Client: srv.Client(), Logger: zap.NewNop()}

	conv, err := svc.Convert(context.Background(), 100, "USD", "cny")
	require.NoError(t, err)
	assert.Equal(t, 724.0, conv.Amount)
	assert.Equal(t, "CNY", conv.To)
	assert.Equal(t, 7.24, conv.Rate)
}

func TestExchangeConvert_UnsupportedCurrency(t *testing.T) {
	srv := newExchangeTestServer(t, `{
		"result": "success",
		"base_code": "USD",
		"time_last_update_unix": 1767225600,
		"conversion_rates": {"USD": 1}
	}`, http.StatusOK)
	defer srv.Close()

	svc := &ExchangeService{BaseURL: srv.URL, APIKey: "k", Client: srv.Client(), Logger: zap.NewNop()}

	_, err := svc.Convert(context.Background(), 100, "USD", "XYZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestExchangeGetRates_UpstreamFailure(t *testing.T) {
	srv := newExchangeTestServer(t, `{"result":"error"}`, http.StatusOK)
	defer srv.Close()

	svc := &ExchangeService{BaseURL: srv.URL, APIKey: "k", Client: srv.Client(), Logger: zap.NewNop()}

	_, err := svc.GetRates(context.Background(), "USD")
	require.Error(t, err)
}

func TestExchangeGetRates_BadStatus(t *testing.T) {
	srv := newExchangeTestServer(t, `{}`, http.StatusServiceUnavailable)
	defer srv.Close()

	svc := &ExchangeService{BaseURL: srv.URL, APIKey: "k", Client: srv.Client(), Logger: zap.NewNop()}

	_, err := svc.GetRates(context.Background(), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
