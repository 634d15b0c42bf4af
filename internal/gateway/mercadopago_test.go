package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/gateway"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.MercadoPago {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewMercadoPago(config.MercadoPago{
		AccessToken: "TEST-token",
		BaseURL:     srv.URL,
		Timeout:     2 * time.Second,
	})
}

func checkoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		ProductKey:        "PHOTOSHOP 2025",
		Price:             decimal.RequireFromString("10.00"),
		Currency:          "BRL",
		BuyerID:           "555",
		NotificationURL:   "https://relay.example.com/payment-notification",
		ExternalReference: "ref-1",
	}
}

func TestCreatePreference_Success(t *testing.T) {
	var got map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "pref-123",
			"init_point": "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=pref-123",
			"sandbox_init_point": "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=pref-123",
			"point_of_interaction": {"transaction_data": {"qr_code": "000201", "qr_code_base64": "iVBORw0KGgo="}}
		}`))
	})

	session, err := client.CreatePreference(context.Background(), checkoutRequest())

	require.NoError(t, err)
	assert.Equal(t, "pref-123", session.ID)
	assert.Equal(t, "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=pref-123", session.PayableLink)
	assert.Equal(t, "iVBORw0KGgo=", session.QRCodeBase64)
	assert.Equal(t, "000201", session.QRCode)

	items := got["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "PHOTOSHOP 2025", item["title"])
	assert.Equal(t, float64(1), item["quantity"])
	assert.Equal(t, 10.0, item["unit_price"])
	assert.Equal(t, "BRL", item["currency_id"])
	assert.Equal(t, "https://relay.example.com/payment-notification", got["notification_url"])
	assert.Equal(t, "ref-1", got["external_reference"])
	assert.Equal(t, map[string]any{"buyer_id": "555", "product_key": "PHOTOSHOP 2025"}, got["metadata"])
}

func TestCreatePreference_SandboxLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "p", "init_point": "https://live", "sandbox_init_point": "https://sandbox"}`))
	}))
	defer srv.Close()
	client := gateway.NewMercadoPago(config.MercadoPago{AccessToken: "t", BaseURL: srv.URL, Timeout: time.Second, Sandbox: true})

	session, err := client.CreatePreference(context.Background(), checkoutRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://sandbox", session.PayableLink)
}

func TestCreatePreference_Rejected(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid access token"}`))
	})

	_, err := client.CreatePreference(context.Background(), checkoutRequest())

	assert.ErrorIs(t, err, models.ErrPaymentGatewayUnavailable)
	assert.ErrorIs(t, err, models.ErrGatewayRejected)
	assert.Contains(t, err.Error(), "401")
}

func TestCreatePreference_MalformedBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops`))
	})

	_, err := client.CreatePreference(context.Background(), checkoutRequest())

	assert.ErrorIs(t, err, models.ErrPaymentGatewayUnavailable)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestCreatePreference_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)
	client := gateway.NewMercadoPago(config.MercadoPago{AccessToken: "t", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := client.CreatePreference(context.Background(), checkoutRequest())

	assert.ErrorIs(t, err, models.ErrPaymentGatewayUnavailable)
	assert.ErrorIs(t, err, models.ErrTransport)
}

func TestCreatePreference_NotConfigured(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ }))
	defer srv.Close()
	client := gateway.NewMercadoPago(config.MercadoPago{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.CreatePreference(context.Background(), checkoutRequest())

	assert.ErrorIs(t, err, models.ErrGatewayNotConfigured)
	assert.ErrorIs(t, err, models.ErrPaymentGatewayUnavailable)
	assert.Zero(t, calls)
}

func TestGetPayment_Success(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/1319375232", r.URL.Path)
		assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id": 1319375232, "status": "approved", "metadata": {"buyer_id": "555", "product_key": "PHOTOSHOP 2025"}}`))
	})

	record, err := client.GetPayment(context.Background(), "1319375232")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, record.Status)
	assert.Equal(t, "555", record.Metadata.BuyerID)
}

func TestGetPayment_FallsBackToV0(t *testing.T) {
	var paths []string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/v1/payments/42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id": "42", "status": "pending"}`))
	})

	record, err := client.GetPayment(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, record.Status)
	assert.Equal(t, []string{"/v1/payments/42", "/v0/payments/42"}, paths)
}

func TestGetPayment_BothEndpointsFail(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetPayment(context.Background(), "42")

	assert.ErrorIs(t, err, models.ErrGatewayRejected)
	assert.Contains(t, err.Error(), "/v1/payments/42")
}

func TestGetPayment_TransportErrorSkipsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	client := gateway.NewMercadoPago(config.MercadoPago{AccessToken: "t", BaseURL: url, Timeout: time.Second})

	_, err := client.GetPayment(context.Background(), "42")

	assert.ErrorIs(t, err, models.ErrTransport)
}
