package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/sirupsen/logrus"
)

const maxErrorBody = 4 << 10

// MercadoPago talks to the processor's preference and payment APIs.
// Every call makes a single attempt bounded by the configured timeout.
type MercadoPago struct {
	baseURL     string
	accessToken string
	sandbox     bool
	client      *http.Client
}

func NewMercadoPago(cfg config.MercadoPago) *MercadoPago {
	return &MercadoPago{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		sandbox:     cfg.Sandbox,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
}

type preferenceItem struct {
	Title      string      `json:"title"`
	Quantity   int         `json:"quantity"`
	UnitPrice  json.Number `json:"unit_price"`
	CurrencyID string      `json:"currency_id"`
}

type paymentMethods struct {
	ExcludedPaymentMethods []string `json:"excluded_payment_methods"`
	ExcludedPaymentTypes   []string `json:"excluded_payment_types"`
	Installments           int      `json:"installments"`
}

type preferenceRequest struct {
	Items             []preferenceItem  `json:"items"`
	NotificationURL   string            `json:"notification_url"`
	ExternalReference string            `json:"external_reference,omitempty"`
	Metadata          map[string]string `json:"metadata"`
	PaymentMethods    paymentMethods    `json:"payment_methods"`
}

type preferenceResponse struct {
	ID                 string `json:"id"`
	InitPoint          string `json:"init_point"`
	SandboxInitPoint   string `json:"sandbox_init_point"`
	PointOfInteraction *struct {
		TransactionData *struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// CreatePreference opens a checkout session carrying the buyer and product as metadata.
func (m *MercadoPago) CreatePreference(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	body := preferenceRequest{
		Items: []preferenceItem{{
			Title:      req.ProductKey,
			Quantity:   1,
			UnitPrice:  json.Number(req.Price.StringFixed(2)),
			CurrencyID: req.Currency,
		}},
		NotificationURL:   req.NotificationURL,
		ExternalReference: req.ExternalReference,
		Metadata:          req.Metadata(),
		PaymentMethods: paymentMethods{
			ExcludedPaymentMethods: []string{},
			ExcludedPaymentTypes:   []string{},
			Installments:           1,
		},
	}

	var resp preferenceResponse
	if err := m.do(ctx, http.MethodPost, "/checkout/preferences", body, &resp); err != nil {
		return nil, err
	}

	session := &models.CheckoutSession{
		ID:          resp.ID,
		PayableLink: resp.InitPoint,
		SandboxLink: resp.SandboxInitPoint,
	}
	if m.sandbox && resp.SandboxInitPoint != "" {
		session.PayableLink = resp.SandboxInitPoint
	}
	if poi := resp.PointOfInteraction; poi != nil && poi.TransactionData != nil {
		session.QRCode = poi.TransactionData.QRCode
		session.QRCodeBase64 = poi.TransactionData.QRCodeBase64
	}
	return session, nil
}

// GetPayment fetches the authoritative payment record. A non-2xx answer from
// the v1 endpoint is retried once against the legacy v0 endpoint.
func (m *MercadoPago) GetPayment(ctx context.Context, paymentID string) (*models.PaymentRecord, error) {
	id := url.PathEscape(paymentID)

	var record models.PaymentRecord
	err := m.do(ctx, http.MethodGet, "/v1/payments/"+id, nil, &record)
	if err == nil {
		return &record, nil
	}
	if !isRejected(err) {
		return nil, err
	}

	logrus.Warnf("v1 payment lookup failed for %s, trying v0: %s", paymentID, err.Error())
	var legacy models.PaymentRecord
	if errV0 := m.do(ctx, http.MethodGet, "/v0/payments/"+id, nil, &legacy); errV0 != nil {
		return nil, err
	}
	return &legacy, nil
}

func (m *MercadoPago) do(ctx context.Context, method, path string, in, out interface{}) error {
	if m.accessToken == "" {
		return fmt.Errorf("%w: %w", models.ErrPaymentGatewayUnavailable, models.ErrGatewayNotConfigured)
	}

	var reader io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.accessToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrPaymentGatewayUnavailable, models.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %w: %s %s returned %d: %s",
			models.ErrPaymentGatewayUnavailable, models.ErrGatewayRejected, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrPaymentGatewayUnavailable, models.ErrMalformedResponse, err)
	}
	return nil
}

func isRejected(err error) bool {
	return errors.Is(err, models.ErrGatewayRejected)
}
