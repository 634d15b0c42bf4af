package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers/mocks"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		query string
		want  models.PaymentNotification
	}{
		{"webhook string id", `{"type":"payment","data":{"id":"1319375232"}}`, "", models.PaymentNotification{PaymentID: "1319375232", Type: "payment"}},
		{"webhook numeric id", `{"type":"payment","data":{"id":1319375232}}`, "", models.PaymentNotification{PaymentID: "1319375232", Type: "payment"}},
		{"id_payment", `{"data":{"id_payment":"77"}}`, "", models.PaymentNotification{PaymentID: "77"}},
		{"id_payments", `{"data":{"id_payments":78}}`, "", models.PaymentNotification{PaymentID: "78"}},
		{"top level id with topic", `{"id":"55","topic":"payment"}`, "", models.PaymentNotification{PaymentID: "55", Type: "payment"}},
		{"data id wins over top level", `{"id":1,"type":"payment","data":{"id":"2"}}`, "", models.PaymentNotification{PaymentID: "2", Type: "payment"}},
		{"merchant order", `{"topic":"merchant_order","id":"9"}`, "", models.PaymentNotification{PaymentID: "9", Type: "merchant_order"}},
		{"query fallback", "", "data.id=123&type=payment", models.PaymentNotification{PaymentID: "123", Type: "payment"}},
		{"ipn query", "", "id=321&topic=payment", models.PaymentNotification{PaymentID: "321", Type: "payment"}},
		{"unparsable body uses query", `not json`, "id=5", models.PaymentNotification{PaymentID: "5"}},
		{"empty", "", "", models.PaymentNotification{}},
		{"blank id", `{"data":{"id":"   "}}`, "", models.PaymentNotification{}},
		{"data not an object", `{"data":"x","type":"payment"}`, "", models.PaymentNotification{Type: "payment"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := url.ParseQuery(tt.query)

			got := handlers.ParseNotification([]byte(tt.body), query)

			assert.Equal(t, tt.want, got)
		})
	}
}

func newNotificationRouter(t *testing.T) (*gin.Engine, *mocks.MockConfirmationService) {
	mockService := mocks.NewMockConfirmationService(t)
	h := handlers.NewNotificationHandler(mockService)
	r := gin.New()
	r.POST("/payment-notification", h.HandleNotification)
	return r, mockService
}

func postNotification(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleNotification_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		outcome    models.Outcome
		err        error
		wantStatus int
		wantBody   string
	}{
		{"delivered", models.OutcomeDelivered, nil, http.StatusOK, `{"status":"delivered"}`},
		{"ignored", models.OutcomeIgnored, nil, http.StatusOK, `{"status":"ignored"}`},
		{"duplicate", models.OutcomeDuplicate, nil, http.StatusOK, `{"status":"duplicate"}`},
		{"no id", models.OutcomeIgnored, models.ErrMalformedNotification, http.StatusOK, `{"status":"ignored"}`},
		{"unresolved product", models.OutcomeDeliveryFailed, models.ErrUnresolvedProduct, http.StatusUnprocessableEntity, `{"status":"delivery_failed","error":"payment needs manual review"}`},
		{"invalid buyer", models.OutcomeDeliveryFailed, models.ErrInvalidRecipient, http.StatusUnprocessableEntity, `{"status":"delivery_failed","error":"payment needs manual review"}`},
		{"gateway down", models.OutcomeIgnored, models.ErrPaymentGatewayUnavailable, http.StatusBadGateway, `{"error":"upstream unavailable, retry later"}`},
		{"chat down", models.OutcomeIgnored, models.ErrTransport, http.StatusBadGateway, `{"error":"upstream unavailable, retry later"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mockService := newNotificationRouter(t)
			mockService.EXPECT().
				HandleNotification(mock.Anything, models.PaymentNotification{PaymentID: "42", Type: "payment"}).
				Return(tt.outcome, tt.err).
				Once()

			w := postNotification(r, "/payment-notification", `{"type":"payment","data":{"id":"42"}}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleNotification_EmptyBodyIsAcknowledged(t *testing.T) {
	r, mockService := newNotificationRouter(t)
	mockService.EXPECT().
		HandleNotification(mock.Anything, models.PaymentNotification{}).
		Return(models.OutcomeIgnored, models.ErrMalformedNotification).
		Once()

	w := postNotification(r, "/payment-notification", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, w.Body.String())
}

func TestHandleNotification_QueryStringOnly(t *testing.T) {
	r, mockService := newNotificationRouter(t)
	mockService.EXPECT().
		HandleNotification(mock.Anything, models.PaymentNotification{PaymentID: "321", Type: "payment"}).
		Return(models.OutcomeDelivered, nil).
		Once()

	w := postNotification(r, "/payment-notification?id=321&topic=payment", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleNotification_WrappedErrorsAreMapped(t *testing.T) {
	r, mockService := newNotificationRouter(t)
	mockService.EXPECT().
		HandleNotification(mock.Anything, mock.Anything).
		Return(models.OutcomeDeliveryFailed, errors.Join(errors.New("context"), models.ErrUnresolvedProduct)).
		Once()

	w := postNotification(r, "/payment-notification", `{"data":{"id":"1"}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
