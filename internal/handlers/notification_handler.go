package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxNotificationBody = 1 << 20

type ConfirmationService interface {
	HandleNotification(ctx context.Context, n models.PaymentNotification) (models.Outcome, error)
}

type NotificationHandler struct {
	Service ConfirmationService
}

func NewNotificationHandler(s ConfirmationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

// POST /payment-notification
func (h *NotificationHandler) HandleNotification(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxNotificationBody))
	if err != nil {
		logrus.Warnf("error reading notification body: %s", err.Error())
	}
	n := ParseNotification(body, c.Request.URL.Query())

	outcome, err := h.Service.HandleNotification(c.Request.Context(), n)
	switch {
	case errors.Is(err, models.ErrMalformedNotification):
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	case errors.Is(err, models.ErrUnresolvedProduct), errors.Is(err, models.ErrInvalidRecipient):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": strings.ToLower(string(outcome)), "error": "payment needs manual review"})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable, retry later"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": strings.ToLower(string(outcome))})
	}
}

// ParseNotification extracts the payment pointer from any of the callback
// shapes the processor sends. The body wins over the query string; a body that
// is empty or not JSON yields whatever the query carries.
func ParseNotification(body []byte, query url.Values) models.PaymentNotification {
	var n models.PaymentNotification

	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if len(bytes.TrimSpace(body)) > 0 && dec.Decode(&payload) == nil {
		if data, ok := payload["data"].(map[string]any); ok {
			n.PaymentID = firstID(data, "id", "id_payment", "id_payments")
		}
		if n.PaymentID == "" {
			n.PaymentID = firstID(payload, "id")
		}
		n.Type = firstString(payload, "type", "topic")
	}

	if n.PaymentID == "" {
		n.PaymentID = firstNonEmpty(query.Get("data.id"), query.Get("id"))
	}
	if n.Type == "" {
		n.Type = firstNonEmpty(query.Get("type"), query.Get("topic"))
	}
	return n
}

func firstID(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
