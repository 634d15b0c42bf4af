package subscriber

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/sirupsen/logrus"
)

type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// ManualReviewHandler forwards paid-but-undelivered orders to the operator chat.
type ManualReviewHandler struct {
	Notifier       Notifier
	OperatorChatID int64
}

func NewManualReviewHandler(n Notifier, operatorChatID int64) *ManualReviewHandler {
	return &ManualReviewHandler{Notifier: n, OperatorChatID: operatorChatID}
}

func (h *ManualReviewHandler) Handle(ctx context.Context, topic string, value []byte) error {
	if topic != models.ManualReviewTopic {
		logrus.Errorf("topic not allowed %s", topic)
		return nil
	}

	var event models.ManualReviewEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.Errorf("error parsing manual review event %s", err.Error())
		return fmt.Errorf("error parsing manual review event %w", err)
	}

	if h.OperatorChatID == 0 {
		logrus.Warnf("no operator chat configured, payment %s needs manual review: %s", event.PaymentID, event.Reason)
		return nil
	}
	return h.Notifier.SendMessage(ctx, h.OperatorChatID, operatorText(event))
}

func operatorText(e models.ManualReviewEvent) string {
	return fmt.Sprintf("⚠️ Pedido pago sem entrega automática\n\nPagamento: %s\nComprador: %s\nProduto: %s\nStatus: %s\nMotivo: %s",
		e.PaymentID, e.BuyerID, e.ProductKey, e.Status, e.Reason)
}
