package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/metrics"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/sirupsen/logrus"
)

// Notifier sends plain text to a chat.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// SeenSet tracks payments already delivered to the buyer.
type SeenSet interface {
	Reserve(paymentID string) bool
	Commit(paymentID string)
	Release(paymentID string)
}

// DeliveryJournal persists the outcome of each processed notification.
type DeliveryJournal interface {
	Record(ctx context.Context, delivery *models.Delivery) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// ConfirmationService reacts to processor notifications. It never trusts the
// notification body: the payment record is always fetched from the processor.
type ConfirmationService struct {
	Gateway   PaymentGateway
	Catalog   CatalogReader
	Notifier  Notifier
	Seen      SeenSet
	Journal   DeliveryJournal
	Publisher Publisher

	now func() time.Time
}

func NewConfirmationService(gateway PaymentGateway, catalog CatalogReader, notifier Notifier, seen SeenSet, journal DeliveryJournal, publisher Publisher) *ConfirmationService {
	return &ConfirmationService{
		Gateway:   gateway,
		Catalog:   catalog,
		Notifier:  notifier,
		Seen:      seen,
		Journal:   journal,
		Publisher: publisher,
		now:       time.Now,
	}
}

// HandleNotification runs one notification through the confirmation flow.
func (s *ConfirmationService) HandleNotification(ctx context.Context, n models.PaymentNotification) (models.Outcome, error) {
	if n.PaymentID == "" {
		s.count(models.OutcomeIgnored)
		logrus.Warn("payment notification without id, acknowledging")
		return models.OutcomeIgnored, models.ErrMalformedNotification
	}
	if n.Type != "" && n.Type != models.NotificationTypePayment {
		s.count(models.OutcomeIgnored)
		logrus.Infof("ignoring %s notification %s", n.Type, n.PaymentID)
		return models.OutcomeIgnored, nil
	}

	if s.Seen != nil && !s.Seen.Reserve(n.PaymentID) {
		s.count(models.OutcomeDuplicate)
		logrus.Infof("payment %s already handled, skipping", n.PaymentID)
		return models.OutcomeDuplicate, nil
	}

	committed := false
	if s.Seen != nil {
		// Only a delivered payment stays in the set; failures must reach the
		// processor again as non-success so it keeps redelivering.
		defer func() {
			if !committed {
				s.Seen.Release(n.PaymentID)
			}
		}()
	}

	outcome, err := s.process(ctx, n.PaymentID)
	if s.Seen != nil && outcome == models.OutcomeDelivered {
		s.Seen.Commit(n.PaymentID)
		committed = true
	}
	s.count(outcome)
	return outcome, err
}

// ReplayPayment reprocesses a payment by id, e.g. after an operator fixed the catalog.
func (s *ConfirmationService) ReplayPayment(ctx context.Context, paymentID string) (models.Outcome, error) {
	return s.HandleNotification(ctx, models.PaymentNotification{PaymentID: paymentID, Type: models.NotificationTypePayment})
}

func (s *ConfirmationService) process(ctx context.Context, paymentID string) (models.Outcome, error) {
	record, err := s.Gateway.GetPayment(ctx, paymentID)
	if err != nil {
		logrus.Errorf("error fetching payment %s: %s", paymentID, err.Error())
		return models.OutcomeIgnored, fmt.Errorf("error fetching payment %s: %w", paymentID, err)
	}

	delivery := &models.Delivery{
		PaymentID:  paymentID,
		BuyerID:    record.Metadata.BuyerID,
		ProductKey: record.Metadata.ProductKey,
		Status:     string(record.Status),
	}

	if !record.Status.IsApproved() {
		logrus.Infof("payment %s is %s, nothing to deliver", paymentID, record.Status)
		s.journal(ctx, delivery, models.OutcomeIgnored, "payment not approved")
		return models.OutcomeIgnored, nil
	}
	if !record.Metadata.Complete() {
		logrus.Warnf("approved payment %s has incomplete metadata %+v", paymentID, record.Metadata)
		s.journal(ctx, delivery, models.OutcomeIgnored, "missing metadata")
		return models.OutcomeIgnored, nil
	}

	chatID, err := strconv.ParseInt(record.Metadata.BuyerID, 10, 64)
	if err != nil {
		reason := fmt.Sprintf("buyer id %q is not a chat id", record.Metadata.BuyerID)
		s.journal(ctx, delivery, models.OutcomeDeliveryFailed, reason)
		s.raiseReview(ctx, paymentID, record, reason)
		return models.OutcomeDeliveryFailed, fmt.Errorf("%w: %s", models.ErrInvalidRecipient, reason)
	}

	product, ok := s.Catalog.Get(record.Metadata.ProductKey)
	if !ok {
		reason := fmt.Sprintf("product %q not in catalog", record.Metadata.ProductKey)
		logrus.Errorf("approved payment %s cannot be delivered: %s", paymentID, reason)
		if err := s.Notifier.SendMessage(ctx, chatID, manualSupportMessage(paymentID)); err != nil {
			logrus.Warnf("error telling buyer %d about manual support: %s", chatID, err.Error())
		}
		s.journal(ctx, delivery, models.OutcomeDeliveryFailed, reason)
		s.raiseReview(ctx, paymentID, record, reason)
		return models.OutcomeDeliveryFailed, fmt.Errorf("%w: %s", models.ErrUnresolvedProduct, reason)
	}

	if err := s.Notifier.SendMessage(ctx, chatID, deliveryMessage(product)); err != nil {
		logrus.Errorf("error delivering payment %s to buyer %d: %s", paymentID, chatID, err.Error())
		return models.OutcomeIgnored, fmt.Errorf("error delivering payment %s: %w", paymentID, err)
	}

	s.journal(ctx, delivery, models.OutcomeDelivered, "")
	metrics.DeliveriesTotal.WithLabelValues(product.Name).Inc()
	metrics.DeliveredAmounts.WithLabelValues(product.Name).Observe(record.TransactionAmount)
	s.publish(ctx, models.OrderFulfilledTopic, models.OrderFulfilledEvent{
		PaymentID:   paymentID,
		BuyerID:     record.Metadata.BuyerID,
		ProductKey:  product.Name,
		Amount:      record.TransactionAmount,
		FulfilledAt: s.now(),
	})
	logrus.Infof("payment %s delivered %q to buyer %d", paymentID, product.Name, chatID)
	return models.OutcomeDelivered, nil
}

func (s *ConfirmationService) raiseReview(ctx context.Context, paymentID string, record *models.PaymentRecord, reason string) {
	s.publish(ctx, models.ManualReviewTopic, models.ManualReviewEvent{
		PaymentID:  paymentID,
		BuyerID:    record.Metadata.BuyerID,
		ProductKey: record.Metadata.ProductKey,
		Status:     string(record.Status),
		Reason:     reason,
		RaisedAt:   s.now(),
	})
}

func (s *ConfirmationService) journal(ctx context.Context, d *models.Delivery, outcome models.Outcome, reason string) {
	if s.Journal == nil {
		return
	}
	d.Outcome = outcome
	d.Reason = reason
	if err := s.Journal.Record(ctx, d); err != nil {
		logrus.Errorf("error recording delivery for payment %s: %s", d.PaymentID, err.Error())
	}
}

func (s *ConfirmationService) publish(ctx context.Context, topic string, event interface{}) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, topic, event); err != nil {
		logrus.Errorf("error publishing to %s: %s", topic, err.Error())
	}
}

func (s *ConfirmationService) count(outcome models.Outcome) {
	metrics.NotificationsTotal.WithLabelValues(string(outcome)).Inc()
}
