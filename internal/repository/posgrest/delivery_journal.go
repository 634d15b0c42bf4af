package posgrest

import (
	"context"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"gorm.io/gorm"
)

// DeliveryJournal stores one row per processed payment notification.
type DeliveryJournal struct {
	db *gorm.DB
}

func NewDeliveryJournal(db *gorm.DB) *DeliveryJournal {
	return &DeliveryJournal{db: db}
}

func (j *DeliveryJournal) Migrate() error {
	return j.db.AutoMigrate(&models.Delivery{})
}

// Record inserts a journal row. The row ID is assigned on create.
func (j *DeliveryJournal) Record(ctx context.Context, delivery *models.Delivery) error {
	return j.db.WithContext(ctx).Create(delivery).Error
}

// ByPayment returns every recorded outcome for a payment, oldest first.
func (j *DeliveryJournal) ByPayment(ctx context.Context, paymentID string) ([]models.Delivery, error) {
	var rows []models.Delivery
	err := j.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ByOutcome returns the most recent rows with the given outcome.
func (j *DeliveryJournal) ByOutcome(ctx context.Context, outcome models.Outcome, limit int) ([]models.Delivery, error) {
	var rows []models.Delivery
	err := j.db.WithContext(ctx).
		Where("outcome = ?", outcome).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
