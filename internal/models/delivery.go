package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outcome is the terminal state of a single notification.
type Outcome string

const (
	OutcomeDelivered      Outcome = "DELIVERED"
	OutcomeDeliveryFailed Outcome = "DELIVERY_FAILED"
	OutcomeIgnored        Outcome = "IGNORED"
	OutcomeDuplicate      Outcome = "DUPLICATE"
)

// Delivery is one row of the delivery journal.
type Delivery struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	PaymentID  string    `gorm:"index;not null" json:"payment_id"`
	BuyerID    string    `gorm:"index" json:"buyer_id"`
	ProductKey string    `json:"product_key"`
	Status     string    `json:"status"`
	Outcome    Outcome   `gorm:"index" json:"outcome"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return
}
