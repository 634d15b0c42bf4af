package models

import "time"

const (
	OrderFulfilledTopic = "orders.fulfilled"
	ManualReviewTopic   = "orders.manual_review"
	OrdersDLQTopic      = "orders.dlq"
)

type OrderFulfilledEvent struct {
	PaymentID   string    `json:"payment_id"`
	BuyerID     string    `json:"buyer_id"`
	ProductKey  string    `json:"product_key"`
	Amount      float64   `json:"amount"`
	FulfilledAt time.Time `json:"fulfilled_at"`
}

// ManualReviewEvent flags a paid order that could not be delivered automatically.
type ManualReviewEvent struct {
	PaymentID  string    `json:"payment_id"`
	BuyerID    string    `json:"buyer_id"`
	ProductKey string    `json:"product_key"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason"`
	RaisedAt   time.Time `json:"raised_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (e OrderFulfilledEvent) EventKey() string { return e.PaymentID }

func (e ManualReviewEvent) EventKey() string { return e.PaymentID }

func (m DLQMessage) EventKey() string { return m.Key }
