package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

type PaymentStatus string

const (
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusInProcess  PaymentStatus = "in_process"
	PaymentStatusRejected   PaymentStatus = "rejected"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusChargeBack PaymentStatus = "charged_back"
)

func (s PaymentStatus) IsApproved() bool {
	return s == PaymentStatusApproved
}

// NotificationTypePayment is the only notification type that points at a payment.
const NotificationTypePayment = "payment"

// PaymentNotification is the untrusted inbound callback. It only points at a payment.
type PaymentNotification struct {
	PaymentID string
	Type      string
}

// PaymentRecord is the processor's authoritative view of a payment.
type PaymentRecord struct {
	ID                FlexID          `json:"id"`
	Status            PaymentStatus   `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	ExternalReference string          `json:"external_reference"`
	TransactionAmount float64         `json:"transaction_amount"`
	Metadata          PaymentMetadata `json:"metadata"`
}

// PaymentMetadata holds the correlation fields echoed back by the processor.
type PaymentMetadata struct {
	BuyerID    string
	ProductKey string
}

var (
	buyerIDKeys    = []string{MetadataBuyerID, "telegram_user_id"}
	productKeyKeys = []string{MetadataProductKey, "produto", "produto_name", "product"}
)

// UnmarshalJSON accepts string or numeric values and the legacy key names
// used by earlier checkouts.
func (m *PaymentMetadata) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = PaymentMetadata{}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	m.BuyerID = firstValue(raw, buyerIDKeys)
	m.ProductKey = firstValue(raw, productKeyKeys)
	return nil
}

func (m PaymentMetadata) Complete() bool {
	return m.BuyerID != "" && m.ProductKey != ""
}

func firstValue(raw map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// FlexID decodes identifiers that arrive either as JSON strings or numbers.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}
