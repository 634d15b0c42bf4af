package models

import "github.com/shopspring/decimal"

// Metadata keys attached to every checkout and echoed back on the payment record.
const (
	MetadataBuyerID    = "buyer_id"
	MetadataProductKey = "product_key"
)

// CheckoutRequest is built per buyer action and never stored.
type CheckoutRequest struct {
	ProductKey        string
	Price             decimal.Decimal
	Currency          string
	BuyerID           string
	NotificationURL   string
	ExternalReference string
}

// Metadata is the correlation payload the processor echoes on the payment record.
func (r CheckoutRequest) Metadata() map[string]string {
	return map[string]string{
		MetadataBuyerID:    r.BuyerID,
		MetadataProductKey: r.ProductKey,
	}
}

// CheckoutSession is what the processor returns for a created preference.
type CheckoutSession struct {
	ID           string
	PayableLink  string
	SandboxLink  string
	QRCodeBase64 string
	QRCode       string
}

// PayableLink is handed back to the chat front-end.
type PayableLink struct {
	URL    string
	QRCode []byte
}
