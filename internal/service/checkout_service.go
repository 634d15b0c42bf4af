package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/metrics"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CatalogReader resolves product keys to products.
type CatalogReader interface {
	Get(name string) (models.Product, bool)
	List() []models.Product
}

// PaymentGateway is the payment processor as seen by the relay.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (*models.PaymentRecord, error)
}

// CheckoutService turns a buyer's product choice into a payable link.
type CheckoutService struct {
	Catalog         CatalogReader
	Gateway         PaymentGateway
	Currency        string
	NotificationURL string

	newReference func() string
}

func NewCheckoutService(catalog CatalogReader, gateway PaymentGateway, currency, notificationURL string) *CheckoutService {
	return &CheckoutService{
		Catalog:         catalog,
		Gateway:         gateway,
		Currency:        currency,
		NotificationURL: notificationURL,
		newReference:    func() string { return uuid.New().String() },
	}
}

// Products lists the catalog in display order.
func (s *CheckoutService) Products() []models.Product {
	return s.Catalog.List()
}

// CreateCheckout opens a checkout session for buyerID. Unknown products fail
// with ErrProductNotFound before anything is sent to the processor.
func (s *CheckoutService) CreateCheckout(ctx context.Context, productKey, buyerID string) (*models.PayableLink, error) {
	product, ok := s.Catalog.Get(productKey)
	if !ok {
		metrics.CheckoutsTotal.WithLabelValues("unknown_product").Inc()
		return nil, fmt.Errorf("%w: %q", models.ErrProductNotFound, productKey)
	}

	req := models.CheckoutRequest{
		ProductKey:        product.Name,
		Price:             product.Price,
		Currency:          s.Currency,
		BuyerID:           buyerID,
		NotificationURL:   s.NotificationURL,
		ExternalReference: s.newReference(),
	}

	session, err := s.Gateway.CreatePreference(ctx, req)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		logrus.Errorf("error creating checkout for buyer %s product %q: %s", buyerID, productKey, err.Error())
		return nil, err
	}
	if session.PayableLink == "" {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w: preference %s has no payable link",
			models.ErrPaymentGatewayUnavailable, models.ErrMalformedResponse, session.ID)
	}

	link := &models.PayableLink{URL: session.PayableLink}
	if session.QRCodeBase64 != "" {
		qr, err := base64.StdEncoding.DecodeString(session.QRCodeBase64)
		if err != nil {
			logrus.Warnf("dropping undecodable QR code for preference %s: %s", session.ID, err.Error())
		} else {
			link.QRCode = qr
		}
	}

	metrics.CheckoutsTotal.WithLabelValues("created").Inc()
	logrus.Infof("checkout %s created for buyer %s product %q ref %s", session.ID, buyerID, product.Name, req.ExternalReference)
	return link, nil
}
