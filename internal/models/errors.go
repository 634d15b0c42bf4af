package models

import "errors"

var (
	// ErrPaymentGatewayUnavailable covers every checkout failure the buyer can only retry later.
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayNotConfigured is returned when no processor access token is set.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	// ErrGatewayRejected is a non-2xx answer from the processor.
	ErrGatewayRejected = errors.New("payment gateway rejected request")
	// ErrMalformedResponse is a processor answer that could not be decoded.
	ErrMalformedResponse = errors.New("malformed payment gateway response")
	// ErrTransport is a network failure or timeout talking to the processor or the chat platform.
	ErrTransport = errors.New("transport failure")

	ErrMalformedNotification = errors.New("payment notification without payment id")
	// ErrUnresolvedProduct is an approved payment whose product key is not in the catalog.
	ErrUnresolvedProduct = errors.New("approved payment references unknown product")
	ErrProductNotFound   = errors.New("product not found")
	// ErrInvalidRecipient is an approved payment whose buyer id is not a chat id.
	ErrInvalidRecipient = errors.New("approved payment references invalid buyer")
)
