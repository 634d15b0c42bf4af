// Package bot is the buyer-facing conversation: welcome, product menu and
// payment link hand-off.
package bot

import (
	"context"
	"errors"
	"strconv"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/chat"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/sirupsen/logrus"
)

type CheckoutService interface {
	CreateCheckout(ctx context.Context, productKey, buyerID string) (*models.PayableLink, error)
	Products() []models.Product
}

type Bot struct {
	Messenger  chat.Messenger
	Checkout   CheckoutService
	SupportURL string
}

func New(m chat.Messenger, checkout CheckoutService, supportURL string) *Bot {
	return &Bot{Messenger: m, Checkout: checkout, SupportURL: supportURL}
}

// Register wires the conversation into the messenger. Product callbacks are
// the catch-all, so they are registered last.
func (b *Bot) Register() {
	b.Messenger.RegisterCommandHandler("start", b.Start)
	b.Messenger.RegisterTextHandler(b.Start)
	b.Messenger.RegisterCallbackHandler(MenuPrefix, b.Menu)
	b.Messenger.RegisterCallbackHandler("", b.Buy)
}

func (b *Bot) Start(ctx context.Context, u chat.Update) error {
	choices := []chat.Choice{{Label: buyLabel, Data: MenuBuyData}}
	if b.SupportURL != "" {
		choices = append(choices, chat.Choice{Label: supportLabel, URL: b.SupportURL})
	}
	return b.Messenger.SendChoices(ctx, u.ChatID, welcomeText, choices)
}

func (b *Bot) Menu(ctx context.Context, u chat.Update) error {
	if u.Data != MenuBuyData {
		return nil
	}
	products := b.Checkout.Products()
	choices := make([]chat.Choice, 0, len(products))
	for _, p := range products {
		choices = append(choices, chat.Choice{Label: p.Name, Data: p.Name})
	}
	return b.Messenger.SendChoices(ctx, u.ChatID, chooseProductText, choices)
}

// Buy handles a product selection. Failures are reported to the buyer in
// plain language; details only go to the log.
func (b *Bot) Buy(ctx context.Context, u chat.Update) error {
	product, ok := b.find(u.Data)
	if !ok {
		return b.Messenger.SendMessage(ctx, u.ChatID, productNotFound)
	}
	if err := b.Messenger.SendMessage(ctx, u.ChatID, generatingText(product)); err != nil {
		return err
	}

	buyerID := strconv.FormatInt(u.UserID, 10)
	link, err := b.Checkout.CreateCheckout(ctx, product.Name, buyerID)
	if errors.Is(err, models.ErrProductNotFound) {
		return b.Messenger.SendMessage(ctx, u.ChatID, productNotFound)
	}
	if err != nil {
		logrus.Errorf("checkout failed for buyer %s product %q: %s", buyerID, product.Name, err.Error())
		return b.Messenger.SendMessage(ctx, u.ChatID, paymentUnavailable)
	}

	if len(link.QRCode) == 0 {
		return b.Messenger.SendMessage(ctx, u.ChatID, linkOnlyText(product, link.URL))
	}
	if err := b.Messenger.SendPhoto(ctx, u.ChatID, link.QRCode, qrCaption(product)); err != nil {
		logrus.Warnf("error sending QR code to chat %d: %s", u.ChatID, err.Error())
		return b.Messenger.SendMessage(ctx, u.ChatID, linkFallbackText(link.URL))
	}
	return b.Messenger.SendMessage(ctx, u.ChatID, linkAfterQRText(link.URL))
}

func (b *Bot) find(key string) (models.Product, bool) {
	for _, p := range b.Checkout.Products() {
		if p.Name == key {
			return p, true
		}
	}
	return models.Product{}, false
}
