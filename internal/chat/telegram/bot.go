package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/chat"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type callbackRoute struct {
	prefix  string
	handler chat.HandlerFunc
}

// Bot implements chat.Messenger on top of the Telegram Bot API.
// Sends and long polling use separate clients so that a send is bounded by
// the configured timeout while getUpdates may block for the poll window.
type Bot struct {
	sender      *tgbotapi.BotAPI
	poller      *tgbotapi.BotAPI
	pollTimeout int

	mu        sync.RWMutex
	commands  map[string]chat.HandlerFunc
	callbacks []callbackRoute
	text      chat.HandlerFunc
}

func New(cfg config.Telegram) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: telegram bot token is empty", models.ErrTransport)
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	sender, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("error connecting to telegram: %w", err)
	}
	pollWindow := time.Duration(cfg.PollTimeout)*time.Second + cfg.Timeout
	poller, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, &http.Client{Timeout: pollWindow})
	if err != nil {
		return nil, fmt.Errorf("error connecting to telegram: %w", err)
	}
	sender.Debug = cfg.Debug
	poller.Debug = cfg.Debug

	logrus.Infof("Authorized on telegram account %s", sender.Self.UserName)
	return &Bot{
		sender:      sender,
		poller:      poller,
		pollTimeout: cfg.PollTimeout,
		commands:    make(map[string]chat.HandlerFunc),
	}, nil
}

func (b *Bot) RegisterCommandHandler(command string, h chat.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commands[strings.TrimPrefix(command, "/")] = h
}

func (b *Bot) RegisterCallbackHandler(prefix string, h chat.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, callbackRoute{prefix: prefix, handler: h})
}

func (b *Bot) RegisterTextHandler(h chat.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = h
}

func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	return b.send(ctx, msg)
}

func (b *Bot) SendPhoto(ctx context.Context, chatID int64, png []byte, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "qrcode.png", Bytes: png})
	photo.Caption = caption
	return b.send(ctx, photo)
}

func (b *Bot) SendChoices(ctx context.Context, chatID int64, text string, choices []chat.Choice) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard(choices)
	return b.send(ctx, msg)
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrTransport, err)
	}
	if _, err := b.sender.Send(c); err != nil {
		return fmt.Errorf("%w: %w", models.ErrTransport, err)
	}
	return nil
}

// Run long-polls for updates until ctx is cancelled. Each update is handled
// on its own goroutine so one slow buyer never blocks another.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.poller.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.poller.StopReceivingUpdates()
			logrus.Info("Telegram polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.dispatch(ctx, update)
			}()
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("panic handling update %d: %v", update.UpdateID, r)
		}
	}()

	h, u := b.route(update)
	if h == nil {
		return
	}
	if update.CallbackQuery != nil {
		if _, err := b.sender.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			logrus.Warnf("error answering callback %s: %s", update.CallbackQuery.ID, err.Error())
		}
	}
	if err := h(ctx, u); err != nil {
		logrus.Errorf("error handling update %d: %s", update.UpdateID, err.Error())
	}
}

// route picks the handler for an update and converts it to a chat.Update.
// Unknown commands and unrouted callbacks return a nil handler.
func (b *Bot) route(update tgbotapi.Update) (chat.HandlerFunc, chat.Update) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		u := chat.Update{Data: cq.Data}
		if cq.From != nil {
			u.UserID = cq.From.ID
			u.Username = cq.From.UserName
			u.ChatID = cq.From.ID
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			u.ChatID = cq.Message.Chat.ID
		}
		for _, r := range b.callbacks {
			if strings.HasPrefix(cq.Data, r.prefix) {
				return r.handler, u
			}
		}
		return nil, u

	case update.Message != nil:
		msg := update.Message
		u := chat.Update{Text: msg.Text}
		if msg.Chat != nil {
			u.ChatID = msg.Chat.ID
		}
		if msg.From != nil {
			u.UserID = msg.From.ID
			u.Username = msg.From.UserName
		}
		if msg.IsCommand() {
			return b.commands[msg.Command()], u
		}
		if msg.Text == "" {
			return nil, u
		}
		return b.text, u
	}
	return nil, chat.Update{}
}

func keyboard(choices []chat.Choice) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, c := range choices {
		if c.URL != "" {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(c.Label, c.URL)))
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Data)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
