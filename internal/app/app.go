package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/bot"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/catalog"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/chat"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/chat/telegram"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/dedup"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/gateway"
	handlers "github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/metrics"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/publisher"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/repository/posgrest"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/service"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	Router *gin.Engine

	Checkout     *service.CheckoutService
	Confirmation *service.ConfirmationService
	Journal      *posgrest.DeliveryJournal

	bot       chat.Messenger
	seen      *dedup.Seen
	publisher *publisher.KafkaPublisher
}

// Initialize builds every component from cfg. The Telegram bot is optional so
// the HTTP surface and CLI commands work without a bot token.
func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg

	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}
	mp := gateway.NewMercadoPago(cfg.MercadoPago)
	a.Checkout = service.NewCheckoutService(cat, mp, cfg.MercadoPago.Currency, cfg.APP.NotificationURL())

	if cfg.Telegram.BotToken != "" {
		tg, err := telegram.New(cfg.Telegram)
		if err != nil {
			return err
		}
		a.bot = tg
	}

	a.seen = dedup.NewSeen(cfg.Dedup.Capacity, cfg.Dedup.TTL)
	a.Confirmation = service.NewConfirmationService(mp, cat, a.notifier(), a.seen, nil, nil)

	if cfg.DB.Enabled {
		db, err := cfg.DB.GormConnect()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.Journal = posgrest.NewDeliveryJournal(db)
		if err := a.Journal.Migrate(); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
		a.Confirmation.Journal = a.Journal
	}

	if cfg.Kafka.Enabled {
		a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, strings.Split(cfg.Kafka.PublishTopics, ","), cfg.Kafka.GetRetryConfig())
		a.Confirmation.Publisher = a.publisher
	}

	metrics.RegisterMetrics()
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(
		handlers.NewNotificationHandler(a.Confirmation),
		handlers.NewProductHandler(a.Checkout),
	)

	if a.bot != nil {
		bot.New(a.bot, a.Checkout, cfg.Telegram.SupportURL).Register()
	}
	return nil
}

// notifier is the buyer-facing sender. Without a bot every send fails so
// payments stay unacknowledged until a chat transport is configured.
func (a *App) notifier() service.Notifier {
	if a.bot == nil {
		return noChat{}
	}
	return a.bot
}

// Run serves HTTP, polls Telegram and consumes review events until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.seen.StartSweeper(ctx, time.Hour)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.bot != nil {
		go func() {
			if err := a.bot.Run(ctx); err != nil {
				logrus.Errorf("telegram bot stopped: %s", err.Error())
			}
		}()
	} else {
		logrus.Warn("TELEGRAM_BOT_TOKEN is empty, chat front-end disabled")
	}

	if a.config.Kafka.Enabled {
		go a.initSubscribers(ctx)
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Warnf("error closing kafka writers: %s", err.Error())
		}
	}
	return nil
}

func (a *App) initSubscribers(ctx context.Context) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, a.config.Kafka.ConsumerGroup, a.publisher, a.config.Kafka.GetRetryConfig())

	review := subscriber.NewManualReviewHandler(a.notifier(), a.config.Kafka.OperatorChatID)
	consumer.Listen(ctx, review.Handle)
}

type noChat struct{}

func (noChat) SendMessage(_ context.Context, chatID int64, _ string) error {
	return fmt.Errorf("%w: no chat transport configured for chat %d", models.ErrTransport, chatID)
}
