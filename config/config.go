package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// NotificationPath is the route the payment processor calls back on.
const NotificationPath = "/payment-notification"

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Debug("No .env file found, using process environment")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	Config.warnMissing()
	return &Config, nil
}

type Config struct {
	APP
	Telegram
	MercadoPago
	Catalog
	Dedup
	Kafka
	DB
}

type APP struct {
	PORT             string `env:"PORT" envDefault:"8080"`
	PublicBaseURL    string `env:"PUBLIC_BASE_URL"`
	WebhookURL       string `env:"WEBHOOK_URL"`
	ProductsAPIToken string `env:"PRODUCTS_API_TOKEN"`
}

type Telegram struct {
	BotToken    string        `env:"TELEGRAM_BOT_TOKEN"`
	APIEndpoint string        `env:"TELEGRAM_API_ENDPOINT" envDefault:"https://api.telegram.org/bot%s/%s"`
	Timeout     time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"15s"`
	PollTimeout int           `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"60"`
	SupportURL  string        `env:"SUPPORT_URL" envDefault:"https://t.me/NTGTECH"`
	Debug       bool          `env:"TELEGRAM_DEBUG" envDefault:"false"`
}

type MercadoPago struct {
	AccessToken string        `env:"MERCADO_PAGO_ACCESS_TOKEN"`
	BaseURL     string        `env:"MERCADO_PAGO_BASE_URL" envDefault:"https://api.mercadopago.com"`
	Currency    string        `env:"MERCADO_PAGO_CURRENCY" envDefault:"BRL"`
	Timeout     time.Duration `env:"MERCADO_PAGO_TIMEOUT" envDefault:"15s"`
	Sandbox     bool          `env:"MERCADO_PAGO_SANDBOX" envDefault:"false"`
}

type Catalog struct {
	File string `env:"CATALOG_FILE"`
}

type Dedup struct {
	Capacity int           `env:"DEDUP_CAPACITY" envDefault:"1024"`
	TTL      time.Duration `env:"DEDUP_TTL" envDefault:"24h"`
}

type DB struct {
	Enabled  bool   `env:"DB_ENABLED" envDefault:"false"`
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GROUP_ID" envDefault:"sales-relay"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"orders.fulfilled,orders.manual_review,orders.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"orders.manual_review"`
	OperatorChatID   int64  `env:"OPERATOR_CHAT_ID" envDefault:"0"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// NotificationURL is the callback address attached to every checkout.
// WEBHOOK_URL is only used when no public base URL is configured.
func (a APP) NotificationURL() string {
	if a.PublicBaseURL != "" {
		return strings.TrimRight(a.PublicBaseURL, "/") + NotificationPath
	}
	return a.WebhookURL
}

func (c *Config) warnMissing() {
	if c.Telegram.BotToken == "" {
		logrus.Warn("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.MercadoPago.AccessToken == "" {
		logrus.Warn("MERCADO_PAGO_ACCESS_TOKEN is not set")
	}
	if c.APP.NotificationURL() == "" {
		logrus.Warn("PUBLIC_BASE_URL is not set, checkouts will carry no notification_url")
	}
}
