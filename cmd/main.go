package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "ntg-vendas",
		Usage: "Telegram sales bot and Mercado Pago delivery relay",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Catalog file (.json or .toml), overrides CATALOG_FILE",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		Action: serveCommand,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the notification endpoint and the Telegram bot",
				Action: serveCommand,
			},
			{
				Name:  "catalog",
				Usage: "Print the product catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
				},
				Action: catalogCommand,
			},
			{
				Name:  "checkout",
				Usage: "Create a payment link for a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "product", Aliases: []string{"p"}, Usage: "Product key", Required: true},
					&cli.StringFlag{Name: "buyer", Aliases: []string{"b"}, Usage: "Buyer chat id", Required: true},
				},
				Action: checkoutCommand,
			},
			{
				Name:      "replay",
				Usage:     "Reprocess a payment notification by payment id",
				ArgsUsage: "<payment-id>",
				Action:    replayCommand,
			},
			{
				Name:  "journal",
				Usage: "Show recorded deliveries (requires DB_ENABLED)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "payment", Usage: "Only rows for this payment id"},
					&cli.IntFlag{Name: "limit", Usage: "Rows to show for --failed", Value: 20},
					&cli.BoolFlag{Name: "failed", Usage: "Show recent deliveries that need manual review"},
				},
				Action: journalCommand,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logrus.Error(err.Error())
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if file := c.String("catalog"); file != "" {
		cfg.Catalog.File = file
	}
	return cfg, nil
}

func initApp(c *cli.Context) (*app.App, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	myApp := &app.App{}
	if err := myApp.Initialize(cfg); err != nil {
		return nil, err
	}
	return myApp, nil
}

func serveCommand(c *cli.Context) error {
	myApp, err := initApp(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return myApp.Run(ctx)
}
