package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/catalog"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/urfave/cli/v2"
)

func catalogCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.List())
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tPRICE\tLINK")
	for _, p := range cat.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Price.StringFixed(2), p.Link)
	}
	return w.Flush()
}

func checkoutCommand(c *cli.Context) error {
	myApp, err := initApp(c)
	if err != nil {
		return err
	}

	link, err := myApp.Checkout.CreateCheckout(c.Context, c.String("product"), c.String("buyer"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, link.URL)
	if len(link.QRCode) > 0 {
		fmt.Fprintf(c.App.Writer, "QR code: %d bytes\n", len(link.QRCode))
	}
	return nil
}

func replayCommand(c *cli.Context) error {
	paymentID := c.Args().First()
	if paymentID == "" {
		return errors.New("replay needs a payment id")
	}
	myApp, err := initApp(c)
	if err != nil {
		return err
	}

	outcome, err := myApp.Confirmation.ReplayPayment(c.Context, paymentID)
	fmt.Fprintf(c.App.Writer, "payment %s: %s\n", paymentID, outcome)
	return err
}

func journalCommand(c *cli.Context) error {
	myApp, err := initApp(c)
	if err != nil {
		return err
	}
	if myApp.Journal == nil {
		return errors.New("delivery journal is disabled, set DB_ENABLED=true")
	}

	var rows []models.Delivery
	switch {
	case c.String("payment") != "":
		rows, err = myApp.Journal.ByPayment(c.Context, c.String("payment"))
	case c.Bool("failed"):
		rows, err = myApp.Journal.ByOutcome(c.Context, models.OutcomeDeliveryFailed, c.Int("limit"))
	default:
		return errors.New("pass --payment <id> or --failed")
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPAYMENT\tBUYER\tPRODUCT\tSTATUS\tOUTCOME\tREASON")
	for _, d := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.CreatedAt.Format("2006-01-02 15:04:05"), d.PaymentID, d.BuyerID, d.ProductKey, d.Status, d.Outcome, d.Reason)
	}
	return w.Flush()
}
