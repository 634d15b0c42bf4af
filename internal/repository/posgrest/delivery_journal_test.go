package posgrest_test

import (
	"context"
	"testing"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/repository/posgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without a server and records the last SQL.
func dryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=relay dbname=relay sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var last string
	capture := func(tx *gorm.DB) { last = tx.Statement.SQL.String() }
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	return db, &last
}

func TestRecord_AssignsID(t *testing.T) {
	db, last := dryRunDB(t)
	journal := posgrest.NewDeliveryJournal(db)
	d := &models.Delivery{PaymentID: "42", BuyerID: "555", ProductKey: "CAPCUT", Status: "approved", Outcome: models.OutcomeDelivered}

	err := journal.Record(context.Background(), d)

	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Contains(t, *last, `INSERT INTO "deliveries"`)
}

func TestRecord_KeepsExistingID(t *testing.T) {
	db, _ := dryRunDB(t)
	journal := posgrest.NewDeliveryJournal(db)
	d := &models.Delivery{ID: "fixed", PaymentID: "42"}

	require.NoError(t, journal.Record(context.Background(), d))
	assert.Equal(t, "fixed", d.ID)
}

func TestByPayment_Query(t *testing.T) {
	db, last := dryRunDB(t)
	journal := posgrest.NewDeliveryJournal(db)

	rows, err := journal.ByPayment(context.Background(), "42")

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Contains(t, *last, `FROM "deliveries"`)
	assert.Contains(t, *last, "payment_id = $1")
	assert.Contains(t, *last, "ORDER BY created_at asc")
}

func TestByOutcome_Query(t *testing.T) {
	db, last := dryRunDB(t)
	journal := posgrest.NewDeliveryJournal(db)

	_, err := journal.ByOutcome(context.Background(), models.OutcomeDeliveryFailed, 20)

	require.NoError(t, err)
	assert.Contains(t, *last, "outcome = $1")
	assert.Contains(t, *last, "ORDER BY created_at desc")
	assert.Contains(t, *last, "LIMIT $2")
}
