package models_test

import (
	"encoding/json"
	"testing"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRecord_Unmarshal(t *testing.T) {
	raw := `{
		"id": 1319375232,
		"status": "approved",
		"status_detail": "accredited",
		"transaction_amount": 10,
		"metadata": {"buyer_id": "555", "product_key": "PHOTOSHOP 2025"}
	}`

	var record models.PaymentRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, models.FlexID("1319375232"), record.ID)
	assert.True(t, record.Status.IsApproved())
	assert.Equal(t, "555", record.Metadata.BuyerID)
	assert.Equal(t, "PHOTOSHOP 2025", record.Metadata.ProductKey)
	assert.True(t, record.Metadata.Complete())
}

func TestPaymentMetadata_LegacyKeysAndNumbers(t *testing.T) {
	var meta models.PaymentMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"telegram_user_id": 987654321012, "produto": "CAPCUT"}`), &meta))

	assert.Equal(t, "987654321012", meta.BuyerID)
	assert.Equal(t, "CAPCUT", meta.ProductKey)
}

func TestPaymentMetadata_PrefersCurrentKeys(t *testing.T) {
	var meta models.PaymentMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"buyer_id": "1", "telegram_user_id": "2", "product": "X", "product_key": "Y"}`), &meta))

	assert.Equal(t, "1", meta.BuyerID)
	assert.Equal(t, "Y", meta.ProductKey)
}

func TestPaymentMetadata_NullOrMissing(t *testing.T) {
	var record models.PaymentRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": "7", "status": "approved", "metadata": null}`), &record))
	assert.False(t, record.Metadata.Complete())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "8", "status": "approved", "metadata": {"buyer_id": "  "}}`), &record))
	assert.Empty(t, record.Metadata.BuyerID)
	assert.False(t, record.Metadata.Complete())
}

func TestFlexID(t *testing.T) {
	var ids struct {
		A models.FlexID `json:"a"`
		B models.FlexID `json:"b"`
		C models.FlexID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "123", "b": 456, "c": null}`), &ids))

	assert.Equal(t, "123", ids.A.String())
	assert.Equal(t, "456", ids.B.String())
	assert.Empty(t, ids.C.String())
}

func TestProduct_JSON(t *testing.T) {
	p := models.Product{Name: "PHOTOSHOP 2025", Price: decimal.RequireFromString("10"), Link: "https://example.com/ps2025"}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"PHOTOSHOP 2025","price":10.00,"link":"https://example.com/ps2025"}`, string(out))

	var back models.Product
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, p.Price.Equal(back.Price))
	assert.Equal(t, p.Name, back.Name)
}

func TestProduct_Validate(t *testing.T) {
	assert.NoError(t, (&models.Product{Name: "A", Price: decimal.NewFromInt(1), Link: "https://x"}).Validate())
	assert.Error(t, (&models.Product{Price: decimal.NewFromInt(1), Link: "https://x"}).Validate())
	assert.Error(t, (&models.Product{Name: "A", Price: decimal.Zero, Link: "https://x"}).Validate())
	assert.Error(t, (&models.Product{Name: "A", Price: decimal.NewFromInt(1)}).Validate())
}

func TestCheckoutRequest_Metadata(t *testing.T) {
	req := models.CheckoutRequest{ProductKey: "CAPCUT", BuyerID: "42"}

	assert.Equal(t, map[string]string{"buyer_id": "42", "product_key": "CAPCUT"}, req.Metadata())
}
