package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers/mocks"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newProductRouter(t *testing.T, token string) (*gin.Engine, *mocks.MockProductLister) {
	mockLister := mocks.NewMockProductLister(t)
	h := handlers.NewProductHandler(mockLister)
	r := gin.New()
	r.GET("/products", handlers.RequireBearer(token), h.ListProducts)
	return r, mockLister
}

func getProducts(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var products = []models.Product{
	{Name: "PHOTOSHOP 2025", Price: decimal.RequireFromString("10.00"), Link: "https://example.com/ps"},
	{Name: "CAPCUT", Price: decimal.RequireFromString("19.9"), Link: "https://example.com/capcut"},
}

func TestListProducts(t *testing.T) {
	r, mockLister := newProductRouter(t, "")
	mockLister.EXPECT().Products().Return(products).Once()

	w := getProducts(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name": "PHOTOSHOP 2025", "price": 10.00, "link": "https://example.com/ps"},
		{"name": "CAPCUT", "price": 19.90, "link": "https://example.com/capcut"}
	]`, w.Body.String())
}

func TestListProducts_BearerGate(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		wantStatus int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic s3cret", http.StatusUnauthorized},
		{"valid", "Bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mockLister := newProductRouter(t, "s3cret")
			if tt.wantStatus == http.StatusOK {
				mockLister.EXPECT().Products().Return(products).Once()
			}

			w := getProducts(r, tt.auth)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				mockLister.AssertNotCalled(t, "Products")
			}
		})
	}
}
