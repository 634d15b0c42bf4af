package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/gin-gonic/gin"
)

type ProductLister interface {
	Products() []models.Product
}

type ProductHandler struct {
	Service ProductLister
}

func NewProductHandler(s ProductLister) *ProductHandler {
	return &ProductHandler{Service: s}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Products())
}

// RequireBearer rejects requests without the given bearer token. An empty
// token leaves the route open.
func RequireBearer(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
