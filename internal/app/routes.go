package app

import (
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	handlers "github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LegacyNotificationPath is the callback path older checkouts were created with.
const LegacyNotificationPath = "/notificacao"

func (a *App) RegisterRoutes(n *handlers.NotificationHandler, p *handlers.ProductHandler) {
	a.Router.POST(config.NotificationPath, n.HandleNotification)
	a.Router.POST(LegacyNotificationPath, n.HandleNotification)

	products := a.Router.Group("/products", handlers.RequireBearer(a.config.APP.ProductsAPIToken))
	products.GET("", p.ListProducts)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
