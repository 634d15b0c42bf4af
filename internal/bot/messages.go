package bot

import (
	"fmt"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
)

const (
	MenuPrefix  = "menu_"
	MenuBuyData = MenuPrefix + "comprar"

	welcomeText        = "Olá! 👋 Bem-vindo à NTG TECH. Escolha uma opção:"
	buyLabel           = "🛒 Quero Comprar"
	supportLabel       = "❓ Suporte"
	chooseProductText  = "Escolha o produto que deseja comprar:"
	productNotFound    = "Produto não encontrado. Tente novamente."
	paymentUnavailable = "Não foi possível gerar o link de pagamento. Tente novamente mais tarde."
)

func priceLabel(p models.Product) string {
	return fmt.Sprintf("%s — R$ %s", p.Name, p.Price.StringFixed(2))
}

func generatingText(p models.Product) string {
	return "Gerando link de pagamento para " + priceLabel(p)
}

func qrCaption(p models.Product) string {
	return "📲 Escaneie o QR code para pagar " + priceLabel(p)
}

func linkAfterQRText(url string) string {
	return "Ou pague pelo link: " + url
}

func linkFallbackText(url string) string {
	return "Link de pagamento: " + url
}

func linkOnlyText(p models.Product, url string) string {
	return fmt.Sprintf("🔗 Link de pagamento para %s:\n%s", priceLabel(p), url)
}
