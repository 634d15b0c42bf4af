package service

import (
	"fmt"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
)

func deliveryMessage(p models.Product) string {
	return fmt.Sprintf("✅ Pagamento aprovado!\n\nProduto: %s\n\nAqui está seu link de download/entrega:\n%s\n\nQualquer dúvida, responda aqui.", p.Name, p.Link)
}

func manualSupportMessage(paymentID string) string {
	return fmt.Sprintf("✅ Pagamento aprovado, mas não conseguimos liberar seu produto automaticamente.\n\nNossa equipe vai entrar em contato. Guarde o código do pagamento: %s", paymentID)
}
