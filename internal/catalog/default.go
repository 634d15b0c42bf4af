package catalog

import (
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/shopspring/decimal"
)

var defaultPrice = decimal.RequireFromString("10.00")

var defaultProducts = []struct {
	name string
	link string
}{
	{"ILLUSTRATOR 2025", "https://drive.google.com/drive/folders/1x1JQV47hebrLQe_GF4eq32oQgMt2E5CA?usp=drive_link"},
	{"PHOTOSHOP 2024", "https://drive.google.com/file/d/1wt3EKXIHdopKeFBLG0pEuPWJ2Of4ZrAx/view?usp=sharing"},
	{"PHOTOSHOP 2025", "https://drive.google.com/file/d/1w0Uyjga1SZRveeStUWWZoz4OxH-tVA3g/view?usp=sharing"},
	{"INDESIGN 2025", "https://drive.google.com/file/d/1vZM63AjyRh8FnNn06UjhN49BLSNcXe7Y/view?usp=sharing"},
	{"PREMIERE 2025", "https://drive.google.com/file/d/1QWXJNYVPJ319rXLlDbtf9mdnkEvudMbW/view?usp=sharing"},
	{"ADOBE ACROBAT DC 2025", "https://drive.google.com/file/d/11g0c9RJoOg0qkF7ucMGN6PGL28USKnmM/view?usp=drive_link"},
	{"REVIT 2025", "https://drive.google.com/file/d/18O8AA2AKCniqqlbG4AE4qCQ2sIP5oUiF/view?usp=sharing"},
	{"SKETCHUP 2025", "https://drive.google.com/file/d/SEU_LINK_SKETCHUP_AQUI/view?usp=sharing"},
	{"AFTER EFFECTS 2025", "https://drive.google.com/file/d/1fvxYC41vLa51wO1noCy7PgFwSlaEBbad/view?usp=sharing"},
	{"LIGHTROOM CLASSIC 2025", "https://drive.google.com/file/d/19imV-3YRbViFw-EMHh4ivS9ok2Sqv0un/view?usp=sharing"},
	{"PACOTE OFFICE 2025", "https://drive.google.com/file/d/1fw1QYPgL1tPXj5_x91g6qgwLHPE6Ru8w/view?usp=drive_link"},
	{"CAPCUT", "https://drive.google.com/file/d/1EKgufKRp7eTVbAW_ViIKAMhdikHoMlLe/view?usp=drive_link"},
}

// Default is the store's built-in catalog, used when no catalog file is configured.
func Default() *Catalog {
	products := make([]models.Product, 0, len(defaultProducts))
	for _, p := range defaultProducts {
		products = append(products, models.Product{Name: p.name, Price: defaultPrice, Link: p.link})
	}
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}
