package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/catalog"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
	}
}

// GetCatalog lists purchasable plans and journal formats, optionally
// filtered with ?kind=plan or ?kind=physical_journal.
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	items := h.catalog.Items()
	if kind := c.Query("kind"); kind != "" {
		items = h.catalog.ItemsOfKind(kind)
		if items == nil {
			items = []models.CatalogItem{}
		}
	}

	return c.JSON(models.CatalogResponse{
		Version: h.catalog.Version(),
		Items:   items,
	})
}
