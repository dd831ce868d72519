package inventory

import (
	"time"

	"cozinha-backend/internal/models"
	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type CreateEntryRequest struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"` // texto; aceita vírgula decimal
}

type EntryResponse struct {
	ID        uint    `json:"id"`
	Product   string  `json:"product"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	Timestamp string  `json:"timestamp"`
}

// POST /api/entries (só gerente)
// O timestamp é atribuído aqui, no momento do registo; não é editável.
func CreateEntryHandler(svc *stock.Service, store stock.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o catálogo")
		}

		product, ok := svc.ProductByName(body.Product)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Produto não encontrado")
		}

		qty, okQty := stock.ParseQuantity(body.Quantity)
		if !okQty || qty <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade inválida")
		}

		entry := models.Entry{
			Product:   product.Name,
			Quantity:  qty,
			Timestamp: time.Now(),
		}

		if err := store.InsertEntry(c.Context(), &entry); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registar a entrada")
		}

		return c.Status(fiber.StatusCreated).JSON(EntryResponse{
			ID:        entry.ID,
			Product:   entry.Product,
			Unit:      product.Unit,
			Quantity:  entry.Quantity,
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		})
	}
}

// GET /api/entries?from=YYYY-MM-DD&to=YYYY-MM-DD (só gerente)
// Histórico por timestamp descendente; intervalo inclusivo sobre a data.
func ListEntriesHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as entradas")
		}

		entries := svc.EntriesBetween(c.Query("from"), c.Query("to"))

		res := make([]EntryResponse, 0, len(entries))
		for _, e := range entries {
			unit := ""
			if p, ok := svc.ProductByName(e.Product); ok {
				unit = p.Unit
			}
			res = append(res, EntryResponse{
				ID:        e.ID,
				Product:   e.Product,
				Unit:      unit,
				Quantity:  e.Quantity,
				Timestamp: e.Timestamp.Format(time.RFC3339),
			})
		}
		return c.JSON(res)
	}
}
