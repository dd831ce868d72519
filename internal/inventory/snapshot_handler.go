package inventory

import (
	"time"

	"cozinha-backend/internal/models"
	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type UpsertSnapshotRequest struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"` // texto; aceita vírgula decimal
}

type SnapshotResponse struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	AsOf     *string `json:"as_of"` // null enquanto o produto nunca passou por um inventário mensal
}

// PUT /api/snapshots (só gerente)
// Edição inline do stock real de um produto, como o campo de blur da app
// original: mexe só na quantidade e preserva a data da última contagem.
func UpsertSnapshotHandler(svc *stock.Service, store stock.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpsertSnapshotRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o inventário")
		}

		product, ok := svc.ProductByName(body.Product)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Produto não encontrado")
		}

		qty, okQty := stock.ParseQuantity(body.Quantity)
		if !okQty {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade inválida")
		}

		row := models.Snapshot{Product: product.Name, Quantity: qty}
		if existing, found := svc.SnapshotOf(product.Name); found {
			row.AsOf = existing.AsOf
		}

		if err := store.UpsertSnapshots(c.Context(), []models.Snapshot{row}); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gravar o stock real")
		}

		return c.JSON(snapshotResponse(row))
	}
}

// GET /api/snapshots (só gerente)
func ListSnapshotsHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o inventário")
		}

		res := make([]SnapshotResponse, 0)
		for _, p := range svc.Products() {
			if snap, ok := svc.SnapshotOf(p.Name); ok {
				res = append(res, snapshotResponse(snap))
			}
		}
		return c.JSON(res)
	}
}

func snapshotResponse(s models.Snapshot) SnapshotResponse {
	var asOf *string
	if s.AsOf != nil {
		v := s.AsOf.Format(time.RFC3339)
		asOf = &v
	}
	return SnapshotResponse{
		Product:  s.Product,
		Quantity: s.Quantity,
		AsOf:     asOf,
	}
}
