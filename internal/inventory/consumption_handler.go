package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type ConsumptionItem struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"` // texto; aceita vírgula decimal
}

type CreateConsumptionsRequest struct {
	Responsible string            `json:"responsible"`
	Items       []ConsumptionItem `json:"items"`
}

type ConsumptionResponse struct {
	ID          uint    `json:"id"`
	Product     string  `json:"product"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Responsible string  `json:"responsible"`
	Sector      string  `json:"sector"`
	Timestamp   string  `json:"timestamp"`
}

// POST /api/consumptions
// A lista provisória chega inteira e é confirmada de uma vez: ou entra tudo
// ou não entra nada. Equipa e gerente podem registar saídas.
func CreateConsumptionsHandler(svc *stock.Service, store stock.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateConsumptionsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o catálogo")
		}

		var batch stock.Batch
		for _, item := range body.Items {
			product, ok := svc.ProductByName(item.Product)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Produto não encontrado: %s", item.Product))
			}
			qty, okQty := stock.ParseQuantity(item.Quantity)
			if !okQty {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Quantidade inválida para %s", item.Product))
			}
			if err := batch.Add(product, qty); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Quantidade inválida para %s", item.Product))
			}
		}

		err := batch.Commit(c.Context(), store, strings.TrimSpace(body.Responsible))
		switch {
		case errors.Is(err, stock.ErrResponsibleRequired):
			return fiber.NewError(fiber.StatusBadRequest, "Responsável obrigatório")
		case errors.Is(err, stock.ErrEmptyBatch):
			return fiber.NewError(fiber.StatusBadRequest, "Lista vazia")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao guardar saídas")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"saved": len(body.Items),
		})
	}
}

// GET /api/consumptions?from=YYYY-MM-DD&to=YYYY-MM-DD (só gerente)
func ListConsumptionsHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as saídas")
		}

		consumptions := svc.ConsumptionsBetween(c.Query("from"), c.Query("to"))

		res := make([]ConsumptionResponse, 0, len(consumptions))
		for _, s := range consumptions {
			unit := ""
			if p, ok := svc.ProductByName(s.Product); ok {
				unit = p.Unit
			}
			res = append(res, ConsumptionResponse{
				ID:          s.ID,
				Product:     s.Product,
				Unit:        unit,
				Quantity:    s.Quantity,
				Responsible: s.Responsible,
				Sector:      s.Sector,
				Timestamp:   s.Timestamp.Format(time.RFC3339),
			})
		}
		return c.JSON(res)
	}
}
