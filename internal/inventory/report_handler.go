package inventory

import (
	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type StockReportRow struct {
	Product      string   `json:"product"`
	Unit         string   `json:"unit"`
	Provenance   string   `json:"provenance"`
	Theoretical  float64  `json:"theoretical_stock"`
	Real         *float64 `json:"real_stock"`
	Adjusted     float64  `json:"adjusted_stock"`
	Minimum      float64  `json:"minimum"`
	UnitPrice    float64  `json:"unit_price"`
	Value        float64  `json:"value"` // stock atual × preço unitário
	BelowMinimum bool     `json:"below_minimum"`
}

// GET /api/stock/report (só gerente)
// O quadro completo: teórico, real, atual, avaliação e avisos por produto.
func StockReportHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o stock")
		}

		rows, total := stockReportRows(svc)
		return c.JSON(fiber.Map{
			"rows":        rows,
			"total_value": total,
		})
	}
}

// GET /api/stock/alerts (só gerente)
// Produtos com stock atual abaixo do mínimo.
func StockAlertsHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o stock")
		}

		adjusted := svc.Adjusted()
		below := svc.BelowMinimumList()

		type alertRow struct {
			Product  string  `json:"product"`
			Unit     string  `json:"unit"`
			Adjusted float64 `json:"adjusted_stock"`
			Minimum  float64 `json:"minimum"`
		}

		rows := make([]alertRow, 0, len(below))
		for _, p := range below {
			rows = append(rows, alertRow{
				Product:  p.Name,
				Unit:     p.Unit,
				Adjusted: stock.Num(adjusted[p.Name]),
				Minimum:  stock.Num(p.Minimum),
			})
		}
		return c.JSON(rows)
	}
}

// GET /api/stock/value (só gerente)
func TotalValueHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o stock")
		}
		return c.JSON(fiber.Map{
			"total_value": svc.TotalValue(),
		})
	}
}

func stockReportRows(svc *stock.Service) ([]StockReportRow, float64) {
	theoretical := svc.Theoretical()
	adjusted := svc.Adjusted()

	products := svc.Products()
	rows := make([]StockReportRow, 0, len(products))
	for _, p := range products {
		provenance := p.Provenance
		if provenance == "" {
			provenance = noProvenance
		}

		var real *float64
		if snap, ok := svc.SnapshotOf(p.Name); ok {
			q := stock.Num(snap.Quantity)
			real = &q
		}

		adj := stock.Num(adjusted[p.Name])
		rows = append(rows, StockReportRow{
			Product:      p.Name,
			Unit:         p.Unit,
			Provenance:   provenance,
			Theoretical:  stock.Num(theoretical[p.Name]),
			Real:         real,
			Adjusted:     adj,
			Minimum:      stock.Num(p.Minimum),
			UnitPrice:    stock.Num(p.UnitPrice),
			Value:        adj * stock.Num(p.UnitPrice),
			BelowMinimum: adj < stock.Num(p.Minimum),
		})
	}
	return rows, svc.TotalValue()
}
