package inventory

import (
	"strings"

	"cozinha-backend/internal/database"
	"cozinha-backend/internal/models"
	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// Balde onde caem os produtos sem procedência preenchida.
const noProvenance = "Sem procedência"

type ProductResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	Provenance   string   `json:"provenance"`
	Minimum      float64  `json:"minimum"`
	UnitPrice    float64  `json:"unit_price"`
	Theoretical  float64  `json:"theoretical_stock"`
	Real         *float64 `json:"real_stock"` // última contagem física; null se nunca contado
	Adjusted     float64  `json:"adjusted_stock"`
	BelowMinimum bool     `json:"below_minimum"`
}

type ProductPayload struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Provenance string `json:"provenance"`
	Minimum    string `json:"minimum"`    // texto; aceita vírgula decimal
	UnitPrice  string `json:"unit_price"` // idem
}

// parseProductPayload: validação local de catálogo. Números inválidos ou
// negativos bloqueiam a escrita antes de tocar na base.
func parseProductPayload(body *ProductPayload) (models.Product, error) {
	body.Name = strings.TrimSpace(body.Name)
	body.Unit = stock.NormalizeUnit(body.Unit)
	body.Provenance = strings.TrimSpace(body.Provenance)

	if body.Name == "" || body.Unit == "" {
		return models.Product{}, fiber.NewError(fiber.StatusBadRequest, "Nome e unidade são obrigatórios")
	}

	minimum, okMin := stock.ParseQuantity(body.Minimum)
	unitPrice, okPrice := stock.ParseQuantity(body.UnitPrice)
	if !okMin || !okPrice || minimum < 0 || unitPrice < 0 {
		return models.Product{}, fiber.NewError(fiber.StatusBadRequest, "Verifica 'mínimo' e 'preço unit.' (usa números válidos, não negativos)")
	}

	return models.Product{
		Name:       body.Name,
		Unit:       body.Unit,
		Provenance: body.Provenance,
		Minimum:    minimum,
		UnitPrice:  unitPrice,
	}, nil
}

// GET /api/products
// Catálogo completo com stock teórico, real e atual por produto.
func ListProductsHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar os produtos")
		}

		theoretical := svc.Theoretical()
		adjusted := svc.Adjusted()

		products := svc.Products()
		res := make([]ProductResponse, 0, len(products))
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
			res = append(res, ProductResponse{
				ID:           p.ID,
				Name:         p.Name,
				Unit:         p.Unit,
				Provenance:   provenance,
				Minimum:      stock.Num(p.Minimum),
				UnitPrice:    stock.Num(p.UnitPrice),
				Theoretical:  stock.Num(theoretical[p.Name]),
				Real:         real,
				Adjusted:     adj,
				BelowMinimum: adj < stock.Num(p.Minimum),
			})
		}
		return c.JSON(res)
	}
}

// POST /api/products (só gerente)
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductPayload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		p, err := parseProductPayload(&body)
		if err != nil {
			return err
		}

		var existing models.Product
		if err := database.DB.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um produto com esse nome")
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o produto")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":   p.ID,
			"name": p.Name,
		})
	}
}

// PUT /api/products/:id (só gerente)
// Atenção: renomear um produto desliga o histórico de entradas/saídas e o
// inventário real, que ligam pelo nome. Comportamento herdado da app original.
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var body ProductPayload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		updated, err := parseProductPayload(&body)
		if err != nil {
			return err
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		// nome tem de continuar único
		var clash models.Product
		if err := database.DB.Where("name = ? AND id <> ?", updated.Name, p.ID).First(&clash).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um produto com esse nome")
		}

		err = database.DB.Model(&p).Updates(map[string]interface{}{
			"name":       updated.Name,
			"unit":       updated.Unit,
			"provenance": updated.Provenance,
			"minimum":    updated.Minimum,
			"unit_price": updated.UnitPrice,
		}).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível guardar o produto")
		}

		return c.JSON(fiber.Map{
			"id":   p.ID,
			"name": updated.Name,
		})
	}
}

// DELETE /api/products/:id (só gerente)
// Apaga de vez; a confirmação é responsabilidade de quem chama.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível apagar o produto")
		}

		return c.JSON(fiber.Map{"deleted": p.Name})
	}
}
