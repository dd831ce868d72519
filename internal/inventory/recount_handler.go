package inventory

import (
	"errors"
	"regexp"
	"strings"

	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type BeginRecountRequest struct {
	Month string `json:"month"` // "2024-03"
}

type RecountRowResponse struct {
	Product     string  `json:"product"`
	Unit        string  `json:"unit"`
	Theoretical float64 `json:"theoretical_stock"`
	Staged      string  `json:"staged"` // texto editável; "" = por contar
}

// POST /api/recount/begin (só gerente)
// Abre a folha do inventário mensal pré-preenchida com o stock real atual.
func BeginRecountHandler(svc *stock.Service, rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BeginRecountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}
		if !monthRe.MatchString(body.Month) {
			return fiber.NewError(fiber.StatusBadRequest, "Mês tem de ser 'YYYY-MM'")
		}

		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o inventário")
		}

		rec.Begin(body.Month)
		return c.JSON(fiber.Map{
			"state": rec.State(),
			"month": rec.Month(),
		})
	}
}

// GET /api/recount?q=... (só gerente)
// A folha em edição, filtrável por nome como a pesquisa da app original.
func RecountSheetHandler(svc *stock.Service, rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rec.State() != stock.RecountStaged {
			return c.JSON(fiber.Map{"state": rec.State()})
		}

		rec.SetFilter(c.Query("q"))
		q := strings.ToLower(strings.TrimSpace(rec.Filter()))
		theoretical := svc.Theoretical()

		rows := make([]RecountRowResponse, 0)
		for _, p := range svc.Products() {
			if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
				continue
			}
			rows = append(rows, RecountRowResponse{
				Product:     p.Name,
				Unit:        p.Unit,
				Theoretical: stock.Num(theoretical[p.Name]),
				Staged:      rec.StagedValue(p.Name),
			})
		}

		return c.JSON(fiber.Map{
			"state": rec.State(),
			"month": rec.Month(),
			"rows":  rows,
		})
	}
}

type PasteRequest struct {
	Text string `json:"text"`
}

// POST /api/recount/paste (só gerente)
// Funde uma lista colada ("Produto; 12,5" por linha) na folha. Nomes que não
// batem certo voltam na resposta como aviso, sem bloquear.
func ApplyPasteHandler(rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PasteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		unmatched, err := rec.ApplyPastedText(body.Text)
		switch {
		case errors.Is(err, stock.ErrRecountNotStaged):
			return fiber.NewError(fiber.StatusConflict, "Inventário mensal não está iniciado")
		case errors.Is(err, stock.ErrNothingParsed):
			return fiber.NewError(fiber.StatusBadRequest, "Não consegui ler nada. Cola linhas tipo: 'Produto; 12,5' (uma por linha).")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao aplicar a colagem")
		}

		if unmatched == nil {
			unmatched = []string{}
		}
		return c.JSON(fiber.Map{
			"unmatched": unmatched,
		})
	}
}

// POST /api/recount/fill-zeros (só gerente)
func FillZerosHandler(rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := rec.FillBlanksWithZero(); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Inventário mensal não está iniciado")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

type SetValueRequest struct {
	Product string `json:"product"`
	Value   string `json:"value"`
}

// PUT /api/recount/values (só gerente)
// Edição direta de uma linha da folha; a última escrita ganha.
func SetRecountValueHandler(rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetValueRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}
		if strings.TrimSpace(body.Product) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Produto obrigatório")
		}

		if err := rec.SetValue(body.Product, body.Value); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Inventário mensal não está iniciado")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// GET /api/recount/preview (só gerente)
// As discrepâncias negativas que o commit vai exigir confirmar.
func PreviewRecountHandler(rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		negatives, err := rec.Preview()
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "Inventário mensal não está iniciado")
		}
		if negatives == nil {
			negatives = []stock.Discrepancy{}
		}
		return c.JSON(fiber.Map{
			"negative_discrepancies": negatives,
		})
	}
}

type CommitRecountRequest struct {
	AcknowledgeNegatives bool `json:"acknowledge_negatives"`
}

// POST /api/recount/commit (só gerente)
// Grava a contagem: sobrescreve o inventário real dos produtos editados.
// Com discrepâncias negativas por confirmar devolve 409 e a lista; o estado
// fica como estava (Staged) até o operador confirmar ou cancelar.
func CommitRecountHandler(svc *stock.Service, rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CommitRecountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		result, err := rec.Commit(c.Context(), body.AcknowledgeNegatives)
		switch {
		case errors.Is(err, stock.ErrRecountNotStaged):
			return fiber.NewError(fiber.StatusConflict, "Inventário mensal não está iniciado")
		case errors.Is(err, stock.ErrNothingToCommit):
			return fiber.NewError(fiber.StatusBadRequest, "Sem valores válidos para gravar")
		case errors.Is(err, stock.ErrNegativesPending):
			negatives, _ := rec.Preview()
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":                  "Discrepância negativa detetada (Inventário < Teórico). Confirma para gravar mesmo assim.",
				"negative_discrepancies": negatives,
			})
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gravar inventário mensal")
		}

		// a contagem acabada de gravar passa a ser a baseline do motor
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Inventário gravado, mas falhou a recarga dos dados")
		}

		return c.JSON(result)
	}
}

// POST /api/recount/cancel (só gerente)
// Fecha a folha sem gravar.
func CancelRecountHandler(rec *stock.Recount) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec.Cancel()
		return c.JSON(fiber.Map{"state": rec.State()})
	}
}
