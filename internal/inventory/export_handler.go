package inventory

import (
	"fmt"
	"time"

	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/export/entries.xlsx?from=&to= (só gerente)
// Histórico de entradas no intervalo, em XLSX.
func ExportEntriesHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as entradas")
		}

		from, to := c.Query("from"), c.Query("to")
		entries := svc.EntriesBetween(from, to)
		if len(entries) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Sem entradas no intervalo selecionado")
		}

		f := excelize.NewFile()
		defer f.Close()

		headers := []string{"Produto", "Unidade", "Quantidade", "Data", "Hora", "Responsável"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue("Sheet1", cell, h)
		}
		for i, e := range entries {
			unit := ""
			if p, ok := svc.ProductByName(e.Product); ok {
				unit = p.Unit
			}
			row := i + 2
			f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), e.Product)
			f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), unit)
			f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), e.Quantity)
			f.SetCellValue("Sheet1", fmt.Sprintf("D%d", row), e.Timestamp.Format("2006-01-02"))
			f.SetCellValue("Sheet1", fmt.Sprintf("E%d", row), e.Timestamp.Format("15:04"))
			f.SetCellValue("Sheet1", fmt.Sprintf("F%d", row), "Gerente")
		}

		return sendXLSX(c, f, fmt.Sprintf("entradas_%s_a_%s.xlsx", orAll(from), orAll(to)))
	}
}

// GET /api/export/consumptions.xlsx?from=&to= (só gerente)
func ExportConsumptionsHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as saídas")
		}

		from, to := c.Query("from"), c.Query("to")
		consumptions := svc.ConsumptionsBetween(from, to)
		if len(consumptions) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Sem saídas no intervalo selecionado")
		}

		f := excelize.NewFile()
		defer f.Close()

		headers := []string{"Produto", "Unidade", "Quantidade", "Data", "Hora", "Responsável"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue("Sheet1", cell, h)
		}
		for i, s := range consumptions {
			unit := ""
			if p, ok := svc.ProductByName(s.Product); ok {
				unit = p.Unit
			}
			responsible := s.Responsible
			if responsible == "" {
				responsible = "-"
			}
			row := i + 2
			f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), s.Product)
			f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), unit)
			f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), s.Quantity)
			f.SetCellValue("Sheet1", fmt.Sprintf("D%d", row), s.Timestamp.Format("2006-01-02"))
			f.SetCellValue("Sheet1", fmt.Sprintf("E%d", row), s.Timestamp.Format("15:04"))
			f.SetCellValue("Sheet1", fmt.Sprintf("F%d", row), responsible)
		}

		return sendXLSX(c, f, fmt.Sprintf("saidas_%s_a_%s.xlsx", orAll(from), orAll(to)))
	}
}

// GET /api/export/stock.xlsx (só gerente)
// Quadro de stock com avaliação e total no fim.
func ExportStockHandler(svc *stock.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o stock")
		}

		rows, total := stockReportRows(svc)
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Sem produtos para exportar")
		}

		f := excelize.NewFile()
		defer f.Close()

		f.SetCellValue("Sheet1", "A1", fmt.Sprintf("Gerado em: %s", time.Now().Format("2006-01-02 15:04")))

		headers := []string{"Produto", "Unidade", "Stock teórico", "Stock real", "Stock atual", "Mínimo", "Preço (€)", "Valor (€)"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 2)
			f.SetCellValue("Sheet1", cell, h)
		}
		for i, r := range rows {
			row := i + 3
			f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), r.Product)
			f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), r.Unit)
			f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), r.Theoretical)
			if r.Real != nil {
				f.SetCellValue("Sheet1", fmt.Sprintf("D%d", row), *r.Real)
			}
			f.SetCellValue("Sheet1", fmt.Sprintf("E%d", row), r.Adjusted)
			f.SetCellValue("Sheet1", fmt.Sprintf("F%d", row), r.Minimum)
			f.SetCellValue("Sheet1", fmt.Sprintf("G%d", row), r.UnitPrice)
			f.SetCellValue("Sheet1", fmt.Sprintf("H%d", row), r.Value)
		}
		f.SetCellValue("Sheet1", fmt.Sprintf("A%d", len(rows)+4), fmt.Sprintf("Total do stock: %.2f €", total))

		return sendXLSX(c, f, "stock.xlsx")
	}
}

func sendXLSX(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o ficheiro")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func orAll(d string) string {
	if d == "" {
		return "todas"
	}
	return d
}
