package main

import (
	"log"
	"strings"

	"cozinha-backend/internal/auth"
	"cozinha-backend/internal/config"
	"cozinha-backend/internal/database"
	"cozinha-backend/internal/inventory"
	"cozinha-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	store := database.NewStore(database.DB)
	svc := stock.NewService(store)
	recount := stock.NewRecount(svc, store)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Ecrã de PIN
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// A partir daqui só com token
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Equipa e gerente: catálogo e registo de saídas
	protected.Get("/products", inventory.ListProductsHandler(svc))
	protected.Post("/consumptions", inventory.CreateConsumptionsHandler(svc, store))

	// Só gerente: controlo completo
	gerente := protected.Group("")
	gerente.Use(auth.RequireRole(auth.RoleGerente))

	// Catálogo
	gerente.Post("/products", inventory.CreateProductHandler())
	gerente.Put("/products/:id", inventory.UpdateProductHandler())
	gerente.Delete("/products/:id", inventory.DeleteProductHandler())

	// Entradas e saídas
	gerente.Post("/entries", inventory.CreateEntryHandler(svc, store))
	gerente.Get("/entries", inventory.ListEntriesHandler(svc))
	gerente.Get("/consumptions", inventory.ListConsumptionsHandler(svc))

	// Inventário real (edição inline)
	gerente.Put("/snapshots", inventory.UpsertSnapshotHandler(svc, store))
	gerente.Get("/snapshots", inventory.ListSnapshotsHandler(svc))

	// Inventário mensal (rápido)
	gerente.Post("/recount/begin", inventory.BeginRecountHandler(svc, recount))
	gerente.Get("/recount", inventory.RecountSheetHandler(svc, recount))
	gerente.Post("/recount/paste", inventory.ApplyPasteHandler(recount))
	gerente.Post("/recount/fill-zeros", inventory.FillZerosHandler(recount))
	gerente.Put("/recount/values", inventory.SetRecountValueHandler(recount))
	gerente.Get("/recount/preview", inventory.PreviewRecountHandler(recount))
	gerente.Post("/recount/commit", inventory.CommitRecountHandler(svc, recount))
	gerente.Post("/recount/cancel", inventory.CancelRecountHandler(recount))

	// Relatórios e avisos
	gerente.Get("/stock/report", inventory.StockReportHandler(svc))
	gerente.Get("/stock/alerts", inventory.StockAlertsHandler(svc))
	gerente.Get("/stock/value", inventory.TotalValueHandler(svc))

	// Exportações XLSX
	gerente.Get("/export/entries.xlsx", inventory.ExportEntriesHandler(svc))
	gerente.Get("/export/consumptions.xlsx", inventory.ExportConsumptionsHandler(svc))
	gerente.Get("/export/stock.xlsx", inventory.ExportStockHandler(svc))

	log.Println("Servidor a correr na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
