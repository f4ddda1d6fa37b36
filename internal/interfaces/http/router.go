package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory         *inventory.UseCase
	LowStockThreshold int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productHandler := NewProductHandler(deps.Inventory)
	stockHandler := NewStockHandler(deps.Inventory)
	txHandler := NewTransactionHandler(deps.Inventory)
	reportHandler := NewReportHandler(deps.Inventory, deps.LowStockThreshold)

	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Put("/:sku", productHandler.Update)
	products.Delete("/:sku", productHandler.Delete)
	products.Post("/:sku/stock/add", stockHandler.Add)
	products.Post("/:sku/stock/remove", stockHandler.Remove)
	products.Post("/:sku/stock/adjust", stockHandler.Adjust)
	products.Get("/:sku/transactions", txHandler.ByProduct)

	transactions := api.Group("/transactions")
	transactions.Get("/", txHandler.List)
	transactions.Get("/:id", txHandler.GetByID)
	transactions.Delete("/:id", txHandler.Delete)

	reports := api.Group("/reports")
	reports.Get("/value", reportHandler.InventoryValue)
	reports.Get("/transactions", reportHandler.TransactionSummary)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/out-of-stock", reportHandler.OutOfStock)
}
