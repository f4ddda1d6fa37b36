package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// ReportHandler expone los reportes agregados del inventario.
type ReportHandler struct {
	uc               *inventory.UseCase
	defaultThreshold int
}

// NewReportHandler construye el handler. defaultThreshold aplica al
// reporte de stock bajo cuando el caller no pasa uno.
func NewReportHandler(uc *inventory.UseCase, defaultThreshold int) *ReportHandler {
	return &ReportHandler{uc: uc, defaultThreshold: defaultThreshold}
}

// InventoryValue godoc
// @Summary      Valor del inventario, total y por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryValueResponse
// @Router       /api/reports/value [get]
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TransactionSummary godoc
// @Summary      Conteo de transacciones por tipo
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TransactionSummaryResponse
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) TransactionSummary(c *fiber.Ctx) error {
	out, err := h.uc.TransactionSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock menor o igual al umbral
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (default configurado)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.defaultThreshold)
	out, err := h.uc.LowStock(threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Productos sin stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/reports/out-of-stock [get]
func (h *ReportHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.OutOfStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
