package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// StockHandler maneja las operaciones de stock. Cada una registra
// exactamente una transacción en el ledger.
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Add godoc
// @Summary      Añadir stock (registra purchase)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.StockRequest  true  "Cantidad y notas"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/stock/add [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddStock(sku, in.Quantity, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Retirar stock (registra sale); falla sin mutar si no alcanza
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.StockRequest  true  "Cantidad y notas"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/stock/remove [post]
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RemoveStock(sku, in.Quantity, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Fijar stock absoluto (registra adjustment, delta puede ser 0)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Cantidad nueva y notas"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(sku, in.NewQuantity, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
