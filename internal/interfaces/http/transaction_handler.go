package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// TransactionHandler expone el ledger de transacciones (solo lectura y
// borrado por id; las transacciones nunca se editan).
type TransactionHandler struct {
	uc *inventory.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *inventory.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar transacciones (filtro opcional type)
// @Tags         transactions
// @Produce      json
// @Param        type  query  string  false  "purchase, sale o adjustment"
// @Success      200   {object}  dto.TransactionListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var (
		out *dto.TransactionListResponse
		err error
	)
	if t := c.Query("type"); t != "" {
		out, err = h.uc.TransactionsByType(t)
	} else {
		out, err = h.uc.ListTransactions()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por id
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "Id de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetTransaction(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar transacción por id
// @Tags         transactions
// @Param        id  path  string  true  "Id de la transacción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteTransaction(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ByProduct godoc
// @Summary      Transacciones que referencian un SKU
// @Tags         transactions
// @Produce      json
// @Param        sku  path  string  true  "SKU referenciado"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/products/{sku}/transactions [get]
func (h *TransactionHandler) ByProduct(c *fiber.Ctx) error {
	sku := c.Params("sku")
	out, err := h.uc.ProductTransactions(sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
