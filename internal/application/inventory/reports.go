package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// InventoryValue calcula el valor total del inventario (Σ precio × stock)
// y el subtotal por categoría. Todas las categorías del set aparecen en
// el resultado, con 0 las que no tienen productos.
func (uc *UseCase) InventoryValue() (*dto.InventoryValueResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal, len(entity.Categories()))
	for _, c := range entity.Categories() {
		byCategory[string(c)] = decimal.Zero
	}

	total := decimal.Zero
	for _, p := range products {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
		total = total.Add(value)
		byCategory[string(p.Category)] = byCategory[string(p.Category)].Add(value)
	}

	return &dto.InventoryValueResponse{Total: total, ByCategory: byCategory}, nil
}

// TransactionSummary cuenta transacciones por tipo. Un tipo no reconocido
// presente en storage no suma en ningún bucket pero sigue almacenado.
func (uc *UseCase) TransactionSummary() (*dto.TransactionSummaryResponse, error) {
	txs, err := uc.transactions.GetAll()
	if err != nil {
		return nil, err
	}

	summary := &dto.TransactionSummaryResponse{}
	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionPurchase:
			summary.Purchase++
		case entity.TransactionSale:
			summary.Sale++
		case entity.TransactionAdjustment:
			summary.Adjustment++
		}
	}
	return summary, nil
}
