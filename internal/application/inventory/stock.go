package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// AddStock suma cantidad al stock de un producto y registra una
// transacción purchase con el delta positivo.
func (uc *UseCase) AddStock(sku string, quantity int, notes string) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidQuantity)
	}
	product, err := uc.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.StockQuantity += quantity
	product.UpdatedAt = time.Now()
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}
	if err := uc.recordTransaction(sku, quantity, entity.TransactionPurchase, notes); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// RemoveStock resta cantidad del stock y registra una transacción sale
// con el delta negativo. Si la cantidad pedida excede el stock actual no
// muta nada y devuelve ErrInsufficientStock.
func (uc *UseCase) RemoveStock(sku string, quantity int, notes string) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidQuantity)
	}
	product, err := uc.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StockQuantity < quantity {
		return nil, fmt.Errorf("%w: disponible %d", domain.ErrInsufficientStock, product.StockQuantity)
	}

	product.StockQuantity -= quantity
	product.UpdatedAt = time.Now()
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}
	if err := uc.recordTransaction(sku, -quantity, entity.TransactionSale, notes); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock fija el stock en una cantidad absoluta y registra una
// transacción adjustment cuyo delta es nueva − anterior; el delta puede
// ser cero y aun así se registra.
func (uc *UseCase) AdjustStock(sku string, newQuantity int, notes string) (*dto.ProductResponse, error) {
	if newQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidQuantity)
	}
	product, err := uc.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	delta := newQuantity - product.StockQuantity
	product.StockQuantity = newQuantity
	product.UpdatedAt = time.Now()
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}
	if err := uc.recordTransaction(sku, delta, entity.TransactionAdjustment, notes); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}
