package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// Consultas puras sobre los stores: sin mutación, solo fallan ante enums
// inválidos o errores de la capa de almacenamiento.

// ListProducts devuelve todos los productos.
func (uc *UseCase) ListProducts() (*dto.ProductListResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	return toProductList(products), nil
}

// SearchProducts busca por nombre o descripción (case-insensitive).
func (uc *UseCase) SearchProducts(query string) (*dto.ProductListResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return toProductList(matched), nil
}

// ProductsByCategory filtra por categoría (nombre case-insensitive).
func (uc *UseCase) ProductsByCategory(categoryName string) (*dto.ProductListResponse, error) {
	category, ok := entity.ParseCategory(categoryName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, categoryName)
	}
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return toProductList(matched), nil
}

// ProductsByStatus filtra por estado derivado. DISCONTINUED es válido
// pero ningún producto lo alcanza, así que devuelve vacío.
func (uc *UseCase) ProductsByStatus(statusName string) (*dto.ProductListResponse, error) {
	status, ok := entity.ParseStatus(statusName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, statusName)
	}
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if p.Status() == status {
			matched = append(matched, p)
		}
	}
	return toProductList(matched), nil
}

// LowStock devuelve productos con stock menor o igual al umbral.
func (uc *UseCase) LowStock(threshold int) (*dto.ProductListResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if p.StockQuantity <= threshold {
			matched = append(matched, p)
		}
	}
	return toProductList(matched), nil
}

// OutOfStock devuelve productos sin stock.
func (uc *UseCase) OutOfStock() (*dto.ProductListResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if p.StockQuantity <= 0 {
			matched = append(matched, p)
		}
	}
	return toProductList(matched), nil
}

// GetTransaction devuelve (nil, nil) si el id no existe.
func (uc *UseCase) GetTransaction(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.Get(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// ListTransactions devuelve todo el ledger.
func (uc *UseCase) ListTransactions() (*dto.TransactionListResponse, error) {
	txs, err := uc.transactions.GetAll()
	if err != nil {
		return nil, err
	}
	return toTransactionList(txs), nil
}

// ProductTransactions devuelve las transacciones que referencian un SKU.
// La referencia es lógica: no se exige que el producto exista.
func (uc *UseCase) ProductTransactions(sku string) (*dto.TransactionListResponse, error) {
	txs, err := uc.transactions.GetByProduct(sku)
	if err != nil {
		return nil, err
	}
	return toTransactionList(txs), nil
}

// TransactionsByType filtra el ledger por tipo de transacción.
func (uc *UseCase) TransactionsByType(typeName string) (*dto.TransactionListResponse, error) {
	txType, ok := entity.ParseTransactionType(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, typeName)
	}
	txs, err := uc.transactions.GetByType(txType)
	if err != nil {
		return nil, err
	}
	return toTransactionList(txs), nil
}

// DeleteTransaction elimina un registro del ledger por id. Las
// transacciones no se editan nunca; solo se crean, enumeran y borran.
func (uc *UseCase) DeleteTransaction(id string) error {
	found, err := uc.transactions.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
