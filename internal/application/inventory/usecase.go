// Package inventory contiene el caso de uso del ledger de inventario: el
// único lugar donde se aplican las reglas de negocio. La regla central es
// que todo cambio de stock produce exactamente una transacción de
// auditoría; los stores no la conocen.
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// UseCase orquesta productos y ledger de transacciones. Los stores se
// inyectan por constructor; no hay defaults globales.
type UseCase struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, transactions repository.TransactionRepository) *UseCase {
	return &UseCase{products: products, transactions: transactions}
}

// AddProduct valida y crea un producto. Si la cantidad inicial es
// positiva registra una transacción purchase por el total.
func (uc *UseCase) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, ok := entity.ParseCategory(in.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}
	if in.StockQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad en stock no puede ser negativa", domain.ErrInvalidQuantity)
	}

	product := entity.NewProduct(in.Name, in.Description, category, in.Price, in.StockQuantity)
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}

	if in.StockQuantity > 0 {
		note := fmt.Sprintf("Inventario inicial para %s", product.Name)
		if err := uc.recordTransaction(product.SKU, in.StockQuantity, entity.TransactionPurchase, note); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// GetProduct devuelve (nil, nil) si el SKU no existe.
func (uc *UseCase) GetProduct(sku string) (*dto.ProductResponse, error) {
	product, err := uc.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza solo metadatos (nombre, descripción, categoría,
// precio). El stock jamás se toca por esta vía. Refresca UpdatedAt.
func (uc *UseCase) UpdateProduct(sku string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		category, ok := entity.ParseCategory(*in.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, *in.Category)
		}
		product.Category = category
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidPrice
		}
		product.Price = *in.Price
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina un producto. Si queda stock, antes registra una
// transacción adjustment de -stock para conservar la pista de auditoría.
func (uc *UseCase) DeleteProduct(sku string) error {
	product, err := uc.products.Get(sku)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.StockQuantity > 0 {
		note := fmt.Sprintf("Eliminación del producto %s", product.Name)
		if err := uc.recordTransaction(sku, -product.StockQuantity, entity.TransactionAdjustment, note); err != nil {
			return err
		}
	}
	found, err := uc.products.Delete(sku)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// recordTransaction crea y persiste el registro de auditoría de un delta.
func (uc *UseCase) recordTransaction(productSKU string, quantity int, txType entity.TransactionType, notes string) error {
	tx := entity.NewTransaction(productSKU, quantity, txType, notes)
	return uc.transactions.Save(tx)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Status:        string(p.Status()),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		TransactionID: t.ID,
		ProductSKU:    t.ProductSKU,
		Quantity:      t.Quantity,
		Type:          string(t.Type),
		Timestamp:     t.Timestamp,
		Notes:         t.Notes,
	}
}

func toTransactionList(txs []*entity.Transaction) *dto.TransactionListResponse {
	items := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}
}
