package repository

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Get devuelve (nil, nil) si el SKU no existe; los errores son fallos
// reales de la capa de almacenamiento.
type ProductRepository interface {
	Save(product *entity.Product) error
	Get(sku string) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Delete(sku string) (bool, error)
}
