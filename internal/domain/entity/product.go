package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

func init() {
	// El layout persistido usa price como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del inventario. Status no se almacena;
// se deriva de StockQuantity.
type Product struct {
	SKU           string
	Name          string
	Description   string
	Category      Category
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProduct construye un producto con SKU y timestamps generados. La
// validación de precio/cantidad la hace el servicio, no el constructor.
func NewProduct(name, description string, category Category, price decimal.Decimal, quantity int) *Product {
	now := time.Now()
	return &Product{
		SKU:           NewSKU(),
		Name:          name,
		Description:   description,
		Category:      category,
		Price:         price,
		StockQuantity: quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewSKU genera un código corto opaco: uuid4 truncado a 8 en mayúsculas.
func NewSKU() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Status deriva el estado de inventario del stock actual.
func (p *Product) Status() Status {
	return StatusForQuantity(p.StockQuantity)
}

// ProductRecord forma serializada de Product en el archivo JSON.
// Los timestamps viajan como RFC 3339 y la categoría por su nombre.
type ProductRecord struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// Record convierte el producto a su forma persistida.
func (p *Product) Record() ProductRecord {
	return ProductRecord{
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ProductFromRecord valida y convierte un registro persistido. Campos
// requeridos ausentes o enums/timestamps no parseables ⇒ ErrMalformedRecord.
func ProductFromRecord(rec ProductRecord) (*Product, error) {
	if rec.SKU == "" {
		return nil, fmt.Errorf("%w: sku requerido", domain.ErrMalformedRecord)
	}
	if rec.Name == "" {
		return nil, fmt.Errorf("%w: name requerido (sku %s)", domain.ErrMalformedRecord, rec.SKU)
	}
	category, ok := ParseCategory(rec.Category)
	if !ok {
		return nil, fmt.Errorf("%w: categoría %q (sku %s)", domain.ErrMalformedRecord, rec.Category, rec.SKU)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: created_at %q (sku %s)", domain.ErrMalformedRecord, rec.CreatedAt, rec.SKU)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: updated_at %q (sku %s)", domain.ErrMalformedRecord, rec.UpdatedAt, rec.SKU)
	}
	return &Product{
		SKU:           rec.SKU,
		Name:          rec.Name,
		Description:   rec.Description,
		Category:      category,
		Price:         rec.Price,
		StockQuantity: rec.StockQuantity,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
