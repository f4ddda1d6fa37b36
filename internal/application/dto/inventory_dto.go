package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRequest body para añadir o retirar stock.
type StockRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// AdjustStockRequest body para fijar el stock en una cantidad absoluta.
type AdjustStockRequest struct {
	NewQuantity int    `json:"new_quantity"`
	Notes       string `json:"notes"`
}

// TransactionResponse registro de auditoría de un delta de stock.
type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	ProductSKU    string    `json:"product_sku"`
	Quantity      int       `json:"quantity"`
	Type          string    `json:"transaction_type"`
	Timestamp     time.Time `json:"timestamp"`
	Notes         string    `json:"notes"`
}

// TransactionListResponse listado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// InventoryValueResponse valor del inventario (precio × stock). ByCategory
// incluye todas las categorías del set, con 0 para las vacías.
type InventoryValueResponse struct {
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// TransactionSummaryResponse conteo de transacciones por tipo. Tipos no
// reconocidos presentes en storage no suman en ningún bucket.
type TransactionSummaryResponse struct {
	Purchase   int `json:"purchase"`
	Sale       int `json:"sale"`
	Adjustment int `json:"adjustment"`
}
