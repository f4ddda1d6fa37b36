package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// TransactionType tipo de movimiento registrado en el ledger.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionSale       TransactionType = "sale"
	TransactionAdjustment TransactionType = "adjustment"
)

// TransactionTypes devuelve los tipos reconocidos.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionPurchase, TransactionSale, TransactionAdjustment}
}

// ParseTransactionType valida un tipo sin distinguir mayúsculas.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TransactionTypes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Transaction registro de auditoría inmutable de un delta de stock.
// ProductSKU es referencia lógica: no se exige que el producto exista.
type Transaction struct {
	ID         string
	ProductSKU string
	Quantity   int // delta con signo
	Type       TransactionType
	Timestamp  time.Time
	Notes      string
}

// NewTransaction construye una transacción con id y timestamp generados.
func NewTransaction(productSKU string, quantity int, txType TransactionType, notes string) *Transaction {
	return &Transaction{
		ID:         uuid.NewString(),
		ProductSKU: productSKU,
		Quantity:   quantity,
		Type:       txType,
		Timestamp:  time.Now(),
		Notes:      notes,
	}
}

// TransactionRecord forma serializada de Transaction en el archivo JSON.
type TransactionRecord struct {
	TransactionID string `json:"transaction_id"`
	ProductSKU    string `json:"product_sku"`
	Quantity      int    `json:"quantity"`
	Type          string `json:"transaction_type"`
	Timestamp     string `json:"timestamp"`
	Notes         string `json:"notes"`
}

// Record convierte la transacción a su forma persistida.
func (t *Transaction) Record() TransactionRecord {
	return TransactionRecord{
		TransactionID: t.ID,
		ProductSKU:    t.ProductSKU,
		Quantity:      t.Quantity,
		Type:          string(t.Type),
		Timestamp:     t.Timestamp.Format(time.RFC3339Nano),
		Notes:         t.Notes,
	}
}

// TransactionFromRecord valida y convierte un registro persistido.
func TransactionFromRecord(rec TransactionRecord) (*Transaction, error) {
	if rec.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction_id requerido", domain.ErrMalformedRecord)
	}
	if rec.ProductSKU == "" {
		return nil, fmt.Errorf("%w: product_sku requerido (transacción %s)", domain.ErrMalformedRecord, rec.TransactionID)
	}
	txType, ok := ParseTransactionType(rec.Type)
	if !ok {
		return nil, fmt.Errorf("%w: transaction_type %q (transacción %s)", domain.ErrMalformedRecord, rec.Type, rec.TransactionID)
	}
	ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp %q (transacción %s)", domain.ErrMalformedRecord, rec.Timestamp, rec.TransactionID)
	}
	return &Transaction{
		ID:         rec.TransactionID,
		ProductSKU: rec.ProductSKU,
		Quantity:   rec.Quantity,
		Type:       txType,
		Timestamp:  ts,
		Notes:      rec.Notes,
	}, nil
}
