package entity_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado derivado: función pura cantidad → estado.
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusForQuantity_EsFuncionPuraDeLaCantidad(t *testing.T) {
	cases := []struct {
		quantity int
		want     entity.Status
	}{
		{-3, entity.StatusOutOfStock},
		{0, entity.StatusOutOfStock},
		{1, entity.StatusLowStock},
		{4, entity.StatusLowStock},
		{5, entity.StatusInStock},
		{100, entity.StatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.StatusForQuantity(tc.quantity), "cantidad %d", tc.quantity)
	}
}

func TestProduct_StatusSigueAlStock(t *testing.T) {
	p := entity.NewProduct("Teclado", "mecánico", entity.CategoryElectronics, decimal.NewFromFloat(49.90), 10)
	assert.Equal(t, entity.StatusInStock, p.Status())

	p.StockQuantity = 3
	assert.Equal(t, entity.StatusLowStock, p.Status())

	p.StockQuantity = 0
	assert.Equal(t, entity.StatusOutOfStock, p.Status())
}

// ──────────────────────────────────────────────────────────────────────────────
// Enums cerrados
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCategory_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"books", "BOOKS", "Books", "  books  "} {
		c, ok := entity.ParseCategory(s)
		require.True(t, ok, "debe aceptar %q", s)
		assert.Equal(t, entity.CategoryBooks, c)
	}

	_, ok := entity.ParseCategory("juguetería")
	assert.False(t, ok, "una categoría fuera del set cerrado debe rechazarse")
}

func TestParseStatus_AceptaDiscontinuedAunqueNadieLoProduce(t *testing.T) {
	st, ok := entity.ParseStatus("discontinued")
	require.True(t, ok)
	assert.Equal(t, entity.StatusDiscontinued, st)
}

func TestParseTransactionType(t *testing.T) {
	tt, ok := entity.ParseTransactionType("PURCHASE")
	require.True(t, ok)
	assert.Equal(t, entity.TransactionPurchase, tt)

	_, ok = entity.ParseTransactionType("transfer")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión registro ↔ entidad: debe hacer round-trip exacto y rechazar
// registros malformados con ErrMalformedRecord.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRecord_RoundTripExacto(t *testing.T) {
	rec := entity.ProductRecord{
		SKU:           "AB12CD34",
		Name:          "Widget",
		Description:   "un widget cualquiera",
		Category:      "TOYS",
		Price:         decimal.NewFromFloat(9.99),
		StockQuantity: 7,
		CreatedAt:     "2024-03-01T10:00:00Z",
		UpdatedAt:     "2024-03-02T18:30:00.5Z",
	}
	p, err := entity.ProductFromRecord(rec)
	require.NoError(t, err)

	back := p.Record()
	assert.Equal(t, rec.SKU, back.SKU)
	assert.Equal(t, rec.Name, back.Name)
	assert.Equal(t, rec.Description, back.Description)
	assert.Equal(t, rec.Category, back.Category)
	assert.True(t, rec.Price.Equal(back.Price))
	assert.Equal(t, rec.StockQuantity, back.StockQuantity)
	assert.Equal(t, rec.CreatedAt, back.CreatedAt)
	assert.Equal(t, rec.UpdatedAt, back.UpdatedAt)
}

func TestProductFromRecord_Malformados(t *testing.T) {
	base := entity.ProductRecord{
		SKU:       "AB12CD34",
		Name:      "Widget",
		Category:  "TOYS",
		Price:     decimal.NewFromInt(1),
		CreatedAt: "2024-03-01T10:00:00Z",
		UpdatedAt: "2024-03-01T10:00:00Z",
	}

	sinSKU := base
	sinSKU.SKU = ""
	_, err := entity.ProductFromRecord(sinSKU)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)

	categoriaRara := base
	categoriaRara.Category = "GADGETS"
	_, err = entity.ProductFromRecord(categoriaRara)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)

	fechaRota := base
	fechaRota.CreatedAt = "ayer"
	_, err = entity.ProductFromRecord(fechaRota)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestTransactionRecord_RoundTripExacto(t *testing.T) {
	rec := entity.TransactionRecord{
		TransactionID: "11111111-2222-3333-4444-555555555555",
		ProductSKU:    "AB12CD34",
		Quantity:      -8,
		Type:          "sale",
		Timestamp:     "2024-03-01T12:00:00Z",
		Notes:         "venta mostrador",
	}
	tx, err := entity.TransactionFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, rec, tx.Record())
}

func TestTransactionFromRecord_TipoDesconocidoEsMalformado(t *testing.T) {
	rec := entity.TransactionRecord{
		TransactionID: "11111111-2222-3333-4444-555555555555",
		ProductSKU:    "AB12CD34",
		Quantity:      1,
		Type:          "transfer",
		Timestamp:     "2024-03-01T12:00:00Z",
	}
	_, err := entity.TransactionFromRecord(rec)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestNewSKU_CortoYMayusculas(t *testing.T) {
	sku := entity.NewSKU()
	assert.Len(t, sku, 8)
	assert.Equal(t, strings.ToUpper(sku), sku)
}
