package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/jsonstore"
	apphttp "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la app Fiber completa sobre stores en un tempdir.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	products, err := jsonstore.NewProductStore(filepath.Join(dir, "products.json"), logger.Nop())
	require.NoError(t, err)
	transactions, err := jsonstore.NewTransactionStore(filepath.Join(dir, "transactions.json"), logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Inventory:         inventory.NewUseCase(products, transactions),
		LowStockThreshold: 5,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createWidget(t *testing.T, app *fiber.App, quantity int) dto.ProductResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name":           "Widget",
		"description":    "un widget",
		"category":       "toys",
		"price":          9.99,
		"stock_quantity": quantity,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearYObtener(t *testing.T) {
	app := buildTestApp(t)

	created := createWidget(t, app, 10)
	assert.Len(t, created.SKU, 8)
	assert.Equal(t, "IN_STOCK", created.Status)

	resp := doJSON(t, app, http.MethodGet, "/api/products/"+created.SKU, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 10, got.StockQuantity)
}

func TestProductos_CategoriaInvalidaDevuelve400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name": "X", "category": "cosas", "price": 1, "stock_quantity": 0,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_CATEGORY", out.Code)
}

func TestProductos_NoEncontradoDevuelve404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/NOEXISTE", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/NOEXISTE", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductos_ActualizarMetadatos(t *testing.T) {
	app := buildTestApp(t)
	created := createWidget(t, app, 3)

	resp := doJSON(t, app, http.MethodPut, "/api/products/"+created.SKU, map[string]any{
		"name": "Widget Pro", "price": 19.99,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Widget Pro", got.Name)
	assert.Equal(t, 3, got.StockQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock y ledger vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_RetirarMasDeLoDisponibleDevuelve409(t *testing.T) {
	app := buildTestApp(t)
	created := createWidget(t, app, 3)

	resp := doJSON(t, app, http.MethodPost, "/api/products/"+created.SKU+"/stock/remove", dto.StockRequest{Quantity: 5})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)

	// El stock no cambió
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created.SKU, nil)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, 3, got.StockQuantity)
}

func TestStock_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	created := createWidget(t, app, 10)

	resp := doJSON(t, app, http.MethodPost, "/api/products/"+created.SKU+"/stock/remove", dto.StockRequest{Quantity: 8, Notes: "pedido"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, 2, got.StockQuantity)
	assert.Equal(t, "LOW_STOCK", got.Status)

	resp = doJSON(t, app, http.MethodPost, "/api/products/"+created.SKU+"/stock/adjust", dto.AdjustStockRequest{NewQuantity: 2, Notes: "conteo"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created.SKU+"/transactions", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	txs := decode[dto.TransactionListResponse](t, resp)
	assert.Equal(t, 3, txs.Total, "inicial + sale + adjustment")

	resp = doJSON(t, app, http.MethodGet, "/api/transactions/?type=adjustment", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ajustes := decode[dto.TransactionListResponse](t, resp)
	require.Equal(t, 1, ajustes.Total)
	assert.Zero(t, ajustes.Items[0].Quantity, "ajuste sin diferencia igual se registra")
}

func TestReportes(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app, 10)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/value", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	value := decode[dto.InventoryValueResponse](t, resp)
	assert.False(t, value.Total.IsZero())
	assert.Len(t, value.ByCategory, 8, "todas las categorías presentes")

	resp = doJSON(t, app, http.MethodGet, "/api/reports/transactions", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode[dto.TransactionSummaryResponse](t, resp)
	assert.Equal(t, 1, summary.Purchase)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/low-stock?threshold=20", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	low := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 1, low.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/out-of-stock", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	oos := decode[dto.ProductListResponse](t, resp)
	assert.Zero(t, oos.Total)
}
