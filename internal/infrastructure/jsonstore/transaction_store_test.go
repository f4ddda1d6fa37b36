package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func newTransactionStore(t *testing.T) (*jsonstore.TransactionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.json")
	s, err := jsonstore.NewTransactionStore(path, logger.Nop())
	require.NoError(t, err)
	return s, path
}

func TestTransactionStore_SaveGetFiltros(t *testing.T) {
	s, _ := newTransactionStore(t)

	compra := entity.NewTransaction("AAAA1111", 10, entity.TransactionPurchase, "stock inicial")
	venta := entity.NewTransaction("AAAA1111", -4, entity.TransactionSale, "")
	ajuste := entity.NewTransaction("BBBB2222", -2, entity.TransactionAdjustment, "merma")
	for _, tx := range []*entity.Transaction{compra, venta, ajuste} {
		require.NoError(t, s.Save(tx))
	}

	got, err := s.Get(venta.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -4, got.Quantity)

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	porProducto, err := s.GetByProduct("AAAA1111")
	require.NoError(t, err)
	assert.Len(t, porProducto, 2)

	porTipo, err := s.GetByType(entity.TransactionAdjustment)
	require.NoError(t, err)
	require.Len(t, porTipo, 1)
	assert.Equal(t, ajuste.ID, porTipo[0].ID)
}

func TestTransactionStore_DeletePorID(t *testing.T) {
	s, _ := newTransactionStore(t)
	tx := entity.NewTransaction("AAAA1111", 1, entity.TransactionPurchase, "")
	require.NoError(t, s.Save(tx))

	found, err := s.Delete(tx.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := s.Get(tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	found, err = s.Delete(tx.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTransactionStore_ReabrirConservaElLedger(t *testing.T) {
	s, path := newTransactionStore(t)
	tx := entity.NewTransaction("AAAA1111", 7, entity.TransactionPurchase, "compra proveedor")
	require.NoError(t, s.Save(tx))

	reopened, err := jsonstore.NewTransactionStore(path, logger.Nop())
	require.NoError(t, err)
	got, err := reopened.Get(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, entity.TransactionPurchase, got.Type)
	assert.Equal(t, "compra proveedor", got.Notes)
}

func TestTransactionStore_ArchivoMalformado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte("[[["), 0o644))

	s, err := jsonstore.NewTransactionStore(path, logger.Nop())
	require.Error(t, err)
	require.NotNil(t, s)

	all, getErr := s.GetAll()
	require.NoError(t, getErr)
	assert.Empty(t, all)
}
