package repository

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
// Las transacciones son inmutables: Save solo se usa para crear (el upsert
// por id queda en el contrato del store, nadie lo ejercita con un id ya
// existente).
type TransactionRepository interface {
	Save(tx *entity.Transaction) error
	Get(id string) (*entity.Transaction, error)
	GetAll() ([]*entity.Transaction, error)
	GetByProduct(productSKU string) ([]*entity.Transaction, error)
	GetByType(txType entity.TransactionType) ([]*entity.Transaction, error)
	Delete(id string) (bool, error)
}
