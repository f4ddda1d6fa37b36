package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// TransactionStore persistencia del ledger de transacciones sobre un
// archivo JSON. Implementa repository.TransactionRepository. El store no
// conoce la regla "un cambio de stock ⇒ una transacción"; eso es del
// servicio.
type TransactionStore struct {
	mu           sync.RWMutex
	path         string
	log          *logger.Logger
	transactions map[string]*entity.Transaction
}

// NewTransactionStore carga el archivo si existe. Igual que el store de
// productos: ante archivo malformado devuelve el store vacío y el error.
func NewTransactionStore(path string, log *logger.Logger) (*TransactionStore, error) {
	s := &TransactionStore{
		path:         path,
		log:          log,
		transactions: make(map[string]*entity.Transaction),
	}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *TransactionStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", s.path, err)
	}
	var records []entity.TransactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsear %s: %w", s.path, err)
	}
	for _, rec := range records {
		tx, err := entity.TransactionFromRecord(rec)
		if err != nil {
			s.transactions = make(map[string]*entity.Transaction)
			return fmt.Errorf("cargar %s: %w", s.path, err)
		}
		s.transactions[tx.ID] = tx
	}
	s.log.Debug().Int("transacciones", len(s.transactions)).Str("archivo", s.path).Msg("store de transacciones cargado")
	return nil
}

func (s *TransactionStore) snapshot() error {
	records := make([]entity.TransactionRecord, 0, len(s.transactions))
	for _, tx := range s.transactions {
		records = append(records, tx.Record())
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp < records[j].Timestamp
		}
		return records[i].TransactionID < records[j].TransactionID
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar transacciones: %w", err)
	}
	if err := writeSnapshot(s.path, data); err != nil {
		s.log.Error().Err(err).Str("archivo", s.path).Msg("guardar snapshot de transacciones")
		return err
	}
	return nil
}

// Save upsert por id y reescritura del archivo.
func (s *TransactionStore) Save(tx *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *tx
	s.transactions[tx.ID] = &clone
	return s.snapshot()
}

// Get devuelve (nil, nil) si el id no existe.
func (s *TransactionStore) Get(id string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	clone := *tx
	return &clone, nil
}

// GetAll devuelve todas las transacciones en orden no especificado.
func (s *TransactionStore) GetAll() ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		clone := *tx
		out = append(out, &clone)
	}
	return out, nil
}

// GetByProduct filtra por SKU referenciado.
func (s *TransactionStore) GetByProduct(productSKU string) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.ProductSKU == productSKU {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

// GetByType filtra por tipo de transacción.
func (s *TransactionStore) GetByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.Type == txType {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Delete elimina y reescribe; el bool indica si el id existía.
func (s *TransactionStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return false, nil
	}
	delete(s.transactions, id)
	if err := s.snapshot(); err != nil {
		return true, err
	}
	return true, nil
}
