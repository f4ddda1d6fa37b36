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

// ProductStore persistencia de productos sobre un archivo JSON (array de
// ProductRecord indentado). Implementa repository.ProductRepository.
type ProductStore struct {
	mu       sync.RWMutex
	path     string
	log      *logger.Logger
	products map[string]*entity.Product
}

// NewProductStore carga el archivo si existe. Un archivo malformado
// descarta lo ya parseado y devuelve el store VACÍO junto con el error:
// el caller decide si continúa con el estado vacío o aborta.
func NewProductStore(path string, log *logger.Logger) (*ProductStore, error) {
	s := &ProductStore{
		path:     path,
		log:      log,
		products: make(map[string]*entity.Product),
	}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *ProductStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", s.path, err)
	}
	var records []entity.ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsear %s: %w", s.path, err)
	}
	for _, rec := range records {
		product, err := entity.ProductFromRecord(rec)
		if err != nil {
			s.products = make(map[string]*entity.Product)
			return fmt.Errorf("cargar %s: %w", s.path, err)
		}
		s.products[product.SKU] = product
	}
	s.log.Debug().Int("productos", len(s.products)).Str("archivo", s.path).Msg("store de productos cargado")
	return nil
}

// snapshot reescribe el archivo completo. Debe llamarse con el lock tomado.
func (s *ProductStore) snapshot() error {
	records := make([]entity.ProductRecord, 0, len(s.products))
	for _, p := range s.products {
		records = append(records, p.Record())
	}
	// Orden estable en disco; el orden de GetAll no está especificado.
	sort.Slice(records, func(i, j int) bool { return records[i].SKU < records[j].SKU })

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar productos: %w", err)
	}
	if err := writeSnapshot(s.path, data); err != nil {
		s.log.Error().Err(err).Str("archivo", s.path).Msg("guardar snapshot de productos")
		return err
	}
	return nil
}

// Save upsert por SKU y reescritura del archivo. El caller es responsable
// de refrescar UpdatedAt antes de llamar.
func (s *ProductStore) Save(product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *product
	s.products[product.SKU] = &clone
	return s.snapshot()
}

// Get devuelve (nil, nil) si el SKU no existe.
func (s *ProductStore) Get(sku string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[sku]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

// GetAll devuelve todos los productos en orden no especificado.
func (s *ProductStore) GetAll() ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// Delete elimina y reescribe; el bool indica si el SKU existía.
func (s *ProductStore) Delete(sku string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[sku]; !ok {
		return false, nil
	}
	delete(s.products, sku)
	if err := s.snapshot(); err != nil {
		return true, err
	}
	return true, nil
}
