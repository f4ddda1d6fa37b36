package entity

import "strings"

// Status clasificación derivada del stock de un producto. Nunca se
// almacena: se calcula a partir de StockQuantity.
type Status string

const (
	StatusInStock    Status = "IN_STOCK"
	StatusLowStock   Status = "LOW_STOCK"
	StatusOutOfStock Status = "OUT_OF_STOCK"
	// StatusDiscontinued existe en el vocabulario pero ninguna operación
	// actual lo produce; se acepta en filtros y devolverá siempre vacío.
	StatusDiscontinued Status = "DISCONTINUED"
)

// lowStockLimit: por debajo de esta cantidad (exclusiva) un producto con
// stock positivo se considera LOW_STOCK.
const lowStockLimit = 5

// Statuses devuelve los estados reconocidos.
func Statuses() []Status {
	return []Status{StatusInStock, StatusLowStock, StatusOutOfStock, StatusDiscontinued}
}

// ParseStatus valida un nombre de estado sin distinguir mayúsculas.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Statuses() {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// StatusForQuantity función pura cantidad → estado.
func StatusForQuantity(quantity int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity < lowStockLimit:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
