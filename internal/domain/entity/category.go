package entity

import "strings"

// Category categoría de producto (set cerrado).
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategoryFood        Category = "FOOD"
	CategoryBooks       Category = "BOOKS"
	CategoryToys        Category = "TOYS"
	CategoryHome        Category = "HOME"
	CategoryOffice      Category = "OFFICE"
	CategoryOther       Category = "OTHER"
)

// Categories devuelve las categorías en orden fijo. Los reportes por
// categoría deben incluir todas, tengan o no productos.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFood,
		CategoryBooks,
		CategoryToys,
		CategoryHome,
		CategoryOffice,
		CategoryOther,
	}
}

// ParseCategory valida un nombre de categoría sin distinguir mayúsculas.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}
