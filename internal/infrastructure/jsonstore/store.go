// Package jsonstore implementa los puertos de persistencia sobre archivos
// JSON planos: todo el estado vive en memoria y cada mutación reescribe el
// archivo completo (snapshot). Aceptable solo a pequeña escala; procesos
// concurrentes sobre el mismo archivo quedan fuera de alcance
// (last-writer-wins).
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeSnapshot escribe el snapshot completo en path mediante archivo
// temporal + rename, de modo que el archivo nunca queda a medio escribir.
func writeSnapshot(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar snapshot: %w", err)
	}
	return nil
}
