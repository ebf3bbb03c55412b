// Package picking contiene los servicios de dominio del pipeline: expansión
// BOM, cruce contra el maestro, paginación y aritmética de cantidades. Todo es
// puro: sin filesystem, sin estado compartido entre corridas.
package picking

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var spaceRe = regexp.MustCompile(`\s+`)

// CleanColumn normaliza un nombre de columna: NFKC (pliega ancho completo y
// compatibilidad) y elimina todo espacio en blanco. Las planillas reales traen
// encabezados con espacios ideográficos y anchos mixtos.
func CleanColumn(name string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(norm.NFKC.String(name)), "")
}

// NormalizeCode normaliza un código de ítem para el cruce. Misma regla que las
// columnas: NFKC sin espacios. Nunca altera mayúsculas/minúsculas, así el
// cruce sigue siendo exacto y sensible a mayúsculas.
func NormalizeCode(code string) string {
	return CleanColumn(code)
}

// Coalesce devuelve el primer valor no vacío.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
