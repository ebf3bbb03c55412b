// Package qrcode genera los artefactos de código escaneable: un PNG por código
// de ítem distinto, con nombre de archivo determinista derivado del código.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/picking"
)

// Lado del PNG en píxeles. Con corrección de errores M alcanza para los
// códigos de ítem habituales y escanea bien a 49.5mm de alto de slot.
const imageSizePx = 132

// Generator genera y cachea artefactos QR dentro de una corrida: las filas
// que comparten código de ítem comparten el artefacto. Regenerar el mismo
// código con la misma configuración produce bytes idénticos. No apto para uso
// concurrente: cada corrida construye su propia instancia.
type Generator struct {
	dir   string            // directorio absoluto de artefactos
	rel   string            // prefijo relativo usado en el markup (ej. "qr")
	cache map[string]string // código normalizado -> ruta relativa
}

// NewGenerator construye un generador que escribe en dir.
func NewGenerator(dir string) *Generator {
	return &Generator{
		dir:   dir,
		rel:   filepath.Base(dir),
		cache: make(map[string]string),
	}
}

// Generate codifica el código como QR y devuelve la ruta relativa del PNG,
// reutilizando el artefacto si ya se generó en esta corrida. Un código no
// codificable devuelve EncodingError: la fila sigue su curso sin imagen.
func (g *Generator) Generate(code string) (string, error) {
	key := picking.NormalizeCode(code)
	if key == "" {
		return "", &domain.EncodingError{Code: code, Reason: errors.New("código vacío")}
	}
	if path, ok := g.cache[key]; ok {
		return path, nil
	}

	bc, err := qr.Encode(key, qr.M, qr.Auto)
	if err != nil {
		return "", &domain.EncodingError{Code: code, Reason: err}
	}
	scaled, err := barcode.Scale(bc, imageSizePx, imageSizePx)
	if err != nil {
		return "", &domain.EncodingError{Code: code, Reason: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("codificar PNG para %q: %w", code, err)
	}

	name := artifactName(key)
	if err := os.WriteFile(filepath.Join(g.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("escribir artefacto %s: %w", name, err)
	}

	rel := g.rel + "/" + name
	g.cache[key] = rel
	return rel, nil
}

// artifactName nombre determinista e inyectivo del artefacto. El slug legible
// solo no es inyectivo ("A.1" y "A,1" colapsan en "A_1") y dos códigos
// distintos jamás deben compartir artefacto: el hash del código normalizado
// los distingue.
func artifactName(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))
	return fmt.Sprintf("%s-%08x.png", slug(key), h.Sum32())
}

var slugRe = regexp.MustCompile(`[^0-9A-Za-z_-]+`)

// slug parte legible y portable del nombre de archivo de un código.
func slug(code string) string {
	s := norm.NFKC.String(strings.TrimSpace(code))
	s = strings.ReplaceAll(s, "/", "-")
	s = slugRe.ReplaceAllString(s, "_")
	if s == "" {
		return "qr"
	}
	return s
}
