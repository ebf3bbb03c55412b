// Package output concentra la construcción de rutas y las escrituras del
// pipeline, para que el núcleo (cruce, paginado, markup) quede puro y
// testeable sin tocar el filesystem.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	htmlName = "picking.html"
	pdfName  = "picking.pdf"
	qrDir    = "qr"
)

// Workspace ubicación canónica de los artefactos de una corrida.
type Workspace struct {
	root string
}

// NewWorkspace crea (si hace falta) el directorio de salida y el de códigos.
func NewWorkspace(root string) (*Workspace, error) {
	if err := os.MkdirAll(filepath.Join(root, qrDir), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de salida %s: %w", root, err)
	}
	return &Workspace{root: root}, nil
}

// HTMLPath ruta canónica del documento intermedio (se retiene para inspección).
func (w *Workspace) HTMLPath() string { return filepath.Join(w.root, htmlName) }

// PDFPath ruta canónica del artefacto final.
func (w *Workspace) PDFPath() string { return filepath.Join(w.root, pdfName) }

// QRDir directorio de artefactos de código escaneable.
func (w *Workspace) QRDir() string { return filepath.Join(w.root, qrDir) }

// WriteHTML escribe el documento intermedio en su ruta canónica.
func (w *Workspace) WriteHTML(data []byte) error {
	if err := os.WriteFile(w.HTMLPath(), data, 0o644); err != nil {
		return fmt.Errorf("escribir markup %s: %w", w.HTMLPath(), err)
	}
	return nil
}

// PlacePDF renderiza sobre un archivo temporal del mismo directorio y lo
// renombra a la ruta canónica solo si render tuvo éxito. Una corrida fallida
// nunca deja un PDF a medio escribir en la ubicación canónica.
func (w *Workspace) PlacePDF(render func(tmpPath string) error) error {
	tmp := w.PDFPath() + ".tmp"
	if err := render(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, w.PDFPath()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("publicar %s: %w", w.PDFPath(), err)
	}
	return nil
}
