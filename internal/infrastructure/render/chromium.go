package render

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Chromium backend de respaldo: imprime el HTML a PDF con un Chrome/Chromium
// local en modo headless, vía el protocolo DevTools.
type Chromium struct{}

// NewChromium construye el backend.
func NewChromium() *Chromium {
	return &Chromium{}
}

func (c *Chromium) Name() string { return "chromium" }

// Available el navegador debe existir ya en el equipo; este backend nunca
// descarga binarios.
func (c *Chromium) Available() bool {
	_, has := launcher.LookPath()
	return has
}

func (c *Chromium) Render(ctx context.Context, htmlPath, pdfPath string) error {
	bin, has := launcher.LookPath()
	if !has {
		return fmt.Errorf("chromium: navegador no encontrado")
	}

	controlURL, err := launcher.New().Bin(bin).Headless(true).Launch()
	if err != nil {
		return fmt.Errorf("chromium: lanzar navegador: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("chromium: conectar: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: fileURL(htmlPath)})
	if err != nil {
		return fmt.Errorf("chromium: abrir página: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("chromium: cargar documento: %w", err)
	}

	stream, err := page.PDF(printOptions())
	if err != nil {
		return fmt.Errorf("chromium: imprimir a PDF: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("chromium: leer stream de PDF: %w", err)
	}
	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		return fmt.Errorf("chromium: escribir %s: %w", pdfPath, err)
	}
	return nil
}

// printOptions el margen físico vive en la regla @page del markup y Chromium
// la respeta, así que los márgenes del protocolo van en cero para no sumarse
// al de CSS. wkhtmltopdf ignora el margen de @page y lo recibe por flags:
// ambos backends terminan con el mismo margen efectivo.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        f64(a4WidthInches),
		PaperHeight:       f64(a4HeightInches),
		MarginTop:         f64(0),
		MarginBottom:      f64(0),
		MarginLeft:        f64(0),
		MarginRight:       f64(0),
	}
}

func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

func f64(v float64) *float64 { return &v }
