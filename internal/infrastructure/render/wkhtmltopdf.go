package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Wkhtmltopdf backend primario: binario externo wkhtmltopdf en PATH.
type Wkhtmltopdf struct {
	marginMM float64
}

// NewWkhtmltopdf construye el backend con el margen físico de la grilla.
func NewWkhtmltopdf(marginMM float64) *Wkhtmltopdf {
	return &Wkhtmltopdf{marginMM: marginMM}
}

func (w *Wkhtmltopdf) Name() string { return "wkhtmltopdf" }

func (w *Wkhtmltopdf) Available() bool {
	_, err := exec.LookPath("wkhtmltopdf")
	return err == nil
}

func (w *Wkhtmltopdf) Render(ctx context.Context, htmlPath, pdfPath string) error {
	margin := fmt.Sprintf("%.0fmm", w.marginMM)
	cmd := exec.CommandContext(ctx, "wkhtmltopdf",
		"--enable-local-file-access",
		"--page-size", "A4",
		"--margin-top", margin,
		"--margin-bottom", margin,
		"--margin-left", margin,
		"--margin-right", margin,
		htmlPath, pdfPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wkhtmltopdf: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
