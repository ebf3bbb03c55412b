// Package app arma el grafo de dependencias del pipeline, compartido por el
// servidor HTTP y la CLI.
package app

import (
	"github.com/jhoicas/picking-api/internal/application/pipeline"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/infrastructure/excel"
	"github.com/jhoicas/picking-api/internal/infrastructure/markup"
	"github.com/jhoicas/picking-api/internal/infrastructure/output"
	"github.com/jhoicas/picking-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/picking-api/internal/infrastructure/render"
	"github.com/jhoicas/picking-api/pkg/config"
	"github.com/jhoicas/picking-api/pkg/logger"
)

// BuildGenerator construye el caso de uso de generación con los adaptadores
// reales: planillas excelize, markup etree, QR y la cadena de backends de PDF.
func BuildGenerator(cfg *config.Config, log *logger.Logger) *pipeline.GenerateUseCase {
	grid := gridSpec(cfg.Pipeline.Grid)

	return pipeline.NewGenerateUseCase(
		excel.NewLoader(cfg.Pipeline),
		markup.NewRenderer(grid),
		render.NewChain(log, buildBackends(cfg.Pipeline, log)...),
		func(outDir string) (pipeline.Workspace, error) { return output.NewWorkspace(outDir) },
		func(qrDir string) pipeline.CodeGenerator { return qrcode.NewGenerator(qrDir) },
		grid,
		log,
	)
}

func gridSpec(g config.GridConfig) entity.GridSpec {
	return entity.GridSpec{
		SlotsPerPage:    g.SlotsPerPage,
		SlotHeightMM:    g.SlotHeightMM,
		PrinterMarginMM: g.PrinterMarginMM,
		FontLabelPx:     g.FontLabelPx,
		FontHeaderPx:    g.FontHeaderPx,
		CodePosition:    g.CodePosition,
	}
}

// buildBackends instancia la cadena en el orden configurado. Un nombre
// desconocido se ignora con aviso; la disponibilidad real se evalúa por corrida.
func buildBackends(cfg config.PipelineConfig, log *logger.Logger) []render.Backend {
	var out []render.Backend
	for _, name := range cfg.Backends {
		switch name {
		case "wkhtmltopdf":
			out = append(out, render.NewWkhtmltopdf(cfg.Grid.PrinterMarginMM))
		case "chromium":
			out = append(out, render.NewChromium())
		default:
			log.Warn().Str("backend", name).Msg("backend desconocido en la configuración, ignorado")
		}
	}
	return out
}
