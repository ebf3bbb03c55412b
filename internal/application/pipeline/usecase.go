// Package pipeline orquesta la generación del documento de picking: carga →
// expansión BOM → cruce → códigos escaneables → paginado → markup → PDF. El
// pipeline corre síncrono de punta a punta, una vez por petición.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/picking"
	"github.com/jhoicas/picking-api/pkg/logger"
)

// GenerateInput rutas de entrada y salida de una corrida. BomPath vacío
// convierte la expansión en identidad.
type GenerateInput struct {
	ShipmentPath string
	MasterPath   string
	BomPath      string
	OutDir       string
}

// GenerateUseCase caso de uso de generación. Los colaboradores inyectados son
// sin estado; el estado mutable de cada corrida (índice del maestro, caché de
// códigos, workspace) se construye dentro de Generate.
type GenerateUseCase struct {
	loader     TableLoader
	pages      PageRenderer
	documents  DocumentRenderer
	workspaces WorkspaceFactory
	codes      CodeGeneratorFactory
	grid       entity.GridSpec
	log        *logger.Logger
}

// NewGenerateUseCase construye el caso de uso.
func NewGenerateUseCase(
	loader TableLoader,
	pages PageRenderer,
	documents DocumentRenderer,
	workspaces WorkspaceFactory,
	codes CodeGeneratorFactory,
	grid entity.GridSpec,
	log *logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		loader:     loader,
		pages:      pages,
		documents:  documents,
		workspaces: workspaces,
		codes:      codes,
		grid:       grid,
		log:        log,
	}
}

// Generate corre el pipeline completo y devuelve el reporte. Los errores de
// fila (referencia no resuelta, código no codificable) se acumulan en el
// reporte; los de archivo o renderizado abortan sin PDF en la ruta canónica.
func (uc *GenerateUseCase) Generate(ctx context.Context, in GenerateInput) (*entity.RunReport, error) {
	report := &entity.RunReport{RunID: uuid.NewString()}
	log := uc.log.With().Str("run_id", report.RunID).Logger()

	shipment, err := uc.loader.LoadShipment(in.ShipmentPath)
	if err != nil {
		return nil, err
	}
	master, err := uc.loader.LoadMaster(in.MasterPath)
	if err != nil {
		return nil, err
	}
	var bom entity.BomLookup
	if in.BomPath != "" {
		if bom, err = uc.loader.LoadBom(in.BomPath); err != nil {
			return nil, err
		}
	}

	expansion := picking.Expand(shipment, bom)
	report.MultiLevelBom = expansion.MultiLevelRefs

	joined := picking.Join(expansion.Rows, master)
	report.Unresolved = joined.Unresolved
	report.RowsExcluded = len(joined.Unresolved)
	report.RowsProcessed = len(joined.Rows)
	if report.RowsExcluded > 0 {
		log.Warn().Strs("codes", report.Unresolved).Msg("referencias sin registro en el maestro, filas excluidas")
	}

	ws, err := uc.workspaces(in.OutDir)
	if err != nil {
		return nil, err
	}

	generator := uc.codes(ws.QRDir())
	rows := joined.Rows
	failed := map[string]bool{}
	for i := range rows {
		path, err := generator.Generate(rows[i].ItemCode)
		if err != nil {
			var encErr *domain.EncodingError
			if !errors.As(err, &encErr) {
				return nil, err
			}
			rows[i].CodeFailed = true
			key := picking.NormalizeCode(rows[i].ItemCode)
			if !failed[key] {
				failed[key] = true
				report.CodeFailures = append(report.CodeFailures, rows[i].ItemCode)
			}
			log.Warn().Err(err).Str("item_code", rows[i].ItemCode).Msg("fila emitida sin imagen de código")
			continue
		}
		rows[i].CodeImage = path
	}

	pages := picking.Paginate(rows, uc.grid.SlotsPerPage)
	report.Pages = len(pages)

	html, err := uc.pages.Render(pages)
	if err != nil {
		return nil, err
	}
	if err := ws.WriteHTML(html); err != nil {
		return nil, err
	}
	report.HTMLPath = ws.HTMLPath()

	err = ws.PlacePDF(func(tmp string) error {
		backend, renderErr := uc.documents.Render(ctx, ws.HTMLPath(), tmp)
		report.Backend = backend
		return renderErr
	})
	if err != nil {
		return nil, err
	}
	report.PDFPath = ws.PDFPath()

	log.Info().
		Int("rows", report.RowsProcessed).
		Int("excluded", report.RowsExcluded).
		Int("pages", report.Pages).
		Str("backend", report.Backend).
		Msg("documento de picking generado")
	return report, nil
}
