package dto

import "github.com/jhoicas/picking-api/internal/domain/entity"

// RenderRequest petición de generación del documento de picking. Las rutas
// son locales al servidor; out_dir vacío usa el directorio configurado.
type RenderRequest struct {
	ShipmentPath string `json:"shipment_path"`
	MasterPath   string `json:"master_path"`
	BomPath      string `json:"bom_path,omitempty"`
	OutDir       string `json:"out_dir,omitempty"`
}

// RenderResponse reporte estructurado de una corrida exitosa (incluido el
// éxito parcial con filas excluidas).
type RenderResponse struct {
	RunID         string   `json:"run_id"`
	RowsProcessed int      `json:"rows_processed"`
	RowsExcluded  int      `json:"rows_excluded"`
	Unresolved    []string `json:"unresolved,omitempty"`
	CodeFailures  []string `json:"code_failures,omitempty"`
	MultiLevelBom []string `json:"multi_level_bom,omitempty"`
	Pages         int      `json:"pages"`
	Backend       string   `json:"backend"`
	HTML          string   `json:"html"`
	PDF           string   `json:"pdf"`
}

// RenderResponseFrom mapea el reporte de dominio a la respuesta de la API.
func RenderResponseFrom(r *entity.RunReport) RenderResponse {
	return RenderResponse{
		RunID:         r.RunID,
		RowsProcessed: r.RowsProcessed,
		RowsExcluded:  r.RowsExcluded,
		Unresolved:    r.Unresolved,
		CodeFailures:  r.CodeFailures,
		MultiLevelBom: r.MultiLevelBom,
		Pages:         r.Pages,
		Backend:       r.Backend,
		HTML:          r.HTMLPath,
		PDF:           r.PDFPath,
	}
}

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
