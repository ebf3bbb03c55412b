package entity

// RunReport resultado estructurado de una corrida del pipeline. Una corrida
// con filas excluidas o códigos fallidos sigue siendo un éxito parcial
// reportable; los errores fatales se devuelven como error, no aquí.
type RunReport struct {
	RunID         string   `json:"run_id"`
	RowsProcessed int      `json:"rows_processed"`
	RowsExcluded  int      `json:"rows_excluded"`
	Unresolved    []string `json:"unresolved"`       // códigos sin registro en el maestro, en orden de aparición
	CodeFailures  []string `json:"code_failures"`    // códigos cuya imagen escaneable no pudo generarse
	MultiLevelBom []string `json:"multi_level_bom"`  // componentes que a su vez son padres BOM (no expandidos)
	Pages         int      `json:"pages"`
	Backend       string   `json:"backend"` // backend que produjo el PDF
	HTMLPath      string   `json:"html_path"`
	PDFPath       string   `json:"pdf_path"`
}
