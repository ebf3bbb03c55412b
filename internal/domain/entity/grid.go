package entity

// GridSpec especificación inmutable de la grilla visual: se construye desde la
// configuración y se pasa explícitamente al renderizador de plantilla, nunca
// se lee de estado ambiente.
type GridSpec struct {
	SlotsPerPage    int
	SlotHeightMM    float64 // alto de hoja A4 (297mm) / slots por página
	PrinterMarginMM float64 // margen físico no imprimible
	FontLabelPx     int
	FontHeaderPx    int
	CodePosition    string // "right-edge" (por defecto) o "left-edge"
}

// DefaultGridSpec la grilla de 6 slots sobre A4 usada por el documento de picking.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		SlotsPerPage:    6,
		SlotHeightMM:    49.5,
		PrinterMarginMM: 5,
		FontLabelPx:     11,
		FontHeaderPx:    12,
		CodePosition:    "right-edge",
	}
}
