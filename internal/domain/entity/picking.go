package entity

// PickingRow la unidad enriquecida tras el cruce: campos del embarque más los
// del maestro, y la referencia (no propiedad) al artefacto de código
// escaneable. Se muta una sola vez para adjuntar esa referencia; aguas abajo
// se consume de solo lectura.
type PickingRow struct {
	Number   string // "3" para padres, "3-2" para componentes
	Sequence int    // posición 1-based en la secuencia emitida

	ItemCode     string
	Description  string
	Quantity     string // cantidad ya formateada para display
	QuantityNote string
	Unit         string
	ItemType     string
	ShipDate     string
	ClientCode   string
	OrderNumber  string
	Location     string
	Notice       string
	IsComponent  bool

	// CodeImage ruta relativa del PNG del código, compartida entre filas con el
	// mismo código de ítem. Vacía con CodeFailed=true cuando la codificación falló.
	CodeImage  string
	CodeFailed bool
}
