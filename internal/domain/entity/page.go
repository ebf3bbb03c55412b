package entity

// Page una página física del documento: hasta SlotsPerPage filas en el orden
// original del embarque. Toda página salvo posiblemente la última va llena;
// los slots faltantes de la última se imprimen en blanco.
type Page struct {
	Number int // 1-based
	Slots  []PickingRow
}
