package entity

import "github.com/shopspring/decimal"

// ShipmentRow una línea del plan de embarque. Inmutable una vez leída; la
// expansión por BOM puede reemplazarla por varias líneas de componentes
// insertadas en su misma posición.
type ShipmentRow struct {
	ItemCode   string
	Quantity   decimal.Decimal
	ShipDate   string
	ClientCode string
	Location   string

	// Campos poblados por la expansión BOM en líneas de componente.
	IsComponent    bool
	ComponentIndex int    // 1-based dentro del padre
	ParentCode     string // código del ítem padre reemplazado
	QuantityNote   string // ej. "2 × 3" cuando la cantidad fue multiplicada
	// Atributos del propio BOM, usados como respaldo si el maestro no los trae.
	BomName string
	BomUnit string
	BomType string
}
