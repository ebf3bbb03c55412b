package entity

import "github.com/shopspring/decimal"

// BomEntry una línea de la lista de materiales: un componente de un ítem padre
// con su cantidad por unidad de padre.
type BomEntry struct {
	ParentCode    string
	ComponentCode string
	ComponentName string
	QuantityPer   decimal.Decimal
	Unit          string
	ItemType      string
	Sequence      string // orden dentro del padre; numérico cuando la planilla lo trae
}

// BomLookup componentes por código de padre normalizado, ya ordenados por
// secuencia. Un lookup vacío o nil convierte la expansión en identidad.
type BomLookup map[string][]BomEntry
