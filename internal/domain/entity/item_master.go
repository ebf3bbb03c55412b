package entity

// ItemMasterRecord registro del maestro de ítems. Datos de referencia de solo
// lectura, cargados una vez por corrida.
type ItemMasterRecord struct {
	ItemCode    string // clave única
	Description string
	Unit        string
	ItemType    string
	OrderNumber string
	Notice      string
	Location    string
}

// MasterIndex índice del maestro por código normalizado para búsqueda O(1)
// durante el cruce.
type MasterIndex map[string]ItemMasterRecord
