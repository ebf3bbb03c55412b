// Package excel implementa la carga de planillas de entrada: plan de embarque
// y maestro de ítems en xlsx, y lista de materiales en TSV. El cargador valida
// el esquema declarado antes de procesar fila alguna y no retiene handles de
// archivo más allá de la llamada.
package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/picking"
	"github.com/jhoicas/picking-api/pkg/config"
)

// Las planillas reales traen filas de preámbulo sobre el encabezado; se
// prueban las primeras filas hasta encontrar la que resuelve el esquema.
const headerProbeRows = 5

type columnType int

const (
	typeText columnType = iota
	typeDecimal
)

type column struct {
	field    string // nombre lógico del campo
	typ      columnType
	required bool
}

func shipmentSchema() []column {
	return []column{
		{field: "item_code", typ: typeText, required: true},
		{field: "quantity", typ: typeDecimal, required: true},
		{field: "ship_date", typ: typeText},
		{field: "client_code", typ: typeText},
		{field: "location", typ: typeText},
	}
}

func masterSchema() []column {
	return []column{
		{field: "item_code", typ: typeText, required: true},
		{field: "description", typ: typeText, required: true},
		{field: "unit", typ: typeText, required: true},
		{field: "item_type", typ: typeText},
		{field: "order_number", typ: typeText},
		{field: "notice", typ: typeText},
		{field: "location", typ: typeText},
	}
}

// Loader cargador de planillas dirigido por el mapeo de columnas de la
// configuración. Implementa pipeline.TableLoader.
type Loader struct {
	cfg config.PipelineConfig
}

// NewLoader construye el cargador.
func NewLoader(cfg config.PipelineConfig) *Loader {
	return &Loader{cfg: cfg}
}

// LoadShipment lee el plan de embarque. Filas sin código de ítem se descartan
// (colas vacías de la planilla); una cantidad no numérica aborta con ParseError.
func (l *Loader) LoadShipment(path string) ([]entity.ShipmentRow, error) {
	table, err := l.loadTable(path, shipmentSchema())
	if err != nil {
		return nil, err
	}

	rows := make([]entity.ShipmentRow, 0, len(table.records))
	for _, rec := range table.records {
		// Las celdas decimales ya fueron validadas por el esquema.
		qty, _ := picking.ParseQuantity(rec["quantity"])
		rows = append(rows, entity.ShipmentRow{
			ItemCode:   rec["item_code"],
			Quantity:   qty,
			ShipDate:   rec["ship_date"],
			ClientCode: rec["client_code"],
			Location:   rec["location"],
		})
	}
	return rows, nil
}

// LoadMaster lee el maestro de ítems y lo indexa por código normalizado.
// Ante códigos duplicados gana el último registro.
func (l *Loader) LoadMaster(path string) (entity.MasterIndex, error) {
	table, err := l.loadTable(path, masterSchema())
	if err != nil {
		return nil, err
	}

	index := make(entity.MasterIndex, len(table.records))
	for _, rec := range table.records {
		key := picking.NormalizeCode(rec["item_code"])
		if key == "" {
			continue
		}
		index[key] = entity.ItemMasterRecord{
			ItemCode:    rec["item_code"],
			Description: rec["description"],
			Unit:        rec["unit"],
			ItemType:    rec["item_type"],
			OrderNumber: rec["order_number"],
			Notice:      rec["notice"],
			Location:    rec["location"],
		}
	}
	return index, nil
}

// table resultado intermedio de una planilla: registros por campo lógico más
// el nombre físico que resolvió cada campo (para reportar errores).
type table struct {
	file     string
	records  []map[string]string
	physical map[string]string
}

func (l *Loader) loadTable(path string, schema []column) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q de %s: %w", sheet, path, err)
	}

	headerIdx, colIdx, physical := l.locateHeader(rows, schema)

	var missing []string
	for _, c := range schema {
		if !c.required {
			continue
		}
		if _, ok := colIdx[c.field]; !ok {
			missing = append(missing, l.fieldCandidates(c.field)[0])
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{File: filepath.Base(path), Missing: missing}
	}

	// La primera columna requerida identifica la fila: sin ella la fila es
	// relleno de la planilla y se descarta.
	keyField := schema[0].field

	t := &table{file: filepath.Base(path), physical: physical}
	for r := headerIdx + 1; r < len(rows); r++ {
		if emptyRow(rows[r]) {
			continue
		}
		rec := make(map[string]string, len(schema))
		for _, c := range schema {
			idx, ok := colIdx[c.field]
			if !ok {
				rec[c.field] = ""
				continue
			}
			rec[c.field] = cellAt(rows[r], idx)
		}
		if rec[keyField] == "" {
			continue
		}
		for _, c := range schema {
			if c.typ != typeDecimal {
				continue
			}
			if _, ok := picking.ParseQuantity(rec[c.field]); !ok {
				return nil, &domain.ParseError{
					File:   t.file,
					Row:    r + 1, // fila de la hoja, 1-based
					Column: physical[c.field],
					Value:  rec[c.field],
				}
			}
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

// locateHeader prueba las primeras filas y se queda con la que resuelve más
// campos requeridos del esquema.
func (l *Loader) locateHeader(rows [][]string, schema []column) (int, map[string]int, map[string]string) {
	bestIdx := 0
	var bestCols map[string]int
	var bestPhys map[string]string
	bestScore := -1

	limit := min(headerProbeRows, len(rows))
	for r := 0; r < limit; r++ {
		byName := make(map[string]int, len(rows[r]))
		for i, cell := range rows[r] {
			if name := picking.CleanColumn(cell); name != "" {
				if _, dup := byName[name]; !dup {
					byName[name] = i
				}
			}
		}

		cols := make(map[string]int, len(schema))
		phys := make(map[string]string, len(schema))
		score := 0
		for _, c := range schema {
			for _, cand := range l.fieldCandidates(c.field) {
				if i, ok := byName[cand]; ok {
					cols[c.field] = i
					phys[c.field] = cand
					if c.required {
						score++
					}
					break
				}
			}
		}
		if score > bestScore {
			bestIdx, bestCols, bestPhys, bestScore = r, cols, phys, score
		}
	}
	if bestCols == nil {
		bestCols = map[string]int{}
		bestPhys = map[string]string{}
	}
	return bestIdx, bestCols, bestPhys
}

// fieldCandidates columnas físicas candidatas de un campo, normalizadas. Para
// item_code la clave de cruce configurada va primero.
func (l *Loader) fieldCandidates(field string) []string {
	var raw []string
	if field == "item_code" && l.cfg.JoinKey != "" {
		raw = append(raw, l.cfg.JoinKey)
	}
	raw = append(raw, l.cfg.Mapping[field]...)
	if len(raw) == 0 {
		raw = []string{field}
	}

	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if c := picking.CleanColumn(r); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
