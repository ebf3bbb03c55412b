package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/picking"
)

// LoadBom lee la lista de materiales (TSV) y construye el lookup por código de
// padre normalizado, con los componentes ordenados por su columna de
// secuencia. Filas sin padre o sin componente se descartan.
func (l *Loader) LoadBom(path string) (entity.BomLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir BOM %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer BOM %s: %w", path, err)
	}

	file := filepath.Base(path)
	cols := l.cfg.Bom
	required := []string{cols.ParentCode, cols.ComponentCode, cols.Quantity}
	if len(rows) == 0 {
		return nil, &domain.SchemaError{File: file, Missing: required}
	}

	byName := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		if name := picking.CleanColumn(cell); name != "" {
			byName[name] = i
		}
	}
	find := func(name string) (int, bool) {
		i, ok := byName[picking.CleanColumn(name)]
		return i, ok
	}

	var missing []string
	for _, name := range required {
		if _, ok := find(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{File: file, Missing: missing}
	}

	parentIdx, _ := find(cols.ParentCode)
	compIdx, _ := find(cols.ComponentCode)
	qtyIdx, _ := find(cols.Quantity)
	nameIdx, hasName := find(cols.ComponentName)
	seqIdx, hasSeq := find(cols.Sequence)
	unitIdx, hasUnit := find(cols.Unit)
	typeIdx, hasType := find(cols.ComponentType)

	optional := func(cells []string, idx int, has bool) string {
		if !has {
			return ""
		}
		return cellAt(cells, idx)
	}

	lookup := entity.BomLookup{}
	for i, cells := range rows[1:] {
		parent := cellAt(cells, parentIdx)
		component := cellAt(cells, compIdx)
		if parent == "" || component == "" {
			continue
		}
		rawQty := cellAt(cells, qtyIdx)
		qty, ok := picking.ParseQuantity(rawQty)
		if !ok {
			return nil, &domain.ParseError{File: file, Row: i + 2, Column: cols.Quantity, Value: rawQty}
		}
		key := picking.NormalizeCode(parent)
		lookup[key] = append(lookup[key], entity.BomEntry{
			ParentCode:    parent,
			ComponentCode: component,
			ComponentName: optional(cells, nameIdx, hasName),
			QuantityPer:   qty,
			Unit:          optional(cells, unitIdx, hasUnit),
			ItemType:      optional(cells, typeIdx, hasType),
			Sequence:      optional(cells, seqIdx, hasSeq),
		})
	}

	for key := range lookup {
		sortBySequence(lookup[key])
	}
	return lookup, nil
}

// sortBySequence secuencias numéricas primero en orden natural, luego las no
// numéricas en orden lexicográfico. Orden estable: empates conservan el orden
// del archivo.
func sortBySequence(entries []entity.BomEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ni, errI := strconv.Atoi(entries[i].Sequence)
		nj, errJ := strconv.Atoi(entries[j].Sequence)
		iNum, jNum := errI == nil, errJ == nil
		switch {
		case iNum && jNum:
			return ni < nj
		case iNum != jNum:
			return iNum
		default:
			return entries[i].Sequence < entries[j].Sequence
		}
	})
}
