package picking

import "github.com/jhoicas/picking-api/internal/domain/entity"

// Paginate parte la secuencia en páginas de hasta perPage filas, llenadas en
// orden original sin reordenar ni balancear: la fila i (0-based) cae en la
// página i/perPage, slot i%perPage. Entrada vacía produce cero páginas.
func Paginate(rows []entity.PickingRow, perPage int) []entity.Page {
	if perPage <= 0 || len(rows) == 0 {
		return nil
	}
	pages := make([]entity.Page, 0, (len(rows)+perPage-1)/perPage)
	for start := 0; start < len(rows); start += perPage {
		end := min(start+perPage, len(rows))
		pages = append(pages, entity.Page{Number: len(pages) + 1, Slots: rows[start:end]})
	}
	return pages
}
