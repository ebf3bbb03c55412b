package picking

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// JoinResult secuencia enriquecida más la lista ordenada de referencias no
// resueltas. Ambas conservan el orden de aparición.
type JoinResult struct {
	Rows       []entity.PickingRow
	Unresolved []string
}

// Join cruza la secuencia de embarque (posiblemente expandida) contra el
// maestro. El cruce es exacto y sensible a mayúsculas sobre el código
// normalizado. Las filas sin registro en el maestro se excluyen de la
// secuencia y se registran aparte: una referencia mala no aborta la corrida y
// nunca se emite una fila con datos parciales.
func Join(rows []entity.ShipmentRow, master entity.MasterIndex) JoinResult {
	var res JoinResult
	line := 0 // línea lógica del plan de embarque (los componentes comparten la de su padre)
	seq := 0
	for _, row := range rows {
		if !row.IsComponent || row.ComponentIndex == 1 {
			line++
		}

		rec, ok := master[NormalizeCode(row.ItemCode)]
		if !ok {
			res.Unresolved = append(res.Unresolved, row.ItemCode)
			continue
		}

		seq++
		pick := entity.PickingRow{
			Number:       strconv.Itoa(line),
			Sequence:     seq,
			ItemCode:     row.ItemCode,
			Description:  rec.Description,
			Quantity:     FormatQuantity(row.Quantity),
			QuantityNote: row.QuantityNote,
			Unit:         rec.Unit,
			ItemType:     rec.ItemType,
			ShipDate:     row.ShipDate,
			ClientCode:   row.ClientCode,
			OrderNumber:  rec.OrderNumber,
			Location:     Coalesce(rec.Location, row.Location),
			Notice:       rec.Notice,
			IsComponent:  row.IsComponent,
		}

		if row.IsComponent {
			pick.Number = fmt.Sprintf("%d-%d", line, row.ComponentIndex)
			// El registro del padre respalda los campos que ni el BOM ni el
			// maestro del componente traen.
			parentRec := master[NormalizeCode(row.ParentCode)]
			pick.Description = Coalesce(row.BomName, rec.Description, row.ItemCode)
			pick.Unit = Coalesce(row.BomUnit, rec.Unit)
			pick.ItemType = Coalesce(row.BomType, rec.ItemType, parentRec.ItemType)
			pick.OrderNumber = Coalesce(rec.OrderNumber, parentRec.OrderNumber)
			pick.Notice = Coalesce(rec.Notice, parentRec.Notice)
			pick.Location = rec.Location
		}

		res.Rows = append(res.Rows, pick)
	}
	return res
}
