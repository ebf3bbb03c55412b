package picking

import (
	"fmt"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// Expansion resultado de la expansión BOM.
type Expansion struct {
	Rows []entity.ShipmentRow
	// MultiLevelRefs componentes que a su vez figuran como padres en el BOM.
	// Se emiten sin expandir (la expansión es de un solo nivel) y se reportan
	// en vez de adivinar una política recursiva.
	MultiLevelRefs []string
}

// Expand reemplaza en su posición cada línea de embarque con entrada BOM por
// una línea por componente, con cantidad = cantidad embarcada × cantidad por
// padre. Las líneas sin entrada BOM pasan sin cambios. Con lookup vacío o nil
// esta etapa es la función identidad.
func Expand(rows []entity.ShipmentRow, bom entity.BomLookup) Expansion {
	if len(bom) == 0 {
		return Expansion{Rows: rows}
	}

	out := make([]entity.ShipmentRow, 0, len(rows))
	var multi []string
	for _, row := range rows {
		components := bom[NormalizeCode(row.ItemCode)]
		if len(components) == 0 {
			out = append(out, row)
			continue
		}
		for i, comp := range components {
			if _, isParent := bom[NormalizeCode(comp.ComponentCode)]; isParent {
				multi = append(multi, comp.ComponentCode)
			}
			out = append(out, entity.ShipmentRow{
				ItemCode:       comp.ComponentCode,
				Quantity:       row.Quantity.Mul(comp.QuantityPer),
				ShipDate:       row.ShipDate,
				ClientCode:     row.ClientCode,
				IsComponent:    true,
				ComponentIndex: i + 1,
				ParentCode:     row.ItemCode,
				QuantityNote:   fmt.Sprintf("%s × %s", FormatQuantity(row.Quantity), FormatQuantity(comp.QuantityPer)),
				BomName:        comp.ComponentName,
				BomUnit:        comp.Unit,
				BomType:        comp.ItemType,
			})
		}
	}
	return Expansion{Rows: out, MultiLevelRefs: multi}
}
