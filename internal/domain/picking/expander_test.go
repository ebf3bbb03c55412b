package picking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/picking"
)

func shipRow(code string, qty int64) entity.ShipmentRow {
	return entity.ShipmentRow{
		ItemCode:   code,
		Quantity:   decimal.NewFromInt(qty),
		ShipDate:   "2026-08-01",
		ClientCode: "CUST",
	}
}

// TestExpand_SinBomEsIdentidad sin lista de materiales la etapa no toca nada:
// la salida es exactamente la entrada.
func TestExpand_SinBomEsIdentidad(t *testing.T) {
	rows := []entity.ShipmentRow{shipRow("A", 1), shipRow("B", 2)}

	assert.Equal(t, rows, picking.Expand(rows, nil).Rows)
	assert.Equal(t, rows, picking.Expand(rows, entity.BomLookup{}).Rows)
}

// TestExpand_ReemplazaEnPosicion la línea con entrada BOM se reemplaza por sus
// componentes en la misma posición; las demás pasan sin cambios.
func TestExpand_ReemplazaEnPosicion(t *testing.T) {
	bom := entity.BomLookup{
		"B": {
			{ParentCode: "B", ComponentCode: "B-1", ComponentName: "Tornillo", QuantityPer: decimal.NewFromInt(3), Unit: "PC"},
			{ParentCode: "B", ComponentCode: "B-2", QuantityPer: decimal.RequireFromString("0.5")},
		},
	}
	rows := []entity.ShipmentRow{shipRow("A", 1), shipRow("B", 2), shipRow("C", 4)}

	exp := picking.Expand(rows, bom)

	require.Len(t, exp.Rows, 4)
	assert.Equal(t, "A", exp.Rows[0].ItemCode)
	assert.Equal(t, "C", exp.Rows[3].ItemCode)

	first, second := exp.Rows[1], exp.Rows[2]
	assert.Equal(t, "B-1", first.ItemCode)
	assert.True(t, first.IsComponent)
	assert.Equal(t, 1, first.ComponentIndex)
	assert.Equal(t, "B", first.ParentCode)
	assert.Equal(t, "6", picking.FormatQuantity(first.Quantity), "2 embarcadas × 3 por padre")
	assert.Equal(t, "2 × 3", first.QuantityNote)
	assert.Equal(t, "Tornillo", first.BomName)
	assert.Equal(t, "PC", first.BomUnit)
	assert.Equal(t, "CUST", first.ClientCode, "hereda los atributos de pedido del padre")

	assert.Equal(t, "B-2", second.ItemCode)
	assert.Equal(t, 2, second.ComponentIndex)
	assert.Equal(t, "1", picking.FormatQuantity(second.Quantity), "2 × 0.5")

	assert.Empty(t, exp.MultiLevelRefs)
}

// TestExpand_UnSoloNivel un componente que a su vez es padre BOM no se expande
// recursivamente: se emite tal cual y se reporta.
func TestExpand_UnSoloNivel(t *testing.T) {
	bom := entity.BomLookup{
		"A":   {{ParentCode: "A", ComponentCode: "SUB", QuantityPer: decimal.NewFromInt(2)}},
		"SUB": {{ParentCode: "SUB", ComponentCode: "HOJA", QuantityPer: decimal.NewFromInt(9)}},
	}

	exp := picking.Expand([]entity.ShipmentRow{shipRow("A", 1)}, bom)

	require.Len(t, exp.Rows, 1)
	assert.Equal(t, "SUB", exp.Rows[0].ItemCode)
	assert.Equal(t, []string{"SUB"}, exp.MultiLevelRefs)
}
