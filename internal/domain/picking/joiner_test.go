package picking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/picking"
)

func testMaster() entity.MasterIndex {
	return entity.MasterIndex{
		"A": {ItemCode: "A", Description: "Producto A", Unit: "PC", ItemType: "terminado", OrderNumber: "ORD-001", Notice: "frágil", Location: "LOC-A"},
		"B": {ItemCode: "B", Description: "Producto B", Unit: "KG", Location: "LOC-B"},
	}
}

// TestJoin_EnriqueceDesdeElMaestro los campos enriquecidos de la fila deben
// ser exactamente los del registro del maestro.
func TestJoin_EnriqueceDesdeElMaestro(t *testing.T) {
	rows := []entity.ShipmentRow{{ItemCode: "A", Quantity: decimal.NewFromInt(3), ShipDate: "2026-08-01", ClientCode: "CUST"}}

	res := picking.Join(rows, testMaster())

	require.Len(t, res.Rows, 1)
	require.Empty(t, res.Unresolved)
	got := res.Rows[0]
	assert.Equal(t, "1", got.Number)
	assert.Equal(t, 1, got.Sequence)
	assert.Equal(t, "Producto A", got.Description)
	assert.Equal(t, "PC", got.Unit)
	assert.Equal(t, "terminado", got.ItemType)
	assert.Equal(t, "ORD-001", got.OrderNumber)
	assert.Equal(t, "frágil", got.Notice)
	assert.Equal(t, "LOC-A", got.Location)
	assert.Equal(t, "3", got.Quantity)
}

// TestJoin_NoResueltaExcluidaYRegistrada una referencia sin registro en el
// maestro se excluye de la secuencia y queda en la lista de no resueltas;
// nunca se emite con datos parciales.
func TestJoin_NoResueltaExcluidaYRegistrada(t *testing.T) {
	rows := []entity.ShipmentRow{
		{ItemCode: "A", Quantity: decimal.NewFromInt(1)},
		{ItemCode: "ZZZ", Quantity: decimal.NewFromInt(1)},
		{ItemCode: "B", Quantity: decimal.NewFromInt(1)},
	}

	res := picking.Join(rows, testMaster())

	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"ZZZ"}, res.Unresolved)
	for _, r := range res.Rows {
		assert.NotEqual(t, "ZZZ", r.ItemCode)
	}
	// La secuencia cuenta solo filas emitidas.
	assert.Equal(t, 1, res.Rows[0].Sequence)
	assert.Equal(t, 2, res.Rows[1].Sequence)
}

// TestJoin_CruceSensibleAMayusculas "a" no resuelve contra "A".
func TestJoin_CruceSensibleAMayusculas(t *testing.T) {
	res := picking.Join([]entity.ShipmentRow{{ItemCode: "a", Quantity: decimal.NewFromInt(1)}}, testMaster())

	assert.Empty(t, res.Rows)
	assert.Equal(t, []string{"a"}, res.Unresolved)
}

// TestJoin_NormalizaAnchoCompleto el código en ancho completo de la planilla
// resuelve contra el maestro en ASCII (pliegue NFKC en ambos lados).
func TestJoin_NormalizaAnchoCompleto(t *testing.T) {
	res := picking.Join([]entity.ShipmentRow{{ItemCode: "Ａ", Quantity: decimal.NewFromInt(1)}}, testMaster())

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Producto A", res.Rows[0].Description)
}

// TestJoin_NumeracionDeComponentes los componentes comparten la línea lógica
// del padre reemplazado: N-1, N-2; la línea siguiente retoma N+1.
func TestJoin_NumeracionDeComponentes(t *testing.T) {
	master := testMaster()
	master["X1"] = entity.ItemMasterRecord{ItemCode: "X1", Description: "Componente X1", Unit: "PC"}
	master["X2"] = entity.ItemMasterRecord{ItemCode: "X2", Description: "Componente X2", Unit: "PC"}

	rows := []entity.ShipmentRow{
		{ItemCode: "A", Quantity: decimal.NewFromInt(1)},
		{ItemCode: "X1", Quantity: decimal.NewFromInt(2), IsComponent: true, ComponentIndex: 1, ParentCode: "A"},
		{ItemCode: "X2", Quantity: decimal.NewFromInt(4), IsComponent: true, ComponentIndex: 2, ParentCode: "A"},
		{ItemCode: "B", Quantity: decimal.NewFromInt(1)},
	}

	res := picking.Join(rows, master)

	require.Len(t, res.Rows, 4)
	assert.Equal(t, "1", res.Rows[0].Number)
	assert.Equal(t, "2-1", res.Rows[1].Number)
	assert.Equal(t, "2-2", res.Rows[2].Number)
	assert.Equal(t, "3", res.Rows[3].Number)
}

// TestJoin_RespaldosDeComponente el nombre del BOM gana sobre el maestro; el
// aviso y el tipo caen al registro del padre cuando el componente no los trae.
func TestJoin_RespaldosDeComponente(t *testing.T) {
	master := testMaster()
	master["X1"] = entity.ItemMasterRecord{ItemCode: "X1", Description: "Componente X1"}

	rows := []entity.ShipmentRow{
		{
			ItemCode: "X1", Quantity: decimal.NewFromInt(2),
			IsComponent: true, ComponentIndex: 1, ParentCode: "A",
			BomName: "Nombre BOM", BomUnit: "CJ",
		},
	}

	res := picking.Join(rows, master)

	require.Len(t, res.Rows, 1)
	got := res.Rows[0]
	assert.Equal(t, "Nombre BOM", got.Description)
	assert.Equal(t, "CJ", got.Unit)
	assert.Equal(t, "terminado", got.ItemType, "respaldo al tipo del padre")
	assert.Equal(t, "ORD-001", got.OrderNumber, "respaldo al pedido del padre")
	assert.Equal(t, "frágil", got.Notice, "respaldo al aviso del padre")
}
