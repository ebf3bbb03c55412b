package markup_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/infrastructure/markup"
)

func rowN(n string, code string) entity.PickingRow {
	return entity.PickingRow{
		Number:      n,
		ItemCode:    code,
		Description: "Producto " + code,
		Quantity:    "3",
		Unit:        "PC",
		CodeImage:   "qr/" + code + ".png",
	}
}

func parse(t *testing.T, html []byte) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(html))
	return doc
}

// TestRender_GrillaFija la última página se rellena con slots en blanco: toda
// página impresa tiene exactamente la cantidad configurada de slots.
func TestRender_GrillaFija(t *testing.T) {
	r := markup.NewRenderer(entity.DefaultGridSpec())
	pages := []entity.Page{
		{Number: 1, Slots: []entity.PickingRow{
			rowN("1", "A"), rowN("2", "B"), rowN("3", "C"),
			rowN("4", "D"), rowN("5", "E"), rowN("6", "F"),
		}},
		{Number: 2, Slots: []entity.PickingRow{rowN("7", "G")}},
	}

	html, err := r.Render(pages)
	require.NoError(t, err)

	doc := parse(t, html)
	divs := doc.FindElements("//div[@class='page']")
	require.Len(t, divs, 2)
	for _, page := range divs {
		assert.Len(t, page.SelectElements("div"), 6)
	}
	assert.Len(t, doc.FindElements("//div[@class='slot blank']"), 5)
}

// TestRender_ContenidoDelSlot cada slot lleva numeración, imagen del código y
// la tabla de campos con la cantidad formateada.
func TestRender_ContenidoDelSlot(t *testing.T) {
	r := markup.NewRenderer(entity.DefaultGridSpec())
	row := rowN("1", "ITEM-9")
	row.QuantityNote = "2 × 1.5"
	row.Location = "A-03"
	row.Notice = "Frágil"

	html, err := r.Render([]entity.Page{{Number: 1, Slots: []entity.PickingRow{row}}})
	require.NoError(t, err)

	doc := parse(t, html)
	img := doc.FindElement("//img[@class='code']")
	require.NotNil(t, img)
	assert.Equal(t, "qr/ITEM-9.png", img.SelectAttrValue("src", ""))
	assert.Equal(t, "ITEM-9", img.SelectAttrValue("alt", ""))

	text := string(html)
	assert.Contains(t, text, "No. 1")
	assert.Contains(t, text, "3 PC (2 × 1.5)")
	assert.Contains(t, text, "A-03")
	assert.Contains(t, text, "Frágil")
}

// TestRender_CodigoFallido un slot cuyo QR falló muestra el marcador en lugar
// de la imagen.
func TestRender_CodigoFallido(t *testing.T) {
	r := markup.NewRenderer(entity.DefaultGridSpec())
	row := rowN("1", "ITEM-X")
	row.CodeImage = ""
	row.CodeFailed = true

	html, err := r.Render([]entity.Page{{Number: 1, Slots: []entity.PickingRow{row}}})
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Nil(t, doc.FindElement("//img[@class='code']"))
	missing := doc.FindElement("//div[@class='code-missing']")
	require.NotNil(t, missing)
	assert.Equal(t, "QR no disponible", missing.Text())
}

// TestRender_EstilosDeGrilla el CSS sale de la grilla configurada, no de los
// datos: margen físico y alto efectivo del slot.
func TestRender_EstilosDeGrilla(t *testing.T) {
	r := markup.NewRenderer(entity.DefaultGridSpec())

	html, err := r.Render([]entity.Page{{Number: 1, Slots: []entity.PickingRow{rowN("1", "A")}}})
	require.NoError(t, err)

	css := string(html)
	assert.Contains(t, css, "size: A4 portrait; margin: 5.00mm;")
	// 49.5mm menos la parte proporcional del margen: 49.5 - 2*5/6
	assert.Contains(t, css, "height: 47.83mm;")
	assert.True(t, strings.Contains(css, "right:"), "el código se ancla al borde derecho por defecto")
}

// TestRender_FilaIncompleta una fila sin cantidad es un defecto aguas arriba.
func TestRender_FilaIncompleta(t *testing.T) {
	r := markup.NewRenderer(entity.DefaultGridSpec())
	row := rowN("1", "A")
	row.Quantity = ""

	_, err := r.Render([]entity.Page{{Number: 1, Slots: []entity.PickingRow{row}}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTemplate))
	var tplErr *domain.TemplateError
	require.True(t, errors.As(err, &tplErr))
	assert.Equal(t, "quantity", tplErr.Field)
}
