// Package markup convierte páginas de picking en el documento intermedio HTML
// que consumen los backends de renderizado. La grilla visual es configuración
// estática inyectada, nunca derivada de los datos.
//
// Layout de cada página A4 (6 slots de 49.5mm):
//
//	┌─────────────────────────────────────────────┐
//	│ No. 1 · fecha · cliente · pedido      ┌────┐│
//	│ Descripción del ítem                  │ QR ││
//	│ Código | Cantidad | Ubicación | ...   └────┘│
//	├─────────────────────────────────────────────┤
//	│ No. 2 ...                                   │
//	└─────────────────────────────────────────────┘
package markup

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

const sheetHeightMM = 297.0 // alto físico de la hoja A4

// Renderer renderizador de plantilla dirigido por una GridSpec inmutable.
type Renderer struct {
	grid entity.GridSpec
}

// NewRenderer construye el renderizador con la grilla dada.
func NewRenderer(grid entity.GridSpec) *Renderer {
	return &Renderer{grid: grid}
}

// Render produce el documento HTML completo para todas las páginas. Una fila
// sin código, descripción o cantidad es un defecto aguas arriba y devuelve
// TemplateError.
func (r *Renderer) Render(pages []entity.Page) ([]byte, error) {
	if err := r.validate(pages); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")
	html := doc.CreateElement("html")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText("Documento de picking")
	head.CreateElement("style").SetText(r.css())

	body := html.CreateElement("body")
	for _, page := range pages {
		r.renderPage(body, page)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func (r *Renderer) validate(pages []entity.Page) error {
	for _, page := range pages {
		for s, row := range page.Slots {
			field := ""
			switch {
			case row.ItemCode == "":
				field = "item_code"
			case row.Description == "":
				field = "description"
			case row.Quantity == "":
				field = "quantity"
			}
			if field != "" {
				return &domain.TemplateError{Page: page.Number, Slot: s, Field: field}
			}
		}
	}
	return nil
}

func (r *Renderer) renderPage(body *etree.Element, page entity.Page) {
	div := body.CreateElement("div")
	div.CreateAttr("class", "page")

	for _, row := range page.Slots {
		r.renderSlot(div, row)
	}
	// Slots en blanco al final de la última página para mantener la grilla fija.
	for i := len(page.Slots); i < r.grid.SlotsPerPage; i++ {
		blank := div.CreateElement("div")
		blank.CreateAttr("class", "slot blank")
	}
}

func (r *Renderer) renderSlot(parent *etree.Element, row entity.PickingRow) {
	slot := parent.CreateElement("div")
	slot.CreateAttr("class", "slot")

	head := slot.CreateElement("div")
	head.CreateAttr("class", "head")
	headSpan(head, "no", "No. "+row.Number)
	headSpan(head, "date", row.ShipDate)
	headSpan(head, "client", row.ClientCode)
	headSpan(head, "order", row.OrderNumber)

	switch {
	case row.CodeImage != "":
		img := slot.CreateElement("img")
		img.CreateAttr("class", "code")
		img.CreateAttr("src", row.CodeImage)
		img.CreateAttr("alt", row.ItemCode)
	case row.CodeFailed:
		missing := slot.CreateElement("div")
		missing.CreateAttr("class", "code-missing")
		missing.SetText("QR no disponible")
	}

	name := slot.CreateElement("div")
	name.CreateAttr("class", "name")
	name.SetText(row.Description)

	fields := slot.CreateElement("table")
	fields.CreateAttr("class", "fields")
	addField(fields, "Código", row.ItemCode)
	addField(fields, "Cantidad", quantityText(row))
	addField(fields, "Ubicación", row.Location)
	addField(fields, "Tipo", row.ItemType)
	if row.Notice != "" {
		addField(fields, "Aviso", row.Notice)
	}
}

func headSpan(head *etree.Element, class, text string) {
	if text == "" {
		return
	}
	span := head.CreateElement("span")
	span.CreateAttr("class", class)
	span.SetText(text)
}

func addField(table *etree.Element, label, value string) {
	tr := table.CreateElement("tr")
	tr.CreateElement("th").SetText(label)
	tr.CreateElement("td").SetText(value)
}

func quantityText(row entity.PickingRow) string {
	text := row.Quantity
	if row.Unit != "" {
		text += " " + row.Unit
	}
	if row.QuantityNote != "" {
		text += " (" + row.QuantityNote + ")"
	}
	return text
}

// css hoja de estilos derivada de la grilla. El alto efectivo de cada slot
// descuenta la parte proporcional del margen físico no imprimible para que
// slots por página × alto efectivo = área imprimible exacta.
func (r *Renderer) css() string {
	g := r.grid
	effective := g.SlotHeightMM - 2*g.PrinterMarginMM/float64(g.SlotsPerPage)
	padding := effective * 0.04
	codeSide := effective * 0.5
	codeEdge := "right"
	if g.CodePosition == "left-edge" {
		codeEdge = "left"
	}

	return fmt.Sprintf(`
@page { size: A4 portrait; margin: %.2fmm; }
* { box-sizing: border-box; }
body { margin: 0; font-family: sans-serif; font-size: %dpx; }
.page { page-break-after: always; }
.slot { position: relative; height: %.2fmm; padding: %.2fmm; border-bottom: 0.3mm dashed #888; overflow: hidden; }
.slot.blank { border-bottom: none; }
.head { font-size: %dpx; font-weight: bold; }
.head span { margin-right: 4mm; }
.name { font-size: %dpx; margin-top: 1mm; }
.code { position: absolute; %s: %.2fmm; top: %.2fmm; width: %.2fmm; height: %.2fmm; }
.code-missing { position: absolute; %s: %.2fmm; top: %.2fmm; width: %.2fmm; font-size: %dpx; color: #888; border: 0.3mm dashed #888; text-align: center; }
.fields { margin-top: 1mm; border-collapse: collapse; }
.fields th { text-align: left; padding-right: 3mm; font-weight: normal; color: #555; }
.fields th, .fields td { font-size: %dpx; }
`,
		g.PrinterMarginMM,
		g.FontLabelPx,
		effective, padding,
		g.FontHeaderPx,
		g.FontLabelPx,
		codeEdge, padding, padding, codeSide, codeSide,
		codeEdge, padding, padding, codeSide, g.FontLabelPx,
		g.FontLabelPx,
	)
}
