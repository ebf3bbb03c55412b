package pipeline

import (
	"context"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// TableLoader puerto de entrada de planillas. Cualquier adaptador (excelize,
// fixtures de test) debe implementar esta interfaz; la aplicación solo conoce
// este contrato, no el formato de archivo.
type TableLoader interface {
	LoadShipment(path string) ([]entity.ShipmentRow, error)
	LoadMaster(path string) (entity.MasterIndex, error)
	LoadBom(path string) (entity.BomLookup, error)
}

// CodeGenerator genera (o reutiliza dentro de la corrida) el artefacto
// escaneable de un código y devuelve su ruta relativa al workspace.
type CodeGenerator interface {
	Generate(code string) (string, error)
}

// PageRenderer convierte las páginas en el documento de markup intermedio.
type PageRenderer interface {
	Render(pages []entity.Page) ([]byte, error)
}

// DocumentRenderer convierte el markup en el PDF final y devuelve el nombre
// del backend que lo produjo.
type DocumentRenderer interface {
	Render(ctx context.Context, htmlPath, pdfPath string) (string, error)
}

// Workspace ubicación canónica de artefactos con colocación atómica del PDF.
type Workspace interface {
	HTMLPath() string
	PDFPath() string
	QRDir() string
	WriteHTML(data []byte) error
	PlacePDF(render func(tmpPath string) error) error
}

// Fábricas por corrida: el workspace y el generador de códigos llevan estado
// mutable propio de cada corrida, así las corridas concurrentes no comparten
// nada mutable.
type (
	WorkspaceFactory     func(outDir string) (Workspace, error)
	CodeGeneratorFactory func(qrDir string) CodeGenerator
)
