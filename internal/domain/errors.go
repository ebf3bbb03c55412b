package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Clases de error del pipeline (sin dependencias externas).
//
// Política de propagación: los errores a nivel de archivo o configuración
// (ErrSchema, ErrParse, ErrTemplate, ErrRender) abortan la corrida sin dejar
// salida parcial; los errores a nivel de fila o de código (referencia no
// resuelta, ErrEncoding) se acumulan en el reporte y la corrida continúa.
var (
	ErrSchema              = errors.New("columnas requeridas ausentes")
	ErrParse               = errors.New("celda no coercible al tipo declarado")
	ErrUnresolvedReference = errors.New("código de ítem sin registro en el maestro")
	ErrEncoding            = errors.New("código no codificable")
	ErrTemplate            = errors.New("fila incompleta al renderizar plantilla")
	ErrRender              = errors.New("ningún backend de renderizado disponible")
)

// SchemaError una planilla de entrada no contiene columnas requeridas. Fatal:
// se detecta antes de procesar cualquier fila.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: faltan columnas requeridas: %s", e.File, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ParseError una celda no pudo coercerse al tipo declarado por el esquema.
// Fatal por archivo de entrada.
type ParseError struct {
	File   string
	Row    int // fila de datos, 1-based
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: fila %d, columna %q: valor %q no coercible", e.File, e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// EncodingError el código de ítem no pudo codificarse como imagen escaneable.
// No fatal: la fila se emite sin imagen y queda marcada en el reporte.
type EncodingError struct {
	Code   string
	Reason error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("código %q no codificable: %v", e.Code, e.Reason)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// TemplateError una fila llegó al renderizado sin un campo que la grilla
// requiere. Indica un defecto aguas arriba; fatal, no recuperable aquí.
type TemplateError struct {
	Page  int // 1-based
	Slot  int // 0-based dentro de la página
	Field string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("página %d, slot %d: campo requerido %q vacío", e.Page, e.Slot, e.Field)
}

func (e *TemplateError) Unwrap() error { return ErrTemplate }

// RenderError todos los backends de la cadena fallaron o no estaban
// disponibles. Attempts conserva el detalle por backend en orden de intento.
type RenderError struct {
	Attempts []string
}

func (e *RenderError) Error() string {
	return "renderizado agotado: " + strings.Join(e.Attempts, "; ")
}

func (e *RenderError) Unwrap() error { return ErrRender }
