// Package render convierte el documento HTML intermedio en el PDF final. La
// selección de backend es una lista ordenada de candidatos: gana el primero
// disponible que renderiza con éxito; la sustitución es invisible para el
// llamador salvo por el nombre de backend registrado en el reporte.
package render

import (
	"context"
	"fmt"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/pkg/logger"
)

// Backend un motor de renderizado capaz de convertir el HTML en un PDF
// paginado equivalente. Todos los backends aceptan el mismo archivo de entrada.
type Backend interface {
	Name() string
	// Available indica si el motor es resoluble en este entorno de ejecución.
	Available() bool
	Render(ctx context.Context, htmlPath, pdfPath string) error
}

// Chain cadena de backends en orden de prioridad.
type Chain struct {
	backends []Backend
	log      *logger.Logger
}

// NewChain construye la cadena. El orden de los argumentos es el orden de intento.
func NewChain(log *logger.Logger, backends ...Backend) *Chain {
	return &Chain{backends: backends, log: log}
}

// Render intenta cada backend en orden y devuelve el nombre del que produjo el
// PDF. Un backend no disponible o fallido dispara el siguiente, no propaga;
// RenderError solo cuando la lista se agota.
func (c *Chain) Render(ctx context.Context, htmlPath, pdfPath string) (string, error) {
	var attempts []string
	for _, b := range c.backends {
		if !b.Available() {
			c.log.Warn().Str("backend", b.Name()).Msg("backend no disponible, probando el siguiente")
			attempts = append(attempts, b.Name()+": no disponible")
			continue
		}
		if err := b.Render(ctx, htmlPath, pdfPath); err != nil {
			c.log.Warn().Err(err).Str("backend", b.Name()).Msg("backend falló, probando el siguiente")
			attempts = append(attempts, fmt.Sprintf("%s: %v", b.Name(), err))
			continue
		}
		return b.Name(), nil
	}
	if len(attempts) == 0 {
		attempts = []string{"cadena de backends vacía"}
	}
	return "", &domain.RenderError{Attempts: attempts}
}
