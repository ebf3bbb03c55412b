package http

import (
	"context"
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/application/pipeline"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// Generator contrato del caso de uso que consume el handler.
type Generator interface {
	Generate(ctx context.Context, in pipeline.GenerateInput) (*entity.RunReport, error)
}

// PickingHandler maneja las peticiones HTTP de generación del documento de picking.
type PickingHandler struct {
	uc            Generator
	defaultOutDir string
}

// NewPickingHandler construye el handler.
func NewPickingHandler(uc Generator, defaultOutDir string) *PickingHandler {
	return &PickingHandler{uc: uc, defaultOutDir: defaultOutDir}
}

// Render corre el pipeline completo de forma síncrona: plan de embarque +
// maestro de ítems (+ BOM opcional) → HTML intermedio → PDF con códigos
// escaneables. La respuesta es el reporte de la corrida; los errores de
// entrada mapean a 400/404 y el renderizado agotado a 500. El contrato
// publicado vive en docs/swagger.json.
func (h *PickingHandler) Render(c *fiber.Ctx) error {
	var in dto.RenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ShipmentPath == "" || in.MasterPath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shipment_path y master_path son requeridos"})
	}

	outDir := in.OutDir
	if outDir == "" {
		outDir = h.defaultOutDir
	}

	report, err := h.uc.Generate(c.Context(), pipeline.GenerateInput{
		ShipmentPath: in.ShipmentPath,
		MasterPath:   in.MasterPath,
		BomPath:      in.BomPath,
		OutDir:       outDir,
	})
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrSchema):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: err.Error()})
		case errors.Is(err, domain.ErrParse):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PARSE", Message: err.Error()})
		case errors.Is(err, domain.ErrRender):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.JSON(dto.RenderResponseFrom(report))
}
