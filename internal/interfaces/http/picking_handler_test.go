package http_test

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-api/internal/application/pipeline"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	apphttp "github.com/jhoicas/picking-api/internal/interfaces/http"
)

// fakeGenerator doble del caso de uso: devuelve un reporte fijo o un error, y
// captura la entrada para verificar el mapeo de la petición.
type fakeGenerator struct {
	report *entity.RunReport
	err    error
	in     pipeline.GenerateInput
}

func (f *fakeGenerator) Generate(_ context.Context, in pipeline.GenerateInput) (*entity.RunReport, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func buildTestApp(gen *fakeGenerator) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Generate: gen, DefaultOutDir: "output"})
	return app
}

func doRender(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/picking/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRender_CorridaExitosa(t *testing.T) {
	gen := &fakeGenerator{report: &entity.RunReport{
		RunID:         "run-1",
		RowsProcessed: 13,
		Pages:         3,
		Backend:       "wkhtmltopdf",
		HTMLPath:      "output/picking.html",
		PDFPath:       "output/picking.pdf",
	}}
	app := buildTestApp(gen)

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx","master_path":"maestro.xlsx"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "run-1", body["run_id"])
	assert.Equal(t, float64(13), body["rows_processed"])
	assert.Equal(t, float64(3), body["pages"])
	assert.Equal(t, "wkhtmltopdf", body["backend"])
	assert.Equal(t, "output/picking.pdf", body["pdf"])

	assert.Equal(t, "output", gen.in.OutDir, "out_dir vacío cae al configurado")
}

func TestRender_OutDirDeLaPeticionGana(t *testing.T) {
	gen := &fakeGenerator{report: &entity.RunReport{RunID: "run-1"}}
	app := buildTestApp(gen)

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx","master_path":"maestro.xlsx","out_dir":"/tmp/corrida"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/tmp/corrida", gen.in.OutDir)
}

func TestRender_RutasRequeridas(t *testing.T) {
	app := buildTestApp(&fakeGenerator{})

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestRender_ErrorDeEsquemaEs400(t *testing.T) {
	gen := &fakeGenerator{err: &domain.SchemaError{File: "plan.xlsx", Missing: []string{"quantity"}}}
	app := buildTestApp(gen)

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx","master_path":"maestro.xlsx"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SCHEMA")
	assert.Contains(t, string(body), "quantity")
}

func TestRender_ArchivoInexistenteEs404(t *testing.T) {
	gen := &fakeGenerator{err: &fs.PathError{Op: "open", Path: "plan.xlsx", Err: fs.ErrNotExist}}
	app := buildTestApp(gen)

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx","master_path":"maestro.xlsx"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestRender_RenderizadoAgotadoEs500(t *testing.T) {
	gen := &fakeGenerator{err: &domain.RenderError{Attempts: []string{"wkhtmltopdf: no disponible", "chromium: no disponible"}}}
	app := buildTestApp(gen)

	resp := doRender(t, app, `{"shipment_path":"plan.xlsx","master_path":"maestro.xlsx"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RENDER")
}
