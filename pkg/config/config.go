package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Pipeline PipelineConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PipelineConfig configuración del pipeline de picking: clave de cruce,
// mapeo de campos lógicos a columnas candidatas de las planillas, columnas
// del BOM, grilla de impresión y orden de backends de renderizado.
type PipelineConfig struct {
	// JoinKey columna física que identifica el código de ítem en ambas planillas.
	JoinKey string
	// Mapping campo lógico -> columnas candidatas en orden de preferencia.
	// La primera columna presente y no vacía gana (coalesce).
	Mapping map[string][]string
	Bom     BomColumns
	Grid    GridConfig
	// Backends orden de prioridad de los backends de renderizado.
	Backends []string
	// OutputDir directorio de salida por defecto cuando la petición no lo indica.
	OutputDir string
}

// BomColumns nombres de columnas del archivo BOM (TSV).
type BomColumns struct {
	ParentCode    string
	ComponentCode string
	ComponentName string
	Quantity      string
	Sequence      string
	Unit          string
	ComponentType string
}

// GridConfig grilla visual fija del documento de picking.
// Opciones reconocidas y sus valores por defecto:
// slots_per_page=6, slot_height_mm=49.5, printer_margin_mm=5,
// font_size_label_px=11, font_size_header_px=12, code_position=right-edge.
type GridConfig struct {
	SlotsPerPage    int
	SlotHeightMM    float64
	PrinterMarginMM float64
	FontLabelPx     int
	FontHeaderPx    int
	CodePosition    string // right-edge | left-edge
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// picking.yml (en . o ./config). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("picking")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "picking-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Pipeline: PipelineConfig{
			JoinKey:   getString(v, "pipeline.join_key", "item_code"),
			Mapping:   mappingWithDefaults(v.GetStringMapStringSlice("pipeline.mapping")),
			Bom:       bomColumns(v),
			Grid:      gridConfig(v),
			Backends:  backendsOrDefault(v.GetStringSlice("pipeline.backends")),
			OutputDir: getString(v, "pipeline.output_dir", "output"),
		},
	}

	return cfg, nil
}

// Campos lógicos consumidos por el pipeline. Cualquier campo no mapeado en el
// archivo de configuración cae en su columna homónima.
var defaultFields = []string{
	"item_code", "quantity", "ship_date", "client_code", "location",
	"description", "unit", "item_type", "order_number", "notice",
}

func mappingWithDefaults(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(defaultFields))
	for _, field := range defaultFields {
		if cols, ok := m[field]; ok && len(cols) > 0 {
			out[field] = cols
			continue
		}
		out[field] = []string{field}
	}
	// Campos extra definidos solo en el archivo también se respetan.
	for field, cols := range m {
		if _, ok := out[field]; !ok {
			out[field] = cols
		}
	}
	return out
}

func bomColumns(v *viper.Viper) BomColumns {
	return BomColumns{
		ParentCode:    getString(v, "pipeline.bom.parent_code", "parent_item_code"),
		ComponentCode: getString(v, "pipeline.bom.component_code", "component_item_code"),
		ComponentName: getString(v, "pipeline.bom.component_name", "component_name"),
		Quantity:      getString(v, "pipeline.bom.quantity", "quantity_per_parent"),
		Sequence:      getString(v, "pipeline.bom.sequence", "sequence"),
		Unit:          getString(v, "pipeline.bom.unit", "unit"),
		ComponentType: getString(v, "pipeline.bom.component_type", "component_type"),
	}
}

func gridConfig(v *viper.Viper) GridConfig {
	return GridConfig{
		SlotsPerPage:    getInt(v, "pipeline.grid.slots_per_page", 6),
		SlotHeightMM:    getFloat(v, "pipeline.grid.slot_height_mm", 49.5),
		PrinterMarginMM: getFloat(v, "pipeline.grid.printer_margin_mm", 5),
		FontLabelPx:     getInt(v, "pipeline.grid.font_size_label_px", 11),
		FontHeaderPx:    getInt(v, "pipeline.grid.font_size_header_px", 12),
		CodePosition:    getString(v, "pipeline.grid.code_position", "right-edge"),
	}
}

func backendsOrDefault(list []string) []string {
	if len(list) > 0 {
		return list
	}
	return []string{"wkhtmltopdf", "chromium"}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}
