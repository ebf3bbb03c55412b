package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-api/internal/app"
	"github.com/jhoicas/picking-api/internal/application/pipeline"
	"github.com/jhoicas/picking-api/pkg/config"
	"github.com/jhoicas/picking-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "picking",
		Short:         "Generador de documentos de picking",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var in pipeline.GenerateInput

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Genera el documento de picking (HTML + PDF) desde las planillas",
		Long: "Corre el pipeline completo: plan de embarque + maestro de ítems (+ BOM opcional)\n" +
			"→ HTML intermedio → PDF con códigos escaneables. Imprime el reporte de la\n" +
			"corrida en JSON por stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

			if in.OutDir == "" {
				in.OutDir = cfg.Pipeline.OutputDir
			}

			report, err := app.BuildGenerator(cfg, log).Generate(cmd.Context(), in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&in.ShipmentPath, "shipment", "", "planilla del plan de embarque (xlsx)")
	cmd.Flags().StringVar(&in.MasterPath, "master", "", "planilla del maestro de ítems (xlsx)")
	cmd.Flags().StringVar(&in.BomPath, "bom", "", "lista de materiales (tsv, opcional)")
	cmd.Flags().StringVar(&in.OutDir, "out", "", "directorio de salida (por defecto el configurado)")
	_ = cmd.MarkFlagRequired("shipment")
	_ = cmd.MarkFlagRequired("master")

	return cmd
}
