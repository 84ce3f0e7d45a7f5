package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storefront/price-render/internal/config"
	"github.com/storefront/price-render/internal/engine"
	"github.com/storefront/price-render/internal/output"
	"github.com/storefront/price-render/internal/render"
	"github.com/storefront/price-render/internal/tax"
)

var (
	configFile   string
	outputFormat string
	outputFile   string
	displayFlag  string
	zoneFlag     string
	suffixFlag   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every product price from a store file",
	Long: `Loads the store file, builds each product's price with its tax adjustment and
renders it through the tax display policy. Flags override the file settings.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&configFile, "config", "c", "", "store YAML file (required)")
	renderCmd.MarkFlagRequired("config")
	renderCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, csv, json)")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")
	renderCmd.Flags().StringVar(&displayFlag, "display", "", "override catalog price display (excluding, including, both)")
	renderCmd.Flags().StringVar(&zoneFlag, "zone", "", "override render zone ("+fmt.Sprint(render.ZoneNames())+")")
	renderCmd.Flags().StringVar(&suffixFlag, "id-suffix", "", "override the element id suffix")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	formatter := output.GetFormatterByName(outputFormat)
	if formatter == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, outputFormat)
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	if displayFlag != "" {
		d, err := tax.ParseDisplayType(displayFlag)
		if err != nil {
			return err
		}
		cfg.Store.CatalogPrices = d
	}
	if cmd.Flags().Changed("zone") {
		if _, err := render.ParseZone(zoneFlag); err != nil {
			return err
		}
		cfg.Store.Zone = zoneFlag
	}
	if cmd.Flags().Changed("id-suffix") {
		cfg.Store.IDSuffix = suffixFlag
	}

	pe := engine.NewPriceEngine()
	pe.SetLogger(logger)
	report, err := pe.Run(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outputFile != "" {
		if err := output.WriteFile(formatter, report, outputFile); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		logger.Infof("wrote %s report to %s", formatter.Name(), outputFile)
		return nil
	}
	return output.WriteFormatted(formatter, report, cmd.OutOrStdout())
}
