package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storefront/price-render/internal/output"
	"github.com/storefront/price-render/internal/render"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and render zones",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		fmt.Fprintf(out, "Zones:   default, %s\n", strings.Join(render.ZoneNames(), ", "))
	},
}
