package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/price-render/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of the command tree back to its default so
// one test's flags never reach the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestInitThenRender(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store.yaml")
	report := filepath.Join(dir, "report.json")

	out, err := execute(t, "init", store)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	_, err = execute(t, "init", store)
	assert.Error(t, err, "init refuses to overwrite without --force")

	_, err = execute(t, "render", "--config", store, "--format", "json", "--output", report,
		"--display", "excluding", "--id-suffix", "_x")
	require.NoError(t, err)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var decoded domain.PriceReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Lines, 2)
	assert.Equal(t, "excluding", decoded.Lines[0].Mode)
	assert.Equal(t, "item_list", decoded.Zone)
	assert.Equal(t, "product-price-123_x", decoded.Lines[0].Prices[0].ID)
	assert.Equal(t, "$19.99", decoded.Lines[0].Prices[0].Formatted)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "render", "--config", "missing.yaml", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console, csv, json")
	assert.Contains(t, out, "item_option")
}

func TestRenderWritesToCommandOutput(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store.yaml")
	_, err := execute(t, "init", store)
	require.NoError(t, err)

	// flags from the previous render must not carry over
	_, err = execute(t, "render", "--config", store, "--format", "csv", "--output", filepath.Join(dir, "r.csv"), "--id-suffix", "_x")
	require.NoError(t, err)

	out, err := execute(t, "render", "--config", store, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "ProductID,Name,Mode")
	assert.Contains(t, out, "price-including-tax-123,")
	assert.NotContains(t, out, "_x")
	assert.Equal(t, "", outputFile)
}
