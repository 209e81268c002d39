package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleScenario = "../examples/holiday-home.yaml"

func TestCommands(t *testing.T) {
	assert.Equal(t, "serve", ServeCmd().Use)
	assert.Equal(t, "project", ProjectCmd().Use)
	assert.Equal(t, "compare", CompareCmd().Use)

	flags := ProjectCmd().Flags()
	assert.NotNil(t, flags.Lookup("scenario"))
	assert.NotNil(t, flags.Lookup("export"))
	assert.NotNil(t, flags.Lookup("fidelity"))
}

func TestProjectCmd_PrintsAndExports(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "ledger.csv")

	cmd := ProjectCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--scenario", exampleScenario, "--export", exportPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "BAR 20.7%")
	assert.Contains(t, out.String(), "Cumulative cash flow")
	assert.Contains(t, out.String(), "Exported to")

	f, err := os.Open(exportPath)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 31)
}

func TestProjectCmd_RejectsBadFidelity(t *testing.T) {
	cmd := ProjectCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--scenario", exampleScenario, "--fidelity", "blended"})
	assert.Error(t, cmd.Execute())
}

func TestProjectCmd_UnsupportedExport(t *testing.T) {
	cmd := ProjectCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--scenario", exampleScenario, "--export", filepath.Join(t.TempDir(), "ledger.pdf")})
	assert.Error(t, cmd.Execute())
}

func TestCompareCmd(t *testing.T) {
	cmd := CompareCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--scenario", exampleScenario})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Recommended: interest_only")
	assert.Contains(t, out.String(), "linear")
	assert.Contains(t, out.String(), "annuity")
}
