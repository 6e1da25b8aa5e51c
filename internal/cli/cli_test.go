package cli_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linktime/internal/cli"
	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/ui/display"

	_ "github.com/arthur-debert/linktime/pkg/shapes/circle"
	_ "github.com/arthur-debert/linktime/pkg/shapes/square"
)

// isolate keeps config lookups and the log file inside a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestListAllFamilies(t *testing.T) {
	out, err := run(t, "list", "--format", "json")
	require.NoError(t, err)

	var result display.FamiliesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Families, 2)

	assert.Equal(t, "codec.Codec", result.Families[0].Family)
	assert.Empty(t, result.Families[0].Plugins)

	assert.Equal(t, "shapes.Shape", result.Families[1].Family)
	assert.Equal(t, "github.com/arthur-debert/linktime/pkg/shapes.Shape", result.Families[1].Path)
	var names []string
	for _, p := range result.Families[1].Plugins {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"circle", "square"}, names)
}

func TestListSingleFamily(t *testing.T) {
	tests := []struct {
		arg    string
		family string
	}{
		{"shapes.Shape", "shapes.Shape"},
		{"shape", "shapes.Shape"},
		{"CODEC", "codec.Codec"},
		{"github.com/arthur-debert/linktime/pkg/shapes.Shape", "shapes.Shape"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := run(t, "list", tt.arg, "-f", "json")
			require.NoError(t, err)

			var result display.FamiliesResult
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			require.Len(t, result.Families, 1)
			assert.Equal(t, tt.family, result.Families[0].Family)
		})
	}
}

func TestListUnknownFamily(t *testing.T) {
	_, err := run(t, "list", "widget")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestListTextOutput(t *testing.T) {
	out, err := run(t, "list", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "2 plug-in families")
	assert.Contains(t, out, "*circle.Circle")
	assert.Contains(t, out, "codec.Codec")
}

func TestArea(t *testing.T) {
	out, err := run(t, "area", "2", "--format", "json")
	require.NoError(t, err)

	var result display.MeasurementsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2.0, result.Size)
	require.Len(t, result.Measurements, 2)

	areas := map[string]float64{}
	for _, m := range result.Measurements {
		areas[m.Shape] = m.Area
	}
	assert.InDelta(t, 4*math.Pi, areas["circle"], 1e-9)
	assert.InDelta(t, 4.0, areas["square"], 1e-9)
}

func TestAreaRejectsBadSize(t *testing.T) {
	for _, arg := range []string{"abc", "-1", "NaN", "Inf", "-Inf", "+Inf"} {
		for _, format := range []string{"json", "text"} {
			out, err := run(t, "area", "-f", format, "--", arg)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "%s as %s", arg, format)
			assert.Empty(t, out, "%s as %s", arg, format)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "list", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
}

func TestConfigFileSetsFormat(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "linktime.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0644))

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list", "codec", "--config", path})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "family: codec.Codec")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "list", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "linktime version dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "help", "topics")
	require.NoError(t, err)

	for _, topic := range []string{"failures", "ordering", "registration"} {
		assert.Contains(t, out, topic)
	}

	out, err = run(t, "help", "ordering")
	require.NoError(t, err)
	assert.Contains(t, out, "unspecified")
}
