package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_DefaultTaxonomy(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{ParamDir: "p", PhaseDir: "q", OutputPath: "o.xml"})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg)
	require.NotNil(t, a)
	assert.Len(t, a.Taxonomy().Solutions, 15)
}

func TestNewApp_TaxonomyOverride(t *testing.T) {
	t.Parallel()

	src := `
solution "xx" {
  name  = "Test Phase"
  model = "EoS.Phases.RegularSolution, EoS.Core"
}
`
	taxPath := filepath.Join(t.TempDir(), "taxonomy.hcl")
	require.NoError(t, os.WriteFile(taxPath, []byte(src), 0o600))

	cfg, err := NewConfig(Config{
		ParamDir:     "p",
		PhaseDir:     "q",
		OutputPath:   "o.xml",
		TaxonomyPath: taxPath,
	})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg)
	require.Len(t, a.Taxonomy().Solutions, 1)
	assert.Equal(t, "xx", a.Taxonomy().Solutions[0].Code)
}

func TestNewApp_BadTaxonomyPanics(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{
		ParamDir:     "p",
		PhaseDir:     "q",
		OutputPath:   "o.xml",
		TaxonomyPath: filepath.Join(t.TempDir(), "absent.hcl"),
	})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, cfg)
	})
}

func TestNewConfig_RequiredFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "missing param dir", cfg: Config{PhaseDir: "q", OutputPath: "o"}},
		{name: "missing phase dir", cfg: Config{ParamDir: "p", OutputPath: "o"}},
		{name: "missing output path", cfg: Config{ParamDir: "p", PhaseDir: "q"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
		})
	}
}

func TestRun_WritesDocumentAndSummary(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	paramDir := filepath.Join(tempDir, "params")
	require.NoError(t, os.Mkdir(paramDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(paramDir, "st"),
		[]byte("Si_1O_2 Stishovite\n3.\n"), 0o600))

	outPath := filepath.Join(tempDir, "out.xml")
	cfg, err := NewConfig(Config{
		ParamDir:    paramDir,
		PhaseDir:    filepath.Join(paramDir, "phase"), // intentionally absent
		OutputPath:  outPath,
		DatasetID:   "TEST1",
		DatasetName: "Unit fixture",
		LogLevel:    "error",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, `id="TEST1"`)
	assert.Contains(t, xml, "<formula>(Si)(O)2</formula>")
	assert.Contains(t, out.String(), "Total minerals: 1")
	assert.Contains(t, out.String(), "Phase groups: 0")
}
