package main

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	studyPath, resultsPath := writeFixtures(t)
	outputPath := filepath.Join(t.TempDir(), "export.tar.gz")

	var buf bytes.Buffer
	cmd := newExportCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--study", studyPath, "--results", resultsPath, "--output", outputPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), outputPath)

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	assert.ElementsMatch(t, []string{"report.md", "tasks.csv", "analysis.json"}, names)
}
