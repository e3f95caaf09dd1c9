package reporting

import (
	"archive/tar"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/canopyux/canopy/internal/models"
)

// WriteTaskStatsCSV writes one row per task with the headline numbers.
// Rates are written unrounded so downstream tooling can re-round as it
// pleases.
func WriteTaskStatsCSV(w io.Writer, taskStats []models.TaskStatistics) error {
	cw := csv.NewWriter(w)
	header := []string{
		"task_index", "score",
		"success_rate", "success_margin",
		"directness_rate", "directness_margin",
		"median_time_seconds",
		"direct_success", "indirect_success",
		"direct_fail", "indirect_fail",
		"direct_skip", "indirect_skip",
		"total_results",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("reporting: writing csv header: %w", err)
	}
	for _, ts := range taskStats {
		row := []string{
			fmt.Sprintf("%d", ts.TaskIndex),
			fmt.Sprintf("%d", ts.Score),
			fmt.Sprintf("%.2f", ts.SuccessRate),
			fmt.Sprintf("%.2f", ts.SuccessMargin),
			fmt.Sprintf("%.2f", ts.DirectnessRate),
			fmt.Sprintf("%.2f", ts.DirectnessMargin),
			fmt.Sprintf("%.2f", ts.Time.Median),
			fmt.Sprintf("%d", ts.Breakdown.DirectSuccess),
			fmt.Sprintf("%d", ts.Breakdown.IndirectSuccess),
			fmt.Sprintf("%d", ts.Breakdown.DirectFail),
			fmt.Sprintf("%d", ts.Breakdown.IndirectFail),
			fmt.Sprintf("%d", ts.Breakdown.DirectSkip),
			fmt.Sprintf("%d", ts.Breakdown.IndirectSkip),
			fmt.Sprintf("%d", ts.Breakdown.Total),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("reporting: writing csv row for task %d: %w", ts.TaskIndex, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ArchiveFile is a named payload destined for an export archive.
type ArchiveFile struct {
	Name string
	Data []byte
}

// WriteArchive writes the given files into a gzipped tarball at path.
func WriteArchive(path string, files []ArchiveFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reporting: creating archive %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	now := time.Now()
	for _, file := range files {
		hdr := &tar.Header{
			Name:    file.Name,
			Mode:    0644,
			Size:    int64(len(file.Data)),
			ModTime: now,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("reporting: writing archive entry %s: %w", file.Name, err)
		}
		if _, err := tw.Write(file.Data); err != nil {
			return fmt.Errorf("reporting: writing archive entry %s: %w", file.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("reporting: finalizing archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("reporting: finalizing archive: %w", err)
	}
	return f.Close()
}

// ExportBundle builds the standard export archive: the markdown report,
// the per-task CSV, and the raw analysis JSON.
func ExportBundle(path, report string, taskStats []models.TaskStatistics, analysisJSON []byte) error {
	var csvBuf bytes.Buffer
	if err := WriteTaskStatsCSV(&csvBuf, taskStats); err != nil {
		return err
	}
	return WriteArchive(path, []ArchiveFile{
		{Name: "report.md", Data: []byte(report)},
		{Name: "tasks.csv", Data: csvBuf.Bytes()},
		{Name: "analysis.json", Data: analysisJSON},
	})
}
