package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/canopyux/canopy/internal/models"
)

// resultRow is one CSV row of the flat export: participant metadata repeated
// on every task-result row. Decoding is weakly typed so "true", "1" and
// "120.5" coming out of spreadsheets land in the right Go types.
type resultRow struct {
	ParticipantID         string  `mapstructure:"participant_id"`
	Status                string  `mapstructure:"status"`
	DurationSeconds       float64 `mapstructure:"duration_seconds"`
	TaskIndex             int     `mapstructure:"task_index"`
	Successful            bool    `mapstructure:"successful"`
	DirectPathTaken       *bool   `mapstructure:"direct_path_taken"`
	Skipped               bool    `mapstructure:"skipped"`
	CompletionTimeSeconds float64 `mapstructure:"completion_time_seconds"`
	PathTaken             string  `mapstructure:"path_taken"`
	ConfidenceRating      *int    `mapstructure:"confidence_rating"`
}

// LoadResults loads participant results from a CSV or JSON file, dispatching
// on the file extension.
func LoadResults(path string) ([]models.Participant, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadResultsCSV(path)
	case ".json":
		return LoadResultsJSON(path)
	default:
		return nil, fmt.Errorf("dataset: unsupported results format %q (want .csv or .json)", filepath.Ext(path))
	}
}

// LoadResultsCSV reads the flat CSV export and groups rows back into
// participants, preserving first-seen participant order.
func LoadResultsCSV(path string) ([]models.Participant, error) {
	rows, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return ParticipantsFromRows(rows)
}

// ParticipantsFromRows converts flat result rows into grouped participants.
func ParticipantsFromRows(rows []Row) ([]models.Participant, error) {
	byID := make(map[string]*models.Participant)
	var order []string

	for i, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", i+2, err)
		}
		if rec.ParticipantID == "" {
			return nil, fmt.Errorf("dataset: row %d: missing participant_id", i+2)
		}

		p, ok := byID[rec.ParticipantID]
		if !ok {
			p = &models.Participant{
				ID:              rec.ParticipantID,
				Status:          participantStatus(rec.Status),
				DurationSeconds: rec.DurationSeconds,
			}
			byID[rec.ParticipantID] = p
			order = append(order, rec.ParticipantID)
		}

		if rec.TaskIndex > 0 {
			p.TaskResults = append(p.TaskResults, models.TaskResult{
				TaskIndex:             rec.TaskIndex,
				Successful:            rec.Successful,
				DirectPathTaken:       rec.DirectPathTaken,
				Skipped:               rec.Skipped,
				CompletionTimeSeconds: rec.CompletionTimeSeconds,
				PathTaken:             rec.PathTaken,
				ConfidenceRating:      rec.ConfidenceRating,
			})
		}
	}

	out := make([]models.Participant, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

// decodeRow maps one CSV row into a resultRow. Empty cells are dropped
// before decoding so optional fields (directness, confidence) stay nil
// instead of failing to parse.
func decodeRow(row Row) (resultRow, error) {
	values := make(map[string]any, len(row))
	for k, v := range row {
		if strings.TrimSpace(v) != "" {
			values[k] = strings.TrimSpace(v)
		}
	}

	var rec resultRow
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rec,
	})
	if err != nil {
		return rec, err
	}
	if err := decoder.Decode(values); err != nil {
		return rec, err
	}
	return rec, nil
}

func participantStatus(raw string) models.ParticipantStatus {
	if strings.EqualFold(raw, string(models.StatusAbandoned)) {
		return models.StatusAbandoned
	}
	// Missing status means the export predates the abandonment column;
	// those exports only contained finishers.
	return models.StatusCompleted
}

// resultsFile is the JSON export envelope.
type resultsFile struct {
	Participants []models.Participant `json:"participants"`
}

// LoadResultsJSON reads the structured JSON export.
func LoadResultsJSON(path string) ([]models.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	var file resultsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("dataset: parsing %s: %w", path, err)
	}
	return file.Participants, nil
}
