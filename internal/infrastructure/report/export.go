package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"har-analyzer/internal/usecase"
)

// Document is the structured export written alongside the console report.
type Document struct {
	Summary          Summary                      `json:"summary"`
	TimingStatistics map[string]usecase.StatBlock `json:"timing_statistics"`
	SlowestRequests  []SlowRequest                `json:"slowest_requests"`
}

type Summary struct {
	SourceFile         string      `json:"source_file"`
	TotalRequests      int         `json:"total_requests"`
	StatusDistribution map[int]int `json:"status_distribution"`
}

type SlowRequest struct {
	URL         string  `json:"url"`
	Method      string  `json:"method"`
	Status      int     `json:"status"`
	TotalTimeMs float64 `json:"total_time_ms"`
}

// BuildDocument converts precomputed analysis state into the export shape.
func BuildDocument(a usecase.Analysis) Document {
	distribution := make(map[int]int, len(a.Histogram))
	for _, b := range a.Histogram {
		distribution[b.Status] = b.Count
	}
	slowest := make([]SlowRequest, 0, len(a.Slowest))
	for _, r := range a.Slowest {
		slowest = append(slowest, SlowRequest{
			URL:         r.URL,
			Method:      r.Method,
			Status:      r.Status,
			TotalTimeMs: r.TotalTime,
		})
	}
	return Document{
		Summary: Summary{
			SourceFile:         a.Session.SourcePath,
			TotalRequests:      len(a.Session.Records),
			StatusDistribution: distribution,
		},
		TimingStatistics: a.Stats,
		SlowestRequests:  slowest,
	}
}

// ExportJSON writes the analysis document to path. The write goes through a
// temp file in the destination directory and a rename, so a failed run never
// leaves a truncated export behind.
func ExportJSON(path string, a usecase.Analysis) error {
	data, err := json.MarshalIndent(BuildDocument(a), "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis document: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".har-analyzer-export-*")
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize export file: %w", err)
	}
	return nil
}
