package domain

// AnalysisSession owns the records extracted from one capture file.
// It is built once by the extractor and read-only for every consumer after
// that; nothing outlives the process run.
type AnalysisSession struct {
	SourcePath string
	Records    []TimingRecord
}
