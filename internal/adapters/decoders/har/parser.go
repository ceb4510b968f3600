package har

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"har-analyzer/internal/domain"
)

var (
	// ErrOpen reports a capture file that is missing or unreadable.
	ErrOpen = errors.New("cannot open capture file")
	// ErrDecode reports a capture file whose content is not valid JSON.
	ErrDecode = errors.New("capture file is not valid JSON")
	// ErrStructure reports valid JSON that lacks the log.entries shape.
	ErrStructure = errors.New("invalid HAR structure")
)

// Load reads the file at path and decodes it into a generic JSON tree.
// Loading is all-or-nothing: any failure returns a nil document.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return doc, nil
}

// Extract converts every entry under log.entries into a TimingRecord.
// The log object and the entries array are required; past that, individual
// malformed entries degrade to defaults and never fail the run.
func Extract(doc map[string]any) ([]domain.TimingRecord, error) {
	logObj, ok := doc["log"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing log object", ErrStructure)
	}
	entries, ok := logObj["entries"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing entries array", ErrStructure)
	}
	records := make([]domain.TimingRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, extractEntry(asObject(e)))
	}
	return records, nil
}

func extractEntry(entry map[string]any) domain.TimingRecord {
	request := asObject(entry["request"])
	response := asObject(entry["response"])
	timings := asObject(entry["timings"])
	return domain.TimingRecord{
		URL:       asString(request["url"], "unknown"),
		Method:    asString(request["method"], "unknown"),
		Status:    int(asNumber(response["status"])),
		TotalTime: asNumber(entry["time"]),
		Blocked:   phase(timings, "blocked"),
		DNS:       phase(timings, "dns"),
		Connect:   phase(timings, "connect"),
		Send:      phase(timings, "send"),
		Wait:      phase(timings, "wait"),
		Receive:   phase(timings, "receive"),
		SSL:       phase(timings, "ssl"),
	}
}

// phase resolves one timings field, mapping the -1 sentinel (and any other
// negative value) to 0.
func phase(timings map[string]any, key string) float64 {
	v := asNumber(timings[key])
	if v < 0 {
		return 0
	}
	return v
}

func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asString(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func asNumber(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
