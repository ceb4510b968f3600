package har

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mustDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return doc
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.har"))
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.har")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.har")
	if err := os.WriteFile(path, []byte(`{"log":{"entries":[]}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["log"]; !ok {
		t.Fatalf("decoded document lost the log key: %v", doc)
	}
}

func TestExtractMissingLog(t *testing.T) {
	_, err := Extract(mustDoc(t, `{"version":"1.2"}`))
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

func TestExtractMissingEntries(t *testing.T) {
	_, err := Extract(mustDoc(t, `{"log":{"version":"1.2"}}`))
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

func TestExtractRecordPerEntry(t *testing.T) {
	doc := mustDoc(t, `{"log":{"entries":[
		{"time":50,"request":{"url":"https://a.test/","method":"GET"},"response":{"status":200}},
		{"time":150,"request":{"url":"https://b.test/","method":"POST"},"response":{"status":200}},
		{"time":20,"request":{"url":"https://c.test/","method":"GET"},"response":{"status":404}}
	]}}`)
	records, err := Extract(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Method != "POST" || records[1].TotalTime != 150 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestExtractDefaultsForEmptyEntry(t *testing.T) {
	records, err := Extract(mustDoc(t, `{"log":{"entries":[{}]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := records[0]
	if r.URL != "unknown" || r.Method != "unknown" || r.Status != 0 || r.TotalTime != 0 {
		t.Fatalf("defaults not applied: %+v", r)
	}
	for _, q := range []float64{r.Blocked, r.DNS, r.Connect, r.Send, r.Wait, r.Receive, r.SSL} {
		if q != 0 {
			t.Fatalf("phase default not zero: %+v", r)
		}
	}
}

func TestExtractClampsSentinel(t *testing.T) {
	records, err := Extract(mustDoc(t, `{"log":{"entries":[
		{"time":12.5,"timings":{"blocked":-1,"dns":3.5,"connect":-1,"send":0.5,"wait":7,"receive":1.5,"ssl":-1}}
	]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := records[0]
	if r.Blocked != 0 || r.Connect != 0 || r.SSL != 0 {
		t.Fatalf("sentinel not clamped to 0: %+v", r)
	}
	if r.DNS != 3.5 || r.Send != 0.5 || r.Wait != 7 || r.Receive != 1.5 {
		t.Fatalf("measured phases altered: %+v", r)
	}
}

func TestExtractMissingTimingsKeepsEntryTime(t *testing.T) {
	records, err := Extract(mustDoc(t, `{"log":{"entries":[
		{"time":42,"request":{"url":"https://a.test/","method":"GET"},"response":{"status":200}}
	]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := records[0]
	if r.TotalTime != 42 {
		t.Fatalf("expected total time 42, got %v", r.TotalTime)
	}
	if r.DNS != 0 || r.SSL != 0 || r.Wait != 0 {
		t.Fatalf("missing timings should read as zero: %+v", r)
	}
}

func TestExtractMalformedEntryDoesNotAffectOthers(t *testing.T) {
	doc := mustDoc(t, `{"log":{"entries":[
		"garbage",
		{"time":10,"request":{"url":"https://ok.test/","method":"GET"},"response":{"status":200}},
		{"request":"also-garbage","response":7,"timings":[1,2,3]}
	]}}`)
	records, err := Extract(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].URL != "unknown" || records[2].URL != "unknown" {
		t.Fatalf("malformed entries should default: %+v %+v", records[0], records[2])
	}
	if records[1].URL != "https://ok.test/" || records[1].TotalTime != 10 {
		t.Fatalf("valid entry damaged by neighbors: %+v", records[1])
	}
}
