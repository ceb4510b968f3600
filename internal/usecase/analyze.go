package usecase

import (
	"math"
	"sort"

	"har-analyzer/internal/domain"
)

// StatBlock holds the descriptive statistics of one measured quantity.
type StatBlock struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
}

// Describe reduces a sample series to a StatBlock. The empty series yields
// the zero block; a single sample has a standard deviation of exactly 0.
func Describe(values []float64) StatBlock {
	n := len(values)
	if n == 0 {
		return StatBlock{}
	}
	sum := 0.0
	minV, maxV := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	avg := sum / float64(n)
	stdDev := 0.0
	if n > 1 {
		sq := 0.0
		for _, v := range values {
			d := v - avg
			sq += d * d
		}
		// sample standard deviation (n-1 divisor)
		stdDev = math.Sqrt(sq / float64(n-1))
	}
	return StatBlock{
		Count:   n,
		Total:   sum,
		Average: avg,
		Median:  median(values),
		Min:     minV,
		Max:     maxV,
		StdDev:  stdDev,
	}
}

// median averages the two middle values on even counts.
func median(values []float64) float64 {
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 0 {
		return (cp[mid-1] + cp[mid]) / 2
	}
	return cp[mid]
}

// ComputeStatistics describes each of the eight quantities over the records
// that measured it. A zero value means "not measured" and is excluded from
// that quantity only; a record excluded from one quantity still contributes
// to the others. An empty record set yields an empty map, distinct from a
// set whose values all happened to be zero.
func ComputeStatistics(records []domain.TimingRecord) map[string]StatBlock {
	if len(records) == 0 {
		return map[string]StatBlock{}
	}
	stats := make(map[string]StatBlock, len(domain.Quantities))
	for _, q := range domain.Quantities {
		values := make([]float64, 0, len(records))
		for _, r := range records {
			if v := r.Value(q.Key); v > 0 {
				values = append(values, v)
			}
		}
		stats[q.Key] = Describe(values)
	}
	return stats
}

// SlowestRequests returns the n slowest records by total time, descending.
// Ties keep their extraction order so output stays deterministic.
func SlowestRequests(records []domain.TimingRecord, n int) []domain.TimingRecord {
	sorted := append([]domain.TimingRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// StatusCount is one bucket of the status histogram.
type StatusCount struct {
	Status int
	Count  int
}

// StatusHistogram counts records per HTTP status, ascending by status code.
// Status 0 (absent from the source) is an ordinary bucket.
func StatusHistogram(records []domain.TimingRecord) []StatusCount {
	counts := map[int]int{}
	for _, r := range records {
		counts[r.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

// Analysis is the computed session state shared by every renderer. Renderers
// read it as-is and never recompute, so they cannot disagree.
type Analysis struct {
	Session   domain.AnalysisSession
	TopN      int
	Stats     map[string]StatBlock
	Slowest   []domain.TimingRecord
	Histogram []StatusCount
}

// Analyze runs every reduction over the session once.
func Analyze(session domain.AnalysisSession, topN int) Analysis {
	return Analysis{
		Session:   session,
		TopN:      topN,
		Stats:     ComputeStatistics(session.Records),
		Slowest:   SlowestRequests(session.Records, topN),
		Histogram: StatusHistogram(session.Records),
	}
}
