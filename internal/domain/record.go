package domain

// TimingRecord holds the normalized timings of a single HTTP exchange taken
// from one HAR entry. All durations are milliseconds; phase values are never
// negative (the HAR -1 "not applicable" sentinel is normalized to 0).
type TimingRecord struct {
	URL       string  `json:"url"`
	Method    string  `json:"method"`
	Status    int     `json:"status"`
	TotalTime float64 `json:"total_time"`
	Blocked   float64 `json:"blocked"`
	DNS       float64 `json:"dns"`
	Connect   float64 `json:"connect"`
	Send      float64 `json:"send"`
	Wait      float64 `json:"wait"`
	Receive   float64 `json:"receive"`
	SSL       float64 `json:"ssl"`
}

// Quantity identifies one measured duration of a record.
type Quantity struct {
	Key  string // stable key used in the export document
	Name string // display name used in the console report
}

// Quantities lists the eight measured durations in report order.
var Quantities = []Quantity{
	{Key: "total_time", Name: "Total Time"},
	{Key: "blocked", Name: "Blocked"},
	{Key: "dns", Name: "DNS Lookup"},
	{Key: "connect", Name: "TCP Connect"},
	{Key: "send", Name: "Send Request"},
	{Key: "wait", Name: "Wait (TTFB)"},
	{Key: "receive", Name: "Download"},
	{Key: "ssl", Name: "SSL/TLS"},
}

// Value returns the record's duration for the given quantity key.
func (r TimingRecord) Value(key string) float64 {
	switch key {
	case "total_time":
		return r.TotalTime
	case "blocked":
		return r.Blocked
	case "dns":
		return r.DNS
	case "connect":
		return r.Connect
	case "send":
		return r.Send
	case "wait":
		return r.Wait
	case "receive":
		return r.Receive
	case "ssl":
		return r.SSL
	}
	return 0
}
