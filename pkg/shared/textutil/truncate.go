package textutil

// TruncateURL shortens s to at most max characters, marking a cut with a
// trailing "...". Strings within the limit are returned verbatim.
func TruncateURL(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
