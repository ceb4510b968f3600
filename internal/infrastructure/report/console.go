package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"har-analyzer/internal/domain"
	"har-analyzer/internal/usecase"
	"har-analyzer/pkg/shared/textutil"
)

const (
	ruleWide    = 80
	ruleNarrow  = 40
	urlMaxChars = 60
)

// WriteConsole renders the human-readable report onto w. All numbers come
// from the precomputed analysis; nothing is derived here.
func WriteConsole(w io.Writer, a usecase.Analysis, useColor bool) {
	heading := color.New(color.FgCyan, color.Bold)
	if !useColor {
		heading.DisableColor()
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", ruleWide))
	heading.Fprintln(w, "HAR File Analysis Summary")
	fmt.Fprintln(w, strings.Repeat("=", ruleWide))
	fmt.Fprintf(w, "File: %s\n", a.Session.SourcePath)
	fmt.Fprintf(w, "Total Requests: %d\n", len(a.Session.Records))
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", ruleWide))

	heading.Fprintln(w, "HTTP Status Code Distribution:")
	fmt.Fprintln(w, strings.Repeat("-", ruleNarrow))
	for _, b := range a.Histogram {
		fmt.Fprintf(w, "  %d: %d requests\n", b.Status, b.Count)
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "Timing Statistics (all times in milliseconds):")
	writeTimingTable(w, a)
	fmt.Fprintln(w)

	heading.Fprintf(w, "Top %d Slowest Requests:\n", a.TopN)
	fmt.Fprintln(w, strings.Repeat("-", ruleWide))
	for i, r := range a.Slowest {
		url := textutil.TruncateURL(r.URL, urlMaxChars)
		fmt.Fprintf(w, "%2d. [%d] %8.2fms - %s %s\n", i+1, r.Status, r.TotalTime, r.Method, url)
	}
	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", ruleWide))
}

func writeTimingTable(w io.Writer, a usecase.Analysis) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Phase", "Count", "Average", "Median", "Min", "Max"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	// len check keeps the empty-session report to a bare header, matching
	// the empty statistics result.
	if len(a.Stats) > 0 {
		for _, q := range domain.Quantities {
			s := a.Stats[q.Key]
			table.Append([]string{
				q.Name,
				strconv.Itoa(s.Count),
				fixed2(s.Average),
				fixed2(s.Median),
				fixed2(s.Min),
				fixed2(s.Max),
			})
		}
	}
	table.Render()
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
