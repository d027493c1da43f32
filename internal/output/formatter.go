package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wesleyorama2/measure/stats"
)

// Report is the document produced by a measurement run. It is what the
// text formatter renders and what `measure run --json` emits.
type Report struct {
	Name        string             `json:"name,omitempty"`
	Count       int64              `json:"count"`
	Sum         float64            `json:"sum"`
	Mean        float64            `json:"mean"`
	Min         float64            `json:"min"`
	Max         float64            `json:"max"`
	StdDev      float64            `json:"stdDev"`
	Variance    float64            `json:"variance"`
	Percentiles map[string]float64 `json:"percentiles,omitempty"`
	Workers     int                `json:"workers,omitempty"`
	Iterations  int                `json:"iterations,omitempty"`
	Elapsed     time.Duration      `json:"elapsed,omitempty"`
}

// BuildReport reads all accessors of a histogram plus the requested
// reservoir percentiles into a Report.
func BuildReport(name string, h *stats.Histogram, percentiles []float64) *Report {
	report := &Report{
		Name:     name,
		Count:    h.Count(),
		Sum:      h.Sum(),
		Mean:     h.Mean(),
		Min:      h.Min(),
		Max:      h.Max(),
		StdDev:   h.StdDev(),
		Variance: h.Variance(),
	}

	if len(percentiles) > 0 {
		snap := h.Snapshot()
		values := snap.Percentiles(percentiles)
		report.Percentiles = make(map[string]float64, len(percentiles))
		for i, q := range percentiles {
			report.Percentiles[PercentileKey(q)] = values[i]
		}
	}

	return report
}

// PercentileKey names a percentile in a report, e.g. 99 -> "p99",
// 99.9 -> "p99_9". Dots are replaced so the keys stay addressable as plain
// JSON path segments.
func PercentileKey(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	return "p" + strings.ReplaceAll(s, ".", "_")
}

// Formatter renders reports for terminal display
type Formatter struct {
	NoColor bool
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	return &Formatter{NoColor: noColor}
}

func (f *Formatter) scheme() *ColorScheme {
	if f.NoColor {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}

// FormatReport formats a report as a human-readable text summary
func (f *Formatter) FormatReport(r *Report) string {
	scheme := f.scheme()
	var buf strings.Builder

	title := r.Name
	if title == "" {
		title = "summary"
	}
	buf.WriteString(fmt.Sprintf("▶ %s\n", scheme.Title.Sprint(title)))

	if r.Workers > 0 {
		buf.WriteString(fmt.Sprintf("  %s %d workers × %d iterations",
			scheme.Label.Sprint("Workload:"), r.Workers, r.Iterations))
		if r.Elapsed > 0 {
			buf.WriteString(fmt.Sprintf(" in %s", scheme.Value.Sprint(r.Elapsed.Round(time.Millisecond))))
		}
		buf.WriteString("\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Count", fmt.Sprintf("%d", r.Count)},
		{"Sum", formatFloat(r.Sum)},
		{"Mean", formatFloat(r.Mean)},
		{"Min", formatFloat(r.Min)},
		{"Max", formatFloat(r.Max)},
		{"StdDev", formatFloat(r.StdDev)},
		{"Variance", formatFloat(r.Variance)},
	}
	for _, row := range rows {
		buf.WriteString(fmt.Sprintf("  %-10s %s\n",
			scheme.Label.Sprint(row.label+":"), scheme.Value.Sprint(row.value)))
	}

	if len(r.Percentiles) > 0 {
		buf.WriteString(fmt.Sprintf("  %s\n", scheme.Label.Sprint("Percentiles:")))
		for _, key := range sortedPercentileKeys(r.Percentiles) {
			buf.WriteString(fmt.Sprintf("    %-8s %s\n",
				scheme.Highlight.Sprint(key+":"), scheme.Value.Sprint(formatFloat(r.Percentiles[key]))))
		}
	}

	return buf.String()
}

// FormatJSON formats a report as indented JSON
func (f *Formatter) FormatJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sortedPercentileKeys orders keys by their numeric quantile, not
// lexically, so p99 sorts after p9.
func sortedPercentileKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return percentileKeyValue(keys[i]) < percentileKeyValue(keys[j])
	})
	return keys
}

func percentileKeyValue(key string) float64 {
	s := strings.ReplaceAll(strings.TrimPrefix(key, "p"), "_", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
