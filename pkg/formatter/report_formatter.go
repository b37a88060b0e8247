// File: pkg/formatter/report_formatter.go
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"imgup/pkg/media"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

const entrySeparator = "-------------------"

func SupportedOutputFormats() []string {
	return []string{string(OutputText), string(OutputTable), string(OutputJSON), string(OutputYAML)}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputTable, OutputJSON, OutputYAML:
		return f, nil
	case "":
		return OutputText, nil
	default:
		return "", fmt.Errorf("unsupported output format '%s'. Supported formats: %s", s, strings.Join(SupportedOutputFormats(), ", "))
	}
}

type ReportFormatter struct {
	successStyle *lipgloss.Style
	failedStyle  *lipgloss.Style
}

// NewReportFormatter returns a formatter for reports written to out. With color enabled,
// the status is styled only when out supports color; pipes and files get plain text.
func NewReportFormatter(out io.Writer, color bool) *ReportFormatter {
	if !color {
		return &ReportFormatter{}
	}

	renderer := lipgloss.NewRenderer(out)
	if renderer.ColorProfile() == termenv.Ascii {
		return &ReportFormatter{}
	}
	success := renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failed := renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	return &ReportFormatter{successStyle: &success, failedStyle: &failed}
}

func (f *ReportFormatter) Format(entries []media.ReportEntry, format OutputFormat) (string, error) {
	switch format {
	case OutputText, "":
		return f.FormatText(entries), nil
	case OutputTable:
		return f.FormatTable(entries), nil
	case OutputJSON:
		return FormatJSON(entries)
	case OutputYAML:
		return FormatYAML(entries)
	default:
		return "", fmt.Errorf("unsupported output format '%s'", format)
	}
}

// FormatText renders the human-readable report, one block per entry in input order
func (f *ReportFormatter) FormatText(entries []media.ReportEntry) string {
	var sb strings.Builder

	sb.WriteString("\nUpload Results:\n")
	for _, entry := range entries {
		sb.WriteString("\n" + entrySeparator + "\n")
		sb.WriteString("File: " + entry.Path + "\n")
		sb.WriteString("Status: " + f.status(entry.Status) + "\n")
		if entry.OK() {
			sb.WriteString("URL: " + entry.URL + "\n")
		} else {
			sb.WriteString("Error: " + entry.Error + "\n")
		}
	}

	return sb.String()
}

func (f *ReportFormatter) FormatTable(entries []media.ReportEntry) string {
	table := NewTable([]string{"FILE", "STATUS", "URL / ERROR", "PUBLIC ID", "SIZE"})

	failed := 0
	for _, entry := range entries {
		detail := entry.URL
		size := media.FormatBytes(entry.Bytes)
		if !entry.OK() {
			detail = entry.Error
			size = "-"
			failed++
		}
		table.AddRow([]string{entry.Path, string(entry.Status), detail, entry.PublicID, size})
	}

	var sb strings.Builder
	sb.WriteString(FormatSectionTitle("Upload Results"))
	sb.WriteString("\n")
	sb.WriteString(table.String())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d uploaded, %d failed\n", len(entries)-failed, failed))
	return sb.String()
}

type reportDocument struct {
	Results []media.ReportEntry `json:"results" yaml:"results"`
}

func FormatJSON(entries []media.ReportEntry) (string, error) {
	data, err := json.MarshalIndent(reportDocument{Results: nonNil(entries)}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding report: %w", err)
	}
	return string(data) + "\n", nil
}

func FormatYAML(entries []media.ReportEntry) (string, error) {
	data, err := yaml.Marshal(reportDocument{Results: nonNil(entries)})
	if err != nil {
		return "", fmt.Errorf("error encoding report: %w", err)
	}
	return string(data), nil
}

func (f *ReportFormatter) status(s media.Status) string {
	switch {
	case s == media.StatusSuccess && f.successStyle != nil:
		return f.successStyle.Render(string(s))
	case s == media.StatusFailed && f.failedStyle != nil:
		return f.failedStyle.Render(string(s))
	default:
		return string(s)
	}
}

func nonNil(entries []media.ReportEntry) []media.ReportEntry {
	if entries == nil {
		return []media.ReportEntry{}
	}
	return entries
}
