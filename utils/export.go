package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"light-calculator/calc"
)

// ExportFormat represents the export format
type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatMarkdown ExportFormat = "markdown"
)

// HistoryExport represents a history export structure
type HistoryExport struct {
	Entries  []calc.HistoryEntry `json:"entries"`
	Metadata map[string]string   `json:"metadata,omitempty"`
}

// ExportHistory writes entries to path in the given format
func ExportHistory(entries []calc.HistoryEntry, format ExportFormat, path string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = HistoryToJSON(entries)
	case FormatMarkdown:
		data = []byte(HistoryToMarkdown(entries))
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// HistoryToJSON renders entries as indented JSON with export metadata
func HistoryToJSON(entries []calc.HistoryEntry) ([]byte, error) {
	export := HistoryExport{
		Entries: entries,
		Metadata: map[string]string{
			"export_version": "1.0",
			"export_date":    time.Now().Format(time.RFC3339),
			"app_name":       "Light Calculator",
		},
	}
	if export.Entries == nil {
		export.Entries = []calc.HistoryEntry{}
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// HistoryToMarkdown renders entries as a Markdown table, newest first
func HistoryToMarkdown(entries []calc.HistoryEntry) string {
	var sb strings.Builder

	sb.WriteString("# Calculation History\n\n")
	if len(entries) == 0 {
		sb.WriteString("_No calculations._\n")
		return sb.String()
	}

	sb.WriteString("| Time | Expression | Result |\n")
	sb.WriteString("|---|---|---|\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("| %s | `%s` | `%s` |\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			escapeMarkdownCell(e.Expression),
			escapeMarkdownCell(e.Result),
		))
	}
	return sb.String()
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// GenerateExportFilename builds a timestamped file name for an export
func GenerateExportFilename(format ExportFormat) string {
	ext := string(format)
	if format == FormatMarkdown {
		ext = "md"
	}
	return fmt.Sprintf("calculator_history_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// GetDefaultExportPath returns the export directory, creating it if needed
func GetDefaultExportPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to find home directory")
	}

	exportDir := filepath.Join(homeDir, "Documents", "Calculator_Exports")
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return "", WrapError(err, "failed to create export directory")
	}

	return exportDir, nil
}
