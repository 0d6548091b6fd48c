package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"light-calculator/calc"
)

var sampleEntries = []calc.HistoryEntry{
	{ID: "b", Expression: "5 ÷ 0", Result: "0", Timestamp: time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)},
	{ID: "a", Expression: "7 + 3", Result: "10", Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
}

func TestExportHistoryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := ExportHistory(sampleEntries, FormatJSON, path); err != nil {
		t.Fatalf("ExportHistory failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var export HistoryExport
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(export.Entries) != 2 || export.Entries[0].Expression != "5 ÷ 0" {
		t.Errorf("unexpected entries: %+v", export.Entries)
	}
	if export.Metadata["app_name"] != "Light Calculator" {
		t.Errorf("missing metadata: %v", export.Metadata)
	}
}

func TestHistoryToMarkdown(t *testing.T) {
	md := HistoryToMarkdown(sampleEntries)
	if !strings.Contains(md, "| 2024-03-01 09:00:00 | `7 + 3` | `10` |") {
		t.Errorf("markdown row missing:\n%s", md)
	}
	if strings.Index(md, "5 ÷ 0") > strings.Index(md, "7 + 3") {
		t.Error("entries should keep newest first order")
	}

	empty := HistoryToMarkdown(nil)
	if !strings.Contains(empty, "No calculations") {
		t.Errorf("unexpected empty export: %s", empty)
	}
}

func TestExportHistoryUnknownFormat(t *testing.T) {
	err := ExportHistory(sampleEntries, ExportFormat("xml"), filepath.Join(t.TempDir(), "h.xml"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestGenerateExportFilename(t *testing.T) {
	name := GenerateExportFilename(FormatMarkdown)
	if !strings.HasPrefix(name, "calculator_history_") || !strings.HasSuffix(name, ".md") {
		t.Errorf("unexpected file name %s", name)
	}
	if !strings.HasSuffix(GenerateExportFilename(FormatJSON), ".json") {
		t.Error("json export should use .json")
	}
}
