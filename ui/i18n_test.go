package ui

import "testing"

func TestTranslatorLanguages(t *testing.T) {
	ar, err := NewTranslator("ar")
	if err != nil {
		t.Fatalf("NewTranslator(ar) failed: %v", err)
	}
	if got := ar.T("app_title"); got != "آلة حاسبة" {
		t.Errorf("ar app_title = %q", got)
	}
	if got := ar.T("advanced_title"); got != "حاسبة علمية" {
		t.Errorf("ar advanced_title = %q", got)
	}

	en, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("NewTranslator(en) failed: %v", err)
	}
	if got := en.T("history_empty"); got != "No previous calculations" {
		t.Errorf("en history_empty = %q", got)
	}
	if got := en.TData("export_done", map[string]interface{}{"Path": "/tmp/h.md"}); got != "History exported to /tmp/h.md" {
		t.Errorf("en export_done = %q", got)
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	fr, err := NewTranslator("fr")
	if err != nil {
		t.Fatalf("NewTranslator(fr) failed: %v", err)
	}
	if got := fr.T("app_title"); got != "Calculator" {
		t.Errorf("unsupported language should fall back to English, got %q", got)
	}
	if got := fr.T("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown id should be returned as is, got %q", got)
	}

	var empty Translator
	if got := empty.T("app_title"); got != "app_title" {
		t.Errorf("zero translator should echo ids, got %q", got)
	}
}
