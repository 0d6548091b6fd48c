package ui

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.json
var translationFS embed.FS

// Translator looks up UI strings for one language, falling back to English
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator loads the embedded translations for lang
func NewTranslator(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"translations/en.json", "translations/ar.json"} {
		if _, err := bundle.LoadMessageFileFS(translationFS, file); err != nil {
			return nil, fmt.Errorf("failed to load translations %s: %w", file, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, lang, "en"),
	}, nil
}

// T returns the translation for id, or id itself when it is unknown
func (t *Translator) T(id string) string {
	return t.TData(id, nil)
}

// TData returns the translation for id with template data filled in
func (t *Translator) TData(id string, data map[string]interface{}) string {
	if t.localizer == nil {
		return id
	}
	// a fallback-language hit can come back with a not-found error
	msg, _ := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg == "" {
		return id
	}
	return msg
}
