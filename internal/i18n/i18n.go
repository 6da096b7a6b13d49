// Package i18n localizes the fixed strings the sanitization pipeline
// injects when the generator omits data, so fallback content matches the
// worksheet's output language.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/aontas/aontas/internal/sanitize"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle holds the loaded translations and hands out per-language
// fallback sets.
type Bundle struct {
	bundle *i18n.Bundle
}

// Load reads all embedded locale files into a bundle with English as the
// default language.
func Load() (*Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
		slog.Debug("loaded locale file", "file", e.Name())
	}

	return &Bundle{bundle: b}, nil
}

// Fallbacks returns the pipeline fallback strings localized for lang.
// Languages without a locale file get the English defaults.
func (b *Bundle) Fallbacks(lang string) sanitize.Fallbacks {
	loc := i18n.NewLocalizer(b.bundle, lang)
	t := func(id string) string {
		s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			slog.Warn("missing translation", "id", id, "error", err)
			return id
		}
		return s
	}

	return sanitize.Fallbacks{
		FillerPrompt: t("filler_prompt"),
		LessonGoals: []string{
			t("lesson_goal_1"),
			t("lesson_goal_2"),
		},
		SuccessCriteria: []string{
			t("success_criterion_1"),
			t("success_criterion_2"),
			t("success_criterion_3"),
		},
		PreteachDefinition: t("preteach_definition"),
		ExtensionActivities: []string{
			t("extension_activity_1"),
			t("extension_activity_2"),
		},
	}
}
