package cefr

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageLabel resolves an output-language code ("fr", "pt-BR") to an
// English display name for use in prompts and teacher notes. Unparseable
// codes come back unchanged.
func LanguageLabel(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
