package model

import (
	"fmt"
	"net/url"
	"strings"
)

// GenerateRequest is the caller's worksheet request. Exactly one of
// SourceText or SourceURL must be usable.
type GenerateRequest struct {
	SourceText       string       `json:"sourceText,omitempty"`
	SourceURL        string       `json:"sourceUrl,omitempty"`
	TargetCEFR       CEFRLevel    `json:"targetCefr"`
	TextType         TextType     `json:"textType"`
	OutputLanguage   string       `json:"outputLanguage"`
	Length           LengthChoice `json:"length"`
	PublicSchoolMode bool         `json:"publicSchoolMode"`
	DyslexiaFriendly bool         `json:"dyslexiaFriendly"`
}

// Normalize trims string fields and applies defaults for omitted ones.
func (r *GenerateRequest) Normalize() {
	r.SourceText = strings.TrimSpace(r.SourceText)
	r.SourceURL = strings.TrimSpace(r.SourceURL)
	r.OutputLanguage = strings.TrimSpace(r.OutputLanguage)
	if r.OutputLanguage == "" {
		r.OutputLanguage = "en"
	}
	if r.Length == "" {
		r.Length = LengthStandard
	}
}

// Validate checks the request shape. A failure here is a client error:
// no partial processing happens after it.
func (r *GenerateRequest) Validate() error {
	if r.SourceText == "" && r.SourceURL == "" {
		return fmt.Errorf("provide sourceText or sourceUrl")
	}
	if r.SourceURL != "" {
		u, err := url.Parse(r.SourceURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("sourceUrl is not a valid http(s) URL")
		}
	}
	if !r.TargetCEFR.Valid() {
		return fmt.Errorf("targetCefr must be one of A1, A2, B1, B2, C1, C2")
	}
	if !r.TextType.Valid() {
		return fmt.Errorf("textType %q is not supported", r.TextType)
	}
	if !r.Length.Valid() {
		return fmt.Errorf("length must be short, standard or long")
	}
	return nil
}

// SourceLabel describes where the source text came from, for the
// teacher-notes input record.
func (r *GenerateRequest) SourceLabel() string {
	if r.SourceText != "" {
		return "pasted text"
	}
	if r.SourceURL != "" {
		return r.SourceURL
	}
	return "unknown"
}
