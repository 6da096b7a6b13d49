package cefr

import (
	"testing"

	"github.com/aontas/aontas/internal/model"
)

func TestTargetWords(t *testing.T) {
	tests := []struct {
		name     string
		level    model.CEFRLevel
		length   model.LengthChoice
		textType model.TextType
		want     int
	}{
		{"B1 standard article", model.LevelB1, model.LengthStandard, model.TypeArticle, 160},
		{"A1 short article", model.LevelA1, model.LengthShort, model.TypeArticle, 53},
		{"B1 long report under cap", model.LevelB1, model.LengthLong, model.TypeReport, 229},
		{"C2 long article capped", model.LevelC2, model.LengthLong, model.TypeArticle, 390},
		{"C2 long report capped", model.LevelC2, model.LengthLong, model.TypeReport, 420},
		{"B2 standard informal email", model.LevelB2, model.LengthStandard, model.TypeInformalEmail, 144},
		{"unknown level falls back to B1", model.CEFRLevel("Z9"), model.LengthStandard, model.TypeArticle, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetWords(tt.level, tt.length, tt.textType)
			if got != tt.want {
				t.Errorf("TargetWords(%s, %s, %s) = %d, want %d",
					tt.level, tt.length, tt.textType, got, tt.want)
			}
		})
	}
}

func TestRulesNeverEmpty(t *testing.T) {
	for _, level := range model.Levels {
		spec := Rules(level)
		if len(spec.Grammar) == 0 || len(spec.Structures) == 0 || len(spec.Vocabulary) == 0 {
			t.Errorf("level %s has an empty allow-list", level)
		}
	}
	if len(Rules(model.CEFRLevel("nope")).Grammar) == 0 {
		t.Error("unknown level should fall back to a non-empty spec")
	}
}

func TestStyleGuideCoversAllTypes(t *testing.T) {
	for _, tt := range model.TextTypes {
		if StyleGuide(tt) == "" {
			t.Errorf("no style guide for text type %s", tt)
		}
	}
}

func TestLanguageLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"de", "German"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LanguageLabel(tt.code); got != tt.want {
			t.Errorf("LanguageLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
