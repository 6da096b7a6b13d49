package schema

import (
	"strings"
	"testing"

	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/sanitize"
)

func validResult(t *testing.T) *model.GenerationResult {
	t.Helper()
	req := model.GenerateRequest{
		SourceText:     "The bridge opened in 1932.",
		TargetCEFR:     model.LevelB1,
		TextType:       model.TypeArticle,
		OutputLanguage: "en",
		Length:         model.LengthStandard,
	}
	payload := map[string]any{
		"standardText": "The bridge opened in 1932. It carries trains and cars.",
		"adaptedText":  "The bridge opened in 1932.",
	}
	return sanitize.Result(payload, req, 160, sanitize.DefaultFallbacks())
}

func TestValidateSanitizedResult(t *testing.T) {
	// Whatever the generator returned, the sanitized result must pass.
	if err := Validate(validResult(t)); err != nil {
		t.Fatalf("sanitized result failed validation: %v", err)
	}
}

func TestValidateKeepsUpstreamIDs(t *testing.T) {
	// Generators sometimes number questions and facts their own way; the
	// sanitizer keeps those ids, so validation must accept them too.
	res := validResult(t)
	res.Standard.Questions[0].ID = "Q1"
	res.Standard.Questions[0].AnswerID = "ANS1"
	res.TeacherKey = append(res.TeacherKey, model.Answer{AnswerID: "ANS1", Answer: "1932"})

	if err := Validate(res); err != nil {
		t.Fatalf("upstream id spellings rejected: %v", err)
	}
}

func TestValidateRejectsShortPack(t *testing.T) {
	res := validResult(t)
	res.Standard.Questions = res.Standard.Questions[:5]

	err := Validate(res)
	if err == nil {
		t.Fatal("expected validation failure for 5-question pack")
	}
	if !strings.Contains(err.Error(), "questions") {
		t.Errorf("error should name the questions field: %v", err)
	}
}

func TestValidateRejectsBadEnum(t *testing.T) {
	res := validResult(t)
	res.Standard.Questions[0].Type = "essay"

	if err := Validate(res); err == nil {
		t.Fatal("expected validation failure for unknown question type")
	}
}

func TestValidateRejectsShortVocab(t *testing.T) {
	res := validResult(t)
	res.TeacherNotes.PreteachVocab = res.TeacherNotes.PreteachVocab[:2]

	err := Validate(res)
	if err == nil {
		t.Fatal("expected validation failure for 2-entry preteach vocab")
	}
	if !strings.Contains(err.Error(), "preteach_vocab") {
		t.Errorf("error should name the preteach_vocab field: %v", err)
	}
}

func TestValidateRejectsEmptyKey(t *testing.T) {
	res := validResult(t)
	res.TeacherKey = nil

	if err := Validate(res); err == nil {
		t.Fatal("expected validation failure for missing teacher key")
	}
}
