package llm

import (
	"strings"
	"testing"

	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/model"
)

func TestBuildGenerateSystemPrompt(t *testing.T) {
	prompt := buildGenerateSystemPrompt()
	for _, want := range []string{
		"STANDARD text + 8 questions",
		"ADAPTED text + 8 questions",
		"teacher_key via answer_id",
		"QUESTION BALANCE",
		"75-85% of final Standard length",
		"Q6-Q8 have 3 options (not 4)",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildGenerateUserPrompt(t *testing.T) {
	req := model.GenerateRequest{
		TargetCEFR:       model.LevelB1,
		TextType:         model.TypeArticle,
		OutputLanguage:   "es",
		Length:           model.LengthStandard,
		PublicSchoolMode: true,
	}

	prompt := buildGenerateUserPrompt(req, "El puente se abrió en 1932.", 160)
	if !strings.Contains(prompt, "OUTPUT_LANGUAGE_NAME: Spanish") {
		t.Error("prompt should resolve the language label")
	}
	if !strings.Contains(prompt, "LANGUAGE LOCK: Write EVERYTHING in Spanish only") {
		t.Error("prompt should lock the output language")
	}
	if !strings.Contains(prompt, "TARGET_CEFR: B1") {
		t.Error("prompt should carry the CEFR level")
	}
	if !strings.Contains(prompt, "WORD_TARGET: 160") {
		t.Error("prompt should carry the word target")
	}
	if !strings.Contains(prompt, "PUBLIC_SCHOOL_MODE: on") || !strings.Contains(prompt, "DYSLEXIA_FRIENDLY: off") {
		t.Error("prompt should echo the mode flags")
	}
	if !strings.Contains(prompt, "Allowed grammar:") {
		t.Error("prompt should list the CEFR focus")
	}
	if !strings.Contains(prompt, "SOURCE_TEXT:\nEl puente se abrió en 1932.") {
		t.Error("prompt should end with the source text")
	}
}

func TestBuildGenerateUserPromptLongCap(t *testing.T) {
	req := model.GenerateRequest{
		TargetCEFR:     model.LevelC2,
		TextType:       model.TypeArticle,
		OutputLanguage: "en",
		Length:         model.LengthLong,
	}
	prompt := buildGenerateUserPrompt(req, "text", 429)
	if !strings.Contains(prompt, "WORD_TARGET: 400") {
		t.Errorf("long articles cap at 400 words:\n%s", prompt)
	}

	req.TextType = model.TypeReport
	prompt = buildGenerateUserPrompt(req, "text", 429)
	if !strings.Contains(prompt, "WORD_TARGET: 420") {
		t.Error("long reports cap at 420 words")
	}
}

func TestBuildRewritePrompts(t *testing.T) {
	c := enforce.Constraints{
		MinWords: 144,
		MaxWords: 176,
		Language: "en",
		TextType: model.TypeArticle,
		CEFR:     model.LevelB1,
		Label:    "standard",
	}

	sys := buildRewriteSystemPrompt(c)
	if !strings.Contains(sys, "Target word range: [144, 176] words.") {
		t.Errorf("system prompt missing window:\n%s", sys)
	}
	if !strings.Contains(sys, `Return JSON: {"text":"..."}`) {
		t.Error("system prompt should pin the response shape")
	}

	t.Run("too short expands", func(t *testing.T) {
		user := buildRewriteUserPrompt("short text", c, 100)
		if !strings.Contains(user, "STANDARD TEXT:\nshort text") {
			t.Errorf("user prompt = %q", user)
		}
		if !strings.Contains(user, "Expand by about 44 words.") {
			t.Errorf("user prompt = %q", user)
		}
	})

	t.Run("too long tightens", func(t *testing.T) {
		user := buildRewriteUserPrompt("long text", c, 200)
		if !strings.Contains(user, "Tighten by about 24 words.") {
			t.Errorf("user prompt = %q", user)
		}
	})
}
