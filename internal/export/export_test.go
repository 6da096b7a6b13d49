package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/aontas/aontas/internal/model"
)

func exportResult() *model.GenerationResult {
	one := 1
	return &model.GenerationResult{
		Meta: model.Meta{
			OutputLanguage: "en",
			TargetCEFR:     "B1",
			TextType:       "article",
			Length:         "standard",
			WordTarget:     160,
		},
		Goals: model.Goals{
			LessonGoals:     []string{"Understand the main ideas and key details"},
			SuccessCriteria: []string{"I can find key facts"},
			CEFRFocus: model.CEFRFocus{
				Grammar:    []string{"past simple"},
				Structures: []string{"paragraphing"},
				Vocabulary: []string{"everyday topics"},
			},
		},
		CanonicalFacts: []model.Fact{
			{ID: "F1", Text: "The bridge opened in 1932."},
		},
		Standard: model.Pack{
			Text: "The bridge opened in 1932.",
			Questions: []model.Question{
				{ID: "S1", Type: model.QuestionShort, Prompt: "When did the bridge open?", Answer: "1932", AnswerID: "F1", Skill: model.SkillComp},
				{ID: "S2", Type: model.QuestionMCQ, Prompt: "Closest in meaning to span?", Options: []string{"cross", "close"}, CorrectOption: &one, AnswerID: "F1", Skill: model.SkillSynonym},
			},
		},
		Adapted: model.Pack{
			Text: "The **bridge** opened in 1932.",
			Questions: []model.Question{
				{ID: "A1", Type: model.QuestionShort, Prompt: "When did it open?", Answer: "1932", AnswerID: "F1", Skill: model.SkillComp},
			},
		},
		TeacherKey: []model.Answer{{AnswerID: "F1", Answer: "1932"}},
		TeacherNotes: model.TeacherNotes{
			PreteachVocab: []model.PreteachItem{
				{Term: "bridge", Definition: "a structure over water", Note: "noun"},
			},
		},
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, exportResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<h1>Standard</h1>",
		"<h1>Adapted</h1>",
		"CEFR B1 · article · en",
		"When did the bridge open?",
		"<strong>bridge</strong>",
		"<strong>F1</strong>: The bridge opened in 1932.",
		"<strong>2</strong>: close",
		"<strong>bridge</strong>: a structure over water (noun)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("print HTML missing %q", want)
		}
	}
}

func TestAnswerFromQuestion(t *testing.T) {
	zero := 0
	facts := []model.Fact{{ID: "F1", Text: "fact text"}}

	tests := []struct {
		name string
		q    model.Question
		want string
	}{
		{"mcq correct option", model.Question{Type: model.QuestionMCQ, Options: []string{"a", "b"}, CorrectOption: &zero, Answer: "ignored"}, "a"},
		{"free text answer", model.Question{Type: model.QuestionShort, Answer: "direct"}, "direct"},
		{"fact fallback", model.Question{Type: model.QuestionShort, AnswerID: "F1"}, "fact text"},
		{"placeholder", model.Question{Type: model.QuestionShort, AnswerID: "F9"}, "—"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answerFromQuestion(tt.q, facts); got != tt.want {
				t.Errorf("answerFromQuestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, exportResult()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{sheetOverview, sheetAnswerKey, sheetVocabulary} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("workbook missing sheet %q, have %v", want, sheets)
		}
	}

	cell, err := f.GetCellValue(sheetOverview, "B1")
	if err != nil {
		t.Fatal(err)
	}
	if cell != "B1" {
		t.Errorf("overview B1 = %q, want the CEFR level", cell)
	}

	rows, err := f.GetRows(sheetVocabulary)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][0] != "bridge" {
		t.Errorf("vocabulary rows = %v", rows)
	}
}
