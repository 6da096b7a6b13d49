package sanitize

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/aontas/aontas/internal/model"
)

func TestClassifySkill(t *testing.T) {
	tests := []struct {
		in   any
		want model.Skill
	}{
		{"synonym", model.SkillSynonym},
		{"SYNONYM", model.SkillSynonym},
		{"find a syn. for", model.SkillSynonym},
		{"antonyms please", model.SkillAntonym},
		{"grammar point", model.SkillGrammar},
		{"usage", model.SkillGrammar},
		{"language focus", model.SkillGrammar},
		{"collocations", model.SkillCollocation},
		{"preposition", model.SkillCollocation},
		{"reference", model.SkillReference},
		{"pronoun chain", model.SkillReference},
		{"", model.SkillComp},
		{nil, model.SkillComp},
		{"something else", model.SkillComp},
	}
	for _, tt := range tests {
		if got := ClassifySkill(tt.in); got != tt.want {
			t.Errorf("ClassifySkill(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		options []string
		prompt  string
		want    model.QuestionType
	}{
		{"valid type kept", "mcq", nil, "", model.QuestionMCQ},
		{"not given wins", "", []string{"True", "False", "Not given"}, "", model.QuestionTFNG},
		{"true/false", "", []string{"True", "False"}, "", model.QuestionTF},
		{"plain options", "", []string{"Paris", "London"}, "", model.QuestionMCQ},
		{"no options question mark", "", nil, "What happened?", model.QuestionShort},
		{"no options statement", "", nil, "Explain.", model.QuestionShort},
		{"garbage type with options", "multiple-choice", []string{"a", "b"}, "", model.QuestionMCQ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyType(tt.raw, tt.options, tt.prompt); got != tt.want {
				t.Errorf("ClassifyType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBestOptionIndex(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    int
	}{
		{"exact match", []string{"London", "Paris", "Berlin"}, "paris", 1},
		{"substring containment", []string{"in the North", "the South"}, "North", 0},
		{"token overlap", []string{"a red car", "a blue boat"}, "the boat was blue", 1},
		{"tie keeps earliest", []string{"alpha", "beta"}, "nothing matches", 0},
		{"empty options", nil, "x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestOptionIndex(tt.options, tt.answer); got != tt.want {
				t.Errorf("BestOptionIndex(%v, %q) = %d, want %d", tt.options, tt.answer, got, tt.want)
			}
		})
	}
}

func sampleFacts() []model.Fact {
	return []model.Fact{
		{ID: "F1", Text: "Paris"},
		{ID: "F2", Text: "1789"},
		{ID: "F3", Text: "the Seine"},
	}
}

func TestNormalizeQuestionsCount(t *testing.T) {
	facts := sampleFacts()
	fb := DefaultFallbacks()

	tests := []struct {
		name  string
		count int
	}{
		{"zero input questions", 0},
		{"three input questions", 3},
		{"twelve input questions", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var qs []any
			for i := 0; i < tt.count; i++ {
				qs = append(qs, map[string]any{"prompt": "q"})
			}
			pack := map[string]any{"questions": qs}
			got := NormalizeQuestions(pack, PrefixStandard, facts, nil, 0, fb)
			if len(got) != model.QuestionsPerPack {
				t.Fatalf("got %d questions, want %d", len(got), model.QuestionsPerPack)
			}
		})
	}
}

func TestNormalizeQuestionsFiller(t *testing.T) {
	facts := sampleFacts()
	fb := DefaultFallbacks()

	got := NormalizeQuestions(map[string]any{}, PrefixAdapted, facts, nil, AdaptedOptionCap, fb)
	if len(got) != model.QuestionsPerPack {
		t.Fatalf("got %d questions", len(got))
	}
	for i, q := range got {
		if q.Prompt != fb.FillerPrompt {
			t.Errorf("question %d prompt = %q", i, q.Prompt)
		}
		if q.Skill != model.SkillComp || q.Type != model.QuestionShort {
			t.Errorf("question %d skill/type = %s/%s", i, q.Skill, q.Type)
		}
		if want := facts[i%len(facts)].ID; q.AnswerID != want {
			t.Errorf("question %d answer_id = %s, want %s (cycling)", i, q.AnswerID, want)
		}
		if q.ID != PrefixAdapted+string(rune('1'+i)) {
			t.Errorf("question %d id = %s", i, q.ID)
		}
	}
}

func TestNormalizeQuestionsAdaptedOptionCap(t *testing.T) {
	pack := map[string]any{"questions": []any{
		map[string]any{"prompt": "pick", "options": []any{"a", "b", "c", "d", "e"}},
	}}
	got := NormalizeQuestions(pack, PrefixAdapted, sampleFacts(), nil, AdaptedOptionCap, DefaultFallbacks())
	if len(got[0].Options) != 3 {
		t.Errorf("adapted options = %v, want 3 entries", got[0].Options)
	}

	std := NormalizeQuestions(pack, PrefixStandard, sampleFacts(), nil, 0, DefaultFallbacks())
	if len(std[0].Options) != 5 {
		t.Errorf("standard options = %v, want all 5", std[0].Options)
	}
}

func TestNormalizeQuestionsCorrectOption(t *testing.T) {
	keyIndex := map[string]string{"F1": "Paris"}
	pack := map[string]any{"questions": []any{
		map[string]any{
			"prompt":    "Which city?",
			"options":   []any{"Paris", "London", "Berlin"},
			"answer_id": "F1",
			"type":      "mcq",
		},
	}}
	got := NormalizeQuestions(pack, PrefixStandard, sampleFacts(), keyIndex, 0, DefaultFallbacks())
	if got[0].CorrectOption == nil || *got[0].CorrectOption != 0 {
		t.Fatalf("correct_option = %v, want 0", got[0].CorrectOption)
	}
}

func TestNormalizeQuestionsKeepsSuppliedCorrectOption(t *testing.T) {
	pack := map[string]any{"questions": []any{
		map[string]any{
			"prompt":         "Which city?",
			"options":        []any{"Paris", "London"},
			"answer_id":      "F1",
			"correct_option": 1.0,
		},
	}}
	got := NormalizeQuestions(pack, PrefixStandard, sampleFacts(), map[string]string{"F1": "Paris"}, 0, DefaultFallbacks())
	if got[0].CorrectOption == nil || *got[0].CorrectOption != 1 {
		t.Fatalf("supplied correct_option should win, got %v", got[0].CorrectOption)
	}
}

func TestNormalizeQuestionsFallsBackToFactText(t *testing.T) {
	// No key entry for F3: the resolver should match against the fact text.
	pack := map[string]any{"questions": []any{
		map[string]any{
			"prompt":    "Which river?",
			"options":   []any{"the Thames", "the Seine"},
			"answer_id": "F3",
		},
	}}
	got := NormalizeQuestions(pack, PrefixStandard, sampleFacts(), nil, 0, DefaultFallbacks())
	if got[0].CorrectOption == nil || *got[0].CorrectOption != 1 {
		t.Fatalf("correct_option = %v, want 1", got[0].CorrectOption)
	}
}

func TestNormalizeQuestionsStringOptions(t *testing.T) {
	pack := map[string]any{"questions": []any{
		map[string]any{"prompt": "pick", "options": "yes; no; maybe"},
	}}
	got := NormalizeQuestions(pack, PrefixStandard, sampleFacts(), nil, 0, DefaultFallbacks())
	want := []string{"yes", "no", "maybe"}
	if !reflect.DeepEqual(got[0].Options, want) {
		t.Errorf("options = %v, want %v", got[0].Options, want)
	}
}

// Re-running the normalizer over its own marshaled output must change
// nothing: no re-truncation, no re-inference, no new padding.
func TestNormalizeQuestionsIdempotent(t *testing.T) {
	facts := sampleFacts()
	fb := DefaultFallbacks()
	keyIndex := map[string]string{"F1": "Paris", "F2": "1789"}

	pack := map[string]any{"questions": []any{
		map[string]any{"prompt": "Which city?", "options": []any{"Paris", "London", "Berlin", "Rome"}, "answer_id": "F1"},
		map[string]any{"question": "When was it founded?", "type": "short"},
		map[string]any{"prompt": "True or false?", "options": "True; False"},
	}}

	first := NormalizeQuestions(pack, PrefixAdapted, facts, keyIndex, AdaptedOptionCap, fb)

	// Round-trip through JSON the way a stored pack would come back.
	data, err := json.Marshal(map[string]any{"questions": first})
	if err != nil {
		t.Fatal(err)
	}
	var roundTrip map[string]any
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatal(err)
	}

	second := NormalizeQuestions(roundTrip, PrefixAdapted, facts, keyIndex, AdaptedOptionCap, fb)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("normalization is not idempotent:\n first = %s\nsecond = %s", firstJSON, secondJSON)
	}
}
