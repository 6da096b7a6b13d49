package sanitize

import (
	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/model"
)

// Result runs the whole sanitization pipeline over a decoded generator
// payload and assembles the GenerationResult: facts, teacher key, both
// question packs, cross-pack reconciliation, goals and teacher notes, in
// that dependency order. It never fails; arbitrarily malformed payloads
// still produce a well-shaped result.
func Result(payload map[string]any, req model.GenerateRequest, wordTarget int, fb Fallbacks) *model.GenerationResult {
	facts := ExtractFacts(payload["canonical_facts"])
	key := CleanTeacherKey(payload["teacher_key"], facts)
	keyIndex := IndexKey(key)

	standard := NormalizeQuestions(payload["standard"], PrefixStandard, facts, keyIndex, 0, fb)
	adapted := NormalizeQuestions(payload["adapted"], PrefixAdapted, facts, keyIndex, AdaptedOptionCap, fb)
	adapted, key = Reconcile(standard, adapted, key, facts)

	spec := cefr.Rules(req.TargetCEFR)
	goals := BuildGoals(payload["goals"], spec, fb)

	standardText := packText(payload, "standard", "standardText")
	adaptedText := packText(payload, "adapted", "adaptedText")
	outputLabel := cefr.LanguageLabel(req.OutputLanguage)

	return &model.GenerationResult{
		Meta: model.Meta{
			InputLanguage:  "auto",
			OutputLanguage: req.OutputLanguage,
			TargetCEFR:     string(req.TargetCEFR),
			TextType:       string(req.TextType),
			Length:         string(req.Length),
			WordTarget:     wordTarget,
		},
		Goals:          goals,
		CanonicalFacts: facts,
		Standard:       model.Pack{Text: standardText, Questions: standard},
		Adapted:        model.Pack{Text: adaptedText, Questions: adapted},
		TeacherKey:     key,
		TeacherNotes:   BuildNotes(req, payload["teacher_notes"], outputLabel, standardText, goals.CEFRFocus, fb),
	}
}

// packText reads the pack's text, tolerating the flattened field spelling
// some generator responses use.
func packText(payload map[string]any, pack, flat string) string {
	if obj, ok := payload[pack].(map[string]any); ok {
		if text := ToString(obj["text"]); text != "" {
			return text
		}
	}
	return ToString(payload[flat])
}
