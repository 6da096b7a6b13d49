package sanitize

import (
	"strings"

	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/model"
)

// Backfill slice sizes when a cefr_focus list survives filtering empty.
const (
	focusGrammarDefault    = 4
	focusStructuresDefault = 3
	focusVocabularyDefault = 3
)

// Caps on caller-facing goal lists.
const (
	maxLessonGoals     = 4
	minLessonGoals     = 2
	maxSuccessCriteria = 6
	minSuccessCriteria = 3
)

// BuildGoals coerces a loose goals payload (an array is read as lesson
// goals; an object may carry lesson_goals, success_criteria and cefr_focus)
// into the strict Goals shape. Focus lists are intersected case-insensitively
// with the level allow-lists, falling back to a fixed-size prefix of the
// allow-list itself; goal lists fall back to, and are topped up from, the
// fixed literal sentences.
func BuildGoals(raw any, spec cefr.LevelSpec, fb Fallbacks) model.Goals {
	var lessonGoals, successCriteria []string
	var focusIn map[string]any

	switch v := raw.(type) {
	case []any:
		lessonGoals = StringList(v)
	case map[string]any:
		if lg, ok := v["lesson_goals"].([]any); ok {
			lessonGoals = StringList(lg)
		}
		if sc, ok := v["success_criteria"].([]any); ok {
			successCriteria = StringList(sc)
		}
		focusIn, _ = v["cefr_focus"].(map[string]any)
	}

	lessonGoals = boundList(lessonGoals, fb.LessonGoals, minLessonGoals, maxLessonGoals)
	successCriteria = boundList(successCriteria, fb.SuccessCriteria, minSuccessCriteria, maxSuccessCriteria)

	return model.Goals{
		LessonGoals:     lessonGoals,
		SuccessCriteria: successCriteria,
		CEFRFocus: model.CEFRFocus{
			Grammar:    focusList(focusIn, "grammar", spec.Grammar, focusGrammarDefault),
			Structures: focusList(focusIn, "structures", spec.Structures, focusStructuresDefault),
			Vocabulary: focusList(focusIn, "vocabulary", spec.Vocabulary, focusVocabularyDefault),
		},
	}
}

// focusList intersects the supplied entries with the allow-list; an empty
// intersection is replaced by the allow-list's own prefix.
func focusList(focusIn map[string]any, field string, allowed []string, defaults int) []string {
	var supplied []string
	if focusIn != nil {
		supplied = StringList(focusIn[field])
	}
	kept := intersect(supplied, allowed)
	if len(kept) > 0 {
		return kept
	}
	if defaults > len(allowed) {
		defaults = len(allowed)
	}
	return append([]string(nil), allowed[:defaults]...)
}

// intersect keeps src entries present (case-insensitively) in allowed,
// preserving src order. An empty allow-list keeps everything.
func intersect(src, allowed []string) []string {
	if len(allowed) == 0 {
		return src
	}
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[strings.ToLower(a)] = true
	}
	var out []string
	for _, s := range src {
		if set[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

// boundList caps the list at max and tops a short-but-present list up from
// the fallback pool so the output schema minimums always hold.
func boundList(list, fallback []string, min, max int) []string {
	if len(list) == 0 {
		list = append([]string(nil), fallback...)
	}
	if len(list) > max {
		list = list[:max]
	}
	for _, fb := range fallback {
		if len(list) >= min {
			break
		}
		if !containsFold(list, fb) {
			list = append(list, fb)
		}
	}
	return list
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
