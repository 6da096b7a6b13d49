package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aontas/aontas/internal/model"
)

// ExtractFacts coerces an arbitrary canonical-facts payload into an ordered
// fact list. Elements carrying a "text" field keep their own id when one is
// present; everything else is stringified with a generated F<n> id. Unusable
// input yields an empty list, never an error.
func ExtractFacts(raw any) []model.Fact {
	items := ToList(raw)
	facts := make([]model.Fact, 0, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			if text, ok := obj["text"]; ok {
				id := ToString(obj["id"])
				if id == "" {
					id = fmt.Sprintf("F%d", i+1)
				}
				facts = append(facts, model.Fact{ID: id, Text: ToString(text)})
				continue
			}
		}
		facts = append(facts, model.Fact{ID: fmt.Sprintf("F%d", i+1), Text: ToString(item)})
	}
	return facts
}

// keyLineRe matches "F3: Paris" or "f3 - Paris" teacher-key lines.
var keyLineRe = regexp.MustCompile(`(?i)^(F\d+)\s*[:\-]\s*(.+)$`)

// CleanTeacherKey coerces an arbitrary teacher-key payload into answer
// entries. Objects with an answer_id field are used directly; strings are
// parsed as "<FactId>: <answer>" lines with unmatched lines dropped. When
// nothing usable remains, the key is derived from the facts so every
// generation has one.
func CleanTeacherKey(raw any, facts []model.Fact) []model.Answer {
	items := ToList(raw)

	if len(items) > 0 {
		if obj, ok := items[0].(map[string]any); ok {
			if _, ok := obj["answer_id"]; ok {
				out := make([]model.Answer, 0, len(items))
				for _, item := range items {
					entry, _ := item.(map[string]any)
					out = append(out, model.Answer{
						AnswerID: ToString(entry["answer_id"]),
						Answer:   ToString(entry["answer"]),
					})
				}
				return out
			}
		}
	}

	var out []model.Answer
	for _, item := range items {
		if m := keyLineRe.FindStringSubmatch(ToString(item)); m != nil {
			out = append(out, model.Answer{
				AnswerID: strings.ToUpper(m[1]),
				Answer:   strings.TrimSpace(m[2]),
			})
		}
	}
	if len(out) > 0 {
		return out
	}

	out = make([]model.Answer, 0, len(facts))
	for _, f := range facts {
		out = append(out, model.Answer{AnswerID: f.ID, Answer: f.Text})
	}
	return out
}

// IndexKey builds the answer_id -> answer lookup used during question
// normalization. Later duplicates win, matching insertion order semantics.
func IndexKey(key []model.Answer) map[string]string {
	idx := make(map[string]string, len(key))
	for _, a := range key {
		idx[a.AnswerID] = a.Answer
	}
	return idx
}
