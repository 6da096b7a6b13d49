package sanitize

import (
	"strings"

	"github.com/aontas/aontas/internal/model"
)

// Reconcile aligns the adapted pack against the standard pack and closes
// every dangling answer reference. Both packs must already be normalized to
// QuestionsPerPack entries.
//
// Alignment is positional: adapted question i answers the same thing as
// standard question i, so a missing answer_id or free-text answer on the
// adapted side is inherited from its pair. Present values are never
// overridden.
//
// Back-fill then guarantees that every answer_id referenced by either pack
// resolves to exactly one teacher-key entry. The key is append-only; missing
// entries are synthesized from the question's own answer text, its resolved
// correct option, the matching fact, or a placeholder, in that order.
func Reconcile(standard, adapted []model.Question, key []model.Answer, facts []model.Fact) ([]model.Question, []model.Answer) {
	for i := range adapted {
		if i >= len(standard) {
			break
		}
		if adapted[i].AnswerID == "" {
			adapted[i].AnswerID = standard[i].AnswerID
		}
		if strings.TrimSpace(adapted[i].Answer) == "" {
			adapted[i].Answer = standard[i].Answer
		}
	}

	seen := make(map[string]bool, len(key))
	for _, a := range key {
		seen[a.AnswerID] = true
	}

	for _, q := range append(append([]model.Question{}, standard...), adapted...) {
		id := strings.TrimSpace(q.AnswerID)
		if id == "" || seen[id] {
			continue
		}
		key = append(key, model.Answer{AnswerID: id, Answer: answerText(q, facts)})
		seen[id] = true
	}
	return adapted, key
}

// answerText recovers the best available answer text for a question.
func answerText(q model.Question, facts []model.Fact) string {
	if text := strings.TrimSpace(q.Answer); text != "" {
		return text
	}
	if q.Type == model.QuestionMCQ && q.CorrectOption != nil {
		if i := *q.CorrectOption; i >= 0 && i < len(q.Options) {
			return q.Options[i]
		}
	}
	if text := factText(facts, q.AnswerID); text != "" {
		return text
	}
	return PlaceholderAnswer
}
