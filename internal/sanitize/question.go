package sanitize

import (
	"fmt"
	"strings"

	"github.com/aontas/aontas/internal/model"
)

// Pack prefixes for generated question ids.
const (
	PrefixStandard = "S"
	PrefixAdapted  = "A"
)

// AdaptedOptionCap limits adapted-pack questions to 3 options to reduce
// choice load. 0 means uncapped.
const AdaptedOptionCap = 3

// skillRules maps prompt keywords to skills, evaluated top to bottom. The
// first substring hit wins; no hit falls through to comp.
var skillRules = []struct {
	substr string
	skill  model.Skill
}{
	{"syn", model.SkillSynonym},
	{"ant", model.SkillAntonym},
	{"gram", model.SkillGrammar},
	{"usage", model.SkillGrammar},
	{"language", model.SkillGrammar},
	{"colloc", model.SkillCollocation},
	{"prep", model.SkillCollocation},
	{"refer", model.SkillReference},
	{"pronoun", model.SkillReference},
}

// ClassifySkill validates a raw skill value against the allowed set, else
// infers one by keyword, else defaults to comp.
func ClassifySkill(raw any) model.Skill {
	s := strings.ToLower(ToString(raw))
	if skill := model.Skill(s); skill.Valid() {
		return skill
	}
	for _, rule := range skillRules {
		if strings.Contains(s, rule.substr) {
			return rule.skill
		}
	}
	return model.SkillComp
}

// ClassifyType validates a raw type value, else infers one from the option
// shape: a "not given" token means tfng, true/false tokens mean tf, any
// other 2+ options mean mcq, and everything else is a short answer.
func ClassifyType(raw any, options []string, prompt string) model.QuestionType {
	s := strings.ToLower(ToString(raw))
	if qt := model.QuestionType(s); qt.Valid() {
		return qt
	}
	joined := strings.ToLower(strings.Join(options, " "))
	switch {
	case strings.Contains(joined, "not given"):
		return model.QuestionTFNG
	case len(options) >= 2 && (strings.Contains(joined, "true") || strings.Contains(joined, "false")):
		return model.QuestionTF
	case len(options) >= 2:
		return model.QuestionMCQ
	}
	return model.QuestionShort
}

// BestOptionIndex scores each option against the known answer text and
// returns the best index: exact case-insensitive match beats substring
// containment beats token overlap. Ties keep the earliest index.
func BestOptionIndex(options []string, answer string) int {
	if len(options) == 0 {
		return 0
	}
	a := strings.ToLower(answer)
	answerTokens := tokenSet(a)

	best, bestScore := 0, -1
	for i, opt := range options {
		low := strings.ToLower(opt)
		var score int
		switch {
		case low == a:
			score = 3
		case strings.Contains(low, a) || strings.Contains(a, low):
			score = 2
		default:
			for tok := range tokenSet(low) {
				if answerTokens[tok] {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore, best = score, i
		}
	}
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	}) {
		set[tok] = true
	}
	return set
}

// NormalizeQuestions coerces one pack's raw questions into exactly
// QuestionsPerPack well-formed entries. Every step is idempotent: running it
// again over its own output changes nothing. optionCap > 0 truncates option
// lists (the adapted-pack variant); keyIndex supplies known answer texts for
// correct-option resolution; fb provides the filler-question prompt.
func NormalizeQuestions(rawPack any, prefix string, facts []model.Fact, keyIndex map[string]string, optionCap int, fb Fallbacks) []model.Question {
	var rawQuestions any
	if obj, ok := rawPack.(map[string]any); ok {
		rawQuestions = obj["questions"]
	}
	items := ToList(rawQuestions)
	if len(items) > model.QuestionsPerPack {
		items = items[:model.QuestionsPerPack]
	}

	questions := make([]model.Question, 0, model.QuestionsPerPack)
	for i, item := range items {
		obj, _ := item.(map[string]any)
		questions = append(questions, normalizeOne(obj, prefix, i, facts, keyIndex, optionCap))
	}

	for i := len(questions); i < model.QuestionsPerPack; i++ {
		questions = append(questions, fillerQuestion(prefix, i, facts, fb))
	}
	return questions
}

func normalizeOne(q map[string]any, prefix string, pos int, facts []model.Fact, keyIndex map[string]string, optionCap int) model.Question {
	id := ToString(q["id"])
	if id == "" {
		id = fmt.Sprintf("%s%d", prefix, pos+1)
	}

	prompt := ToString(q["prompt"])
	if prompt == "" {
		prompt = ToString(q["question"])
	}

	options := SplitOptions(q["options"])
	qType := ClassifyType(q["type"], options, prompt)
	if optionCap > 0 && len(options) > optionCap {
		options = options[:optionCap]
	}

	answerID := ToString(q["answer_id"])
	if answerID == "" {
		answerID = cycleFactID(facts, pos)
	}

	var correct *int
	if idx, ok := ToInt(q["correct_option"]); ok {
		correct = &idx
	} else if len(options) > 0 {
		answerText := keyIndex[answerID]
		if answerText == "" {
			answerText = factText(facts, answerID)
		}
		idx := BestOptionIndex(options, answerText)
		correct = &idx
	}

	return model.Question{
		ID:            id,
		Type:          qType,
		Prompt:        prompt,
		Answer:        strings.TrimSpace(ToString(q["answer"])),
		AnswerID:      answerID,
		Options:       options,
		CorrectOption: correct,
		Skill:         ClassifySkill(q["skill"]),
	}
}

func fillerQuestion(prefix string, pos int, facts []model.Fact, fb Fallbacks) model.Question {
	return model.Question{
		ID:       fmt.Sprintf("%s%d", prefix, pos+1),
		Type:     model.QuestionShort,
		Prompt:   fb.FillerPrompt,
		AnswerID: cycleFactID(facts, pos),
		Skill:    model.SkillComp,
	}
}

// cycleFactID walks the fact list by question position so padding questions
// spread across the available facts.
func cycleFactID(facts []model.Fact, pos int) string {
	if len(facts) == 0 {
		return FallbackFactID
	}
	return facts[pos%len(facts)].ID
}

func factText(facts []model.Fact, id string) string {
	for _, f := range facts {
		if f.ID == id {
			return f.Text
		}
	}
	return ""
}
