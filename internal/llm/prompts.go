package llm

import (
	"fmt"
	"strings"

	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/model"
)

func buildGenerateSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an inclusive education writer.\n\n")

	sb.WriteString("GOAL\n")
	sb.WriteString("Return JSON for two parallel reading packs:\n")
	sb.WriteString("- STANDARD text + 8 questions\n")
	sb.WriteString("- ADAPTED text + 8 questions (simpler stems/options)\n")
	sb.WriteString("Both packs share a single teacher_key via answer_id.\n\n")

	sb.WriteString("QUESTION BALANCE (in order):\n")
	sb.WriteString("1-5: comprehension (\"comp\") - detail/why/how/inference.\n")
	sb.WriteString("6: language (\"synonym\" or \"antonym\") - meaning in context; MCQ with options + correct_option.\n")
	sb.WriteString("7: language (\"grammar\") - e.g., lend/borrow; tense/voice; comparative/superlative; MCQ.\n")
	sb.WriteString("8: language (\"collocation\" or \"reference\") - preposition/collocation OR pronoun reference; MCQ.\n\n")

	sb.WriteString("STANDARD RULES\n")
	sb.WriteString("- Use requested CEFR, text type/register, and OUTPUT language.\n")
	sb.WriteString("- Standard text must be within +/-10% of WORD_TARGET (caller may revise if not).\n")
	sb.WriteString("- Avoid bare statement stems; make questions or clear tasks.\n\n")

	sb.WriteString("ADAPTED RULES (non-simplification)\n")
	sb.WriteString("- SAME CEFR, SAME canonical facts, SAME answer_ids.\n")
	sb.WriteString("- Target length: 75-85% of final Standard length.\n")
	sb.WriteString("- Reduce cognitive load only: chunking, short paragraphs, headings, one idea per sentence, bold key info, explicit connectives (First, Then, Because, As a result).\n")
	sb.WriteString("- Keep Standard's target vocabulary/grammar; add brief in-language glosses: register (= sign up). No code-switching beyond brief glosses.\n")
	sb.WriteString("- Prefer SVO order; replace pronouns with nouns on first mention in a paragraph.\n")
	sb.WriteString("- Dyslexia/ADHD-friendly cues: left-aligned, no full justification, avoid ALL CAPS/italics; bold only for anchors.\n")
	sb.WriteString("- Adapted questions: same mapping; simpler stems; Q6-Q8 have 3 options (not 4).\n\n")

	sb.WriteString("SCHEMA KEYS:\n")
	sb.WriteString("(meta, goals, canonical_facts, standard{ text, questions[Question] }, adapted{ text, questions[Question] }, teacher_key)\n")
	sb.WriteString("Question: { id, type, prompt, answer_id, options?, correct_option?, skill }")

	return sb.String()
}

func buildGenerateUserPrompt(req model.GenerateRequest, source string, wordTarget int) string {
	outLang := cefr.LanguageLabel(req.OutputLanguage)
	spec := cefr.Rules(req.TargetCEFR)

	// Long texts carry a hard cap on top of the computed target.
	target := wordTarget
	if req.Length == model.LengthLong {
		limit := 400
		if req.TextType == model.TypeReport {
			limit = 420
		}
		if target > limit {
			target = limit
		}
	}

	lines := []string{
		"INPUT_LANGUAGE: auto-detect",
		"OUTPUT_LANGUAGE_NAME: " + outLang,
		"OUTPUT_LANGUAGE_CODE: " + req.OutputLanguage,
		"LANGUAGE LOCK: Write EVERYTHING in " + outLang + " only. No English except proper nouns.",
		"If any part is not in " + outLang + ", rewrite it before returning.",
		"",
		"TARGET_CEFR: " + string(req.TargetCEFR),
		"TEXT_TYPE: " + string(req.TextType),
		"STYLE_GUIDE:",
		cefr.StyleGuide(req.TextType),
		"",
		"CEFR FOCUS FOR " + string(req.TargetCEFR) + ":",
		"- Allowed grammar: " + strings.Join(spec.Grammar, "; "),
		"- Allowed structures: " + strings.Join(spec.Structures, "; "),
		"- Vocabulary scope: " + strings.Join(spec.Vocabulary, "; "),
		"- ESL targets (Q6-Q8): " + strings.Join(spec.ESLTargets, "; "),
		"",
		"LENGTH: " + string(req.Length),
		fmt.Sprintf("WORD_TARGET: %d (STANDARD must be within +/-10%%)", target),
		"PUBLIC_SCHOOL_MODE: " + onOff(req.PublicSchoolMode),
		"DYSLEXIA_FRIENDLY: " + onOff(req.DyslexiaFriendly),
		"",
		"Return JSON with: meta, goals, canonical_facts, standard {text, questions[8]}, adapted {text, questions[8]}, teacher_key.",
		"All human-readable text must be in " + outLang + ".",
		"",
		"SOURCE_TEXT:",
		source,
	}
	return strings.Join(lines, "\n")
}

func buildRewriteSystemPrompt(c enforce.Constraints) string {
	var sb strings.Builder
	sb.WriteString("You are a precise editor.\n")
	sb.WriteString(fmt.Sprintf("Keep all facts. Keep the same language (%s), text type (%s), and CEFR (%s).\n",
		cefr.LanguageLabel(c.Language), c.TextType, c.CEFR))
	sb.WriteString(fmt.Sprintf("Target word range: [%d, %d] words.\n", c.MinWords, c.MaxWords))
	sb.WriteString("Perform only compression/expansion phrasing; do not add or remove facts.\n")
	sb.WriteString(`Return JSON: {"text":"..."}`)
	return sb.String()
}

func buildRewriteUserPrompt(text string, c enforce.Constraints, words int) string {
	delta := c.MinWords - words
	hint := fmt.Sprintf("Expand by about %d words.", delta)
	if words > c.MaxWords {
		delta = words - c.MaxWords
		hint = fmt.Sprintf("Tighten by about %d words.", delta)
	}
	return strings.ToUpper(c.Label) + " TEXT:\n" + text + "\n\n" + hint
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
