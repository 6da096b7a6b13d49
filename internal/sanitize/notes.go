package sanitize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/model"
)

const (
	minPreteach = 4
	maxPreteach = 12
	// preteachTopUp is how far synthesis fills the list past the minimum.
	preteachTopUp = 8

	maxJustification = 8
	minJustification = 2

	extensionCount = 2
)

// BuildNotes assembles the teacher notes. The input record comes straight
// from the request; preteach vocabulary is normalized from several upstream
// field spellings and, when short, synthesized from the standard text;
// justification and extension activities fall back to fixed templates
// referencing the resolved CEFR focus.
func BuildNotes(req model.GenerateRequest, raw any, outputLabel, standardText string, focus model.CEFRFocus, fb Fallbacks) model.TeacherNotes {
	m, _ := raw.(map[string]any)

	preteach := normalizePreteach(ToList(m["preteach_vocab"]))
	if len(preteach) < minPreteach {
		preteach = topUpVocab(preteach, standardText, fb.PreteachDefinition)
	}
	if len(preteach) < minPreteach {
		preteach = seedVocab(preteach, cefr.Rules(req.TargetCEFR), fb.PreteachDefinition)
	}
	if len(preteach) > maxPreteach {
		preteach = preteach[:maxPreteach]
	}

	fallbackJust := []string{
		fmt.Sprintf("Aligns with grammar focus: %s", strings.Join(prefix(focus.Grammar, 3), ", ")),
		fmt.Sprintf("Uses structures: %s", strings.Join(prefix(focus.Structures, 2), ", ")),
		fmt.Sprintf("Vocabulary scope appropriate to level: %s", strings.Join(prefix(focus.Vocabulary, 3), ", ")),
	}
	just := boundList(StringList(m["cefr_justification"]), fallbackJust, minJustification, maxJustification)

	ext := StringList(m["extension_activities"])
	if len(ext) > extensionCount {
		ext = ext[:extensionCount]
	}
	for i := len(ext); i < extensionCount; i++ {
		ext = append(ext, fb.ExtensionActivities[i])
	}

	return model.TeacherNotes{
		InputRecord: model.InputRecord{
			Source:           req.SourceLabel(),
			TargetCEFR:       string(req.TargetCEFR),
			TextType:         string(req.TextType),
			OutputLanguage:   outputLabel,
			Length:           string(req.Length),
			DyslexiaFriendly: req.DyslexiaFriendly,
			PublicSchoolMode: req.PublicSchoolMode,
		},
		PreteachVocab:       preteach,
		CEFRJustification:   just,
		ExtensionActivities: ext,
	}
}

// normalizePreteach accepts term/word/term_text and definition/gloss/meaning
// field spellings and drops entries missing either half.
func normalizePreteach(items []any) []model.PreteachItem {
	var out []model.PreteachItem
	for _, item := range items {
		obj, _ := item.(map[string]any)
		term := strings.TrimSpace(firstString(obj, "term", "word", "term_text"))
		def := strings.TrimSpace(firstString(obj, "definition", "gloss", "meaning"))
		if term == "" || def == "" {
			continue
		}
		out = append(out, model.PreteachItem{
			Term:       term,
			Definition: def,
			Note:       strings.TrimSpace(ToString(obj["note"])),
		})
	}
	return out
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if s := ToString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// topUpVocab synthesizes candidate terms from the standard text by
// frequency-ranking stop-word-filtered word sequences: 1-grams of length >= 3
// plus 2- and 3-grams, with multi-word phrases ranked above single words.
// Previously-seen terms are skipped; the result grows toward preteachTopUp
// entries (or as many as the text yields).
func topUpVocab(existing []model.PreteachItem, text, definition string) []model.PreteachItem {
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[strings.ToLower(item.Term)] = true
	}

	for _, cand := range rankCandidates(text) {
		if len(existing) >= preteachTopUp {
			break
		}
		if seen[cand] {
			continue
		}
		seen[cand] = true
		existing = append(existing, model.PreteachItem{Term: cand, Definition: definition})
	}
	return existing
}

// seedVocab pads the list from the level's vocabulary and grammar focus
// when the text yields too few candidates. The level rule lists are never
// empty, so the worksheet always opens with at least minPreteach terms.
func seedVocab(existing []model.PreteachItem, spec cefr.LevelSpec, definition string) []model.PreteachItem {
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[strings.ToLower(item.Term)] = true
	}

	terms := make([]string, 0, len(spec.Vocabulary)+len(spec.Grammar))
	terms = append(terms, spec.Vocabulary...)
	terms = append(terms, spec.Grammar...)
	for _, term := range terms {
		if len(existing) >= minPreteach {
			break
		}
		term = strings.TrimSpace(term)
		if term == "" || seen[strings.ToLower(term)] {
			continue
		}
		seen[strings.ToLower(term)] = true
		existing = append(existing, model.PreteachItem{Term: term, Definition: definition})
	}
	return existing
}

type candidate struct {
	term  string
	count int
	words int
	pos   int
}

// rankCandidates counts content-word n-grams and orders them by phrase
// length, then frequency, then first appearance.
func rankCandidates(text string) []string {
	tokens := contentTokens(text)

	counts := make(map[string]*candidate)
	note := func(term string, words, pos int) {
		if c, ok := counts[term]; ok {
			c.count++
			return
		}
		counts[term] = &candidate{term: term, count: 1, words: words, pos: pos}
	}

	for i, tok := range tokens {
		if len(tok) >= 3 {
			note(tok, 1, i)
		}
		if i+1 < len(tokens) {
			note(tok+" "+tokens[i+1], 2, i)
		}
		if i+2 < len(tokens) {
			note(tok+" "+tokens[i+1]+" "+tokens[i+2], 3, i)
		}
	}

	// Single-occurrence phrases are noise; words earn their place by
	// appearing at all.
	ranked := make([]*candidate, 0, len(counts))
	for _, c := range counts {
		if c.words > 1 && c.count < 2 {
			continue
		}
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if (a.words > 1) != (b.words > 1) {
			return a.words > 1
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.pos < b.pos
	})

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.term
	}
	return out
}

// contentTokens lower-cases the text, splits on non-letter/digit runes and
// strips stop words.
func contentTokens(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	var out []string
	for _, tok := range raw {
		if !stopWords[tok] {
			out = append(out, tok)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	case r == '\'' || r == '’':
		return true
	case r >= 0x00C0 && r <= 0x024F: // Latin-1 Supplement and Extended letters
		return true
	}
	return false
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "when": true, "while": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"from": true, "with": true, "without": true, "by": true, "about": true,
	"as": true, "into": true, "onto": true, "over": true, "under": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "can": true, "could": true, "should": true, "shall": true,
	"may": true, "might": true, "must": true, "not": true, "no": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"its": true, "he": true, "she": true, "they": true, "them": true,
	"his": true, "her": true, "their": true, "we": true, "you": true,
	"your": true, "our": true, "i": true, "me": true, "my": true,
	"there": true, "here": true, "so": true, "such": true, "than": true,
	"too": true, "very": true, "also": true, "just": true, "only": true,
	"more": true, "most": true, "some": true, "any": true, "all": true,
	"each": true, "other": true, "up": true, "down": true, "out": true,
	"now": true, "what": true, "which": true, "who": true, "whom": true,
	"how": true, "why": true, "where": true, "because": true, "toward": true,
}

func prefix(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
