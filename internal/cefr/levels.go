package cefr

import "github.com/aontas/aontas/internal/model"

// LevelSpec is the allow-list of level-appropriate language for one CEFR
// level. ESLTargets feed the language-focus questions (Q6-Q8).
type LevelSpec struct {
	Grammar    []string
	Structures []string
	Vocabulary []string
	ESLTargets []string
}

// Rules returns the LevelSpec for a level, falling back to B1 for anything
// unrecognized so callers never receive empty allow-lists.
func Rules(level model.CEFRLevel) LevelSpec {
	if spec, ok := levelRules[level]; ok {
		return spec
	}
	return levelRules[model.LevelB1]
}

var levelRules = map[model.CEFRLevel]LevelSpec{
	model.LevelA1: {
		Grammar: []string{
			"be/have", "there is/are", "present simple", "present continuous (basic)",
			"imperatives", "can (ability/permission)", "articles a/an/the (limited)",
			"this/that/these/those", "basic prepositions (in/on/at)",
			"possessives", "comparatives/superlatives (short adj.)",
		},
		Structures: []string{
			"simple clauses", "coordination: and/but",
			"yes/no and wh-questions", "one idea per sentence",
		},
		Vocabulary: []string{
			"600–800 high-frequency headwords", "family/home/food/routines/places/time/numbers",
		},
		ESLTargets: []string{"basic synonym/antonym", "comparatives", "prepositions in/on/at"},
	},
	model.LevelA2: {
		Grammar: []string{
			"past simple", "present continuous for future", "going to",
			"some/any/much/many/a lot of", "count/uncount",
			"should/must/have to (basic)", "can/could (requests)",
			"infinitive vs -ing (common verbs)", "because/so/when/if (zero/1st light)",
		},
		Structures: []string{
			"simple complex sentences (1 subclause)", "time sequencers first/then/finally",
		},
		Vocabulary: []string{
			"1000–1600 families", "travel/shopping/health/study",
			"basic phrasal verbs", "simple collocations",
		},
		ESLTargets: []string{"tense choice past/present", "quantifiers", "verb+prep (listen to)", "open cloze (function words)"},
	},
	model.LevelB1: {
		Grammar: []string{
			"present perfect simple (for/since/ever/never/just/already/yet)",
			"past continuous", "used to", "future (will/going to/present continuous)",
			"1st & 2nd conditional (basic)", "modals: must/have to/should/might",
			"passive (present/past simple)", "defining relatives", "verb patterns (to/-ing)",
		},
		Structures: []string{
			"cause/contrast/addition (because/although/however/in addition)",
			"narrative past with sequencing", "paragraphing",
		},
		Vocabulary: []string{"2000–3500 families", "media/environment/work", "phrasal verbs", "stronger collocations"},
		ESLTargets: []string{"lend/borrow", "make/do", "present perfect vs past simple", "relative pronouns", "reference chains"},
	},
	model.LevelB2: {
		Grammar: []string{
			"present perfect continuous", "past perfect", "broader passive",
			"non-defining relatives", "reported speech (backshift/reporting verbs)",
			"modals of deduction (must/might/can't have + PP)",
			"comparatives with emphasis", "word formation (prefix/suffix)",
		},
		Structures: []string{
			"despite/in spite of/whereas", "complex noun phrases",
			"limited participle clauses", "hedging",
		},
		Vocabulary: []string{"4000–5000 families", "abstract topics", "idiomatic collocations/register shift"},
		ESLTargets: []string{"nuanced synonyms", "aspect contrasts", "modal deduction", "collocation precision", "word formation"},
	},
	model.LevelC1: {
		Grammar: []string{
			"all conditionals incl. mixed", "cleft sentences", "reduced relatives",
			"inversion for emphasis", "ellipsis/substitution", "nominalisation",
		},
		Structures: []string{
			"sophisticated cohesion", "clear argumentation", "varied information structure",
		},
		Vocabulary: []string{"6000–8000 families", "academic lexis", "idiomatic phrasal verbs", "register nuance/hedging"},
		ESLTargets: []string{"near-synonym discrimination", "stance/hedge verbs", "complex reference", "key-word transformation"},
	},
	model.LevelC2: {
		Grammar: []string{
			"native-like flexibility", "rhetorical devices", "fronting/inversion", "idiomatic clause-combining",
		},
		Structures: []string{
			"information-dense sentences with controlled rhythm", "pragmatic markers",
		},
		Vocabulary: []string{"very wide range", "low-frequency idioms", "precise connotation/tone"},
		ESLTargets: []string{"register shifts", "idiomatic collocation", "elegant paraphrase"},
	},
}
