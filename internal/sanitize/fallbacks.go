package sanitize

// Fallbacks carries the fixed literal strings the pipeline synthesizes when
// the upstream payload omits data. Callers can localize them per output
// language; the pipeline itself stays language-agnostic.
type Fallbacks struct {
	// FillerPrompt is the prompt of synthetic padding questions.
	FillerPrompt string
	// LessonGoals and SuccessCriteria back-fill goals shorter than the
	// schema minimums.
	LessonGoals     []string
	SuccessCriteria []string
	// PreteachDefinition is the placeholder gloss for synthesized vocabulary.
	PreteachDefinition string
	// ExtensionActivities pads extension_activities to exactly two entries.
	ExtensionActivities []string
}

// DefaultFallbacks returns the English literals.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		FillerPrompt: "What is a key idea mentioned in the text?",
		LessonGoals: []string{
			"Understand the main ideas and key details",
			"Use the target language accurately in context",
		},
		SuccessCriteria: []string{
			"I can find specific information",
			"I can choose the correct synonym in context",
			"I can use the target structure in a new sentence",
		},
		PreteachDefinition: "Key term to pre-teach in the target language.",
		ExtensionActivities: []string{
			"Pair task: upgrade two sentences from the text using the target structure; peer-check for accuracy.",
			"Short writing (90–120 words) reusing 6+ target items (highlight them); swap and give one improvement each.",
		},
	}
}

// PlaceholderAnswer marks a teacher-key entry whose text could not be
// recovered from any source. Kept literal across languages.
const PlaceholderAnswer = "—"

// FallbackFactID is the answer id used when no facts exist to cycle through.
const FallbackFactID = "F1"
