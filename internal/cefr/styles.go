package cefr

import "github.com/aontas/aontas/internal/model"

// StyleGuide returns the register/structure notes fed into the generation
// prompt for a text type. Empty for unknown types.
func StyleGuide(t model.TextType) string {
	return styleGuides[t]
}

var styleGuides = map[model.TextType]string{
	model.TypeInformalEmail: `Tone: warm, friendly, personal; contractions are fine.
Structure: Greeting ("Hi [Name],"), short intro (purpose), 1–2 short body paragraphs, friendly closing line, sign-off ("Best, [Name]").
Style: short sentences, everyday vocabulary, clear sequencing ("First, then"). No headings.`,

	model.TypeFormalEmail: `Tone: polite, professional, precise; avoid slang.
Structure: Greeting ("Dear [Title Surname],"), purpose line, 2–3 short body paragraphs, polite call-to-action, formal closing ("Kind regards, [Full Name]").
Style: neutral register, complete sentences, no exclamation marks.`,

	model.TypeArticle: `Tone: clear and informative.
Structure: Headline, 1–2 sentence lede (intro), body with 2–3 subheadings.
Style: neutral register, cohesive devices, present/past as appropriate.`,

	model.TypeReport: `Tone: objective and concise.
Structure: Title, sections with headings: Introduction, Findings, Discussion, Recommendations (or Conclusion).
Style: bullet points allowed in Findings/Recommendations; avoid first-person unless specified.`,

	model.TypeStory: `Tone: narrative.
Structure: Beginning–Middle–End; clear event sequence.
Style: past tenses; time markers ("Later," "After that"); concrete language; dialogue optional.`,

	model.TypeEssay: `Tone: academic/argumentative.
Structure: Introduction with thesis, 2–3 body paragraphs (topic sentence + support), Conclusion (restate + implication).
Style: formal register, cohesive devices ("however", "moreover"), no contractions.`,

	model.TypeBlogPost: `Tone: conversational and engaging.
Structure: Hook, short intro, body with subheadings, quick wrap-up.
Style: second person OK ("you"), rhetorical questions OK, short paragraphs.`,
}
