// Package export renders worksheets into teacher-facing formats: a
// three-page print HTML view and an XLSX workbook.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/aontas/aontas/internal/model"
)

// keyEntry is one row of the common answer key: the canonical facts first,
// then one resolved answer per standard question.
type keyEntry struct {
	Label string
	Text  string
}

type printData struct {
	Meta         model.Meta
	Standard     model.Pack
	Adapted      model.Pack
	StandardHTML template.HTML
	AdaptedHTML  template.HTML
	Goals        model.Goals
	Key          []keyEntry
	Notes        model.TeacherNotes
}

// WriteHTML renders the three-page print view: standard pack, adapted pack,
// then teacher notes with the common answer key. Pack texts are treated as
// Markdown so the adapted text's bold anchors survive into the page.
func WriteHTML(w io.Writer, result *model.GenerationResult) error {
	stdHTML, err := renderMarkdown(result.Standard.Text)
	if err != nil {
		return fmt.Errorf("rendering standard text: %w", err)
	}
	adpHTML, err := renderMarkdown(result.Adapted.Text)
	if err != nil {
		return fmt.Errorf("rendering adapted text: %w", err)
	}

	data := printData{
		Meta:         result.Meta,
		Standard:     result.Standard,
		Adapted:      result.Adapted,
		StandardHTML: stdHTML,
		AdaptedHTML:  adpHTML,
		Goals:        result.Goals,
		Key:          buildCommonKey(result),
		Notes:        result.TeacherNotes,
	}
	return printTemplate.Execute(w, data)
}

// renderMarkdown converts a pack text to HTML. goldmark escapes raw HTML in
// the source by default, so model output cannot inject markup.
func renderMarkdown(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// buildCommonKey lists the canonical facts followed by the resolved answer
// of each standard question.
func buildCommonKey(result *model.GenerationResult) []keyEntry {
	var entries []keyEntry
	for i, f := range result.CanonicalFacts {
		text := f.Text
		if text == "" {
			text = "—"
		}
		entries = append(entries, keyEntry{Label: "F" + strconv.Itoa(i+1), Text: text})
	}
	for i, q := range result.Standard.Questions {
		entries = append(entries, keyEntry{
			Label: strconv.Itoa(i + 1),
			Text:  answerFromQuestion(q, result.CanonicalFacts),
		})
	}
	return entries
}

// answerFromQuestion resolves a question's display answer: the correct MCQ
// option, then the free-text answer, then the referenced fact text, then a
// placeholder.
func answerFromQuestion(q model.Question, facts []model.Fact) string {
	if q.Type == model.QuestionMCQ && q.CorrectOption != nil {
		if idx := *q.CorrectOption; idx >= 0 && idx < len(q.Options) {
			return q.Options[idx]
		}
	}
	if q.Answer != "" {
		return q.Answer
	}
	for _, f := range facts {
		if f.ID == q.AnswerID {
			if f.Text != "" {
				return f.Text
			}
			break
		}
	}
	return "—"
}

var printTemplate = template.Must(template.New("print").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>Aontas — Print</title>
<style>
  @page { size: A4; margin: 10mm 10mm 12mm 10mm; }
  html, body { background:#fff; }
  body { font-family: ui-serif, "Noto Serif", Georgia, Cambria, "Times New Roman", serif; margin:0; }
  .page { box-sizing:border-box; padding: 4mm 4mm 0 4mm; }
  .page h1, .page h2, .page h3 { margin: 0 0 8px; }
  .meta { font-size: 11pt; opacity: .75; margin-bottom: 6px; }
  .text { font-size: 12pt; margin: 8px 0 10px; }
  .q { margin: 4px 0; padding-left: 18px; }
  .q li { margin: 2px 0; }
  .small { font-size: 10pt; }
  .page + .page { page-break-before: always; }
</style>
</head>
<body>
  <div class="page">
    <h1>Standard</h1>
    <div class="meta">CEFR {{.Meta.TargetCEFR}} · {{.Meta.TextType}} · {{.Meta.OutputLanguage}}</div>
    <div class="text">{{.StandardHTML}}</div>
    <h2>Questions</h2>
    <ol class="q">{{range .Standard.Questions}}<li>{{.Prompt}}</li>{{end}}</ol>
  </div>
  <div class="page">
    <h1>Adapted</h1>
    <div class="meta">CEFR {{.Meta.TargetCEFR}} · {{.Meta.TextType}} · {{.Meta.OutputLanguage}}</div>
    <div class="text">{{.AdaptedHTML}}</div>
    <h2>Questions</h2>
    <ol class="q">{{range .Adapted.Questions}}<li>{{.Prompt}}</li>{{end}}</ol>
  </div>
  <div class="page">
    <h1>Teacher Notes, Goals &amp; Key</h1>
    <div class="meta">CEFR {{.Meta.TargetCEFR}} · {{.Meta.TextType}} · {{.Meta.OutputLanguage}}</div>

    <h2>Common answer key</h2>
    <ol class="small">{{range .Key}}<li><strong>{{.Label}}</strong>: {{.Text}}</li>{{end}}</ol>

    <h2>Goals</h2>
    <ul class="small">{{range .Goals.LessonGoals}}<li>{{.}}</li>{{end}}</ul>
    <h3>Success criteria</h3>
    <ul class="small">{{range .Goals.SuccessCriteria}}<li>{{.}}</li>{{end}}</ul>
    <h3>CEFR focus</h3>
    <div class="small"><strong>Grammar:</strong> {{range $i, $g := .Goals.CEFRFocus.Grammar}}{{if $i}}, {{end}}{{$g}}{{end}}</div>
    <div class="small"><strong>Structures:</strong> {{range $i, $g := .Goals.CEFRFocus.Structures}}{{if $i}}, {{end}}{{$g}}{{end}}</div>
    <div class="small"><strong>Vocabulary:</strong> {{range $i, $g := .Goals.CEFRFocus.Vocabulary}}{{if $i}}, {{end}}{{$g}}{{end}}</div>

    <h3>Pre-teach vocabulary</h3>
    <ul class="small">{{range .Notes.PreteachVocab}}<li><strong>{{.Term}}</strong>: {{.Definition}}{{if .Note}} ({{.Note}}){{end}}</li>{{end}}</ul>
  </div>
</body>
</html>
`))
