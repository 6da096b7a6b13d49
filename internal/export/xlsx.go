package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aontas/aontas/internal/model"
)

// Sheet names of the exported workbook.
const (
	sheetOverview   = "Overview"
	sheetAnswerKey  = "Answer key"
	sheetVocabulary = "Vocabulary"
)

// WriteXLSX writes a three-sheet workbook: worksheet overview with both
// texts and questions, the common answer key, and the pre-teach vocabulary.
func WriteXLSX(w io.Writer, result *model.GenerationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeOverview(f, result); err != nil {
		return fmt.Errorf("writing overview sheet: %w", err)
	}
	if err := writeAnswerKey(f, result); err != nil {
		return fmt.Errorf("writing answer key sheet: %w", err)
	}
	if err := writeVocabulary(f, result); err != nil {
		return fmt.Errorf("writing vocabulary sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, result *model.GenerationResult) error {
	// The default sheet becomes the overview.
	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return err
	}

	rows := [][]any{
		{"Target CEFR", result.Meta.TargetCEFR},
		{"Text type", result.Meta.TextType},
		{"Output language", result.Meta.OutputLanguage},
		{"Length", result.Meta.Length},
		{"Word target", result.Meta.WordTarget},
		{},
		{"Standard text", result.Standard.Text},
		{"Adapted text", result.Adapted.Text},
		{},
		{"Pack", "ID", "Type", "Skill", "Prompt", "Options"},
	}
	for _, q := range result.Standard.Questions {
		rows = append(rows, questionRow("standard", q))
	}
	for _, q := range result.Adapted.Questions {
		rows = append(rows, questionRow("adapted", q))
	}

	return writeRows(f, sheetOverview, rows)
}

func questionRow(pack string, q model.Question) []any {
	return []any{pack, q.ID, string(q.Type), string(q.Skill), q.Prompt, strings.Join(q.Options, " | ")}
}

func writeAnswerKey(f *excelize.File, result *model.GenerationResult) error {
	if _, err := f.NewSheet(sheetAnswerKey); err != nil {
		return err
	}

	rows := [][]any{{"Label", "Answer"}}
	for _, e := range buildCommonKey(result) {
		rows = append(rows, []any{e.Label, e.Text})
	}
	rows = append(rows, []any{})
	rows = append(rows, []any{"Answer ID", "Answer"})
	for _, a := range result.TeacherKey {
		rows = append(rows, []any{a.AnswerID, a.Answer})
	}

	return writeRows(f, sheetAnswerKey, rows)
}

func writeVocabulary(f *excelize.File, result *model.GenerationResult) error {
	if _, err := f.NewSheet(sheetVocabulary); err != nil {
		return err
	}

	rows := [][]any{{"Term", "Definition", "Note"}}
	for _, item := range result.TeacherNotes.PreteachVocab {
		rows = append(rows, []any{item.Term, item.Definition, item.Note})
	}

	return writeRows(f, sheetVocabulary, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
