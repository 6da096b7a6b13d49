// Package schema validates assembled worksheets against the canonical
// worksheet JSON Schema before they leave the generation pipeline.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/aontas/aontas/internal/model"
)

//go:embed worksheet.schema.json
var worksheetSchema string

// Validate checks a generation result against the worksheet schema. A nil
// error means the result is structurally sound; a validation failure lists
// every violation in one error.
func Validate(result *model.GenerationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling worksheet: %w", err)
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(worksheetSchema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("worksheet failed schema validation: %s", strings.Join(msgs, "; "))
}
