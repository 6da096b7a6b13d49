// Package enforce brings generated texts toward their word targets by
// asking the generator to rewrite them a bounded number of times.
package enforce

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/sanitize"
)

// maxAttempts bounds rewrite rounds per text. A text that still misses its
// window after the last round is kept as-is.
const maxAttempts = 3

// standardTolerance is the accepted deviation around the standard target.
const standardTolerance = 0.10

// Adapted texts aim for a window measured against the final standard text.
const (
	adaptedLowRatio  = 0.75
	adaptedHighRatio = 0.85
	adaptedFloor     = 50
)

// Constraints describe the rewrite a text needs.
type Constraints struct {
	MinWords int
	MaxWords int
	Language string
	TextType model.TextType
	CEFR     model.CEFRLevel
	Label    string
}

// Rewriter rewrites a text to fit the given constraints. Implementations
// return the rewritten text, or an error when the attempt itself failed.
type Rewriter interface {
	Rewrite(ctx context.Context, text string, c Constraints) (string, error)
}

// Apply enforces word windows on both texts of a result, standard first so
// the adapted window can be derived from the final standard length. The
// result is modified in place. Only rewrite transport errors are returned;
// a text that never converges is kept silently.
func Apply(ctx context.Context, rw Rewriter, result *model.GenerationResult, req model.GenerateRequest, wordTarget int, logger *slog.Logger) error {
	stdMin := int(math.Round(float64(wordTarget) * (1 - standardTolerance)))
	stdMax := int(math.Round(float64(wordTarget) * (1 + standardTolerance)))

	standard, err := fitText(ctx, rw, result.Standard.Text, Constraints{
		MinWords: stdMin,
		MaxWords: stdMax,
		Language: result.Meta.OutputLanguage,
		TextType: req.TextType,
		CEFR:     req.TargetCEFR,
		Label:    "standard",
	}, logger)
	if err != nil {
		return err
	}
	result.Standard.Text = standard

	stdWords := sanitize.CountWords(standard)
	adMin := int(math.Round(float64(stdWords) * adaptedLowRatio))
	adMax := int(math.Round(float64(stdWords) * adaptedHighRatio))
	if adMin < adaptedFloor {
		adMin = adaptedFloor
	}
	if adMax < adMin {
		adMax = adMin
	}

	adapted, err := fitText(ctx, rw, result.Adapted.Text, Constraints{
		MinWords: adMin,
		MaxWords: adMax,
		Language: result.Meta.OutputLanguage,
		TextType: req.TextType,
		CEFR:     req.TargetCEFR,
		Label:    "adapted",
	}, logger)
	if err != nil {
		return err
	}
	result.Adapted.Text = adapted
	return nil
}

// fitText rewrites text until its word count lands inside [MinWords,
// MaxWords] or attempts run out.
func fitText(ctx context.Context, rw Rewriter, text string, c Constraints, logger *slog.Logger) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		words := sanitize.CountWords(text)
		if words >= c.MinWords && words <= c.MaxWords {
			return text, nil
		}
		logger.Debug("rewriting text toward word window",
			"label", c.Label, "attempt", attempt, "words", words,
			"min", c.MinWords, "max", c.MaxWords)

		rewritten, err := rw.Rewrite(ctx, text, c)
		if err != nil {
			return "", fmt.Errorf("rewriting %s text: %w", c.Label, err)
		}
		text = rewritten
	}

	if words := sanitize.CountWords(text); words < c.MinWords || words > c.MaxWords {
		logger.Warn("text did not converge to word window",
			"label", c.Label, "words", words, "min", c.MinWords, "max", c.MaxWords)
	}
	return text, nil
}
