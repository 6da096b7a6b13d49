// Package cefr holds the static per-level language configuration: word-count
// bands, grammar/structure/vocabulary allow-lists and text-type style guides.
package cefr

import (
	"math"

	"github.com/aontas/aontas/internal/model"
)

// wordBands maps each CEFR level to its [min, max] word band for a
// standard-length text.
var wordBands = map[model.CEFRLevel][2]int{
	model.LevelA1: {60, 90},
	model.LevelA2: {90, 120},
	model.LevelB1: {140, 180},
	model.LevelB2: {160, 200},
	model.LevelC1: {220, 260},
	model.LevelC2: {280, 320},
}

var lengthFactors = map[model.LengthChoice]float64{
	model.LengthShort:    0.7,
	model.LengthStandard: 1.0,
	model.LengthLong:     1.3,
}

var typeFactors = map[model.TextType]float64{
	model.TypeReport:        1.10,
	model.TypeEssay:         1.05,
	model.TypeArticle:       1.00,
	model.TypeStory:         1.00,
	model.TypeBlogPost:      0.95,
	model.TypeFormalEmail:   0.85,
	model.TypeInformalEmail: 0.80,
}

// Long texts are still worksheets, not readers. Reports get a little more
// room for their section headings.
const (
	longCapReport  = 420
	longCapDefault = 400
)

// TargetWords computes the single integer word target the standard text must
// land within ±10% of: the mean of the level band scaled by length and
// text-type factors.
func TargetWords(level model.CEFRLevel, length model.LengthChoice, textType model.TextType) int {
	band, ok := wordBands[level]
	if !ok {
		band = wordBands[model.LevelB1]
	}
	avg := float64(band[0]+band[1]) / 2

	lf, ok := lengthFactors[length]
	if !ok {
		lf = 1.0
	}
	tf, ok := typeFactors[textType]
	if !ok {
		tf = 1.0
	}

	target := int(math.Round(avg * lf * tf))
	if length == model.LengthLong {
		limit := longCapDefault
		if textType == model.TypeReport {
			limit = longCapReport
		}
		if target > limit {
			target = limit
		}
	}
	return target
}
