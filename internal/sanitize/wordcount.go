package sanitize

import "regexp"

// wordRe matches one word: Latin letters (including accented forms), digits
// and internal apostrophes.
var wordRe = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ0-9’']+`)

// CountWords counts words the same way the word-target bands were
// calibrated: contiguous letter/digit/apostrophe runs.
func CountWords(s string) int {
	if s == "" {
		return 0
	}
	return len(wordRe.FindAllStringIndex(s, -1))
}
