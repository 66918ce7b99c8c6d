package ortho

import (
	"strings"
	"unicode"

	"github.com/thonmi/tshegbar/internal/ewts"
)

const shad = '།'

// Result aggregates the verdicts for a run of text.
type Result struct {
	IsValid          bool                `json:"isValid"`
	Errors           []string            `json:"errors"`
	InvalidSyllables []string            `json:"invalidSyllables"`
	Suggestions      map[string][]string `json:"suggestions"`
}

func isDelimiter(r rune) bool {
	return r == ewts.Tsheg || r == shad || unicode.IsSpace(r)
}

// Split breaks text into syllables on tsheg, shad and whitespace.
func Split(text string) []string {
	return strings.FieldsFunc(text, isDelimiter)
}

// IsEWTS reports whether a token carries Latin letters and so needs
// transliteration before checking.
func IsEWTS(token string) bool {
	return strings.IndexFunc(token, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) >= 0
}

// Render returns the Unicode form of a syllable token. EWTS tokens are
// transliterated and lose one trailing tsheg; Tibetan tokens are returned as is.
func Render(token string) string {
	if !IsEWTS(token) {
		return token
	}
	return strings.TrimSuffix(ewts.ToUnicode(token), string(ewts.Tsheg))
}

// Check validates every syllable of text. Tokens in EWTS are rendered to
// Unicode first, but results are reported against the original token.
func Check(text string) Result {
	res := Result{
		IsValid:          true,
		Errors:           []string{},
		InvalidSyllables: []string{},
		Suggestions:      map[string][]string{},
	}
	if text == "" {
		return res
	}

	seen := make(map[string]bool)
	for _, token := range Split(text) {
		out := ValidateSyllable(Render(token))
		if out.Valid() {
			continue
		}
		res.IsValid = false
		res.InvalidSyllables = append(res.InvalidSyllables, token)
		if !seen[out.Error] {
			seen[out.Error] = true
			res.Errors = append(res.Errors, out.Error)
		}
		suggestions := out.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		res.Suggestions[token] = suggestions
	}
	return res
}
