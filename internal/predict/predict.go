// Package predict suggests whole words for the syllable being typed.
package predict

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thonmi/tshegbar/internal/ewts"
	"github.com/thonmi/tshegbar/internal/ortho"
)

// DefaultLimit caps suggestions when no limit is given.
const DefaultLimit = 8

// Partial returns the unfinished word at the end of text: everything after
// the last tsheg, shad or whitespace.
func Partial(text string) string {
	i := strings.LastIndexFunc(text, func(r rune) bool {
		return r == ewts.Tsheg || r == '།' || unicode.IsSpace(r)
	})
	if i < 0 {
		return text
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return text[i+size:]
}

// Complete returns up to limit common words that extend the partial word at
// the end of text. EWTS partials are transliterated first. Each word is
// returned once, in list order.
func Complete(text string, limit int) (partial string, words []string) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	partial = ortho.Render(Partial(text))
	words = []string{}
	if partial == "" {
		return partial, words
	}

	seen := make(map[string]bool)
	for _, w := range commonWords {
		if len(words) == limit {
			break
		}
		if w == partial || seen[w] || !strings.HasPrefix(w, partial) {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return partial, words
}

// Accept replaces the partial word at the end of text with word, closing it
// with a tsheg.
func Accept(text, word string) string {
	head := strings.TrimSuffix(text, Partial(text))
	if !strings.HasSuffix(word, string(ewts.Tsheg)) {
		word += string(ewts.Tsheg)
	}
	return head + word
}
