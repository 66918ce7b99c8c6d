package ortho

import (
	"slices"
	"strings"
)

// Kind classifies a diagnostic.
type Kind string

const (
	Structural   Kind = "structural"   // frame could not be decomposed
	Phonotactic  Kind = "phonotactic"  // illegal letter in a frame position
	Orthographic Kind = "orthographic" // stacked vowel signs
)

// Outcome is the verdict for one syllable. A zero Error means it passed.
type Outcome struct {
	Error       string   `json:"error,omitempty"`
	Kind        Kind     `json:"kind,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Valid reports whether the syllable passed.
func (o Outcome) Valid() bool { return o.Error == "" }

// SplitParticle separates a joined particle from the end of a syllable.
// The particle is empty when none is attached.
func SplitParticle(syl string) (stem, particle string) {
	for _, p := range joinedParticles {
		if strings.HasSuffix(syl, p) {
			return strings.TrimSuffix(syl, p), p
		}
	}
	return syl, ""
}

// ValidateSyllable checks one Unicode syllable against the classical
// prefix, suffix and post-suffix rules. Text without Tibetan letters passes.
func ValidateSyllable(syl string) Outcome {
	if strings.IndexFunc(syl, isTibetan) < 0 {
		return Outcome{}
	}

	if stem, particle := SplitParticle(syl); particle != "" {
		if stem == "" {
			return Outcome{}
		}
		out := ValidateSyllable(stem)
		for i, s := range out.Suggestions {
			out.Suggestions[i] = s + particle
		}
		return out
	}

	chars := []rune(syl)

	vowels := 0
	for _, r := range chars {
		if isVowelSign(r) {
			vowels++
		}
	}
	if vowels > 1 {
		return Outcome{Error: msgStackedVowels, Kind: Orthographic}
	}

	p, ok := Parse(chars)
	if !ok {
		return Outcome{Error: msgMalformed, Kind: Structural}
	}
	if p.Sanskrit() {
		return Outcome{}
	}

	if p.prefixAt >= 0 {
		if out, bad := checkPrefix(chars, p); bad {
			return out
		}
	}
	if len(p.Suffixes) > 0 {
		if out, bad := checkSuffixes(chars, p); bad {
			return out
		}
	}
	return Outcome{}
}

func checkPrefix(chars []rune, p Parsed) (Outcome, bool) {
	root := p.Root[0]
	stripped := without(chars, p.prefixAt)

	if !isPrefix(p.Prefix) {
		return Outcome{
			Error:       msgIllegalPrefix(p.Prefix),
			Kind:        Phonotactic,
			Suggestions: []string{stripped},
		}, true
	}
	if prefixFits(p.Prefix, root) {
		return Outcome{}, false
	}

	var suggestions []string
	for _, alt := range prefixLetters {
		if alt == p.Prefix || !prefixFits(alt, root) {
			continue
		}
		swapped := append([]rune{}, chars...)
		swapped[p.prefixAt] = alt
		suggestions = append(suggestions, string(swapped))
	}
	suggestions = append(suggestions, stripped)

	return Outcome{
		Error:       msgPrefixRoot(p.Prefix, root),
		Kind:        Phonotactic,
		Suggestions: suggestions,
	}, true
}

func checkSuffixes(chars []rune, p Parsed) (Outcome, bool) {
	first := p.Suffixes[0]
	if !isSuffix(first) {
		return Outcome{Error: msgIllegalSuffix(first), Kind: Phonotactic}, true
	}
	if len(p.Suffixes) > 1 {
		post := p.Suffixes[1]
		allowed, ok := postSuffixAfter[post]
		if !ok || !slices.Contains(allowed, first) {
			return Outcome{
				Error:       msgPostSuffix(first, post),
				Kind:        Phonotactic,
				Suggestions: []string{without(chars, p.suffixAt+1)},
			}, true
		}
	}
	if len(p.Suffixes) > 2 {
		return Outcome{
			Error:       msgThirdSuffix,
			Kind:        Phonotactic,
			Suggestions: []string{string(chars[:p.suffixAt+2])},
		}, true
	}
	return Outcome{}, false
}

// without returns chars as a string with the rune at i removed.
func without(chars []rune, i int) string {
	var b strings.Builder
	b.WriteString(string(chars[:i]))
	b.WriteString(string(chars[i+1:]))
	return b.String()
}
