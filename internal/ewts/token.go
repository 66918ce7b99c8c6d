package ewts

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	Literal Kind = iota
	Consonant
	Vowel
	Special
	Punct
	Subjoin
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	case Special:
		return "special"
	case Punct:
		return "punct"
	case Subjoin:
		return "subjoin"
	default:
		return "literal"
	}
}

// Token is one EWTS unit in source order.
type Token struct {
	Kind Kind
	Text string
}

// tokenKeys holds every matchable token string, longest first.
var tokenKeys = buildTokenKeys()

func buildTokenKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range consonants {
		add(k)
	}
	for k := range vowels {
		add(k)
	}
	for k := range specials {
		add(k)
	}
	for k := range punctuation {
		add(k)
	}
	for _, k := range []string{"+", ".", `\`, "[", "]"} {
		add(k)
	}
	// Ties are broken lexically so the order never depends on map iteration.
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return keys
}

// classify assigns a kind to a matched key.
func classify(s string) Kind {
	if _, ok := punctuation[s]; ok {
		return Punct
	}
	if _, ok := vowels[s]; ok {
		return Vowel
	}
	if _, ok := consonants[s]; ok {
		return Consonant
	}
	if _, ok := specials[s]; ok {
		return Special
	}
	if s == "+" {
		return Subjoin
	}
	return Literal
}

// Tokenize splits EWTS text into tokens by greedy longest match.
// Text that matches no key is emitted one rune at a time as Literal tokens.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text))
	for i := 0; i < len(text); {
		match := ""
		for _, k := range tokenKeys {
			if strings.HasPrefix(text[i:], k) {
				match = k
				break
			}
		}
		if match != "" {
			tokens = append(tokens, Token{Kind: classify(match), Text: match})
			i += len(match)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		tokens = append(tokens, Token{Kind: Literal, Text: text[i : i+size]})
		i += size
	}
	return tokens
}
