package ewts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestToUnicode_Vectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tsheg from space", " ", "་"},
		{"tsheg from dot", ".", "་"},
		{"shad", "/", "།"},
		{"double shad", "//", "༎"},
		{"terma mark", ":", "༔"},
		{"newline kept", "\n", "\n"},
		{"bkra shis", "bkra shis", "བཀྲ་ཤིས"},
		{"bde legs", "bde legs", "བདེ་ལེགས"},
		{"nga", "nga", "ང"},
		{"superscript head", "snyan", "སྙན"},
		{"prefix superscript subscript", "bsgrubs", "བསྒྲུབས"},
		{"prefix ra-superscript", "brgyad", "བརྒྱད"},
		{"explicit subjoin", "k+ya", "ཀྱ"},
		{"sanskrit aspirate", "dz+ha", "\u0F5C"},
		{"bare vowel", "o", "ཨོ"},
		{"bare vowel with anusvara", "oM", "\u0F68\u0F7C\u0F7E"},
		{"long vowel", "kA", "\u0F40\u0F71"},
		{"long i", "kI", "\u0F40\u0F71\u0F72"},
		{"prefix root suffix without vowel", "bkr", "བཀར"},
		{"four member cluster", "bsnyn", "བསྙན"},
		{"digits echoed", "123", "123"},
		{"brackets echoed", "[ka]", "[ཀ]"},
		{"lone trailing plus", "ka+", "ཀ+"},
		{"plus only", "+", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUnicode(tt.in)
			if got != tt.want {
				t.Errorf("ToUnicode(%q) = %q (%U), want %q (%U)", tt.in, got, []rune(got), tt.want, []rune(tt.want))
			}
		})
	}
}

func TestToUnicode_Deterministic(t *testing.T) {
	in := "bkra shis bde legs/ sangs rgyas//"
	first := ToUnicode(in)
	for range 5 {
		assert.Equal(t, first, ToUnicode(in))
	}
}

func TestToUnicode_TibetanPassthrough(t *testing.T) {
	in := "བཀྲ་ཤིས་བདེ་ལེགས།"
	assert.Equal(t, in, ToUnicode(in))
}

func TestToUnicode_OnlyTableCodepoints(t *testing.T) {
	allowed := make(map[rune]bool)
	for _, r := range consonants {
		allowed[r] = true
	}
	for _, r := range subjoined {
		allowed[r] = true
	}
	for _, r := range specials {
		allowed[r] = true
	}
	for _, v := range vowels {
		for _, r := range v {
			allowed[r] = true
		}
	}
	for _, p := range punctuation {
		for _, r := range p {
			allowed[r] = true
		}
	}
	allowed[baseA] = true

	inputs := []string{
		"bsgrubs", "brgyad", "mkhyen", "'jam dpal dbyangs", "oM ma Ni pad+me hU~M",
		"rgyal ba'i", "lha sa/", "g.yag", "dwangs",
	}
	for _, in := range inputs {
		out := ToUnicode(in)
		for _, r := range out {
			if r < 0x0F00 || r > 0x0FFF {
				// Anything outside the block must be echoed source text.
				assert.True(t, strings.ContainsRune(in, r), "input %q: foreign rune %U not in source", in, r)
				continue
			}
			assert.True(t, allowed[r], "input %q: rune %U not drawn from tables", in, r)
		}
		assert.True(t, utf8.ValidString(out))
	}
}

func TestStackBounds(t *testing.T) {
	mk := func(names ...string) []member {
		out := make([]member, len(names))
		for i, n := range names {
			out[i] = member{name: n}
		}
		return out
	}

	tests := []struct {
		name       string
		cluster    []member
		hasVowel   bool
		wantRoot   int
		wantSuffix int
	}{
		{"single", mk("k"), true, 0, 1},
		{"prefix and root", mk("b", "k"), true, 1, 2},
		{"subscript after prefix letter", mk("b", "y"), true, 0, 2},
		{"superscript after prefix", mk("b", "s", "g"), true, 1, 3},
		{"ra superscript before subscript", mk("b", "r", "y"), true, 1, 3},
		{"non-prefix head", mk("s", "k"), true, 0, 2},
		{"three without vowel", mk("b", "k", "s"), false, 1, 2},
		{"three without vowel subscript", mk("d", "w", "s"), false, 0, 3},
		{"four without vowel", mk("b", "s", "ny", "n"), false, 1, 3},
		{"explicit never a prefix", []member{{name: "g", explicit: true}, {name: "k"}}, true, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, suffix := stackBounds(tt.cluster, tt.hasVowel)
			assert.Equal(t, tt.wantRoot, root, "root")
			assert.Equal(t, tt.wantSuffix, suffix, "suffix")
		})
	}
}
