package ewts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "longest match wins",
			in:   "tsha",
			want: []Token{{Consonant, "tsh"}, {Vowel, "a"}},
		},
		{
			name: "aspirate conjunct is one consonant",
			in:   "g+ha",
			want: []Token{{Consonant, "g+h"}, {Vowel, "a"}},
		},
		{
			name: "explicit subjoin marker",
			in:   "k+ya",
			want: []Token{{Consonant, "k"}, {Subjoin, "+"}, {Consonant, "y"}, {Vowel, "a"}},
		},
		{
			name: "double shad before shad",
			in:   "//",
			want: []Token{{Punct, "//"}},
		},
		{
			name: "fixed-form ra is special",
			in:   "R",
			want: []Token{{Special, "R"}},
		},
		{
			name: "unmatched runes become literals",
			in:   "x9ཀ",
			want: []Token{{Literal, "x"}, {Literal, "9"}, {Literal, "ཀ"}},
		},
		{
			name: "backslash and brackets",
			in:   `\[]`,
			want: []Token{{Literal, `\`}, {Literal, "["}, {Literal, "]"}},
		},
		{
			name: "punctuation precedes consonant",
			in:   "ka.",
			want: []Token{{Consonant, "k"}, {Vowel, "a"}, {Punct, "."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenize_Empty(t *testing.T) {
	require.Empty(t, Tokenize(""))
}

func TestTokenKeysOrderedByLength(t *testing.T) {
	for i := 1; i < len(tokenKeys); i++ {
		if len(tokenKeys[i]) > len(tokenKeys[i-1]) {
			t.Fatalf("key %q (len %d) after %q (len %d)", tokenKeys[i], len(tokenKeys[i]), tokenKeys[i-1], len(tokenKeys[i-1]))
		}
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "consonant", Consonant.String())
	require.Equal(t, "subjoin", Subjoin.String())
	require.Equal(t, "literal", Literal.String())
}
