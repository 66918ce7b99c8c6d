package ortho

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSyllable_Passes(t *testing.T) {
	for _, syl := range []string{
		"",
		"abc",
		"ཀ",
		"གཏོང",
		"བཀྲ",
		"ལེགས",
		"བསྒྲུབས",
		"མིའི",
		"འི",
		"ཀསྒྲུབ", // stack of three is exempt even with a bad prefix
	} {
		out := ValidateSyllable(syl)
		assert.True(t, out.Valid(), "%q: %s", syl, out.Error)
		assert.Empty(t, out.Suggestions, syl)
	}
}

func TestValidateSyllable_Failures(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantErr     string
		wantKind    Kind
		suggestions []string
	}{
		{
			name:     "stacked vowels",
			in:       "ཀིུ",
			wantErr:  msgStackedVowels,
			wantKind: Orthographic,
		},
		{
			name:     "malformed frame",
			in:       "ཀཁགངཅ",
			wantErr:  msgMalformed,
			wantKind: Structural,
		},
		{
			name:        "illegal prefix",
			in:          "ཀཏོ",
			wantErr:     "སྔོན་འཇུག་'ཀ'མ་དག་པ།",
			wantKind:    Phonotactic,
			suggestions: []string{"ཏོ"},
		},
		{
			name:        "prefix incompatible with root",
			in:          "གཀོ",
			wantErr:     "སྔོན་འཇུག་'ག'དང་མིང་གཞི་'ཀ'མི་མཐུན།",
			wantKind:    Phonotactic,
			suggestions: []string{"དཀོ", "བཀོ", "ཀོ"},
		},
		{
			name:     "illegal suffix",
			in:       "གཀ",
			wantErr:  "རྗེས་འཇུག་'ཀ'མ་དག་པ།",
			wantKind: Phonotactic,
		},
		{
			name:        "post-suffix after wrong suffix",
			in:          "ཀནས",
			wantErr:     "ཡང་འཇུག་'ས'དེ་རྗེས་འཇུག་'ན'ཀྱི་རྗེས་སུ་སྦྱོར་མི་ཆོག",
			wantKind:    Phonotactic,
			suggestions: []string{"ཀན"},
		},
		{
			name:        "second suffix that is never a post-suffix",
			in:          "ཀོགག",
			wantErr:     "ཡང་འཇུག་'ག'དེ་རྗེས་འཇུག་'ག'ཀྱི་རྗེས་སུ་སྦྱོར་མི་ཆོག",
			wantKind:    Phonotactic,
			suggestions: []string{"ཀོག"},
		},
		{
			name:        "third suffix",
			in:          "ཀོགསས",
			wantErr:     msgThirdSuffix,
			wantKind:    Phonotactic,
			suggestions: []string{"ཀོགས"},
		},
		{
			name:        "particle re-appended to suggestions",
			in:          "གཀོའི",
			wantErr:     "སྔོན་འཇུག་'ག'དང་མིང་གཞི་'ཀ'མི་མཐུན།",
			wantKind:    Phonotactic,
			suggestions: []string{"དཀོའི", "བཀོའི", "ཀོའི"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ValidateSyllable(tt.in)
			assert.False(t, out.Valid())
			assert.Equal(t, tt.wantErr, out.Error)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.suggestions, out.Suggestions)
		})
	}
}

func TestValidateSyllable_StackedVowelsBeatStructure(t *testing.T) {
	// Otherwise well formed.
	out := ValidateSyllable("བཀྲིེས")
	assert.Equal(t, msgStackedVowels, out.Error)
	assert.Nil(t, out.Suggestions)
}

func TestPrefixRootsAreConsistent(t *testing.T) {
	for p := range prefixRoots {
		assert.True(t, isPrefix(p), "prefix table key %q is not a prefix letter", p)
	}
	for post, after := range postSuffixAfter {
		assert.True(t, isSuffix(post), "post-suffix %q", post)
		for _, s := range after {
			assert.True(t, isSuffix(s), "suffix %q", s)
		}
	}
}

func TestSplitParticle(t *testing.T) {
	tests := []struct {
		in, stem, particle string
	}{
		{"མིའི", "མི", "འི"},
		{"མིའི་", "མི", "འི་"},
		{"དེའོ", "དེ", "འོ"},
		{"ཁོའང་", "ཁོ", "འང་"},
		{"ཀ", "ཀ", ""},
		{"འི", "", "འི"},
	}
	for _, tt := range tests {
		stem, particle := SplitParticle(tt.in)
		assert.Equal(t, tt.stem, stem, tt.in)
		assert.Equal(t, tt.particle, particle, tt.in)
	}
}
