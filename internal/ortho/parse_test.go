package ortho

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Parsed
	}{
		{
			name: "prefix root vowel suffix",
			in:   "གཏོང",
			want: Parsed{Prefix: 'ག', Root: []rune{'ཏ'}, Vowel: 'ོ', Suffixes: []rune{'ང'}, prefixAt: 0, suffixAt: 3},
		},
		{
			name: "bare root",
			in:   "ཀ",
			want: Parsed{Root: []rune{'ཀ'}, Suffixes: []rune{}, prefixAt: -1, suffixAt: 1},
		},
		{
			name: "two letters read as root and suffix",
			in:   "གཀ",
			want: Parsed{Root: []rune{'ག'}, Suffixes: []rune{'ཀ'}, prefixAt: -1, suffixAt: 1},
		},
		{
			name: "three letters with prefix letter first",
			in:   "བཀའ",
			want: Parsed{Prefix: 'བ', Root: []rune{'ཀ'}, Suffixes: []rune{'འ'}, prefixAt: 0, suffixAt: 2},
		},
		{
			name: "three letters root and two suffixes",
			in:   "ལགས",
			want: Parsed{Root: []rune{'ལ'}, Suffixes: []rune{'ག', 'ས'}, prefixAt: -1, suffixAt: 1},
		},
		{
			name: "four letters",
			in:   "ཀགནས",
			want: Parsed{Prefix: 'ཀ', Root: []rune{'ག'}, Suffixes: []rune{'ན', 'ས'}, prefixAt: 0, suffixAt: 2},
		},
		{
			name: "stack head without vowel",
			in:   "བསྟནས",
			want: Parsed{Prefix: 'བ', Root: []rune{'ས', 'ྟ'}, Suffixes: []rune{'ན', 'ས'}, prefixAt: 0, suffixAt: 3},
		},
		{
			name: "three member stack",
			in:   "སྒྲུབ",
			want: Parsed{Root: []rune{'ས', 'ྒ', 'ྲ'}, Vowel: 'ུ', Suffixes: []rune{'བ'}, prefixAt: -1, suffixAt: 4},
		},
		{
			name: "leading vowel sign falls back to length",
			in:   "ིཀ",
			want: Parsed{Root: []rune{'ི'}, Suffixes: []rune{'ཀ'}, prefixAt: -1, suffixAt: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse([]rune(tt.in))
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.in)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(Parsed{})); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, in := range []string{"", "ཀཁགངཅ"} {
		if _, ok := Parse([]rune(in)); ok {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestParsedHelpers(t *testing.T) {
	p, _ := Parse([]rune("ལགས"))
	if p.PostSuffix() != 'ས' {
		t.Errorf("PostSuffix = %q", p.PostSuffix())
	}
	if p.Sanskrit() {
		t.Error("single root should not be Sanskrit")
	}

	p, _ = Parse([]rune("སྒྲུབ"))
	if !p.Sanskrit() {
		t.Error("three member stack should be Sanskrit")
	}
	if p.PostSuffix() != 0 {
		t.Errorf("PostSuffix = %q, want none", p.PostSuffix())
	}
}
