package ops

import (
	"strings"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
	"github.com/thonmi/tshegbar/internal/ortho"
)

// AnalyzeInput contains parameters for the Analyze operation.
type AnalyzeInput struct {
	Text string // required
}

// Syllable is the breakdown of one syllable.
type Syllable struct {
	Text        string     `json:"text"`
	Unicode     string     `json:"unicode"`
	Particle    string     `json:"particle,omitempty"`
	Parsed      bool       `json:"parsed"`
	Prefix      string     `json:"prefix,omitempty"`
	Root        string     `json:"root,omitempty"`
	Vowel       string     `json:"vowel,omitempty"`
	Suffix      string     `json:"suffix,omitempty"`
	PostSuffix  string     `json:"post_suffix,omitempty"`
	Extra       string     `json:"extra,omitempty"` // letters after the post-suffix
	Sanskrit    bool       `json:"sanskrit"`
	Valid       bool       `json:"valid"`
	Error       string     `json:"error,omitempty"`
	Kind        ortho.Kind `json:"kind,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

// AnalyzeOutput contains the result of the Analyze operation.
type AnalyzeOutput struct {
	Items []Syllable `json:"items"`
}

// Analyze breaks each syllable of the input into its frame positions and
// reports its verdict.
func Analyze(cfg *config.Config, input AnalyzeInput) (*AnalyzeOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}
	if err := checkSize(cfg, input.Text); err != nil {
		return nil, err
	}

	text := normalize(cfg, input.Text)
	tokens := ortho.Split(text)
	out := &AnalyzeOutput{Items: make([]Syllable, 0, len(tokens))}
	for _, token := range tokens {
		out.Items = append(out.Items, analyzeSyllable(token))
	}
	return out, nil
}

func analyzeSyllable(token string) Syllable {
	uni := ortho.Render(token)
	stem, particle := ortho.SplitParticle(uni)
	verdict := ortho.ValidateSyllable(uni)

	s := Syllable{
		Text:        token,
		Unicode:     uni,
		Particle:    particle,
		Valid:       verdict.Valid(),
		Error:       verdict.Error,
		Kind:        verdict.Kind,
		Suggestions: verdict.Suggestions,
	}

	p, ok := ortho.Parse([]rune(stem))
	if !ok {
		return s
	}
	s.Parsed = true
	s.Root = string(p.Root)
	s.Sanskrit = p.Sanskrit()
	if p.Prefix != 0 {
		s.Prefix = string(p.Prefix)
	}
	if p.Vowel != 0 {
		s.Vowel = string(p.Vowel)
	}
	switch n := len(p.Suffixes); {
	case n > 2:
		s.Extra = string(p.Suffixes[2:])
		fallthrough
	case n == 2:
		s.PostSuffix = string(p.PostSuffix())
		fallthrough
	case n == 1:
		s.Suffix = string(p.Suffixes[0])
	}
	return s
}
