package ops

import (
	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/ortho"
)

// CheckInput contains parameters for the Check operation.
type CheckInput struct {
	Text     string
	Markdown bool // check only the prose of a markdown document
}

// CheckOutput contains the result of the Check operation.
type CheckOutput struct {
	ortho.Result
	Syllables int `json:"syllables"`
}

// Check validates the spelling of every syllable in the input.
// Empty input is valid.
func Check(cfg *config.Config, input CheckInput) (*CheckOutput, error) {
	if err := checkSize(cfg, input.Text); err != nil {
		return nil, err
	}
	return checkText(cfg, input.Text, input.Markdown), nil
}

func checkText(cfg *config.Config, text string, markdown bool) *CheckOutput {
	if markdown {
		text = ExtractProse(text)
	}
	text = normalize(cfg, text)
	return &CheckOutput{
		Result:    ortho.Check(text),
		Syllables: len(ortho.Split(text)),
	}
}
