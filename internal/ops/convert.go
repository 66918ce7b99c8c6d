package ops

import (
	"strings"
	"unicode/utf8"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
	"github.com/thonmi/tshegbar/internal/ewts"
)

// ConvertInput contains parameters for the Convert operation.
type ConvertInput struct {
	Text string // required, EWTS
}

// ConvertOutput contains the result of the Convert operation.
type ConvertOutput struct {
	Unicode string `json:"unicode"`
	Chars   int    `json:"chars"`
}

// Convert transliterates EWTS text to Tibetan Unicode.
func Convert(cfg *config.Config, input ConvertInput) (*ConvertOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}
	if err := checkSize(cfg, input.Text); err != nil {
		return nil, err
	}

	out := normalize(cfg, ewts.ToUnicode(input.Text))
	return &ConvertOutput{
		Unicode: out,
		Chars:   utf8.RuneCountInString(out),
	}, nil
}
