package ops

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
)

// Operation limits
const (
	MaxCompletionLimit = 50
	MaxBatchFiles      = 100
)

// checkSize rejects text longer than the configured limit.
func checkSize(cfg *config.Config, text string) error {
	if cfg == nil || cfg.MaxInputChars <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > cfg.MaxInputChars {
		return errors.NewInputTooLarge(cfg.MaxInputChars, n)
	}
	return nil
}

// normalize applies the configured Unicode normalization form.
func normalize(cfg *config.Config, text string) string {
	if cfg == nil {
		return text
	}
	switch cfg.Normalize {
	case config.NormalizeNFC:
		return norm.NFC.String(text)
	case config.NormalizeNFD:
		return norm.NFD.String(text)
	}
	return text
}
