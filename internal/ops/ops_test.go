package ops

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCheckSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxInputChars = 3

	if err := checkSize(cfg, "ཀཁག"); err != nil {
		t.Errorf("3 runes should fit: %v", err)
	}
	err := checkSize(cfg, "ཀཁགང")
	if !errors.Is(err, errors.ErrInputTooLarge) {
		t.Fatalf("expected INPUT_TOO_LARGE, got %v", err)
	}

	if err := checkSize(nil, "anything"); err != nil {
		t.Errorf("nil config should not limit: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	// U+0F73 decomposes to U+0F71 U+0F72.
	composed := "\u0F40\u0F73"
	decomposed := "\u0F40\u0F71\u0F72"

	cfg := config.DefaultConfig()
	if got := normalize(cfg, composed); got != composed {
		t.Errorf("no normalization changed text: %U", []rune(got))
	}

	cfg.Normalize = config.NormalizeNFD
	if got := normalize(cfg, composed); got != decomposed {
		t.Errorf("NFD = %U, want %U", []rune(got), []rune(decomposed))
	}
}
