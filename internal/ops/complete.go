package ops

import (
	"fmt"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
	"github.com/thonmi/tshegbar/internal/predict"
)

// CompleteInput contains parameters for the Complete operation.
type CompleteInput struct {
	Text  string
	Limit int // default: config completion_limit, max: MaxCompletionLimit
}

// CompleteOutput contains the result of the Complete operation.
type CompleteOutput struct {
	Partial     string   `json:"partial"`
	Words       []string `json:"words"`
	Completions []string `json:"completions"` // Text with each word accepted
}

// Complete suggests common words for the partial word at the end of the input.
func Complete(cfg *config.Config, input CompleteInput) (*CompleteOutput, error) {
	if input.Limit < 0 {
		return nil, errors.NewInvalidRequest("limit must not be negative")
	}
	if input.Limit > MaxCompletionLimit {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("limit must be at most %d", MaxCompletionLimit))
	}
	if err := checkSize(cfg, input.Text); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 && cfg != nil {
		limit = cfg.CompletionLimit
	}

	partial, words := predict.Complete(input.Text, limit)
	out := &CompleteOutput{
		Partial:     partial,
		Words:       words,
		Completions: make([]string, 0, len(words)),
	}
	for _, w := range words {
		out.Completions = append(out.Completions, predict.Accept(input.Text, w))
	}
	return out, nil
}
