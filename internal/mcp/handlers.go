package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
	"github.com/thonmi/tshegbar/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// TextRequest represents the arguments for tools that take only text.
type TextRequest struct {
	Text string `json:"text"`
}

// CheckRequest represents the arguments for spell_check.
type CheckRequest struct {
	Text     string `json:"text"`
	Markdown bool   `json:"markdown,omitempty"`
}

// CompleteRequest represents the arguments for word_complete.
type CompleteRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit,omitempty"`
}

// HandleConvert handles the ewts_convert tool call.
func (h *Handlers) HandleConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TextRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Convert(h.cfg, ops.ConvertInput{Text: input.Text})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCheck handles the spell_check tool call.
func (h *Handlers) HandleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CheckRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	result, err := ops.Check(h.cfg, ops.CheckInput{Text: input.Text, Markdown: input.Markdown})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleAnalyze handles the syllable_analyze tool call.
func (h *Handlers) HandleAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TextRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Analyze(h.cfg, ops.AnalyzeInput{Text: input.Text})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleComplete handles the word_complete tool call.
func (h *Handlers) HandleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CompleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Complete(h.cfg, ops.CompleteInput{Text: input.Text, Limit: input.Limit})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Internal error details are never exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := errors.As(err); ok {
		message := tErr.Message
		// Keep context added by wrapping, e.g. "files[2]: ".
		if prefix, ok := strings.CutSuffix(err.Error(), tErr.Error()); ok {
			message = prefix + message
		}
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": message,
			"status":  tErr.Status,
		}
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
