package mcp

import "github.com/mark3labs/mcp-go/mcp"

var convertToolDef = mcp.NewTool("ewts_convert",
	mcp.WithDescription("Convert Extended Wylie (EWTS) transliteration to Tibetan Unicode. "+
		"Spaces become tsheg, / becomes shad, + stacks letters explicitly (k+ya)."),
	mcp.WithString("text", mcp.Required(), mcp.Description("EWTS text, e.g. \"bkra shis bde legs\"")),
)

var checkToolDef = mcp.NewTool("spell_check",
	mcp.WithDescription("Check Tibetan spelling syllable by syllable against the classical prefix, "+
		"suffix and post-suffix rules. Accepts Unicode Tibetan or EWTS. Returns errors, the invalid "+
		"syllables and suggested corrections keyed by the original syllable."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Text to check")),
	mcp.WithBoolean("markdown", mcp.Description("Treat text as markdown and skip code and HTML")),
)

var analyzeToolDef = mcp.NewTool("syllable_analyze",
	mcp.WithDescription("Break each syllable into prefix, root stack, vowel, suffix and post-suffix, "+
		"with its validation verdict."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Tibetan or EWTS text")),
)

var completeToolDef = mcp.NewTool("word_complete",
	mcp.WithDescription("Suggest common Tibetan words that complete the last partial word of the text."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Text ending in a partial word")),
	mcp.WithNumber("limit", mcp.Description("Maximum suggestions (default from config, max 50)")),
)
