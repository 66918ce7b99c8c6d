package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
	"github.com/thonmi/tshegbar/internal/ewts"
	"github.com/thonmi/tshegbar/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
// Files named on the command line are read through fs.
func newCLIApp(cfg *config.Config, fs afero.Fs) *cli.App {
	app := &cli.App{
		Name:    "tshegbar",
		Usage:   "Tibetan EWTS transliteration and spell checking",
		Version: Version,
		Commands: []*cli.Command{
			convertCmd(cfg),
			checkCmd(cfg),
			checkFilesCmd(cfg, fs),
			analyzeCmd(cfg),
			completeCmd(cfg),
			guideCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

var jsonFlag = &cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"}

// convertCmd creates the convert command.
func convertCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert EWTS to Tibetan Unicode (arguments or stdin)",
		ArgsUsage: "[ewts...]",
		Flags:     []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			text, err := inputText(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Convert(cfg, ops.ConvertInput{Text: text})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			_, err = fmt.Fprintln(c.App.Writer, output.Unicode)
			return err
		},
	}
}

// checkCmd creates the check command.
func checkCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Spell check Tibetan or EWTS text (arguments or stdin)",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "Skip code and HTML in markdown input"},
			jsonFlag,
		},
		Action: func(c *cli.Context) error {
			text, err := inputText(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Check(cfg, ops.CheckInput{Text: text, Markdown: c.Bool("markdown")})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				if err := outputJSON(c.App.Writer, output); err != nil {
					return err
				}
			} else {
				printCheck(c.App.Writer, output)
			}
			if !output.IsValid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// checkFilesCmd creates the check-files command.
func checkFilesCmd(cfg *config.Config, fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:      "check-files",
		Usage:     "Spell check files (.md and .markdown files skip code)",
		ArgsUsage: "<path...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "Treat every file as markdown"},
			jsonFlag,
		},
		Action: func(c *cli.Context) error {
			output, err := ops.CheckFiles(c.Context, fs, cfg, ops.CheckFilesInput{
				Paths:    c.Args().Slice(),
				Markdown: c.Bool("markdown"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				if err := outputJSON(c.App.Writer, output); err != nil {
					return err
				}
			} else {
				printFiles(c.App.Writer, output)
			}
			if !output.Valid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Show the prefix, root, vowel and suffixes of each syllable",
		ArgsUsage: "[text...]",
		Flags:     []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			text, err := inputText(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Analyze(cfg, ops.AnalyzeInput{Text: text})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			_, err = io.WriteString(c.App.Writer, analysisTree(output).String())
			return err
		},
	}
}

// completeCmd creates the complete command.
func completeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "Suggest words completing the last partial word",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Maximum suggestions (default from config)"},
			jsonFlag,
		},
		Action: func(c *cli.Context) error {
			text, err := inputText(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Complete(cfg, ops.CompleteInput{Text: text, Limit: c.Int("limit")})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			for _, w := range output.Words {
				fmt.Fprintln(c.App.Writer, w)
			}
			return nil
		},
	}
}

// guideCmd creates the guide command.
func guideCmd() *cli.Command {
	return &cli.Command{
		Name:  "guide",
		Usage: "Print the EWTS reference tables",
		Flags: []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			output := ops.Guide()
			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			printGuide(c.App.Writer, output)
			return nil
		},
	}
}

// Rendering

func printCheck(w io.Writer, out *ops.CheckOutput) {
	if out.IsValid {
		fmt.Fprintf(w, "✓ %s syllables, no errors\n", humanize.Comma(int64(out.Syllables)))
		return
	}

	fmt.Fprintf(w, "✗ %s of %s syllables misspelled\n",
		humanize.Comma(int64(len(out.InvalidSyllables))), humanize.Comma(int64(out.Syllables)))
	seen := make(map[string]bool)
	for _, syl := range out.InvalidSyllables {
		if seen[syl] {
			continue
		}
		seen[syl] = true
		if fixes := out.Suggestions[syl]; len(fixes) > 0 {
			fmt.Fprintf(w, "  %s → %s\n", syl, strings.Join(fixes, ", "))
		} else {
			fmt.Fprintf(w, "  %s\n", syl)
		}
	}
	for _, msg := range out.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}

func printFiles(w io.Writer, out *ops.CheckFilesOutput) {
	table := tablewriter.NewWriter(w)
	table.Header("File", "Size", "Syllables", "Misspelled")
	for _, f := range out.Files {
		table.Append([]string{
			f.Path,
			humanize.Bytes(uint64(f.Bytes)),
			humanize.Comma(int64(f.Syllables)),
			humanize.Comma(int64(len(f.InvalidSyllables))),
		})
	}
	table.Render()
	fmt.Fprintf(w, "report %s: %d of %d files with errors\n", out.ID, out.InvalidFiles, len(out.Files))
}

// analysisTree renders one branch per syllable with a node per filled position.
func analysisTree(out *ops.AnalyzeOutput) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%d syllables", len(out.Items)))
	for _, s := range out.Items {
		label := s.Unicode
		if s.Text != s.Unicode {
			label = fmt.Sprintf("%s (%s)", s.Unicode, s.Text)
		}
		if !s.Valid {
			label += " ✗"
		}
		branch := tree.AddBranch(label)
		for _, part := range []struct{ name, value string }{
			{"prefix", s.Prefix},
			{"root", s.Root},
			{"vowel", s.Vowel},
			{"suffix", s.Suffix},
			{"post-suffix", s.PostSuffix},
			{"extra", s.Extra},
			{"particle", s.Particle},
		} {
			if part.value != "" {
				branch.AddMetaNode(part.name, part.value)
			}
		}
		if s.Sanskrit {
			branch.AddNode("sanskrit stack")
		}
		if s.Error != "" {
			errNode := branch.AddMetaBranch(string(s.Kind), s.Error)
			for _, fix := range s.Suggestions {
				errNode.AddNode("→ " + fix)
			}
		}
	}
	return tree
}

func printGuide(w io.Writer, out *ops.GuideOutput) {
	sections := []struct {
		title   string
		entries []ewts.Entry
	}{
		{"Vowels", out.Vowels},
		{"Specials", out.Specials},
		{"Punctuation", out.Punctuation},
	}
	fmt.Fprintln(w, "Consonants")
	table := tablewriter.NewWriter(w)
	table.Header("EWTS", "Tibetan", "Subjoined")
	for _, e := range out.Consonants {
		table.Append([]string{e.EWTS, e.Unicode, e.Subjoined})
	}
	table.Render()

	for _, sec := range sections {
		fmt.Fprintln(w, sec.title)
		table := tablewriter.NewWriter(w)
		table.Header("EWTS", "Tibetan")
		for _, e := range sec.entries {
			table.Append([]string{e.EWTS, e.Unicode})
		}
		table.Render()
	}

	fmt.Fprintln(w, "Examples")
	table = tablewriter.NewWriter(w)
	table.Header("EWTS", "Tibetan", "Note")
	for _, ex := range out.Examples {
		table.Append([]string{ex.EWTS, ex.Unicode, ex.Note})
	}
	table.Render()
}

// Helper functions

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tErr, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tErr.Code, tErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// inputText joins the positional arguments, or reads stdin when none are given.
func inputText(c *cli.Context, cfg *config.Config) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	if !stdinHasData() {
		return "", errors.NewInvalidRequest("text must be given as arguments or piped via stdin")
	}
	if cfg == nil || cfg.MaxInputChars <= 0 {
		return readStdin(-1)
	}
	// A rune is at most 4 bytes; the char limit itself is enforced by ops.
	return readStdin(int64(cfg.MaxInputChars) * 4)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin, failing past maxBytes.
// A negative maxBytes reads without a limit.
func readStdin(maxBytes int64) (string, error) {
	var r io.Reader = os.Stdin
	if maxBytes >= 0 {
		r = io.LimitReader(os.Stdin, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	if maxBytes >= 0 && int64(len(data)) > maxBytes {
		return "", errors.NewInvalidRequest(fmt.Sprintf("stdin exceeds %s", humanize.Bytes(uint64(maxBytes))))
	}
	return strings.TrimSpace(string(data)), nil
}
