package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/logging"
	"github.com/thonmi/tshegbar/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"convert": true, "check": true, "check-files": true,
	"analyze": true, "complete": true, "guide": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
  བཀྲ་ཤིས་  tshegbar

  Tibetan EWTS transliteration and spell checking

  Usage: tshegbar <command> [options]
         tshegbar --help

  MCP server mode requires piped input.`)
}

// loadConfig merges ~/.tshegbar/config.json with the nearest repo config.
func loadConfig() (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not determine working directory: %w", err)
	}
	return config.LoadWithRepo(filepath.Join(homeDir, config.DirName), cwd)
}

// exit prints err, if it has a message, and exits with its code.
func exit(err error) {
	code := 1
	var exitErr cli.ExitCoder
	if stderrors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Help and version work even with a broken config file.
	if isHelpOrVersion() {
		if err := newCLIApp(config.DefaultConfig(), afero.NewOsFs()).Run(os.Args); err != nil {
			exit(err)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Level() // validated by LoadWithRepo
	logging.Init(level)

	if isCLIMode() {
		if err := newCLIApp(cfg, afero.NewOsFs()).Run(os.Args); err != nil {
			exit(err)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'tshegbar --help' for usage.\n")
		os.Exit(1)
	}

	if err := mcp.Run(cfg, Version); err != nil {
		slog.Error("mcp server stopped", "err", err)
		os.Exit(1)
	}
}
