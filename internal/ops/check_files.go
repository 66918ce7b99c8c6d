package ops

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/thonmi/tshegbar/internal/config"
	"github.com/thonmi/tshegbar/internal/errors"
)

// CheckFilesInput contains parameters for the CheckFiles operation.
type CheckFilesInput struct {
	Paths    []string // required, at most MaxBatchFiles
	Markdown bool     // force markdown extraction; .md and .markdown files always get it
}

// FileReport is the check result for one file.
type FileReport struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
	*CheckOutput
}

// CheckFilesOutput contains the result of the CheckFiles operation.
type CheckFilesOutput struct {
	ID           string       `json:"id"`
	CheckedAt    time.Time    `json:"checked_at"`
	Files        []FileReport `json:"files"`
	Valid        bool         `json:"valid"`
	InvalidFiles int          `json:"invalid_files"`
}

// CheckFiles reads and checks each file concurrently, up to cfg.Workers at a
// time. Reports keep the order of input.Paths. The first failing file stops
// the batch.
func CheckFiles(ctx context.Context, fs afero.Fs, cfg *config.Config, input CheckFilesInput) (*CheckFilesOutput, error) {
	if len(input.Paths) == 0 {
		return nil, errors.NewInvalidRequest("at least one path is required")
	}
	if len(input.Paths) > MaxBatchFiles {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("at most %d files per batch", MaxBatchFiles))
	}
	for _, p := range input.Paths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.NewInvalidRequest("path must not be empty")
		}
	}

	workers := 1
	if cfg != nil && cfg.Workers > 0 {
		workers = cfg.Workers
	}

	reports := make([]FileReport, len(input.Paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range input.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := checkFile(fs, cfg, path, input.Markdown)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, errors.NewInternal(err)
	}

	out := &CheckFilesOutput{
		ID:        newReportID(),
		CheckedAt: time.Now().UTC(),
		Files:     reports,
		Valid:     true,
	}
	for _, r := range reports {
		if !r.IsValid {
			out.Valid = false
			out.InvalidFiles++
		}
	}
	slog.Debug("checked files", "id", out.ID, "files", len(reports), "invalid", out.InvalidFiles)
	return out, nil
}

func checkFile(fs afero.Fs, cfg *config.Config, path string, markdown bool) (*FileReport, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(path)
		}
		return nil, errors.NewInternal(err)
	}
	if info.IsDir() {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("path is a directory: %s", path))
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("reading %s: %w", path, err))
	}
	text := string(data)
	if err := checkSize(cfg, text); err != nil {
		return nil, err
	}

	markdown = markdown || isMarkdownPath(path)
	return &FileReport{
		Path:        path,
		Bytes:       info.Size(),
		CheckOutput: checkText(cfg, text, markdown),
	}, nil
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func newReportID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
