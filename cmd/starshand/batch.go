package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/starshand/internal/config"
	"github.com/lox/starshand/internal/handhistory"
)

// BatchFlags select input files and how parse failures are handled.
type BatchFlags struct {
	Files   []string `arg:"" name:"file" optional:"" help:"Hand history files; '-' or none reads stdin"`
	Workers int      `short:"w" help:"Parallel parsers (default from config)"`
	Strict  bool     `help:"Fail on the first hand that does not parse"`
}

// source is one hand's text and where it came from.
type source struct {
	file  string
	index int
	text  string
}

// batch parses many hands in parallel and reports them in input order.
type batch struct {
	parser  *handhistory.Parser
	logger  zerolog.Logger
	workers int
	strict  bool
}

func newBatch(cfg *config.Config, logger zerolog.Logger, flags BatchFlags) (*batch, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	workers := cfg.Batch.Workers
	if flags.Workers > 0 {
		workers = flags.Workers
	}
	return &batch{
		parser:  handhistory.NewParser(logger, handhistory.Config{Location: loc}),
		logger:  logger,
		workers: workers,
		strict:  cfg.Batch.Strict || flags.Strict,
	}, nil
}

// readSources splits every input into single hands.
func readSources(stdin io.Reader, files []string) ([]source, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var sources []source
	for _, file := range files {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(filepath.Clean(file))
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		for i, text := range handhistory.SplitHands(string(data)) {
			sources = append(sources, source{file: file, index: i + 1, text: text})
		}
	}
	return sources, nil
}

// run parses sources with at most b.workers in flight. Failed hands are
// logged and skipped unless strict, in which case the first failure in input
// order is returned.
func (b *batch) run(ctx context.Context, sources []source) ([]*handhistory.HandHistory, error) {
	hands := make([]*handhistory.HandHistory, len(sources))
	errs := make([]error, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hands[i], errs[i] = b.parser.Parse(src.text)
			if errs[i] != nil && b.strict {
				return errs[i]
			}
			return nil
		})
	}
	waitErr := g.Wait()

	parsed := make([]*handhistory.HandHistory, 0, len(sources))
	failed := 0
	for i, src := range sources {
		if err := errs[i]; err != nil {
			if b.strict {
				return nil, fmt.Errorf("%s: hand %d: %w", src.file, src.index, err)
			}
			failed++
			b.logger.Warn().
				Err(err).
				Str("file", src.file).
				Int("hand", src.index).
				Msg("Skipping hand")
			continue
		}
		if hands[i] != nil {
			parsed = append(parsed, hands[i])
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}

	b.logger.Info().
		Int("parsed", len(parsed)).
		Int("failed", failed).
		Msg("Parsed hands")
	return parsed, nil
}
