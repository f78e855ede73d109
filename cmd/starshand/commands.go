package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/lox/starshand/cmd/starshand/shared"
	"github.com/lox/starshand/internal/config"
	"github.com/lox/starshand/internal/fileutil"
	"github.com/lox/starshand/internal/handhistory"
	"github.com/lox/starshand/internal/phh"
	"github.com/lox/starshand/internal/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// loadHands runs the shared config, logging and batch pipeline.
func loadHands(g *Globals, flags BatchFlags) (*config.Config, []*handhistory.HandHistory, error) {
	cfg, logger, err := g.setup()
	if err != nil {
		return nil, nil, err
	}
	b, err := newBatch(cfg, logger, flags)
	if err != nil {
		return nil, nil, err
	}
	sources, err := readSources(stdin, flags.Files)
	if err != nil {
		return nil, nil, err
	}
	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no hands found")
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()
	hands, err := b.run(ctx, sources)
	return cfg, hands, err
}

// ParseCmd prints one summary line per hand.
type ParseCmd struct {
	BatchFlags
}

func (c *ParseCmd) Run(g *Globals) error {
	_, hands, err := loadHands(g, c.BatchFlags)
	if err != nil {
		return err
	}
	w := g.stdout()
	for _, h := range hands {
		if _, err := fmt.Fprintln(w, summaryLine(h)); err != nil {
			return err
		}
	}
	return nil
}

func summaryLine(h *handhistory.HandHistory) string {
	hero := h.Hero()
	streets := make([]string, 0, 4)
	for _, s := range h.Streets() {
		streets = append(streets, s.Name)
	}
	return fmt.Sprintf("#%s %s hero=%s [%s] streets=%s pot=%d winners=%s",
		h.ID,
		h.Date.Format("2006-01-02T15:04:05Z"),
		hero.Name,
		hero.Combo,
		strings.Join(streets, ","),
		h.TotalPot,
		strings.Join(h.Winners, ","),
	)
}

// RenderCmd prints a styled view of each hand.
type RenderCmd struct {
	BatchFlags
	NoColor bool `help:"Disable colour output"`
}

func (c *RenderCmd) Run(g *Globals) error {
	cfg, hands, err := loadHands(g, c.BatchFlags)
	if err != nil {
		return err
	}
	opts := render.Options{Color: cfg.ColorEnabled() && !c.NoColor}
	w := g.stdout()
	for i, h := range hands {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := render.Hand(w, h, opts); err != nil {
			return err
		}
	}
	return nil
}

// ExportCmd writes parsed hands as JSON or as a PHH session file.
type ExportCmd struct {
	BatchFlags
	Format string `short:"f" help:"Output format: json or phh (default from config)"`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

func (c *ExportCmd) Run(g *Globals) error {
	cfg, hands, err := loadHands(g, c.BatchFlags)
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if c.Format != "" {
		format = c.Format
	}

	write := func(w io.Writer) error {
		return exportHands(w, hands, format)
	}
	if c.Output == "" {
		return write(g.stdout())
	}
	return fileutil.WriteAtomic(c.Output, 0o644, write)
}

func exportHands(w io.Writer, hands []*handhistory.HandHistory, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(hands, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
		return nil
	case "phh":
		converted := make([]*phh.HandHistory, 0, len(hands))
		for _, h := range hands {
			hist, err := phh.FromHand(h)
			if err != nil {
				return fmt.Errorf("hand %s: %w", h.ID, err)
			}
			converted = append(converted, hist)
		}
		return phh.EncodeAll(w, converted)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
