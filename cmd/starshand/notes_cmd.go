package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/coder/quartz"

	"github.com/lox/starshand/internal/notes"
)

// clock stamps notes added from the command line; tests replace it.
var clock quartz.Clock = quartz.NewReal()

// NotesCmd is the root command for player notes.
type NotesCmd struct {
	File string `short:"n" type:"path" help:"Notes file (default from config)"`

	List     NotesListCmd     `cmd:"" help:"List every note"`
	Show     NotesShowCmd     `cmd:"" help:"Show one player's note"`
	Add      NotesAddCmd      `cmd:"" help:"Add or replace a player's note"`
	Del      NotesDelCmd      `cmd:"" help:"Delete a player's note"`
	Labels   NotesLabelsCmd   `cmd:"" help:"List labels"`
	AddLabel NotesAddLabelCmd `cmd:"add-label" help:"Add a label"`
	DelLabel NotesDelLabelCmd `cmd:"del-label" help:"Delete a label"`
}

// notesFile resolves the notes path from the flag or the config file.
func notesFile(g *Globals, parent *NotesCmd) (string, error) {
	if parent.File != "" {
		return parent.File, nil
	}
	cfg, _, err := g.setup()
	if err != nil {
		return "", err
	}
	if cfg.Notes.File == "" {
		return "", errors.New("no notes file: pass --file or set notes.file in the config")
	}
	return cfg.Notes.File, nil
}

func openNotes(g *Globals, parent *NotesCmd) (*notes.Notes, string, error) {
	path, err := notesFile(g, parent)
	if err != nil {
		return nil, "", err
	}
	n, err := notes.Load(path, clock)
	if err != nil {
		return nil, "", err
	}
	return n, path, nil
}

// editNotes loads the file, applies edit and saves the result.
func editNotes(g *Globals, parent *NotesCmd, edit func(*notes.Notes) error) error {
	n, path, err := openNotes(g, parent)
	if err != nil {
		return err
	}
	if err := edit(n); err != nil {
		return err
	}
	return n.Save(path)
}

func printNote(w io.Writer, note notes.Note) {
	label := note.Label
	if label == "" {
		label = "-"
	}
	updated := "-"
	if !note.Update.IsZero() {
		updated = note.Update.Format("2006-01-02 15:04")
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", note.Player, label, updated, note.Text)
}

type NotesListCmd struct{}

func (c *NotesListCmd) Run(g *Globals, parent *NotesCmd) error {
	n, _, err := openNotes(g, parent)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	for _, note := range n.Notes() {
		printNote(tw, note)
	}
	return tw.Flush()
}

type NotesShowCmd struct {
	Player string `arg:"" help:"Player name"`
}

func (c *NotesShowCmd) Run(g *Globals, parent *NotesCmd) error {
	n, _, err := openNotes(g, parent)
	if err != nil {
		return err
	}
	note, err := n.Note(c.Player)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	printNote(tw, note)
	return tw.Flush()
}

type NotesAddCmd struct {
	Player string `arg:"" help:"Player name"`
	Text   string `arg:"" help:"Note text"`
	Label  string `short:"l" help:"Label name"`
}

func (c *NotesAddCmd) Run(g *Globals, parent *NotesCmd) error {
	return editNotes(g, parent, func(n *notes.Notes) error {
		return n.AddNote(c.Player, c.Text, c.Label)
	})
}

type NotesDelCmd struct {
	Player string `arg:"" help:"Player name"`
}

func (c *NotesDelCmd) Run(g *Globals, parent *NotesCmd) error {
	return editNotes(g, parent, func(n *notes.Notes) error {
		return n.DelNote(c.Player)
	})
}

type NotesLabelsCmd struct{}

func (c *NotesLabelsCmd) Run(g *Globals, parent *NotesCmd) error {
	n, _, err := openNotes(g, parent)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	for _, l := range n.Labels() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.ID, l.Color, l.Name)
	}
	return tw.Flush()
}

type NotesAddLabelCmd struct {
	Name  string `arg:"" help:"Label name"`
	Color string `arg:"" help:"Six hex digit colour, e.g. 30DBFF"`
}

func (c *NotesAddLabelCmd) Run(g *Globals, parent *NotesCmd) error {
	return editNotes(g, parent, func(n *notes.Notes) error {
		_, err := n.AddLabel(c.Name, c.Color)
		return err
	})
}

type NotesDelLabelCmd struct {
	Name string `arg:"" help:"Label name"`
}

func (c *NotesDelLabelCmd) Run(g *Globals, parent *NotesCmd) error {
	return editNotes(g, parent, func(n *notes.Notes) error {
		return n.DelLabel(c.Name)
	})
}
