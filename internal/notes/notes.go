// Package notes reads and edits the PokerStars player notes file
// (notes.<account>.xml).
package notes

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/starshand/internal/fileutil"
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrLabelNotFound = errors.New("label not found")
	ErrInvalidColor  = errors.New("invalid label color")
)

// noLabel is the label id PokerStars writes for an unlabelled note.
const noLabel = "-1"

var colorRe = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Label is a colour-coded player category.
type Label struct {
	ID    int
	Color string
	Name  string
}

// Note is the note kept on one player. Label is the label name, empty when
// the note is unlabelled. Update is zero when the file carries no timestamp.
type Note struct {
	Player string
	Label  string
	Update time.Time
	Text   string
}

type document struct {
	XMLName xml.Name   `xml:"notes"`
	Version string     `xml:"version,attr"`
	Labels  []xmlLabel `xml:"labels>label"`
	Notes   []xmlNote  `xml:"note"`
}

type xmlLabel struct {
	ID    string `xml:"id,attr"`
	Color string `xml:"color,attr"`
	Name  string `xml:",chardata"`
}

type xmlNote struct {
	Player string `xml:"player,attr"`
	Label  string `xml:"label,attr"`
	Update string `xml:"update,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// Notes is an in-memory notes file. It is not safe for concurrent use.
type Notes struct {
	doc   document
	clock quartz.Clock
}

// New returns an empty notes file. The clock stamps notes added with AddNote.
func New(clock quartz.Clock) *Notes {
	return &Notes{doc: document{Version: "1"}, clock: clock}
}

// Parse reads a notes document.
func Parse(data []byte, clock quartz.Clock) (*Notes, error) {
	n := &Notes{clock: clock}
	if err := xml.Unmarshal(data, &n.doc); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}
	if n.doc.Version == "" {
		n.doc.Version = "1"
	}
	return n, nil
}

// Load reads a notes file from disk.
func Load(path string, clock quartz.Clock) (*Notes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return Parse(data, clock)
}

// Bytes renders the document with an XML declaration.
func (n *Notes) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(n.doc); err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save writes the document to path, replacing any existing file atomically.
func (n *Notes) Save(path string) error {
	data, err := n.Bytes()
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// Players returns the players with a note, in file order.
func (n *Notes) Players() []string {
	players := make([]string, len(n.doc.Notes))
	for i, note := range n.doc.Notes {
		players[i] = note.Player
	}
	return players
}

// LabelNames returns the label names, in file order.
func (n *Notes) LabelNames() []string {
	names := make([]string, len(n.doc.Labels))
	for i, l := range n.doc.Labels {
		names[i] = l.Name
	}
	return names
}

// Labels returns every label.
func (n *Notes) Labels() []Label {
	labels := make([]Label, len(n.doc.Labels))
	for i, l := range n.doc.Labels {
		labels[i] = toLabel(l)
	}
	return labels
}

// Notes returns every note with its label resolved to a name.
func (n *Notes) Notes() []Note {
	notes := make([]Note, len(n.doc.Notes))
	for i, note := range n.doc.Notes {
		notes[i] = n.toNote(note)
	}
	return notes
}

// NoteText returns the raw text of a player's note.
func (n *Notes) NoteText(player string) (string, error) {
	i, err := n.findNote(player)
	if err != nil {
		return "", err
	}
	return n.doc.Notes[i].Text, nil
}

// Note returns a player's note.
func (n *Notes) Note(player string) (Note, error) {
	i, err := n.findNote(player)
	if err != nil {
		return Note{}, err
	}
	return n.toNote(n.doc.Notes[i]), nil
}

// AddNote stores a note stamped with the current time. An empty label leaves
// the note unlabelled. A player has at most one note, so an existing note is
// replaced.
func (n *Notes) AddNote(player, text, label string) error {
	return n.AddNoteAt(player, text, label, n.clock.Now())
}

// AddNoteAt is AddNote with an explicit update time.
func (n *Notes) AddNoteAt(player, text, label string, update time.Time) error {
	labelID := noLabel
	if label != "" {
		i, err := n.findLabel(label)
		if err != nil {
			return err
		}
		labelID = n.doc.Labels[i].ID
	}

	note := xmlNote{
		Player: player,
		Label:  labelID,
		Update: strconv.FormatInt(update.Unix(), 10),
		Text:   text,
	}
	if i, err := n.findNote(player); err == nil {
		n.doc.Notes[i] = note
		return nil
	}
	n.doc.Notes = append(n.doc.Notes, note)
	return nil
}

// DelNote removes a player's note.
func (n *Notes) DelNote(player string) error {
	i, err := n.findNote(player)
	if err != nil {
		return err
	}
	n.doc.Notes = append(n.doc.Notes[:i], n.doc.Notes[i+1:]...)
	return nil
}

// Label returns the label with the given name.
func (n *Notes) Label(name string) (Label, error) {
	i, err := n.findLabel(name)
	if err != nil {
		return Label{}, err
	}
	return toLabel(n.doc.Labels[i]), nil
}

// AddLabel appends a label. Color is six hex digits in either case; the id
// is one more than the last label's.
func (n *Notes) AddLabel(name, color string) (Label, error) {
	color = strings.ToUpper(color)
	if !colorRe.MatchString(color) {
		return Label{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	id := 0
	if len(n.doc.Labels) > 0 {
		last, err := strconv.Atoi(n.doc.Labels[len(n.doc.Labels)-1].ID)
		if err != nil {
			return Label{}, fmt.Errorf("label id %q: %w", n.doc.Labels[len(n.doc.Labels)-1].ID, err)
		}
		id = last + 1
	}

	l := xmlLabel{ID: strconv.Itoa(id), Color: color, Name: name}
	n.doc.Labels = append(n.doc.Labels, l)
	return toLabel(l), nil
}

// DelLabel removes a label. Notes that referenced it read back unlabelled.
func (n *Notes) DelLabel(name string) error {
	i, err := n.findLabel(name)
	if err != nil {
		return err
	}
	n.doc.Labels = append(n.doc.Labels[:i], n.doc.Labels[i+1:]...)
	return nil
}

func (n *Notes) findNote(player string) (int, error) {
	for i, note := range n.doc.Notes {
		if note.Player == player {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNoteNotFound, player)
}

func (n *Notes) findLabel(name string) (int, error) {
	for i, l := range n.doc.Labels {
		if l.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrLabelNotFound, name)
}

func (n *Notes) toNote(x xmlNote) Note {
	note := Note{Player: x.Player, Text: x.Text}
	if x.Label != noLabel {
		for _, l := range n.doc.Labels {
			if l.ID == x.Label {
				note.Label = l.Name
				break
			}
		}
	}
	if secs, err := strconv.ParseInt(x.Update, 10, 64); err == nil {
		note.Update = time.Unix(secs, 0).UTC()
	}
	return note
}

func toLabel(x xmlLabel) Label {
	id, _ := strconv.Atoi(x.ID)
	return Label{ID: id, Color: x.Color, Name: x.Name}
}
