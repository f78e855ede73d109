package handhistory

import (
	"regexp"
	"strings"
)

// Section names a "*** NAME ***" marker in a hand.
type Section int

const (
	SectionHoleCards Section = iota + 1
	SectionFlop
	SectionTurn
	SectionRiver
	SectionShowDown
	SectionSummary
)

var sectionNames = map[string]Section{
	"HOLE CARDS": SectionHoleCards,
	"FLOP":       SectionFlop,
	"TURN":       SectionTurn,
	"RIVER":      SectionRiver,
	"SHOW DOWN":  SectionShowDown,
	"SUMMARY":    SectionSummary,
}

func (s Section) String() string {
	for name, sec := range sectionNames {
		if sec == s {
			return name
		}
	}
	return "UNKNOWN"
}

// A marker like "*** FLOP *** [2s 6d 6h]" splits into "", "FLOP", "[2s 6d 6h]".
var splitRe = regexp.MustCompile(` ?\*\*\* ?\n?|\n`)

// sections is the split line sequence of one hand plus the coordinates of
// its markers. Later stages address lines relative to a named section rather
// than rescanning the text.
type sections struct {
	lines []string
	// markers holds the index of every empty line: the slot in front of a
	// section keyword.
	markers []int
	// named maps a section to the index of its keyword line.
	named map[Section]int
}

func normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimSpace(text)
}

func splitSections(text string) (*sections, error) {
	text = normalize(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	s := &sections{
		lines: splitRe.Split(text, -1),
		named: make(map[Section]int),
	}
	for i, line := range s.lines {
		if line == "" {
			s.markers = append(s.markers, i)
			continue
		}
		if i == 0 || s.lines[i-1] != "" {
			continue
		}
		if sec, ok := sectionNames[line]; ok {
			if _, seen := s.named[sec]; !seen {
				s.named[sec] = i
			}
		}
	}
	return s, nil
}

// find returns the keyword line index of a section.
func (s *sections) find(sec Section) (int, bool) {
	idx, ok := s.named[sec]
	return idx, ok
}

// nextMarker returns the first marker at or after from, or len(lines).
func (s *sections) nextMarker(from int) int {
	for _, m := range s.markers {
		if m >= from {
			return m
		}
	}
	return len(s.lines)
}

// span returns the lines in [from, nextMarker(from)).
func (s *sections) span(from int) []string {
	if from >= len(s.lines) {
		return nil
	}
	return s.lines[from:s.nextMarker(from)]
}

func (s *sections) line(idx int) string {
	if idx < 0 || idx >= len(s.lines) {
		return ""
	}
	return s.lines[idx]
}
