package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles are bound to one renderer so colour can be switched off per writer.
type styles struct {
	header   lipgloss.Style
	info     lipgloss.Style
	street   lipgloss.Style
	action   lipgloss.Style
	hero     lipgloss.Style
	button   lipgloss.Style
	redCard  lipgloss.Style
	card     lipgloss.Style
	winner   lipgloss.Style
	muted    lipgloss.Style
	positive lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		street: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		action: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		hero: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		button: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		redCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		card: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		winner: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		positive: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
	}
}
