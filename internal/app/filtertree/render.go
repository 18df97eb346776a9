package filtertree

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logview/internal/app/filters"
	"logview/internal/config"
)

const (
	ColorShow      = lipgloss.Color("10") // Green
	ColorHide      = lipgloss.Color("9")  // Red
	ColorHighlight = lipgloss.Color("11") // Yellow
	ColorWindow    = lipgloss.Color("#7D56F4")
	ColorMuted     = lipgloss.Color("8")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWindow)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	disabledStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	inheritedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	modeStyles = map[filters.Mode]lipgloss.Style{
		filters.ModeShow:      lipgloss.NewStyle().Foreground(ColorShow),
		filters.ModeHide:      lipgloss.NewStyle().Foreground(ColorHide),
		filters.ModeHighlight: lipgloss.NewStyle().Foreground(ColorHighlight),
		filters.ModeWindow:    lipgloss.NewStyle().Foreground(ColorWindow),
	}
)

// Style controls the layout of a rendered tree
type Style struct {
	Indent    int
	Inherited bool
}

// NewStyle creates the style configured for the application
func NewStyle(cfg *config.Config) Style {
	return Style{Indent: cfg.Tree.Indent, Inherited: true}
}

// Render draws the tree, one filter per line, followed by the number of
// enabled top-level filters per mode. Inherited filters of nested levels are
// shown only when style.Inherited is set.
func (t *Tree) Render(style Style) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("filters"))
	b.WriteString("\n")

	if t.root != nil {
		renderLevel(&b, t.root, style, 1)
	}

	if t.index != nil {
		b.WriteString(renderSummary(t.index))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSummary(index *filters.ModeIndex) string {
	counts := make([]string, 0, int(filters.ModeWindow)+1)

	for mode := filters.ModeShow; mode <= filters.ModeWindow; mode++ {
		counts = append(counts, fmt.Sprintf("%s %d", mode, len(index.Filters(mode))))
	}

	return summaryStyle.Render("enabled: " + strings.Join(counts, ", "))
}

func renderLevel(b *strings.Builder, l *Level, style Style, depth int) {
	indent := strings.Repeat(" ", style.Indent*depth)

	for _, n := range l.nodes {
		inherited := l.inherited(n.filter)
		if inherited && !style.Inherited {
			continue
		}

		b.WriteString(indent)
		b.WriteString(renderNode(n, inherited))
		b.WriteString("\n")

		if n.nested != nil && !inherited {
			renderLevel(b, n.nested, style, depth+1)
		}
	}
}

func renderNode(n *Node, inherited bool) string {
	f := n.filter

	marker := "-"
	if n.nested != nil {
		marker = "+"
	}

	mode := modeStyles[f.Mode()].Render("[" + f.Mode().String() + "]")
	line := marker + " " + nameStyle.Render(f.Name()) + " " + mode

	switch {
	case inherited:
		return inheritedStyle.Render("^ " + f.Name() + " [" + f.Mode().String() + "]")
	case !f.IsEnabled():
		return disabledStyle.Render(marker+" "+f.Name()+" ["+f.Mode().String()+"]") + " (off)"
	default:
		return line
	}
}
