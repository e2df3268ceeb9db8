package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for the banner and headings
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// CommandStyle ANSI 4 (Blue) for command names in notices
	CommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	// WordStyle ANSI 2 (Green) for lexicon words
	WordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	// DescStyle ANSI 8 (Bright Black / Gray) for secondary text
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// ErrorStyle ANSI 1 (Red)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Painter applies styles, or nothing when color is off.
type Painter struct {
	noColor bool
}

func NewPainter(noColor bool) *Painter {
	return &Painter{noColor: noColor}
}

func (p *Painter) Title(s string) string   { return p.paint(TitleStyle, s) }
func (p *Painter) Command(s string) string { return p.paint(CommandStyle, s) }
func (p *Painter) Word(s string) string    { return p.paint(WordStyle, s) }
func (p *Painter) Desc(s string) string    { return p.paint(DescStyle, s) }
func (p *Painter) Error(s string) string   { return p.paint(ErrorStyle, s) }

func (p *Painter) paint(style lipgloss.Style, s string) string {
	if p == nil || p.noColor {
		return s
	}
	return style.Render(s)
}
