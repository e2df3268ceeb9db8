package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/lex/internal/core"
	"github.com/sandevgo/lex/internal/service/ui"
	"github.com/sandevgo/lex/pkg/conv"
)

type Formatter struct {
	painter *ui.Painter
}

func NewFormatter(painter *ui.Painter) *Formatter {
	return &Formatter{painter: painter}
}

func (f *Formatter) Success(message string) string {
	return fmt.Sprintf("%s\n", message)
}

func (f *Formatter) Error(err error) string {
	return f.painter.Error(fmt.Sprintf("Error: %v", err)) + "\n"
}

// Entry renders the word followed by its definition, indented.
func (f *Formatter) Entry(e core.Entry) string {
	text, err := conv.MarkdownToText(e.Definition)
	if err != nil {
		text = e.Definition
	}

	var sb strings.Builder
	sb.WriteString(f.painter.Word(e.Word))
	sb.WriteString("\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// Words lists entries one per line with the first line of their definition.
func (f *Formatter) Words(entries []core.Entry, empty string) string {
	if len(entries) == 0 {
		return f.painter.Desc(empty) + "\n"
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Word))
	}

	var sb strings.Builder
	for _, e := range entries {
		summary := firstLine(e.Definition)
		pad := strings.Repeat(" ", width-lipgloss.Width(e.Word))
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", f.painter.Word(e.Word), pad, f.painter.Desc(summary)))
	}
	return sb.String()
}

const summaryWidth = 60

func firstLine(md string) string {
	text, err := conv.MarkdownToText(md)
	if err != nil {
		text = md
	}
	line, _, _ := strings.Cut(text, "\n")
	return truncate(line, summaryWidth)
}

// truncate shortens s to at most n runes, ellipsis included.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
