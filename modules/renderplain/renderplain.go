// Package renderplain is a reference render module: on Refresh it renders
// its source's current text into the pane's rectangle using lipgloss for
// width/height-bounded styling, storing the result on the pane's Data for
// a display driver (package displaytty) to pick up and paint.
//
// This plays the "render-…" family's role from spec.md §4.6's auto-load
// policy (a key like attach-render-plain loads the module named by the
// key verbatim). The split between a render module that produces styled
// text and a display module that paints it onto a terminal mirrors
// cmd/hiveexplorer's separation between its Model (content/state) and its
// View/styles.go (charmbracelet/lipgloss rendering), generalized from one
// hardcoded TUI to a document-agnostic, swappable pane handler.
package renderplain

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/pane"
)

// TextSource is the minimal contract a render-plain pane needs from
// whatever document pane it is stacked over: its current full text. A
// document module (e.g. modules/docline) need not know renderplain
// exists; renderplain only needs to know the document can produce text.
type TextSource interface {
	Text() string
}

// State is the data a render-plain pane stores on itself: its source, the
// lipgloss style content is rendered with, and the last rendered frame.
type State struct {
	Source   TextSource
	Style    lipgloss.Style
	Rendered string
}

// Attach registers a render-plain pane under parent, sized to fit whatever
// rectangle Refresh gives it, styled by style (the zero value renders
// plain, unstyled text).
func Attach(parent *pane.Pane, z int, source TextSource, style lipgloss.Style) *pane.Pane {
	state := &State{Source: source, Style: style}
	p := pane.Register(parent, z, command.Func(state.call), state)
	p.Damaged(pane.DamagedContent)
	return p
}

func (s *State) call(ctx *command.Context) command.Status {
	switch ctx.Key {
	case "Refresh":
		home, ok := ctx.Home.(*pane.Pane)
		if !ok {
			return command.Enoarg
		}
		rect := home.Rect()
		s.Rendered = s.Style.
			MaxWidth(max1(rect.W)).
			MaxHeight(max1(rect.H)).
			Render(wrap(s.Source.Text(), max1(rect.W)))
		return 1
	case "Close":
		return 1
	}
	return command.NotHandled
}

// wrap breaks s into width-bounded lines without splitting multi-byte
// runes mid-sequence, since lipgloss.Style.MaxWidth truncates rather than
// wraps.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out strings.Builder
	col := 0
	for _, r := range s {
		if r == '\n' {
			out.WriteRune(r)
			col = 0
			continue
		}
		if col >= width {
			out.WriteRune('\n')
			col = 0
		}
		out.WriteRune(r)
		col++
	}
	return out.String()
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
