// Package displaytty is the reference display module: a bubbletea
// tea.Model that drives an editor.Root's pane tree on a real terminal. It
// owns nothing about documents or rendering styles — it only walks the
// tree after each Refresh, paints every pane exposing a rendered frame
// (anything whose Data() is a *renderplain.State) onto a character grid at
// its absolute position clipped by Masked, and turns tea.KeyMsg/
// tea.WindowSizeMsg into pane.KeyHandle calls and root resizes.
//
// This generalizes cmd/hiveexplorer/main.go's tea.NewProgram bootstrap
// (AltScreen + mouse motion, Run, clean up on exit) and model.go/view.go's
// Model/View split from one hardcoded two-pane registry layout to an
// arbitrary pane tree shape, and reaches for the same
// rmhubbert/bubbletea-overlay package view.go uses for its modal detail
// popup — here driving a single floating pane (one tagged "floating" in
// its attribute map) over the flattened rest of the tree, rather than one
// hardcoded overlay.
package displaytty

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/editor"
	"github.com/joshuapare/panekit/modules/renderplain"
	"github.com/joshuapare/panekit/pane"
)

// KeyRouter turns a terminal key message into editor activity. Concrete
// key-mode modules (e.g. modules/modeemacs) implement this so displaytty
// never hardcodes one input style.
type KeyRouter interface {
	HandleKey(msg tea.KeyMsg) bool
}

// Model is the top-level bubbletea program model for one editor.Root.
type Model struct {
	Root   *editor.Root
	Router KeyRouter

	width, height int
}

// New returns a Model driving root, with keys routed through router (nil
// is valid: the model simply never handles key input itself, leaving it
// to fall through key_handle's own pane-tree walk via a wrapped command).
func New(root *editor.Root, router KeyRouter) *Model {
	return &Model{Root: root, Router: router}
}

func (m *Model) Init() tea.Cmd { return nil }

// Update handles window resize and key messages, then triggers a refresh
// of the whole tree so every damaged pane re-renders before the next View.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.Root.Pane().Resize(0, 0, msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Router != nil && m.Router.HandleKey(msg) {
			break
		}
		focus := m.Root.Pane().Focus()
		if focus == nil {
			focus = m.Root.Pane()
		}
		pane.KeyHandle(focus, &command.Context{Key: "Key", Home: focus, Focus: focus, Str: msg.String()})
	}
	pane.Refresh(m.Root.Pane())
	return m, nil
}

// View composes every rendered pane onto a character grid sized to the
// root, then — if one pane's attribute map has "floating"="true" — lifts
// that pane out and stacks it back on with bubbletea-overlay, centered,
// the same composition shape view.go uses for its modal value-detail
// popup.
func (m *Model) View() string {
	root := m.Root.Pane()
	rect := root.Rect()
	if rect.W <= 0 || rect.H <= 0 {
		return ""
	}
	grid := newCanvas(rect.W, rect.H)

	var floating *pane.Pane
	paint(root, grid, &floating)

	background := grid.String()
	if floating == nil {
		return background
	}

	fg, ok := floating.Data().(*renderplain.State)
	if !ok {
		return background
	}
	ov := overlay.New(
		staticModel(fg.Rendered),
		staticModel(background),
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
	return ov.View()
}

// paint recursively composites p's subtree onto grid in ascending-z order
// (matching the stratum order Refresh establishes), skipping the one pane
// tagged floating (collected into *floating instead, so View can render it
// through an overlay rather than flattened in place).
func paint(p *pane.Pane, grid *canvas, floating **pane.Pane) {
	if val, ok := p.Attrs().Get("floating"); ok && val == "true" {
		*floating = p
		return
	}
	if state, ok := p.Data().(*renderplain.State); ok {
		x, y := p.AbsXY()
		rect := p.Rect()
		maskedW, maskedH, ok := p.Masked(0, 0, p.Z(), rect.W, rect.H)
		if ok {
			grid.blit(x, y, maskedW, maskedH, state.Rendered)
		}
	}
	kids := append([]*pane.Pane(nil), p.Children()...)
	sort.SliceStable(kids, func(i, j int) bool { return kids[i].Z() < kids[j].Z() })
	for _, child := range kids {
		paint(child, grid, floating)
	}
}

// canvas is a fixed-size character grid View composes panes onto.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

// blit writes s onto the canvas starting at (x, y), clipped to a w×h
// window and to the canvas's own bounds.
func (c *canvas) blit(x, y, w, h int, s string) {
	lines := strings.Split(s, "\n")
	for row, line := range lines {
		if row >= h {
			break
		}
		cy := y + row
		if cy < 0 || cy >= c.h {
			continue
		}
		col := 0
		for _, r := range line {
			if col >= w {
				break
			}
			cx := x + col
			if cx >= 0 && cx < c.w {
				c.cells[cy][cx] = r
			}
			col++
		}
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.h)
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// staticModel wraps a pre-rendered string as a trivial tea.Model, the
// shape bubbletea-overlay's New needs for both its foreground and
// background arguments.
type staticModel string

func (s staticModel) Init() tea.Cmd                      { return nil }
func (s staticModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticModel) View() string                        { return string(s) }
