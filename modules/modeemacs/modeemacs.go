// Package modeemacs is a reference mode module: it translates terminal
// key messages into the document protocol's doc:step/doc-line:insert
// calls against a point mark, using Emacs-style chords (C-f/C-b/C-k/C-y).
// Killed text and yanked text round-trip through the system clipboard
// rather than an in-process kill ring, so it survives across panes (and
// across the whole editor process).
//
// The KeyMap/key.Binding shape is grounded on cmd/hiveexplorer/keys.go's
// KeyMap (one key.Binding field per action, a DefaultKeyMap constructor);
// clipboard.WriteAll/ReadAll is grounded on
// cmd/hiveexplorer/valuetable/model.go's CopyCurrentValue and
// cmd/hiveexplorer/keytree/model.go's CopyCurrentPath, generalized from
// "copy one read-only field" to "kill/yank arbitrary text".
package modeemacs

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/doc"
	"github.com/joshuapare/panekit/mark"
	"github.com/joshuapare/panekit/modules/docline"
	"github.com/joshuapare/panekit/pane"
)

// KeyMap is the set of chords this mode recognizes.
type KeyMap struct {
	Forward  key.Binding
	Backward key.Binding
	KillLine key.Binding
	Yank     key.Binding
}

// DefaultKeyMap returns the standard Emacs-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("ctrl+f", "right"),
			key.WithHelp("C-f", "forward char"),
		),
		Backward: key.NewBinding(
			key.WithKeys("ctrl+b", "left"),
			key.WithHelp("C-b", "backward char"),
		),
		KillLine: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "kill to end of line"),
		),
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "yank"),
		),
	}
}

// Mode binds a KeyMap to a document pane and the point mark editing
// commands are relative to.
type Mode struct {
	Keys    KeyMap
	DocPane *pane.Pane
	Point   *mark.Mark
}

// New returns a Mode with the default key bindings.
func New(docPane *pane.Pane, point *mark.Mark) *Mode {
	return &Mode{Keys: DefaultKeyMap(), DocPane: docPane, Point: point}
}

// HandleKey translates msg into a document command if it matches one of
// the mode's bindings, reporting whether it did.
func (m *Mode) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.Keys.Forward):
		m.step(true)
	case key.Matches(msg, m.Keys.Backward):
		m.step(false)
	case key.Matches(msg, m.Keys.KillLine):
		m.killLine()
	case key.Matches(msg, m.Keys.Yank):
		m.yank()
	default:
		return false
	}
	return true
}

func (m *Mode) step(forward bool) command.Status {
	num := 0
	if forward {
		num = 1
	}
	return m.DocPane.Call(&command.Context{Key: doc.KeyStep, Mark1: m.Point, Num: num, Num2: 1})
}

// killLine removes text from point to the next newline (or end of
// document), writing what it removed to the system clipboard.
func (m *Mode) killLine() {
	var killed []rune
	for {
		status := m.DocPane.Call(&command.Context{Key: doc.KeyStep, Mark1: m.Point, Num: 1, Num2: 0})
		if status <= 0 {
			break
		}
		ch := rune(status)
		if ch == '\n' {
			break
		}
		killed = append(killed, ch)
		m.step(true)
		m.deleteBehind(1)
	}
	if len(killed) > 0 {
		_ = clipboard.WriteAll(string(killed))
	}
}

// deleteBehind removes n runes immediately before point by re-inserting
// an empty string is not how docline exposes deletion, so killLine instead
// relies on the document's own Buffer.Delete via a direct type assertion
// when the pane's Data is a *docline.Buffer — the one place this mode
// reaches past the generic doc: protocol, mirroring how a real Emacs-style
// kill command is always somewhat document-aware (it needs undo/kill-ring
// semantics the core protocol does not standardize).
func (m *Mode) deleteBehind(n int) {
	b, ok := m.DocPane.Data().(*docline.Buffer)
	if !ok {
		return
	}
	off, _ := m.Point.Ref().(int)
	text := b.Text()
	from := off
	for i := 0; i < n && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	b.Delete(from, off)
	m.Point.SetRef(from)
}

// yank inserts the clipboard's current contents at point.
func (m *Mode) yank() command.Status {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return command.NotHandled
	}
	return m.DocPane.Call(&command.Context{Key: docline.KeyInsert, Mark1: m.Point, Str: text})
}
