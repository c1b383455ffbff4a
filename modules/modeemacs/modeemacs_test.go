package modeemacs_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/mark"
	"github.com/joshuapare/panekit/modules/docline"
	"github.com/joshuapare/panekit/modules/modeemacs"
)

func newMode(t *testing.T, content string) (*modeemacs.Mode, *docline.Buffer) {
	t.Helper()
	b := docline.New(content)
	p := docline.Attach(nil, 0, b)
	point := mark.NewChain().Append(0)
	return modeemacs.New(p, point), b
}

func TestForwardAndBackwardStepMovePoint(t *testing.T) {
	m, _ := newMode(t, "abc")

	handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlF})
	require.True(t, handled)
	require.Equal(t, 1, m.Point.Ref())

	handled = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.True(t, handled)
	require.Equal(t, 0, m.Point.Ref())
}

func TestUnboundKeyIsNotHandled(t *testing.T) {
	m, _ := newMode(t, "abc")
	handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.False(t, handled)
}

func TestKillLineRemovesUpToNewlineButKeepsIt(t *testing.T) {
	m, b := newMode(t, "abc\ndef")

	handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, handled)
	require.Equal(t, "\ndef", b.Text())
	require.Equal(t, 0, m.Point.Ref())
}

// TestYankIsRecognizedAsBound only checks that C-y is routed to the yank
// action, not that it mutates the buffer: the system clipboard it reads
// from is an external resource this test environment may not provide, so
// asserting a successful round trip here would be testing the OS, not
// this package.
func TestYankIsRecognizedAsBound(t *testing.T) {
	m, _ := newMode(t, "")
	handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.True(t, handled)
}
