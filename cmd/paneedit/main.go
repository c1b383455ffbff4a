// paneedit is the reference TUI entry point: it boots one editor.Root,
// attaches a docline buffer loaded from the given file (or empty, if none
// given), stacks a renderplain pane over it, wires modeemacs as the key
// router, and drives the whole tree with modules/displaytty inside a
// bubbletea program.
//
// This generalizes cmd/hiveexplorer/main.go's flag parsing / logger-init /
// tea.NewProgram(AltScreen, MouseCellMotion) / Run / clean-up-on-exit
// bootstrap from one hardcoded hive-explorer Model to an arbitrary
// editor.Root wired from the reference modules.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/panekit/editor"
	"github.com/joshuapare/panekit/mark"
	"github.com/joshuapare/panekit/modules/displaytty"
	"github.com/joshuapare/panekit/modules/docline"
	"github.com/joshuapare/panekit/modules/modeemacs"
	"github.com/joshuapare/panekit/modules/renderplain"
)

func main() {
	args := os.Args[1:]
	debug := false

	filtered := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--debug" || a == "-d" {
			debug = true
		} else {
			filtered = append(filtered, a)
		}
	}

	if debug {
		f, err := os.OpenFile("paneedit.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			editor.EnableLogging(editor.LoggingOptions{Writer: f, Level: slog.LevelDebug})
			defer f.Close()
		}
	}

	var content string
	var path string
	if len(filtered) > 0 {
		path = filtered[0]
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", path, err)
			os.Exit(1)
		}
		content = string(b)
	}

	r := editor.New(editor.Options{
		Builtins: map[string]editor.ModuleInit{"doc-line": docline.Init},
	})

	var buf *docline.Buffer
	if path != "" {
		buf = docline.NewFile(path, content)
	} else {
		buf = docline.New(content)
	}
	docPane := docline.Attach(r.Pane(), 0, buf)
	renderplain.Attach(r.Pane(), 1, buf, lipgloss.NewStyle())
	r.Pane().SetFocus(docPane)

	point := mark.NewChain().Append(0)
	mode := modeemacs.New(docPane, point)

	model := displaytty.New(r, mode)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
