package main

import (
	"github.com/joshuapare/panekit/editor"
	"github.com/joshuapare/panekit/modules/docline"
)

// newBuiltinRoot returns an editor.Root with every module this binary ships
// compiled in as a builtin, so global-load-module never has to touch disk
// for them.
func newBuiltinRoot() *editor.Root {
	return editor.New(editor.Options{
		Builtins: map[string]editor.ModuleInit{
			"doc-line": docline.Init,
		},
	})
}
