package pane

import "github.com/joshuapare/panekit/command"

// KeyHandle is the canonical high-level dispatch entry point of spec.md
// §4.1: starting at focus, invoke its handler; if the result is
// command.NotHandled, move to focus.Parent() and repeat until a non-zero
// result or the root is reached. Errors (negative Status) bubble unchanged
// without continuing the walk — only an explicit "not handled" tries the
// next ancestor.
func KeyHandle(focus *Pane, ctx *command.Context) command.Status {
	for p := focus; p != nil; p = p.parent {
		callCtx := ctx.WithHome(p)
		status := p.Call(callCtx)
		if status != command.NotHandled {
			return status
		}
	}
	return command.NotHandled
}
