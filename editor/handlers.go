package editor

import (
	"strings"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/notify"
	"github.com/joshuapare/panekit/pane"
)

// installHandlers registers the fixed top-level handlers and auto-load
// prefixes spec.md §4.6 requires every editor root to expose.
func (r *Root) installHandlers() {
	must := func(err error) {
		if err != nil {
			panic("editor: installing built-in handler: " + err.Error())
		}
	}

	must(r.registry.KeyAdd("global-set-attr", command.Func(r.handleGlobalSetAttr)))
	must(r.registry.KeyAdd("global-set-command", command.Func(r.handleGlobalSetCommand)))
	must(r.registry.KeyAdd("global-get-command", command.Func(r.handleGlobalGetCommand)))
	must(r.registry.KeyAdd("global-load-module", command.Func(r.handleGlobalLoadModule)))
	must(r.registry.KeyAdd("editor-on-idle", command.Func(r.handleEditorOnIdle)))
	must(r.registry.KeyAdd("Close", command.Func(r.handleClose)))

	must(r.registry.KeyAddPrefix("attach-", command.Func(r.handleAttach)))
	must(r.registry.KeyAddPrefix("event:", command.Func(r.handleEvent)))
	must(r.registry.KeyAddPrefix("global-multicall-", command.Func(r.handleMulticall)))
	must(r.registry.KeyAddPrefix("Request:Notify:global-", command.Func(r.handleRequestNotifyGlobal)))
	must(r.registry.KeyAddPrefix("Call:Notify:global-", command.Func(r.handleCallNotifyGlobal)))
}

// handleGlobalSetAttr sets a string attribute on ctx.Home (or the editor
// root's own pane if Home is nil), ctx.Str the key and ctx.Str2 the value.
func (r *Root) handleGlobalSetAttr(ctx *command.Context) command.Status {
	if ctx.Str == "" {
		return command.Enoarg
	}
	target := r.homePane(ctx)
	target.Attrs().Set(ctx.Str, ctx.Str2)
	return 1
}

// handleGlobalSetCommand registers ctx.Comm under key ctx.Str.
func (r *Root) handleGlobalSetCommand(ctx *command.Context) command.Status {
	if ctx.Str == "" || ctx.Comm == nil {
		return command.Enoarg
	}
	if err := r.registry.KeyAdd(ctx.Str, ctx.Comm); err != nil {
		log.Debug("editor: registry conflict", "key", ctx.Str, "error", err)
		return command.Econflict
	}
	return 1
}

// handleGlobalGetCommand looks up ctx.Str and returns it via ctx.Comm2.
func (r *Root) handleGlobalGetCommand(ctx *command.Context) command.Status {
	if ctx.Str == "" {
		return command.Enoarg
	}
	cmd, ok := r.registry.Lookup(ctx.Str)
	if !ok {
		return command.NotHandled
	}
	ctx.Comm2 = cmd
	return 1
}

// handleGlobalLoadModule loads ctx.Str via LoadModule.
func (r *Root) handleGlobalLoadModule(ctx *command.Context) command.Status {
	if ctx.Str == "" {
		return command.Enoarg
	}
	if err := r.LoadModule(ctx.Str); err != nil {
		return command.Efail
	}
	return 1
}

// handleEditorOnIdle appends {ctx.Focus, ctx.Comm2} to the idle queue, per
// spec.md §4.6 "takes a reference to comm2 and appends {focus, callback}."
func (r *Root) handleEditorOnIdle(ctx *command.Context) command.Status {
	if ctx.Comm2 == nil {
		return command.Enoarg
	}
	r.idle = append(r.idle, idleEntry{focus: ctx.Focus, comm: ctx.Comm2})
	return 1
}

// handleClose tears down the whole editor: closes the pane tree root,
// which recursively closes every pane, then drains whatever that produced.
func (r *Root) handleClose(ctx *command.Context) command.Status {
	r.root.Close()
	r.OnIdle()
	return 1
}

// handleAttach implements the attach-<x> auto-load-on-miss policy of
// spec.md §4.6: derive a module name from <x>, load it, and on success
// retry the original key exactly once.
func (r *Root) handleAttach(ctx *command.Context) command.Status {
	x := strings.TrimPrefix(ctx.Key, "attach-")
	moduleName := attachModuleName(x)
	if r.loaded[moduleName] {
		// Already loaded and the key still fell through to this prefix
		// handler: the module does not provide it.
		return command.NotHandled
	}
	log.Debug("editor: auto-load on miss", "key", ctx.Key, "module", moduleName)
	if err := r.LoadModule(moduleName); err != nil {
		return command.Efail
	}
	return r.retry(ctx)
}

// attachModuleName derives the module to auto-load for attach-<x>: if <x>
// already names a recognized module family, the family name itself;
// otherwise lib-<suffix-after-last-dash>.
func attachModuleName(x string) string {
	for _, family := range []string{"doc-", "render-", "mode-", "display-"} {
		if strings.HasPrefix(x, family) {
			return x
		}
	}
	if i := strings.LastIndex(x, "-"); i >= 0 {
		return "lib-" + x[i+1:]
	}
	return "lib-" + x
}

// handleEvent implements the event:… auto-load-on-miss policy: load the
// fixed "lib-event" module, then retry the original key once.
func (r *Root) handleEvent(ctx *command.Context) command.Status {
	if r.loaded["lib-event"] {
		return command.NotHandled
	}
	log.Debug("editor: auto-load on miss", "key", ctx.Key, "module", "lib-event")
	if err := r.LoadModule("lib-event"); err != nil {
		return command.Efail
	}
	return r.retry(ctx)
}

// retry re-looks-up ctx.Key (now that a module may have just registered
// it) and calls it exactly once, per the "retry the original key exactly
// once" policy shared by attach-/event:.
func (r *Root) retry(ctx *command.Context) command.Status {
	cmd, ok := r.registry.Lookup(ctx.Key)
	if !ok {
		return command.NotHandled
	}
	return cmd.Call(ctx)
}

// handleMulticall strips the global-multicall- prefix and looks up and
// invokes the remainder, per spec.md §4.6 "global-multicall-… (strip
// prefix then look up)."
func (r *Root) handleMulticall(ctx *command.Context) command.Status {
	stripped := strings.TrimPrefix(ctx.Key, "global-multicall-")
	cmd, ok := r.registry.Lookup(stripped)
	if !ok {
		return command.NotHandled
	}
	return cmd.Call(ctx)
}

// handleRequestNotifyGlobal installs ctx.Home as an observer of the
// global-* event named by the remainder of the key, per spec.md §4.6
// "Request:Notify:global-… installs the caller as observer."
func (r *Root) handleRequestNotifyGlobal(ctx *command.Context) command.Status {
	event := strings.TrimPrefix(ctx.Key, "Request:Notify:")
	observer, ok := ctx.Home.(*pane.Pane)
	if !ok {
		return command.Enoarg
	}
	notify.Add(observer, r.root, event)
	return 1
}

// handleCallNotifyGlobal broadcasts the global-* event named by the
// remainder of the key to every pane that previously issued a matching
// Request:Notify:global-…, per spec.md §4.6 "Call:Notify:global-…
// broadcasts."
func (r *Root) handleCallNotifyGlobal(ctx *command.Context) command.Status {
	event := strings.TrimPrefix(ctx.Key, "Call:Notify:")
	delivered := notify.Notify(r.root, event, ctx.Num, ctx.Num2, ctx.Str)
	if delivered == 0 {
		return command.NotHandled
	}
	return 1
}

// homePane returns ctx.Home as a *pane.Pane, or the editor's own root pane
// if Home is unset — global-set-attr with no explicit target operates on
// the root's own attribute map.
func (r *Root) homePane(ctx *command.Context) *pane.Pane {
	if p, ok := ctx.Home.(*pane.Pane); ok && p != nil {
		return p
	}
	return r.root
}
