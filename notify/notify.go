// Package notify implements the pub/sub wiring described in spec.md §4.4:
// symmetric edges between an observer pane and a source pane, tagged by an
// event name. It holds no state of its own — every edge lives on the two
// panes it connects (package pane's notifiees/notifiers lists) — so notify
// is a thin set of algorithms over pane's already-exported methods, the
// same layering keyselection.Bus in
// cmd/hiveexplorer/keyselection/bus.go uses for its subscriber list, just
// synchronous rather than channel-based: spec.md §5 "pane_notify... are all
// synchronous; no handler is expected to block."
package notify

import (
	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/pane"
)

// Add installs a symmetric edge: target observes source for event. It is
// recorded on source.notifiees and target.notifiers, per spec.md §4.4
// "pane_add_notify(target, source, event) installs a symmetric edge."
func Add(target, source *pane.Pane, event string) *pane.Edge {
	e := &pane.Edge{Source: source, Target: target, Event: event}
	source.AddNotifiee(e)
	target.AddNotifier(e)
	return e
}

// Remove drops e from both of its endpoints' lists, per spec.md §4.4
// "Removing a pane drops both endpoints' lists, freeing names" generalized
// to dropping a single edge without closing either pane.
func Remove(e *pane.Edge) {
	e.Source.RemoveNotifiee(e)
	e.Target.RemoveNotifier(e)
}

// Notify invokes, for each edge on source.Notifiees() whose Event matches,
// the target's handler with event as the dispatch key — synchronously,
// before Notify returns, per spec.md §4.4/§5. Each target gets a fresh
// Context with Key set to event and Home/Focus set to that target. It
// reports how many targets were notified.
func Notify(source *pane.Pane, event string, num, num2 int, str string) (delivered int) {
	for _, e := range source.Notifiees() {
		if e.Event != event {
			continue
		}
		target := e.Target
		ctx := &command.Context{Key: event, Home: target, Focus: target, Num: num, Num2: num2, Str: str}
		target.Call(ctx)
		delivered++
	}
	return delivered
}

// Close sends Notify:Close to every pane observing p, then frees all of
// p's outgoing edges. It is the notify-package entry point for spec.md
// §4.4's pane_notify_close; the actual list-walking logic lives on
// *pane.Pane itself (CloseNotifierEdges) so pane.Close can run it directly
// during teardown without importing notify.
func Close(p *pane.Pane) {
	p.CloseNotifierEdges()
}
