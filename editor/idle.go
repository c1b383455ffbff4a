package editor

import "github.com/joshuapare/panekit/command"

// OnIdle drains the pane/mark freelists and runs the idle-callback queue,
// per spec.md §4.6: "On the next scheduled idle (on_idle-clean_up), the
// lists are drained: pane attributes are released and storage reclaimed;
// marks are released" and "editor-on-idle... on the next idle tick, each
// entry is invoked with key idle-callback and then released."
//
// The caller (the external event loop, per spec.md §5's "only returns to
// the external event loop") is responsible for calling OnIdle when it has
// no other work pending; editor itself never schedules a timer.
func (r *Root) OnIdle() {
	queue := r.idle
	r.idle = nil
	for _, entry := range queue {
		ctx := &command.Context{Key: "idle-callback", Home: entry.focus, Focus: entry.focus}
		entry.comm.Call(ctx)
	}

	log.Debug("editor: idle drain",
		"callbacks", len(queue),
		"panes_freed", len(r.paneFreelist),
		"marks_freed", len(r.markFreelist),
	)

	// Closed panes and freed marks need no further action beyond dropping
	// our references to them: nothing but the freelist held them alive
	// past Close/FreeMark, so clearing the slices is the whole "release"
	// step Go's GC needs.
	r.paneFreelist = nil
	r.markFreelist = nil
}

// PendingIdleCallbacks reports how many idle-callback entries are queued,
// for tests and diagnostics.
func (r *Root) PendingIdleCallbacks() int { return len(r.idle) }
