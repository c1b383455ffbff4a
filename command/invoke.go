package command

import "sync/atomic"

// Command is the universal handler: every pane handler, notifier callback,
// idle callback, and registry entry is one. Call is the sole invocation
// point; its Context/Status signature is the dispatch ABI described in
// spec.md §4.1 and §6.
type Command interface {
	Call(ctx *Context) Status
}

// Func adapts a plain function to Command, the way http.HandlerFunc adapts
// a function to http.Handler. Most built-in handlers (the editor root's
// global-set-attr, global-load-module, etc.) are expressed this way.
type Func func(ctx *Context) Status

func (f Func) Call(ctx *Context) Status { return f(ctx) }

// Refcounted wraps a Command with a reference count, per spec.md §3
// "Commands are reference-counted." Holders call Ref/Unref; the zero
// crossing is reported to the caller of Unref so it can release any
// closure state, but Refcounted itself never frees memory — Go's GC
// already reclaims the wrapped Command once nothing holds a *Refcounted.
type Refcounted struct {
	Command
	count int32
}

// NewRefcounted wraps cmd with an initial reference count of 1.
func NewRefcounted(cmd Command) *Refcounted {
	return &Refcounted{Command: cmd, count: 1}
}

// Ref increments the reference count and returns the receiver, so callers
// can write `held := cmd.Ref()`.
func (r *Refcounted) Ref() *Refcounted {
	atomic.AddInt32(&r.count, 1)
	return r
}

// Unref decrements the reference count and reports whether it reached zero.
// Dispatch is single-threaded (spec.md §5), so atomics here are defensive
// rather than load-bearing, matching how hive/dirty.Tracker documents
// "not thread-safe, synchronize externally" while still using primitive
// ops that are cheap to get right either way.
func (r *Refcounted) Unref() (reachedZero bool) {
	return atomic.AddInt32(&r.count, -1) == 0
}

// Count reports the current reference count, for tests and diagnostics.
func (r *Refcounted) Count() int32 { return atomic.LoadInt32(&r.count) }

// Lookuper is the registry side of a "lookup command" (Lookup below): a
// pane's handler role expressed as a pointer into a registry plus the shared
// dispatch function, per spec.md §3's "lookup commands... to make the
// handler role of a pane data-driven." It is declared as an interface here
// (rather than importing registry.Registry) to keep command free of a
// dependency on registry; registry.Registry satisfies it.
type Lookuper interface {
	Lookup(key string) (Command, bool)
}

// Lookup is a Command whose Call dispatches through a Registry by the
// Context's Key, falling through to NotHandled on a miss.
type Lookup struct {
	Registry Lookuper
}

// NewLookup returns a lookup command bound to reg.
func NewLookup(reg Lookuper) *Lookup {
	return &Lookup{Registry: reg}
}

func (l *Lookup) Call(ctx *Context) Status {
	cmd, ok := l.Registry.Lookup(ctx.Key)
	if !ok {
		return NotHandled
	}
	return cmd.Call(ctx)
}
