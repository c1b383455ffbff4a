// Package docline is a reference document module: an in-memory, flat byte
// buffer exposed through package doc's Stepper/RefSetter/AttrGetter/
// SameFiler/RefSharer contract, attached to a pane via doc.Handlers. It
// plays the same role in this tree that a trivial "doc-text" module plays
// in the original editor family spec.md describes — something simple
// enough to exercise the document protocol end to end without needing a
// real file format.
//
// The buffer itself — a single growable byte slice edited in place, no
// per-edit allocation — is grounded on internal/edit/pool.go's pooled
// byte-buffer reuse (get/put around a single owned slice rather than
// per-operation allocation); here there is exactly one buffer per
// document instead of a pool, since a document is mutated by one pane at
// a time (spec.md §5's single-threaded model).
package docline

import (
	"unicode/utf8"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/doc"
	"github.com/joshuapare/panekit/editor"
	"github.com/joshuapare/panekit/mark"
	"github.com/joshuapare/panekit/pane"
)

// Buffer is a flat, mutable byte-offset document. Ref values it hands out
// and accepts are plain ints: a byte offset into content.
type Buffer struct {
	path    string
	content []byte
}

// New creates a Buffer over an initial string, with no backing file path
// (SameFile always reports false).
func New(content string) *Buffer {
	return &Buffer{content: []byte(content)}
}

// NewFile creates a Buffer over content that is understood to have been
// loaded from path, so SameFile can recognize it.
func NewFile(path, content string) *Buffer {
	return &Buffer{path: path, content: []byte(content)}
}

// Len returns the buffer's length in bytes.
func (b *Buffer) Len() int { return len(b.content) }

// Text returns the buffer's current content.
func (b *Buffer) Text() string { return string(b.content) }

// Insert splices s into the buffer at byte offset at.
func (b *Buffer) Insert(at int, s string) {
	if at < 0 || at > len(b.content) {
		panic("docline: Insert offset out of range")
	}
	b.content = append(b.content[:at:at], append([]byte(s), b.content[at:]...)...)
}

// Delete removes the byte range [from, to) from the buffer.
func (b *Buffer) Delete(from, to int) {
	if from < 0 || to > len(b.content) || from > to {
		panic("docline: Delete range out of bounds")
	}
	b.content = append(b.content[:from:from], b.content[to:]...)
}

func refOffset(m doc.MarkRef) int {
	off, _ := m.Ref().(int)
	return off
}

// Step implements doc.Stepper: it decodes the rune before/after the mark's
// offset, optionally advancing the mark past it.
func (b *Buffer) Step(m doc.MarkRef, forward, move bool) (rune, bool) {
	off := refOffset(m)
	if forward {
		if off >= len(b.content) {
			return doc.WEOF, false
		}
		r, size := utf8.DecodeRune(b.content[off:])
		if move {
			m.SetRef(off + size)
		}
		return r, true
	}
	if off <= 0 {
		return doc.WEOF, false
	}
	r, size := utf8.DecodeLastRune(b.content[:off])
	if move {
		m.SetRef(off - size)
	}
	return r, true
}

// SetRef implements doc.RefSetter: positions the mark at offset 0 (start)
// or len(content) (end).
func (b *Buffer) SetRef(m doc.MarkRef, start bool) {
	if start {
		m.SetRef(0)
		return
	}
	m.SetRef(len(b.content))
}

// GetAttr implements doc.AttrGetter: "offset" and "length" are always
// available; "width" is the on-screen column width of the text from the
// start of the current line up to the mark, accounting for East Asian
// wide characters (spec.md's pane.cx/cy cursor placement needs this to
// convert a mark into a screen column).
func (b *Buffer) GetAttr(m doc.MarkRef, key string) (string, bool) {
	switch key {
	case "offset":
		return itoa(refOffset(m)), true
	case "length":
		return itoa(len(b.content)), true
	case "width":
		return itoa(mark.DisplayWidth(string(b.content[b.lineStart(refOffset(m)):refOffset(m)]))), true
	}
	return "", false
}

// lineStart returns the byte offset of the start of the line containing
// off (the position just after the nearest preceding '\n', or 0).
func (b *Buffer) lineStart(off int) int {
	for i := off - 1; i >= 0; i-- {
		if b.content[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// SameFile implements doc.SameFiler: true if this buffer was loaded from
// candidate via NewFile.
func (b *Buffer) SameFile(candidate string) bool {
	return b.path != "" && b.path == candidate
}

// SharesRef implements doc.RefSharer: two marks at the same byte offset
// are considered the same position.
func (b *Buffer) SharesRef(a, bm doc.MarkRef) bool {
	return refOffset(a) == refOffset(bm)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

var (
	_ doc.Stepper    = (*Buffer)(nil)
	_ doc.RefSetter  = (*Buffer)(nil)
	_ doc.AttrGetter = (*Buffer)(nil)
	_ doc.SameFiler  = (*Buffer)(nil)
	_ doc.RefSharer  = (*Buffer)(nil)
)

// KeyInsert is docline's own editing command, outside the stable "doc:"
// namespace spec.md §6 reserves: the core document protocol is
// deliberately read/move-only (step, set-ref, get-attr), so mutation is
// always a document-specific extension. "{ mark, str=text }" splices str
// into the buffer at mark's offset and advances mark past it.
const KeyInsert = "doc-line:insert"

// Attach collects b's document handlers — the shared doc: protocol plus
// docline's own KeyInsert — in a fixed key->command map, and wires a new pane
// under parent whose command dispatch goes through them, the pattern
// every document module follows to become reachable from
// key_handle/pane_call.
func Attach(parent *pane.Pane, z int, b *Buffer) *pane.Pane {
	handlers := doc.Handlers(b)
	handlers[KeyInsert] = command.Func(b.insertHandler)
	lookup := &staticLookup{handlers: handlers}
	return pane.Register(parent, z, command.NewLookup(lookup), b)
}

func (b *Buffer) insertHandler(ctx *command.Context) command.Status {
	m, ok := ctx.Mark1.(doc.MarkRef)
	if !ok || m == nil {
		return command.Enoarg
	}
	if ctx.Str == "" {
		return command.Enoarg
	}
	off := refOffset(m)
	b.Insert(off, ctx.Str)
	m.SetRef(off + len(ctx.Str))
	return 1
}

// staticLookup adapts a plain map[string]command.Command (doc.Handlers'
// return type) to registry.Lookuper/command.Lookuper without pulling in
// package registry for what is just a handful of fixed keys.
type staticLookup struct {
	handlers map[string]command.Command
}

func (s *staticLookup) Lookup(key string) (command.Command, bool) {
	cmd, ok := s.handlers[key]
	return cmd, ok
}

// Init is docline's editor module entry point: it registers "doc-line-new"
// in the loading root's registry. ctx.Home is the parent pane, ctx.Str the
// initial content; the new pane's ID is reported back via ctx.Str2. Init
// registers no "attach-doc-line" key, so an attach-doc-line call that
// auto-loads this module finds nothing to retry and reports NotHandled.
func Init(r *editor.Root) error {
	return r.SetCommand("doc-line-new", command.Func(func(ctx *command.Context) command.Status {
		parent, ok := ctx.Home.(*pane.Pane)
		if !ok {
			return command.Enoarg
		}
		p := Attach(parent, 0, New(ctx.Str))
		ctx.Str2 = string(p.ID())
		return 1
	}))
}
