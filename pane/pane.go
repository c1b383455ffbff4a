// Package pane implements the pane tree: the hierarchical composition of
// rectangular command handlers described in spec.md §3 "Pane" and §4.2
// "Pane tree". Every capability in an editor built on panekit — buffers,
// renderers, key modes, display drivers — attaches into this tree and is
// reached purely through the dispatch protocol in package command; pane
// itself contains no editing logic, matching spec.md §1.
//
// The recursive top-down walk BuildTreeStructure/buildTreeRecursive in
// pkg/hive/tree.go is the shape Refresh generalizes from a read-only
// registry tree to a damage-driven, z-ordered redraw; the dirty-bitmap and
// range-coalescing design in hive/dirty/dirty.go is the shape Damage
// generalizes from file byte-ranges to per-pane bits.
package pane

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/joshuapare/panekit/attr"
	"github.com/joshuapare/panekit/command"
)

// ID is a compact, sortable identifier for a Pane, backing weak back-
// references as generation-free handles rather than raw pointers kept alive
// past their owner's lifetime (spec.md §9 "Design Notes").
type ID string

// NewID returns a fresh, globally unique pane ID.
func NewID() ID { return ID(xid.New().String()) }

// Rect is a pane's geometry relative to its parent.
type Rect struct {
	X, Y int
	W, H int
}

// Cursor is a pane's cursor position relative to its own rectangle. Use the
// second result of Pane.Cursor to distinguish "cursor at (0,0)" from "no
// cursor".
type Cursor struct {
	CX, CY int
}

// Pane is one node of the composition tree: a rectangle, a z-order, a
// handler, and a parent/child/focus structure. The zero value is not
// usable; construct panes with Register.
type Pane struct {
	id ID

	parent *Pane // weak: does not keep the parent alive past the tree's own ownership
	kids   []*Pane
	focus  *Pane // weak: must be nil or a current child

	z int
	// absZ/absZHi are derived by Refresh and meaningless between refreshes.
	absZ, absZHi int

	rect Rect

	hasCursor bool
	cursor    Cursor

	damage Damage

	handler command.Command
	data    any

	attrs *attr.Map

	pointerMark command.Mark

	notifiees []*Edge // edges where this pane is the source (observed)
	notifiers []*Edge // edges where this pane is the target (observer)

	closed bool
}

// ensure Pane satisfies command.Pane's marker interface.
func (p *Pane) isPane() {}

var _ command.Pane = (*Pane)(nil)

// Register allocates a new pane, links it at the head of parent's child
// list, and — if parent had no focus child — makes the new pane the focus,
// per spec.md §4.2 "Creation". A nil parent creates a root pane (used
// exactly once, by package editor).
func Register(parent *Pane, z int, handler command.Command, data any) *Pane {
	p := &Pane{
		id:      NewID(),
		parent:  parent,
		z:       z,
		handler: handler,
		data:    data,
		attrs:   attr.New(),
	}
	if parent != nil {
		parent.kids = append([]*Pane{p}, parent.kids...)
		if parent.focus == nil {
			parent.focus = p
		}
		parent.Damaged(DamagedChild)
	}
	return p
}

// ID returns the pane's stable identifier.
func (p *Pane) ID() ID { return p.id }

// Parent returns p's parent, or nil at the root.
func (p *Pane) Parent() *Pane { return p.parent }

// Children returns p's children in head-insertion order (most recently
// registered first), matching spec.md §4.2's "links it at the head of
// parent.children". The returned slice is shared with p; callers must not
// mutate it.
func (p *Pane) Children() []*Pane { return p.kids }

// Focus returns p's focus child, or nil if p has no children or explicitly
// none focused.
func (p *Pane) Focus() *Pane { return p.focus }

// SetFocus sets p's focus child to child, which must currently be one of
// p's children (or nil, to clear focus). SetFocus panics otherwise —
// spec.md §3's invariant that "focus of a non-leaf is either null or a
// current child" is a tree-shape guarantee the API itself should uphold,
// not something callers can quietly violate.
func (p *Pane) SetFocus(child *Pane) {
	if child == nil {
		p.focus = nil
		return
	}
	for _, k := range p.kids {
		if k == child {
			p.focus = child
			return
		}
	}
	panic(fmt.Sprintf("pane: SetFocus(%s) is not a child of %s", child.id, p.id))
}

// Z returns p's local z-depth among its siblings.
func (p *Pane) Z() int { return p.z }

// SetZ changes p's local z-depth and damages it with DamagedZ so the next
// Refresh re-linearizes absolute z across the subtree.
func (p *Pane) SetZ(z int) {
	if p.z == z {
		return
	}
	p.z = z
	p.Damaged(DamagedZ)
}

// AbsZ and AbsZHi return the absolute-z scalars computed by the most recent
// Refresh. They are meaningless before the first Refresh and stale after
// any topology change until the next one.
func (p *Pane) AbsZ() int   { return p.absZ }
func (p *Pane) AbsZHi() int { return p.absZHi }

// Rect returns p's geometry relative to its parent.
func (p *Pane) Rect() Rect { return p.rect }

// Cursor returns p's cursor position and whether one is set.
func (p *Pane) Cursor() (Cursor, bool) { return p.cursor, p.hasCursor }

// SetCursor sets p's cursor to (cx, cy), which must lie within [0,W)x[0,H).
// SetCursor panics on an out-of-bounds cursor, upholding spec.md §3's
// invariant directly rather than leaving it to be discovered at draw time.
func (p *Pane) SetCursor(cx, cy int) {
	if cx < 0 || cy < 0 || cx >= p.rect.W || cy >= p.rect.H {
		panic(fmt.Sprintf("pane: SetCursor(%d,%d) outside rect %+v", cx, cy, p.rect))
	}
	p.cursor = Cursor{CX: cx, CY: cy}
	p.hasCursor = true
	p.Damaged(DamagedCursor)
}

// ClearCursor marks p as having no cursor.
func (p *Pane) ClearCursor() {
	p.hasCursor = false
	p.Damaged(DamagedCursor)
}

// Handler returns p's command handler.
func (p *Pane) Handler() command.Command { return p.handler }

// SetHandler replaces p's command handler.
func (p *Pane) SetHandler(h command.Command) { p.handler = h }

// Data returns p's opaque private data.
func (p *Pane) Data() any { return p.data }

// SetData replaces p's opaque private data.
func (p *Pane) SetData(d any) { p.data = d }

// Attrs returns p's attribute map.
func (p *Pane) Attrs() *attr.Map { return p.attrs }

// PointerMark returns p's optional pointer mark, or nil.
func (p *Pane) PointerMark() command.Mark { return p.pointerMark }

// SetPointerMark sets p's pointer mark.
func (p *Pane) SetPointerMark(m command.Mark) { p.pointerMark = m }

// Closed reports whether Close has already run on p (spec.md §4.2's
// DAMAGED_CLOSED idempotence marker).
func (p *Pane) Closed() bool { return p.damage&DamagedClosed != 0 }

// Call invokes p's handler with ctx, or returns command.NotHandled if p has
// none. This is the innermost step of package command's call/key_handle
// protocol; key_handle's tree walk is KeyHandle in dispatch.go, and every
// dispatch ultimately bottoms out here.
func (p *Pane) Call(ctx *command.Context) command.Status {
	if p.handler == nil {
		return command.NotHandled
	}
	return p.handler.Call(ctx)
}
