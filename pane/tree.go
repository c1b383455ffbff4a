package pane

import "github.com/joshuapare/panekit/command"

// Resize updates p's geometry relative to its parent. Per spec.md §4.2: a
// negative x or y means "leave that coordinate unchanged"; a non-positive w
// or h means "leave that dimension unchanged". A changed position damages
// DamagedContent; a changed size damages DamagedSize.
func (p *Pane) Resize(x, y, w, h int) {
	rect := p.rect
	posChanged := false
	if x >= 0 && x != rect.X {
		rect.X = x
		posChanged = true
	}
	if y >= 0 && y != rect.Y {
		rect.Y = y
		posChanged = true
	}
	sizeChanged := false
	if w > 0 && w != rect.W {
		rect.W = w
		sizeChanged = true
	}
	if h > 0 && h != rect.H {
		rect.H = h
		sizeChanged = true
	}
	p.rect = rect
	if posChanged {
		p.Damaged(DamagedContent)
	}
	if sizeChanged {
		p.Damaged(DamagedSize)
	}
}

// CheckSize resizes p to match its parent's width and height, per spec.md
// §4.2 "pane_check_size matches the pane to its parent's w×h." Refresh
// calls it when a handler's Refresh returns 0 (§4.3 step 3). It is a no-op
// at the tree root, which has no parent to match.
func (p *Pane) CheckSize() {
	if p.parent == nil {
		return
	}
	p.Resize(-1, -1, p.parent.rect.W, p.parent.rect.H)
}

// Close tears p down: it marks p closed, notifies the parent with
// ChildClosed, unlinks p from its parent, drops p's outgoing notifier
// subscriptions, recursively closes every child (leaf descendants finish
// closing before their ancestor's own Close returns, via repeated removal
// of the first child), notifies p's own observers with Notify:Close,
// invokes p's handler with Close, and damages the parent with DamagedSize
// — the full sequence from spec.md §4.2.
//
// Close does not free p's memory or enqueue it on any freelist; Go's GC
// reclaims p once nothing references it. Deferring that reclamation until
// the next idle tick (spec.md §4.6) is the editor root's job, since only it
// knows about the freelist — see editor.Root.ClosePane.
//
// Close is idempotent: calling it again on an already-closed pane is a
// no-op, per spec.md §7 "Double close of a pane -> no-op (detected via
// DAMAGED_CLOSED)".
func (p *Pane) Close() {
	if p.Closed() {
		return
	}
	p.damage |= DamagedClosed

	if p.parent != nil {
		p.parent.Call(&command.Context{Key: "ChildClosed", Home: p.parent, Focus: p})
	}

	p.unlinkFromParent()
	p.closeOutgoingNotifiers()

	for len(p.kids) > 0 {
		p.kids[0].Close()
	}

	p.CloseNotifierEdges()

	p.Call(&command.Context{Key: "Close", Home: p, Focus: p})

	if p.parent != nil {
		p.parent.Damaged(DamagedSize)
	}
}

func (p *Pane) unlinkFromParent() {
	parent := p.parent
	if parent == nil {
		return
	}
	for i, k := range parent.kids {
		if k == p {
			parent.kids = append(parent.kids[:i], parent.kids[i+1:]...)
			break
		}
	}
	if parent.focus == p {
		parent.focus = nil
	}
}

// closeOutgoingNotifiers drops the edges where p is the observer (p.notifiers,
// i.e. "outgoing" from p's point of view: p stops watching other panes),
// removing each edge from the observed pane's notifiees list too so no
// dangling half-edge remains, per spec.md §4.4's invariant that "every
// notifier edge appears on exactly one outgoing and one incoming list."
func (p *Pane) closeOutgoingNotifiers() {
	for _, e := range p.notifiers {
		e.Source.RemoveNotifiee(e)
	}
	p.notifiers = nil
}

// CloseNotifierEdges sends Notify:Close to every pane observing p (p's
// notifiees), then removes every such edge from both endpoints. It is
// exported so package notify's Close can reuse this exact logic
// without pane importing notify (which would cycle back through notify's
// own dependency on *Pane).
func (p *Pane) CloseNotifierEdges() {
	for _, e := range p.notifiees {
		target := e.Target
		target.Call(&command.Context{Key: "Notify:Close", Home: target, Focus: p})
		target.RemoveNotifier(e)
	}
	p.notifiees = nil
}

// Reparent relocates p to become a child of newParent, typically a sibling
// under the same ancestor, per spec.md §4.2 "pane_reparent(p, newparent)
// relocates p to become a child of a sibling." p keeps its handler, data,
// and children; only its position in the tree changes.
func (p *Pane) Reparent(newParent *Pane) {
	if p.parent == newParent {
		return
	}
	p.unlinkFromParent()
	p.parent = newParent
	if newParent != nil {
		newParent.kids = append([]*Pane{p}, newParent.kids...)
		if newParent.focus == nil {
			newParent.focus = p
		}
		newParent.Damaged(DamagedChild)
	}
}

// Subsume swaps handler, data, and pointer mark between p and parent, and
// migrates p's children to become parent's children, implementing the
// "become" transformation spec.md §4.2 describes: "pane_subsume(p, parent)
// swaps handler, data, and pointer between p and parent and migrates p's
// children to parent."
func (p *Pane) Subsume(parent *Pane) {
	p.handler, parent.handler = parent.handler, p.handler
	p.data, parent.data = parent.data, p.data
	p.pointerMark, parent.pointerMark = parent.pointerMark, p.pointerMark

	migrating := p.kids
	p.kids = nil
	p.focus = nil
	for _, k := range migrating {
		k.parent = parent
	}
	parent.kids = append(migrating, parent.kids...)
	if parent.focus == nil && len(parent.kids) > 0 {
		parent.focus = parent.kids[0]
	}
	parent.Damaged(DamagedChild)
}
