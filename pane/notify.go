package pane

// Edge is a symmetric notifier subscription between two panes tagged by an
// event name, per spec.md §3 "Notification wiring" and §4.4. It lives in
// this package (rather than a separate notify package importing pane)
// because it is intrinsically part of a Pane's own data — every Pane holds
// the two edge lists directly (spec.md §3's Pane fields: "lists of outgoing
// and incoming notifier edges") — while the algorithms that build and walk
// those lists (notify.Add, notify.Notify, notify.Close) live in package
// notify, which only ever calls exported Pane methods; notify.Close delegates
// to CloseNotifierEdges, which lives here so Close can run it directly.
type Edge struct {
	Source *Pane
	Target *Pane
	Event  string
}

// Notifiees returns the edges where p is the source (observed pane),
// i.e. the panes p will notify.
func (p *Pane) Notifiees() []*Edge { return p.notifiees }

// Notifiers returns the edges where p is the target (observer),
// i.e. the panes that will notify p.
func (p *Pane) Notifiers() []*Edge { return p.notifiers }

// addNotifiee appends e to p's outgoing list. Unexported: callers go
// through package notify's Add, which maintains both endpoints
// together so an edge can never exist on only one side.
func (p *Pane) addNotifiee(e *Edge) { p.notifiees = append(p.notifiees, e) }

// addNotifier appends e to p's incoming list.
func (p *Pane) addNotifier(e *Edge) { p.notifiers = append(p.notifiers, e) }

// AddNotifiee is the exported form addNotifiee, for package notify's use
// across the package boundary (Go has no "friend package" mechanism, so
// this stays exported but is documented as an implementation seam rather
// than a general-purpose API — ordinary callers should use notify.Add).
func (p *Pane) AddNotifiee(e *Edge) { p.addNotifiee(e) }

// AddNotifier is the incoming-side counterpart to AddNotifiee.
func (p *Pane) AddNotifier(e *Edge) { p.addNotifier(e) }

// RemoveNotifiee removes e from p's outgoing list, if present.
func (p *Pane) RemoveNotifiee(e *Edge) {
	p.notifiees = removeEdge(p.notifiees, e)
}

// RemoveNotifier removes e from p's incoming list, if present.
func (p *Pane) RemoveNotifier(e *Edge) {
	p.notifiers = removeEdge(p.notifiers, e)
}

func removeEdge(edges []*Edge, target *Edge) []*Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
