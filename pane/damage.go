package pane

// Damage is the bitset of stale aspects a pane carries between refreshes,
// per spec.md §4.3. The bitmap-plus-coalescing design in
// hive/dirty/dirty.go is the same shape one level up: there, dirty 4KB
// pages; here, dirty aspects of one pane's presentation.
type Damage uint32

const (
	DamagedSize    Damage = 1 << iota // geometry changed
	DamagedContent                    // content changed, redraw needed
	DamagedCursor                     // cursor position changed
	DamagedEvents                     // pending notifications to deliver
	DamagedZ                          // absolute z changed since last refresh
	DamagedChild                      // a descendant is damaged
	DamagedClosed                     // Close has run; pane is being torn down

	// DamagedNeedCall is the union of the four bits whose presence means
	// "call this pane's handler with Refresh" (spec.md §4.3 step 3).
	DamagedNeedCall = DamagedSize | DamagedContent | DamagedCursor | DamagedEvents
)

func (d Damage) String() string {
	if d == 0 {
		return "none"
	}
	names := []struct {
		bit  Damage
		name string
	}{
		{DamagedSize, "SIZE"},
		{DamagedContent, "CONTENT"},
		{DamagedCursor, "CURSOR"},
		{DamagedEvents, "EVENTS"},
		{DamagedZ, "Z"},
		{DamagedChild, "CHILD"},
		{DamagedClosed, "CLOSED"},
	}
	out := ""
	for _, n := range names {
		if d&n.bit != 0 {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// Damage returns p's current damage bitset.
func (p *Pane) Damage() Damage { return p.damage }

// Damaged ORs bits into p's damage bitset. If that changes p's bitset, the
// call continues up the parent chain ORing DamagedChild — not the original
// bits — stopping as soon as it reaches an ancestor that already has
// DamagedChild set, per spec.md §4.3: "ORs the bits into p; if anything new
// was added, it continues up the parent chain ORing DAMAGED_CHILD until it
// reaches a pane that already has that bit."
//
// Damaged(p, 0) is defined to be a no-op (spec.md §8 round-trip property).
func (p *Pane) Damaged(bits Damage) {
	if bits == 0 {
		return
	}
	before := p.damage
	p.damage |= bits
	if p.damage == before {
		return
	}
	for parent := p.parent; parent != nil; parent = parent.parent {
		if parent.damage&DamagedChild != 0 {
			break
		}
		parent.damage |= DamagedChild
	}
}

// clearAfterCall resets p's damage to whatever Refresh leaves standing after
// a handler has been called with Refresh: spec.md §4.3 step 3, "Clear all
// but SIZE|EVENTS|CURSOR on the pane afterwards." Promotion (SIZE->+CONTENT,
// CONTENT->+CURSOR) has already been applied by the caller before this runs.
func (p *Pane) clearAfterCall() {
	p.damage &= DamagedSize | DamagedEvents | DamagedCursor
}
