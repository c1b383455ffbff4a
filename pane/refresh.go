package pane

import (
	"sort"

	"github.com/joshuapare/panekit/command"
)

// Refresh runs the damage-driven recursive redraw described in spec.md
// §4.3, starting from the true root of p's tree (Refresh always ascends to
// the root first, so it may be called from any pane in the tree). It
// guarantees that every damaged pane's handler sees exactly one Refresh
// call, that absolute-z is consistent with the post-order maximum at the
// point of drawing, and that no work is done on closed subtrees.
func Refresh(p *Pane) {
	root := p
	for root.parent != nil {
		root = root.parent
	}
	refreshNode(root, 0)
}

// promote computes the damage passed (as Num2) to a handler's Refresh call,
// returning a copy so "promotion" (SIZE -> +CONTENT, CONTENT ->
// +CURSOR) never leaks back into the pane's own persistent bitset before
// clearAfterCall runs.
func promote(d Damage) Damage {
	if d&DamagedSize != 0 {
		d |= DamagedContent
	}
	if d&DamagedContent != 0 {
		d |= DamagedCursor
	}
	return d
}

func refreshNode(p *Pane, absZ int) int {
	if p.damage&DamagedClosed != 0 {
		p.absZ = absZ
		p.absZHi = absZ
		return absZ
	}

	if p.focus == nil && len(p.kids) > 0 {
		p.focus = p.kids[0]
	}

	p.absZ = absZ

	needPostCall := false
	if p.damage&DamagedNeedCall != 0 {
		needPostCall = p.callRefresh(absZ)
	}

	maxChildHi := absZ
	if len(p.kids) > 0 {
		maxChildHi = refreshChildren(p, absZ)
	}

	if needPostCall {
		p.callRefresh(absZ)
	}

	p.absZHi = maxChildHi
	return p.absZHi
}

// callRefresh invokes p's handler with Refresh and reports whether the
// handler asked for a post-order re-invocation (return value 2), per
// spec.md §4.3 step 3.
func (p *Pane) callRefresh(absZ int) (needPostCall bool) {
	num2 := int(promote(p.damage))
	ctx := &command.Context{Key: "Refresh", Home: p, Focus: p, Num2: num2}
	status := p.Call(ctx)
	p.clearAfterCall()
	switch status {
	case 0:
		p.CheckSize()
	case 2:
		needPostCall = true
	}
	return needPostCall
}

// refreshChildren recurses into p's children grouped by ascending local z:
// every child sharing the lowest remaining z gets the same abs_z; the next
// stratum starts one past the highest abs_zhi the previous stratum reached,
// so a higher local z always maps to a strictly higher abs_z than anything
// below it. It returns the maximum abs_zhi across all direct children, which
// becomes p's own abs_zhi (spec.md §4.3 step 4-5).
func refreshChildren(p *Pane, absZ int) int {
	order := make([]*Pane, len(p.kids))
	copy(order, p.kids)
	sort.SliceStable(order, func(i, j int) bool { return order[i].z < order[j].z })

	maxChildHi := absZ
	curAbsZ := absZ
	i := 0
	for i < len(order) {
		j := i
		z := order[i].z
		for j < len(order) && order[j].z == z {
			j++
		}
		groupHi := curAbsZ
		for _, child := range order[i:j] {
			oldAbsZ := child.absZ
			hi := refreshNode(child, curAbsZ)
			if oldAbsZ != curAbsZ {
				child.Damaged(DamagedZ)
			}
			if hi > groupHi {
				groupHi = hi
			}
			if hi > maxChildHi {
				maxChildHi = hi
			}
		}
		// The next stratum starts strictly above this group's peak, per
		// spec.md §8 scenario 3: "c2.abs_z > max(c1.abs_zhi, c3.abs_zhi)".
		curAbsZ = groupHi + 1
		i = j
	}
	return maxChildHi
}
