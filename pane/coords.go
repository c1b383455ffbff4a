package pane

// AbsXY returns p's (x, y) in the coordinate space of the outermost
// ancestor (the editor root), by walking up the parent chain and summing
// each level's offset, per spec.md §4.2 "pane_absxy... walk up the parent
// chain summing offsets."
func (p *Pane) AbsXY() (x, y int) {
	for cur := p; cur != nil; cur = cur.parent {
		x += cur.rect.X
		y += cur.rect.Y
	}
	return x, y
}

// RelXY converts (x, y) in the root's coordinate space into p's local
// coordinate space — the inverse of AbsXY.
func (p *Pane) RelXY(x, y int) (rx, ry int) {
	ax, ay := p.AbsXY()
	return x - ax, y - ay
}

// Masked determines whether a higher-z descendant of p covers the region
// (x, y, w, h) given in p's local coordinates. If the region is fully
// covered, ok is false. If it is partially covered, w is shrunk to the
// unmasked leading prefix and ok is true; if not covered at all, the
// original w is returned unchanged and ok is true. This implements spec.md
// §4.2 "pane_masked(x,y,z,w,h)... if not fully [masked], shrinks w/h to the
// unmasked prefix."
//
// Masked only considers direct children at a higher local z than z; a full
// accounting across arbitrary depth is Refresh's job (it assigns absolute z
// to the whole subtree), not a single Masked call's.
func (p *Pane) Masked(x, y, z, w, h int) (maskedW, maskedH int, ok bool) {
	maskedW, maskedH = w, h
	for _, k := range p.kids {
		if k.z <= z {
			continue
		}
		if !rectsOverlap(x, y, maskedW, maskedH, k.rect.X, k.rect.Y, k.rect.W, k.rect.H) {
			continue
		}
		// Only the simple case of a higher pane covering the region from
		// some column rightward through the region's far edge is resolved
		// analytically (shrink to the unmasked leading prefix before that
		// column); anything more irregular is left to the caller to detect
		// via the overlap test failing to fully resolve.
		coversVertically := k.rect.Y <= y && k.rect.Y+k.rect.H >= y+maskedH
		coversToFarEdge := k.rect.X+k.rect.W >= x+maskedW
		if coversVertically && coversToFarEdge {
			start := k.rect.X
			if start < x {
				start = x
			}
			if start-x < maskedW {
				maskedW = start - x
			}
			if maskedW <= 0 {
				return 0, 0, false
			}
		}
	}
	return maskedW, maskedH, true
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
