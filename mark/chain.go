package mark

const (
	// seqSpacing is the initial gap left between neighboring marks' Seq
	// values, so most insertions can pick a midpoint without renumbering.
	seqSpacing = 1 << 20
	// minGap is the smallest gap InsertAfter will split without
	// triggering a renumber of the surrounding span.
	minGap = 2
)

// Chain is the ordered, document-wide list of every Mark belonging to one
// document, per spec.md §4.5 ("the document-wide chain is kept sorted").
// A document owns exactly one Chain; Chain itself does not interpret Ref.
type Chain struct {
	head *Mark
	tail *Mark
	n    int
}

// NewChain returns an empty mark chain.
func NewChain() *Chain {
	return &Chain{}
}

// Len reports how many marks are currently linked into the chain.
func (c *Chain) Len() int { return c.n }

// First returns the earliest mark in the chain, or nil if empty.
func (c *Chain) First() *Mark { return c.head }

// Last returns the latest mark in the chain, or nil if empty.
func (c *Chain) Last() *Mark { return c.tail }

// Next returns the mark immediately after m in the chain, or nil at the
// tail.
func (c *Chain) Next(m *Mark) *Mark { return m.next }

// Prev returns the mark immediately before m in the chain, or nil at the
// head.
func (c *Chain) Prev(m *Mark) *Mark { return m.prev }

// Append links a new mark carrying ref onto the end of the chain.
func (c *Chain) Append(ref Ref) *Mark {
	m := &Mark{id: NewID(), ref: ref, chain: c}
	if c.tail == nil {
		m.seq = seqSpacing
		c.head, c.tail = m, m
	} else {
		m.seq = c.tail.seq + seqSpacing
		m.prev = c.tail
		c.tail.next = m
		c.tail = m
	}
	c.n++
	return m
}

// Prepend links a new mark carrying ref onto the front of the chain.
func (c *Chain) Prepend(ref Ref) *Mark {
	m := &Mark{id: NewID(), ref: ref, chain: c}
	if c.head == nil {
		m.seq = seqSpacing
		c.head, c.tail = m, m
	} else {
		m.seq = c.head.seq - seqSpacing
		m.next = c.head
		c.head.prev = m
		c.head = m
	}
	c.n++
	return m
}

// InsertAfter links a new mark carrying ref immediately after after,
// picking a Seq strictly between after and its current successor. If the
// gap is exhausted, the span from after to the chain's tail is renumbered
// first (spec.md §4.5: "When gaps are exhausted, the document renumbers a
// local span").
func (c *Chain) InsertAfter(after *Mark, ref Ref) *Mark {
	if after == nil {
		return c.Prepend(ref)
	}
	next := after.next
	if next == nil {
		return c.Append(ref)
	}
	if next.seq-after.seq < minGap {
		c.renumberFrom(after)
		next = after.next
	}
	m := &Mark{
		id:    NewID(),
		ref:   ref,
		chain: c,
		seq:   midpoint(after.seq, next.seq),
		prev:  after,
		next:  next,
	}
	after.next = m
	next.prev = m
	c.n++
	return m
}

// InsertBefore links a new mark carrying ref immediately before before.
func (c *Chain) InsertBefore(before *Mark, ref Ref) *Mark {
	if before == nil {
		return c.Append(ref)
	}
	return c.InsertAfter(before.prev, ref)
}

// Remove unlinks m from the chain. m must not be used afterward except to
// be discarded; the editor root's mark freelist (spec.md §4.6) defers the
// actual release until the next idle tick.
func (c *Chain) Remove(m *Mark) {
	if m.prev != nil {
		m.prev.next = m.next
	} else {
		c.head = m.next
	}
	if m.next != nil {
		m.next.prev = m.prev
	} else {
		c.tail = m.prev
	}
	m.prev, m.next, m.chain = nil, nil, nil
	c.n--
}

// renumberFrom reassigns Seq values for every mark following after (after
// keeps its own Seq), restoring seqSpacing gaps. Only the suffix starting at after needs
// renumbering because InsertAfter always allocates between after and its
// immediate successor.
func (c *Chain) renumberFrom(after *Mark) {
	seq := after.seq
	for m := after.next; m != nil; m = m.next {
		seq += seqSpacing
		m.seq = seq
	}
}

func midpoint(lo, hi int64) int64 {
	return lo + (hi-lo)/2
}
