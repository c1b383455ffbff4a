// Package arena provides a chunked, bump-allocating string interner.
//
// An Arena never frees individual strings. It is meant to back a single
// editor root's lifetime: allocate freely while the root is alive, then drop
// the whole arena (and every chunk behind it) at teardown. This trades
// per-string bookkeeping for one bulk free, the same trade-off
// internal/edit/pool.go makes for cell allocation inside a single hive.
package arena

const minChunkSize = 4096

// chunk is a single bump-allocated block. Allocation proceeds from the front
// forward; used tracks how many bytes are occupied.
type chunk struct {
	buf  []byte
	used int
}

func (c *chunk) remaining() int { return len(c.buf) - c.used }

// Arena is a growing list of chunks. It is not safe for concurrent use;
// callers on the single-threaded dispatch path (spec.md §5) never need it to
// be.
type Arena struct {
	chunks []*chunk
	// n counts distinct Save calls, exposed for diagnostics only.
	n int
}

// New returns an empty arena. The first chunk is allocated lazily on first
// use so an editor root that never saves a string costs nothing.
func New() *Arena {
	return &Arena{}
}

func newChunk(want int) *chunk {
	size := minChunkSize
	if want > size {
		size = want
	}
	return &chunk{buf: make([]byte, size)}
}

// Save copies s into the arena and returns the stored copy. The returned
// string shares no backing array with s, so the caller's original buffer
// may be mutated or discarded afterward.
func (a *Arena) Save(s string) string {
	return a.SaveBytes([]byte(s))
}

// SaveN copies the first n bytes of s into the arena. It is the bump-
// allocator equivalent of the teacher's strnsave: useful when s is a larger
// buffer and only a prefix should be interned.
func (a *Arena) SaveN(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return a.Save(s[:n])
}

// SaveBytes copies b into the arena and returns it as a string.
func (a *Arena) SaveBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	a.n++
	c := a.current(len(b))
	start := c.used
	copy(c.buf[start:], b)
	c.used += len(b)
	return string(c.buf[start:c.used])
}

// current returns a chunk with at least `want` bytes free, allocating a new
// one if necessary. New chunks are sized to the larger of minChunkSize and
// want, matching the "min 4096 bytes, grown to fit" rule from spec.md §4.6.
func (a *Arena) current(want int) *chunk {
	if n := len(a.chunks); n > 0 {
		if last := a.chunks[n-1]; last.remaining() >= want {
			return last
		}
	}
	c := newChunk(want)
	a.chunks = append(a.chunks, c)
	return c
}

// Chunks reports how many backing chunks are currently allocated, for tests
// and diagnostics only.
func (a *Arena) Chunks() int { return len(a.chunks) }

// Allocated reports total allocated bytes across all chunks, for tests and
// diagnostics only.
func (a *Arena) Allocated() int {
	total := 0
	for _, c := range a.chunks {
		total += len(c.buf)
	}
	return total
}
