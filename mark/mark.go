// Package mark implements the totally ordered positional reference into a
// document described by spec.md §3 "Mark" and §4.5 "Marks and documents".
//
// A Mark carries an opaque, document-defined Ref plus a Seq used for fast
// ordering against every other mark of the same document. The ordering
// itself is maintained by Chain, the document-wide sibling list — the same
// "sequence-ordered, iteratively walked" shape as hive/walker/core.go's
// Bitmap-tracked traversal, generalized from cell offsets to arbitrary
// document positions.
package mark

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/joshuapare/panekit/command"
)

// ID is a compact, sortable, generation-free identifier for a Mark, used by
// callers that want a stable handle without holding a live pointer (spec.md
// §9's "weak back-references... as arena indices or generation-checked
// borrows"). It is generated with rs/xid rather than reusing a raw pointer.
type ID string

// NewID returns a fresh, globally unique mark ID.
func NewID() ID { return ID(xid.New().String()) }

// Ref is the document-defined positional payload a Mark carries. The core
// never interprets it; only the owning document does (spec.md §4.5: "The
// core knows nothing of the ref representation").
type Ref any

// Mark is a positional reference into one document's Chain.
type Mark struct {
	id   ID
	ref  Ref
	seq  int64
	prev *Mark
	next *Mark

	chain *Chain

	// view ties the mark to a particular view of the document, e.g. a
	// specific pane's scroll/selection state; nil means "no view".
	view *int
}

// ensure Mark satisfies command.Mark's marker interface so it can travel
// opaquely through a command.Context's Mark1/Mark2 fields.
func (m *Mark) isMark() {}

var _ command.Mark = (*Mark)(nil)

// ID returns the mark's stable identifier.
func (m *Mark) ID() ID { return m.id }

// Ref returns the document-defined positional payload, satisfying
// doc.MarkRef for the owning document's use.
func (m *Mark) Ref() any { return m.ref }

// SetRef replaces the document-defined positional payload. Only the owning
// document should call this; the mark chain's ordering (Seq) is unaffected,
// since Ref and Seq are independent — a document may reposition a mark's
// Ref (e.g. after an edit shifts offsets) without reordering it relative to
// its siblings.
func (m *Mark) SetRef(ref any) { m.ref = ref }

// Seq returns the mark's current ordering key. Two marks of the same
// document compare by Seq; spec.md §8 invariant 1.
func (m *Mark) Seq() int64 { return m.seq }

// View returns the mark's view index and whether one is set.
func (m *Mark) View() (int, bool) {
	if m.view == nil {
		return 0, false
	}
	return *m.view, true
}

// SetView ties the mark to view index v.
func (m *Mark) SetView(v int) { m.view = &v }

// ClearView removes any view association.
func (m *Mark) ClearView() { m.view = nil }

// Compare orders m against o. Both must belong to the same Chain; Compare
// panics otherwise, since comparing marks across documents is meaningless
// (spec.md §3's ordering invariant is scoped to "any two marks in the same
// document").
func (m *Mark) Compare(o *Mark) int {
	if m.chain != o.chain {
		panic(fmt.Sprintf("mark: Compare across different documents (mark %s vs %s)", m.id, o.id))
	}
	switch {
	case m.seq < o.seq:
		return -1
	case m.seq > o.seq:
		return 1
	default:
		return 0
	}
}

// SharesRef reports whether m and o are positioned at the same place,
// per spec.md §4.5 "doc:shares-ref (marks at same position compare equal by
// identity)": two marks share a ref when the document considers their Ref
// values equal. Ref equality is delegated to the document via eq, since Ref
// is an opaque document-defined type the mark package cannot compare
// generically (it may not be comparable with ==).
func (m *Mark) SharesRef(o *Mark, eq func(a, b Ref) bool) bool {
	if m.chain != o.chain {
		return false
	}
	return eq(m.ref, o.ref)
}
