package doc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/doc"
)

// fakeMark is the smallest possible doc.MarkRef: an int offset box.
type fakeMark struct{ off int }

func (m *fakeMark) Ref() any    { return m.off }
func (m *fakeMark) SetRef(r any) { m.off = r.(int) }

// lineDoc is a minimal in-memory "document" over a single string, enough to
// exercise Handlers without pulling in a whole document module.
type lineDoc struct{ text string }

func (d *lineDoc) Step(mr doc.MarkRef, forward, move bool) (rune, bool) {
	off := mr.Ref().(int)
	if forward {
		if off >= len(d.text) {
			return doc.WEOF, false
		}
		ch := rune(d.text[off])
		if move {
			mr.SetRef(off + 1)
		}
		return ch, true
	}
	if off <= 0 {
		return doc.WEOF, false
	}
	ch := rune(d.text[off-1])
	if move {
		mr.SetRef(off - 1)
	}
	return ch, true
}

func (d *lineDoc) SetRef(mr doc.MarkRef, start bool) {
	if start {
		mr.SetRef(0)
	} else {
		mr.SetRef(len(d.text))
	}
}

func (d *lineDoc) GetAttr(mr doc.MarkRef, attr string) (string, bool) {
	if attr == "length" {
		return "known", true
	}
	return "", false
}

func (d *lineDoc) SameFile(candidate string) bool { return candidate == "self" }

func TestHandlersStep(t *testing.T) {
	d := &lineDoc{text: "hi"}
	h := doc.Handlers(d)

	m := &fakeMark{off: 0}
	ctx := &command.Context{Mark1: m, Num: 1, Num2: 1}
	got := h[doc.KeyStep].Call(ctx)
	require.EqualValues(t, 'h', got)
	require.Equal(t, 1, m.off)
}

func TestHandlersStepAtEndReturnsWEOF(t *testing.T) {
	d := &lineDoc{text: ""}
	h := doc.Handlers(d)
	m := &fakeMark{off: 0}
	got := h[doc.KeyStep].Call(&command.Context{Mark1: m, Num: 1, Num2: 1})
	require.EqualValues(t, doc.WEOF, got)
	require.Equal(t, 0, m.off)
}

func TestHandlersSetRef(t *testing.T) {
	d := &lineDoc{text: "hello"}
	h := doc.Handlers(d)
	m := &fakeMark{off: 2}

	h[doc.KeySetRef].Call(&command.Context{Mark1: m, Num: 0})
	require.Equal(t, 5, m.off)

	h[doc.KeySetRef].Call(&command.Context{Mark1: m, Num: 1})
	require.Equal(t, 0, m.off)
}

func TestHandlersGetAttr(t *testing.T) {
	d := &lineDoc{text: "hello"}
	h := doc.Handlers(d)
	m := &fakeMark{off: 0}

	ctx := &command.Context{Mark1: m, Str: "length"}
	got := h[doc.KeyGetAttr].Call(ctx)
	require.EqualValues(t, 1, got)
	require.Equal(t, "known", ctx.Str2)

	ctx2 := &command.Context{Mark1: m, Str: "missing"}
	got2 := h[doc.KeyGetAttr].Call(ctx2)
	require.Equal(t, command.NotHandled, got2)
}

func TestHandlersMissingMarkIsEnoarg(t *testing.T) {
	d := &lineDoc{text: "x"}
	h := doc.Handlers(d)
	got := h[doc.KeyStep].Call(&command.Context{})
	require.Equal(t, command.Enoarg, got)
}

func TestHandlersSameFile(t *testing.T) {
	d := &lineDoc{text: "x"}
	h := doc.Handlers(d)
	require.Contains(t, h, doc.KeySameFile)

	got := h[doc.KeySameFile].Call(&command.Context{Str: "self"})
	require.EqualValues(t, 1, got)

	got = h[doc.KeySameFile].Call(&command.Context{Str: "other"})
	require.Equal(t, command.NotHandled, got)
}
