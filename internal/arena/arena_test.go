package arena_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/internal/arena"
)

func TestSaveRoundTrip(t *testing.T) {
	a := arena.New()
	got := a.Save("hello")
	require.Equal(t, "hello", got)
}

func TestSaveIdenticalInputsEqual(t *testing.T) {
	a := arena.New()
	x := a.Save("same")
	y := a.Save("same")
	require.Equal(t, x, y)
}

func TestSaveEmpty(t *testing.T) {
	a := arena.New()
	require.Equal(t, "", a.Save(""))
	require.Equal(t, 0, a.Chunks())
}

func TestSaveNTruncates(t *testing.T) {
	a := arena.New()
	require.Equal(t, "hel", a.SaveN("hello", 3))
	require.Equal(t, "hello", a.SaveN("hello", 100))
}

func TestChunkGrowth(t *testing.T) {
	a := arena.New()
	a.Save("seed")
	require.Equal(t, 1, a.Chunks())

	big := strings.Repeat("x", 8192)
	got := a.Save(big)
	require.Equal(t, big, got)
	require.GreaterOrEqual(t, a.Chunks(), 2)
}

func TestSavedStringsIndependentOfSourceBuffer(t *testing.T) {
	a := arena.New()
	buf := []byte("mutate me")
	saved := a.SaveBytes(buf)
	buf[0] = 'X'
	require.Equal(t, "mutate me", saved)
}
