package aoc

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day97a() any { return len(Groups()) }
func day97b() any { return strings.Join(Lines(), "|") }
func day96a() any { return ReadGrid().String() }
func day9a() any  { return InSample() }

func init() {
	Add(day97a, day97b, day96a, day9a)
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "day97a", funcName(day97a))
	assert.Panics(t, func() { Add(day97a) })
}

func TestResolve(t *testing.T) {
	assert.Equal(t, []string{"day9a"}, resolve(""))
	assert.Equal(t, []string{"day9a"}, resolve("9"))
	assert.Equal(t, []string{"day97a", "day97b"}, resolve("97"))
	assert.Equal(t, []string{"day97b"}, resolve("day97b"))
	assert.Equal(t, []string{"day97b"}, resolve("97b"))
	assert.Equal(t, 97, dayOf("day97b"))
}

func TestSolve(t *testing.T) {
	assert.Equal(t, "2", Solve("day97a", "a\nb\n\n\nc\n"))
	assert.Equal(t, "a|b||c", Solve("day97b", "a\nb\n\nc"))
	assert.Equal(t, "true", Solve("day9a", "x"))
	assert.False(t, InSample())
}

const sampleSrc = `package p

/*
want=7
1
2
*/
func day98a() any { return nil }

// want=9
func day98b() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	ExtractSamples([]byte(sampleSrc))

	in, want, ok := Sample("day98a")
	require.True(t, ok)
	assert.Equal(t, "7", want)
	assert.Equal(t, "1\n2\n", in)

	in, want, ok = Sample("day98b")
	require.True(t, ok)
	assert.Equal(t, "9", want)
	assert.Equal(t, "1\n2\n", in)

	_, _, ok = Sample("helper")
	assert.False(t, ok)
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int{-3, 12, 7}, Ints("x=-3, y=12 z7"))
	assert.Nil(t, Ints("none"))
	assert.Equal(t, 42, Int(" 42\n"))
	assert.Panics(t, func() { Int("4x") })
}

func TestDigValOr(t *testing.T) {
	assert.Equal(t, 7, DigVal('7'))
	assert.Panics(t, func() { DigVal('x') })
	assert.Equal(t, "x", Or("", "x", "y"))
	assert.Equal(t, 0, Or(0, 0))
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 1, LCM(1, 1))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func countNeighbors[P Cell[P]](p P) int {
	n := 0
	p.ForNeighbors(func(P) bool {
		n++
		return true
	})
	return n
}

func TestForNeighbors(t *testing.T) {
	assert.Equal(t, 8, countNeighbors(Pt{}))
	assert.Equal(t, 26, countNeighbors(Pt3Int{}))
	assert.Equal(t, 80, countNeighbors(Pt4Int{}))

	stopped := 0
	Pt{}.ForNeighbors(func(Pt) bool {
		stopped++
		return stopped < 3
	})
	assert.Equal(t, 3, stopped)
}

func TestPt(t *testing.T) {
	east := Pt{X: 1}
	assert.Equal(t, Pt{X: 0, Y: 1}, east.RotateClockwise())
	assert.Equal(t, Pt{X: 1, Y: 0}, Pt{Y: -1}.RotateClockwise())
	assert.Equal(t, 7, Pt{X: 3, Y: -4}.MDist(Pt{}))
	assert.Equal(t, Pt{X: 4, Y: 6}, Pt{X: 1, Y: 2}.Add(Pt{X: 3, Y: 4}))

	p := Pt{}
	for _, step := range NorthClockwise {
		p = step(p)
	}
	assert.Equal(t, Pt{}, p)
	assert.Equal(t, Pt{Y: -1}, NorthClockwise[0](Pt{}))
	assert.Equal(t, Pt{X: 1}, NorthClockwise[1](Pt{}))
}

func TestLife(t *testing.T) {
	conway := func(alive bool, n int) bool {
		if alive {
			return n == 2 || n == 3
		}
		return n == 3
	}
	blinker := map[Pt]bool{{X: 0, Y: 1}: true, {X: 1, Y: 1}: true, {X: 2, Y: 1}: true}
	next := Life(blinker, conway)
	assert.Equal(t, map[Pt]bool{{X: 1, Y: 0}: true, {X: 1, Y: 1}: true, {X: 1, Y: 2}: true}, next)
	assert.Equal(t, blinker, Life(next, conway))

	lonely := map[Pt]bool{{}: true}
	assert.Empty(t, Life(lonely, conway))
	assert.Equal(t, lonely, Life(lonely, func(alive bool, n int) bool { return alive }))
}

func TestGrid(t *testing.T) {
	g := GridFromString("#.\n.#")
	assert.Equal(t, 2, g.Count('#'))
	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, [4]int{0, 0, 1, 1}, [4]int{minX, minY, maxX, maxY})
	assert.Equal(t, "#.\n.#\n", g.String())

	sparse := Grid{{X: 0, Y: 0}: 'a', {X: 2, Y: 1}: 'b'}
	assert.Equal(t, "a??\n??b\n", sparse.String())

	h := g.Hash()
	assert.Equal(t, h, GridFromString("#.\n.#").Hash())
	g[Pt{}] = '.'
	assert.NotEqual(t, h, g.Hash())
}

func TestReadGrid(t *testing.T) {
	assert.Equal(t, "#.\n.#\n", Solve("day96a", "#.\r\n.#\n"))
	assert.Equal(t, "a?\n?b\n", Solve("day96a", "a \n b"))
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	SetDebug(&buf)
	defer SetDebug(nil)

	Dump("state", map[string]int{"seats": 37})
	assert.Contains(t, buf.String(), "state")
	assert.Contains(t, buf.String(), "seats")
	Log().Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	SetDebug(nil)
	assert.False(t, Log().Enabled(context.Background(), slog.LevelDebug))
}
