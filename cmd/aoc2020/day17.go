package main

import (
	"github.com/aocgo/aoc"
)

const bootCycles = 6

// conwayCubes is the rule for the pocket dimension: an active cube
// stays active with 2 or 3 active neighbors, and an inactive cube
// activates with exactly 3.
func conwayCubes(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// bootCubes reads the initial slice and places each active cube with
// at, then runs the boot cycles.
func bootCubes[P aoc.Cell[P]](at func(x, y int) P) int {
	live := map[P]bool{}
	for p := range aoc.ReadGrid().PosSetWithValue('#') {
		live[at(p.X, p.Y)] = true
	}
	for i := 0; i < bootCycles; i++ {
		live = aoc.Life(live, conwayCubes)
		aoc.Log().Debug("cycle", "n", i+1, "active", len(live))
	}
	return len(live)
}

/*
want=112
.#.
..#
###
*/
func day17a() any {
	return bootCubes(func(x, y int) aoc.Pt3Int { return aoc.Pt3Int{X: x, Y: y} })
}

// want=848
func day17b() any {
	return bootCubes(func(x, y int) aoc.Pt4Int { return aoc.Pt4Int{X: x, Y: y} })
}
