package main

import (
	"fmt"

	"github.com/aocgo/aoc"
)

type treeMap struct {
	trees map[aoc.Pt]bool
	w, h  int
}

func readTreeMap() treeMap {
	return newTreeMap(aoc.ReadGrid())
}

func newTreeMap(g aoc.Grid) treeMap {
	for p, r := range g {
		if r != '#' && r != '.' {
			panic(fmt.Sprintf("neither tree nor snow at %v: %q", p, r))
		}
	}
	_, _, maxX, maxY := g.Bounds()
	return treeMap{trees: g.PosSetWithValue('#'), w: maxX + 1, h: maxY + 1}
}

// treesHit counts the trees met going right dx and down dy from the top
// left until falling off the bottom. The map repeats to the right.
func (m treeMap) treesHit(dx, dy int) int {
	n := 0
	for p := (aoc.Pt{}); p.Y < m.h; p.X, p.Y = p.X+dx, p.Y+dy {
		if m.trees[aoc.Pt{X: p.X % m.w, Y: p.Y}] {
			n++
		}
	}
	return n
}

/*
want=7
..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
*/
func day3a() any {
	return readTreeMap().treesHit(3, 1)
}

var tobogganSlopes = []aoc.Pt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}}

// want=336
func day3b() any {
	m := readTreeMap()
	prod := 1
	for _, s := range tobogganSlopes {
		prod *= m.treesHit(s.X, s.Y)
	}
	return prod
}
