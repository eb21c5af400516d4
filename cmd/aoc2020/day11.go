package main

import (
	"github.com/aocgo/aoc"
)

const (
	seatFloor    = '.'
	seatEmpty    = 'L'
	seatOccupied = '#'
)

// seatDirs are the eight compass and diagonal unit steps.
var seatDirs = func() []aoc.Pt {
	var dirs []aoc.Pt
	aoc.Pt{}.ForNeighbors(func(d aoc.Pt) bool {
		dirs = append(dirs, d)
		return true
	})
	return dirs
}()

// adjacentSeats returns, for each seat, the seats right next to it.
func adjacentSeats(g aoc.Grid) map[aoc.Pt][]aoc.Pt {
	m := map[aoc.Pt][]aoc.Pt{}
	for p, r := range g {
		if r == seatFloor {
			continue
		}
		for _, d := range seatDirs {
			if q := p.Add(d); g[q] == seatEmpty || g[q] == seatOccupied {
				m[p] = append(m[p], q)
			}
		}
	}
	return m
}

// visibleSeats returns, for each seat, the first seat seen in each of
// the eight directions, looking past floor.
func visibleSeats(g aoc.Grid) map[aoc.Pt][]aoc.Pt {
	m := map[aoc.Pt][]aoc.Pt{}
	for p, r := range g {
		if r == seatFloor {
			continue
		}
		for _, d := range seatDirs {
			q := p.Add(d)
			for g[q] == seatFloor {
				q = q.Add(d)
			}
			if g[q] == seatEmpty || g[q] == seatOccupied {
				m[p] = append(m[p], q)
			}
		}
	}
	return m
}

// seatStep applies one round of seating: an empty seat with no occupied
// neighbors fills up, and an occupied seat with at least tolerance
// occupied neighbors empties.
func seatStep(g aoc.Grid, nbrs map[aoc.Pt][]aoc.Pt, tolerance int) aoc.Grid {
	next := aoc.Grid{}
	for p, r := range g {
		next[p] = r
		if r == seatFloor {
			continue
		}
		occ := 0
		for _, q := range nbrs[p] {
			if g[q] == seatOccupied {
				occ++
			}
		}
		switch {
		case r == seatEmpty && occ == 0:
			next[p] = seatOccupied
		case r == seatOccupied && occ >= tolerance:
			next[p] = seatEmpty
		}
	}
	return next
}

// settleSeats runs rounds until the layout stops changing and returns
// the number of occupied seats.
func settleSeats(g aoc.Grid, nbrs map[aoc.Pt][]aoc.Pt, tolerance int) int {
	h := g.Hash()
	for round := 1; ; round++ {
		g = seatStep(g, nbrs, tolerance)
		nh := g.Hash()
		if nh == h {
			aoc.Log().Debug("seats settled", "rounds", round, "layout", "\n"+g.String())
			return g.Count(seatOccupied)
		}
		h = nh
	}
}

/*
want=37
L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
*/
func day11a() any {
	g := aoc.ReadGrid()
	return settleSeats(g, adjacentSeats(g), 4)
}

// want=26
func day11b() any {
	g := aoc.ReadGrid()
	return settleSeats(g, visibleSeats(g), 5)
}
