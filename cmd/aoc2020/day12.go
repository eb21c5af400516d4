package main

import (
	"fmt"

	"github.com/aocgo/aoc"
)

type navInsn struct {
	action byte // one of NSEWLRF
	n      int
}

func navInsns() []navInsn {
	var insns []navInsn
	aoc.ForLines(func(line string) {
		if len(line) < 2 {
			panic(fmt.Sprintf("bad navigation instruction %q", line))
		}
		insns = append(insns, navInsn{action: line[0], n: aoc.Int(line[1:])})
	})
	return insns
}

// compass maps a cardinal action to its index in aoc.NorthClockwise.
var compass = map[byte]int{'N': 0, 'E': 1, 'S': 2, 'W': 3}

// clockwiseTurns converts an L or R turn of deg degrees into a number
// of clockwise quarter turns in [0, 4).
func clockwiseTurns(action byte, deg int) int {
	if deg%90 != 0 {
		panic(fmt.Sprintf("turn of %d degrees isn't a multiple of 90", deg))
	}
	q := (deg / 90) % 4
	if action == 'L' {
		q = (4 - q) % 4
	}
	return q
}

func moveN(p aoc.Pt, step func(aoc.Pt) aoc.Pt, n int) aoc.Pt {
	for i := 0; i < n; i++ {
		p = step(p)
	}
	return p
}

// sailShip moves the ship itself; F sails in the direction it faces.
func sailShip(insns []navInsn) aoc.Pt {
	var pos aoc.Pt
	heading := compass['E']
	for _, in := range insns {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			pos = moveN(pos, aoc.NorthClockwise[compass[in.action]], in.n)
		case 'L', 'R':
			heading = (heading + clockwiseTurns(in.action, in.n)) % 4
		case 'F':
			pos = moveN(pos, aoc.NorthClockwise[heading], in.n)
		default:
			panic(fmt.Sprintf("unknown action %q", in.action))
		}
	}
	return pos
}

// sailWaypoint moves a waypoint relative to the ship; F sails toward it.
func sailWaypoint(insns []navInsn) aoc.Pt {
	var pos aoc.Pt
	wp := aoc.Pt{X: 10, Y: -1}
	for _, in := range insns {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			wp = moveN(wp, aoc.NorthClockwise[compass[in.action]], in.n)
		case 'L', 'R':
			for t := clockwiseTurns(in.action, in.n); t > 0; t-- {
				wp = wp.RotateClockwise()
			}
		case 'F':
			for i := 0; i < in.n; i++ {
				pos = pos.Add(wp)
			}
		default:
			panic(fmt.Sprintf("unknown action %q", in.action))
		}
	}
	return pos
}

/*
want=25
F10
N3
F7
R90
F11
*/
func day12a() any {
	return sailShip(navInsns()).MDist(aoc.Pt{})
}

// want=286
func day12b() any {
	return sailWaypoint(navInsns()).MDist(aoc.Pt{})
}
