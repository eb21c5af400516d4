package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

// shuttle is a bus and the minute offset it must depart at, relative to
// the first listed bus.
type shuttle struct {
	id, offset int
}

func busNotes() (earliest int, buses []shuttle) {
	lines := aoc.Lines()
	if len(lines) < 2 {
		panic("want two lines of notes")
	}
	earliest = aoc.Int(lines[0])
	for i, f := range strings.Split(lines[1], ",") {
		if f == "x" {
			continue
		}
		buses = append(buses, shuttle{id: aoc.Int(f), offset: i})
	}
	return earliest, buses
}

// alignedDeparture returns the earliest timestamp t at which each bus
// departs at t plus its offset. It sieves bus by bus, stepping by the
// LCM of the buses matched so far.
func alignedDeparture(buses []shuttle) int {
	t, step := 0, 1
	for _, b := range buses {
		for (t+b.offset)%b.id != 0 {
			t += step
		}
		step = aoc.LCM(step, b.id)
	}
	return t
}

/*
want=295
939
7,13,x,x,59,x,31,19
*/
func day13a() any {
	earliest, buses := busNotes()
	best, bestWait := 0, -1
	for _, b := range buses {
		wait := (b.id - earliest%b.id) % b.id
		if bestWait == -1 || wait < bestWait {
			best, bestWait = b.id, wait
		}
	}
	return best * bestWait
}

// want=1068781
func day13b() any {
	_, buses := busNotes()
	return alignedDeparture(buses)
}
