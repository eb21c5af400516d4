package main

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/aocgo/aoc"
)

var boardingPassRx = regexp.MustCompile(`^[FB]{7}[LR]{3}$`)

// seatID decodes a boarding pass. Its ten letters are the binary digits
// of row*8 + column, B and R being ones.
func seatID(pass string) int {
	if !boardingPassRx.MatchString(pass) {
		panic(fmt.Sprintf("bad boarding pass %q", pass))
	}
	id := 0
	for i := 0; i < len(pass); i++ {
		id <<= 1
		if pass[i] == 'B' || pass[i] == 'R' {
			id |= 1
		}
	}
	return id
}

func seatIDs() []int {
	var ids []int
	aoc.ForLines(func(line string) {
		ids = append(ids, seatID(line))
	})
	return ids
}

// missingSeat returns the one id absent between the lowest and highest
// of ids.
func missingSeat(ids []int) (int, bool) {
	ids = slices.Clone(ids)
	slices.Sort(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1]+2 {
			return ids[i] - 1, true
		}
	}
	return 0, false
}

/*
want=12
FFFFFFBLLL
FFFFFFBLLR
FFFFFFBRLL
FFFFFFBLRR
*/
func day5a() any {
	return slices.Max(seatIDs())
}

// want=10
func day5b() any {
	id, ok := missingSeat(seatIDs())
	if !ok {
		panic("no missing seat")
	}
	return id
}
