package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aocgo/aoc"
)

type fieldRule struct {
	name               string
	lo1, hi1, lo2, hi2 int
}

func (r fieldRule) allows(v int) bool {
	return (v >= r.lo1 && v <= r.hi1) || (v >= r.lo2 && v <= r.hi2)
}

type ticketNotes struct {
	rules  []fieldRule
	mine   []int
	nearby [][]int
}

var fieldRuleRx = regexp.MustCompile(`^([^:]+): (\d+)-(\d+) or (\d+)-(\d+)$`)

func readTicketNotes() ticketNotes {
	groups := aoc.Groups()
	if len(groups) != 3 {
		panic(fmt.Sprintf("got %d sections of ticket notes; want 3", len(groups)))
	}
	var tn ticketNotes
	for _, line := range groups[0] {
		m := fieldRuleRx.FindStringSubmatch(line)
		if m == nil {
			panic(fmt.Sprintf("bad field rule %q", line))
		}
		tn.rules = append(tn.rules, fieldRule{
			name: m[1],
			lo1:  aoc.Int(m[2]),
			hi1:  aoc.Int(m[3]),
			lo2:  aoc.Int(m[4]),
			hi2:  aoc.Int(m[5]),
		})
	}
	if len(groups[1]) != 2 || groups[1][0] != "your ticket:" {
		panic("missing your ticket")
	}
	tn.mine = aoc.Ints(groups[1][1])
	if groups[2][0] != "nearby tickets:" {
		panic("missing nearby tickets")
	}
	for _, line := range groups[2][1:] {
		tn.nearby = append(tn.nearby, aoc.Ints(line))
	}
	return tn
}

// anyAllows reports whether some rule allows v.
func (tn ticketNotes) anyAllows(v int) bool {
	for _, r := range tn.rules {
		if r.allows(v) {
			return true
		}
	}
	return false
}

func (tn ticketNotes) validNearby() [][]int {
	var valid [][]int
	for _, t := range tn.nearby {
		ok := true
		for _, v := range t {
			ok = ok && tn.anyAllows(v)
		}
		if ok {
			valid = append(valid, t)
		}
	}
	return valid
}

// fieldPositions works out which ticket position each field is at. A
// position is a candidate for a field if every valid ticket's value
// there satisfies the field's rule; fields with one candidate left
// claim it until all are placed.
func (tn ticketNotes) fieldPositions() map[string]int {
	tickets := append(tn.validNearby(), tn.mine)
	cand := map[string]map[int]bool{}
	for _, r := range tn.rules {
		cand[r.name] = map[int]bool{}
		for pos := range tn.mine {
			ok := true
			for _, t := range tickets {
				ok = ok && r.allows(t[pos])
			}
			if ok {
				cand[r.name][pos] = true
			}
		}
	}
	placed := map[string]int{}
	for len(placed) < len(tn.rules) {
		progress := false
		for _, name := range aoc.SortedKeys(cand) {
			if len(cand[name]) != 1 {
				continue
			}
			var pos int
			for pos = range cand[name] {
			}
			placed[name] = pos
			delete(cand, name)
			for _, other := range cand {
				delete(other, pos)
			}
			progress = true
		}
		if !progress {
			panic(fmt.Sprintf("can't place fields; candidates left: %v", cand))
		}
	}
	return placed
}

/*
want=71
class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
*/
func day16a() any {
	tn := readTicketNotes()
	rate := 0
	for _, t := range tn.nearby {
		for _, v := range t {
			if !tn.anyAllows(v) {
				rate += v
			}
		}
	}
	return rate
}

/*
want=132
departure location: 0-1 or 4-19
departure station: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
*/
func day16b() any {
	tn := readTicketNotes()
	positions := tn.fieldPositions()
	aoc.Dump("field positions", positions)
	prod := 1
	for name, pos := range positions {
		if strings.HasPrefix(name, "departure") {
			prod *= tn.mine[pos]
		}
	}
	return prod
}
