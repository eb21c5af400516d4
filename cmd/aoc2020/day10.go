package main

import (
	"slices"

	"github.com/aocgo/aoc"
)

// joltChain returns the outlet (0), the sorted adapters, and the device
// (3 higher than the highest adapter).
func joltChain() []int {
	chain := []int{0}
	aoc.ForLines(func(line string) {
		chain = append(chain, aoc.Int(line))
	})
	slices.Sort(chain)
	return append(chain, chain[len(chain)-1]+3)
}

/*
want=35
16
10
15
5
1
11
7
19
6
12
4
*/
func day10a() any {
	chain := joltChain()
	diffs := map[int]int{}
	for i := 1; i < len(chain); i++ {
		d := chain[i] - chain[i-1]
		if d < 1 || d > 3 {
			panic("adapters can't be chained")
		}
		diffs[d]++
	}
	aoc.Dump("jolt differences", diffs)
	return diffs[1] * diffs[3]
}

// want=8
func day10b() any {
	chain := joltChain()
	ways := make([]int, len(chain))
	ways[0] = 1
	for i := 1; i < len(chain); i++ {
		for j := i - 1; j >= 0 && chain[i]-chain[j] <= 3; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}
