// Command aoc2020 solves the Advent of Code 2020 puzzles.
//
// Usage:
//
//	aoc2020 -day 13b input.txt
//
// Each part's sample, recorded in its doc comment, is checked before the
// real input is solved.
package main

import (
	"embed"
	"io/fs"

	"github.com/aocgo/aoc"
)

//go:embed day*.go
var sources embed.FS

func init() {
	files, err := fs.Glob(sources, "day*.go")
	aoc.MustDo(err)
	for _, name := range files {
		aoc.ExtractSamples(aoc.MustGet(sources.ReadFile(name)))
	}

	aoc.Add(
		day1a, day1b,
		day2a, day2b,
		day3a, day3b,
		day4a, day4b,
		day5a, day5b,
		day6a, day6b,
		day7a, day7b,
		day8a, day8b,
		day9a, day9b,
		day10a, day10b,
		day11a, day11b,
		day12a, day12b,
		day13a, day13b,
		day14a, day14b,
		day15a, day15b,
		day16a, day16b,
		day17a, day17b,
		day18a, day18b,
		day19a, day19b,
		day22a, day22b,
		day23a, day23b,
		day24a, day24b,
	)
}

func main() {
	aoc.Main()
}
