package main

import (
	"fmt"
	"testing"

	"github.com/aocgo/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowPuzzles take seconds even on their samples.
var slowPuzzles = map[string]bool{
	"day15b": true,
	"day23b": true,
}

func TestSamples(t *testing.T) {
	for _, name := range aoc.Puzzles() {
		input, want, ok := aoc.Sample(name)
		if !ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			if testing.Short() && slowPuzzles[name] {
				t.Skip("slow")
			}
			assert.Equal(t, want, aoc.Solve(name, input))
		})
	}
}

func TestRegistered(t *testing.T) {
	var want []string
	for day := 1; day <= 24; day++ {
		if day == 20 || day == 21 {
			continue
		}
		want = append(want, fmt.Sprintf("day%da", day), fmt.Sprintf("day%db", day))
	}
	require.Equal(t, want, aoc.Puzzles())

	for _, name := range want {
		_, _, ok := aoc.Sample(name)
		assert.True(t, ok, "%s has no sample", name)
	}
}
