package main

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/aocgo/aoc"
	"github.com/dustin/go-humanize"
)

func startingNumbers() []int {
	nums := aoc.Ints(strings.TrimSpace(string(aoc.Input())))
	if len(nums) == 0 {
		panic("no starting numbers")
	}
	return nums
}

// memoryGame returns the number spoken on turn n of the elves' game.
// After the starting numbers, each turn speaks 0 if the previous number
// was new, or else how many turns apart its last two appearances were.
func memoryGame(start []int, n int) int {
	if n <= len(start) {
		return start[n-1]
	}
	// lastTurn[v] is the 1-based turn v was last spoken, or 0 if never.
	lastTurn := make([]int32, max(n, slices.Max(start)+1))
	for i, v := range start[:len(start)-1] {
		lastTurn[v] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for turn := len(start); turn < n; turn++ {
		prev := lastTurn[cur]
		lastTurn[cur] = int32(turn)
		if prev == 0 {
			cur = 0
		} else {
			cur = turn - int(prev)
		}
	}
	if l := aoc.Log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("memory game", "turns", humanize.Comma(int64(n)), "spoken", cur)
	}
	return cur
}

/*
want=436
0,3,6
*/
func day15a() any {
	return memoryGame(startingNumbers(), 2020)
}

// want=175594
func day15b() any {
	return memoryGame(startingNumbers(), 30_000_000)
}
