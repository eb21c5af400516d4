package main

import (
	"github.com/aocgo/aoc"
)

const expenseSum = 2020

func expenses() []int {
	var nums []int
	aoc.ForLines(func(line string) {
		nums = append(nums, aoc.Int(line))
	})
	return nums
}

// findPair returns two entries of nums summing to sum.
func findPair(nums []int, sum int) (x, y int, ok bool) {
	seen := map[int]bool{}
	for _, n := range nums {
		if seen[sum-n] {
			return sum - n, n, true
		}
		seen[n] = true
	}
	return 0, 0, false
}

// findTriple returns three entries of nums summing to sum.
func findTriple(nums []int, sum int) (x, y, z int, ok bool) {
	for i, n := range nums {
		if y, z, ok := findPair(nums[i+1:], sum-n); ok {
			return n, y, z, true
		}
	}
	return 0, 0, 0, false
}

/*
want=514579
1721
979
366
299
675
1456
*/
func day1a() any {
	x, y, ok := findPair(expenses(), expenseSum)
	if !ok {
		panic("did not find a match")
	}
	return x * y
}

// want=241861950
func day1b() any {
	x, y, z, ok := findTriple(expenses(), expenseSum)
	if !ok {
		panic("did not find a match")
	}
	return x * y * z
}
