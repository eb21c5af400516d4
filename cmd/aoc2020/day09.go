package main

import (
	"slices"

	"github.com/aocgo/aoc"
)

func xmasPreamble() int {
	if aoc.InSample() {
		return 5
	}
	return 25
}

func xmasNumbers() []int {
	var nums []int
	aoc.ForLines(func(line string) {
		nums = append(nums, aoc.Int(line))
	})
	return nums
}

// firstInvalid returns the first number after the preamble that is not
// the sum of two different numbers among the preamble numbers before it.
func firstInvalid(nums []int, preamble int) (int, bool) {
	for i := preamble; i < len(nums); i++ {
		window := nums[i-preamble : i]
		if _, _, ok := findPair(window, nums[i]); !ok {
			return nums[i], true
		}
	}
	return 0, false
}

// weakness finds a run of at least two contiguous numbers summing to
// target and returns the sum of its smallest and largest numbers.
func weakness(nums []int, target int) (int, bool) {
	for lo := range nums {
		sum := nums[lo]
		for hi := lo + 1; hi < len(nums); hi++ {
			sum += nums[hi]
			if sum == target {
				run := nums[lo : hi+1]
				return slices.Min(run) + slices.Max(run), true
			}
			if sum > target {
				break
			}
		}
	}
	return 0, false
}

func xmasInvalid(nums []int) int {
	bad, ok := firstInvalid(nums, xmasPreamble())
	if !ok {
		panic("every number is valid")
	}
	return bad
}

/*
want=127
35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576
*/
func day9a() any {
	return xmasInvalid(xmasNumbers())
}

// want=62
func day9b() any {
	nums := xmasNumbers()
	w, ok := weakness(nums, xmasInvalid(nums))
	if !ok {
		panic("we didn't find a block")
	}
	return w
}
