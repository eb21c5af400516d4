package main

import (
	"github.com/aocgo/aoc"
)

// answerCounts returns how many of the group's people answered each
// question.
func answerCounts(group []string) map[rune]int {
	counts := map[rune]int{}
	for _, person := range group {
		for _, q := range person {
			counts[q]++
		}
	}
	return counts
}

func anyoneYes(group []string) int {
	return len(answerCounts(group))
}

func everyoneYes(group []string) int {
	n := 0
	for _, c := range answerCounts(group) {
		if c == len(group) {
			n++
		}
	}
	return n
}

func sumGroups(count func([]string) int) int {
	sum := 0
	for _, g := range aoc.Groups() {
		sum += count(g)
	}
	return sum
}

/*
want=11
abc

a
b
c

ab
ac

a
a
a
a

b
*/
func day6a() any {
	return sumGroups(anyoneYes)
}

// want=6
func day6b() any {
	return sumGroups(everyoneYes)
}
