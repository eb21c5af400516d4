package main

import (
	"fmt"
	"regexp"

	"github.com/aocgo/aoc"
)

const myBag = "shiny gold"

// bagRules maps a bag color to the count of each color it directly holds.
type bagRules map[string]map[string]int

var (
	bagRuleRx    = regexp.MustCompile(`^(.+?) bags contain (.+)\.$`)
	bagContentRx = regexp.MustCompile(`(\d+) (.+?) bags?`)
)

func parseBagRules(lines []string) bagRules {
	rules := bagRules{}
	for _, line := range lines {
		m := bagRuleRx.FindStringSubmatch(line)
		if m == nil {
			panic(fmt.Sprintf("bad bag rule %q", line))
		}
		inner := map[string]int{}
		if m[2] != "no other bags" {
			for _, c := range bagContentRx.FindAllStringSubmatch(m[2], -1) {
				inner[c[2]] = aoc.Int(c[1])
			}
		}
		rules[m[1]] = inner
	}
	return rules
}

// holders returns the colors that can eventually contain color.
func (r bagRules) holders(color string) map[string]bool {
	parents := map[string][]string{}
	for outer, contents := range r {
		for inner := range contents {
			parents[inner] = append(parents[inner], outer)
		}
	}
	seen := map[string]bool{}
	queue := []string{color}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, p := range parents[c] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// contained returns how many bags are inside one bag of color.
func (r bagRules) contained(color string, memo map[string]int) int {
	if n, ok := memo[color]; ok {
		return n
	}
	n := 0
	for inner, count := range r[color] {
		n += count * (1 + r.contained(inner, memo))
	}
	memo[color] = n
	return n
}

/*
want=4
light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
*/
func day7a() any {
	return len(parseBagRules(aoc.Lines()).holders(myBag))
}

// want=32
func day7b() any {
	return parseBagRules(aoc.Lines()).contained(myBag, map[string]int{})
}
