package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aocgo/aoc"
)

// msgRule is a rule from the satellite's message grammar: either a
// literal or a list of alternatives, each a sequence of rule numbers.
type msgRule struct {
	lit  string
	alts [][]int
}

type msgGrammar map[int]msgRule

var (
	msgRuleRx = regexp.MustCompile(`^(\d+): (.+)$`)
	msgLitRx  = regexp.MustCompile(`^"([a-z]+)"$`)
)

func readMessages() (msgGrammar, []string) {
	groups := aoc.Groups()
	if len(groups) != 2 {
		panic(fmt.Sprintf("got %d sections; want rules and messages", len(groups)))
	}
	g := msgGrammar{}
	for _, line := range groups[0] {
		m := msgRuleRx.FindStringSubmatch(line)
		if m == nil {
			panic(fmt.Sprintf("bad rule %q", line))
		}
		if lm := msgLitRx.FindStringSubmatch(m[2]); lm != nil {
			g[aoc.Int(m[1])] = msgRule{lit: lm[1]}
			continue
		}
		var r msgRule
		for _, alt := range strings.Split(m[2], "|") {
			var seq []int
			for _, f := range strings.Fields(alt) {
				seq = append(seq, aoc.Int(f))
			}
			r.alts = append(r.alts, seq)
		}
		g[aoc.Int(m[1])] = r
	}
	return g, groups[1]
}

// msgRegexp renders grammar rules as regular expressions. Rules in
// override render as given instead.
type msgRegexp struct {
	g        msgGrammar
	override map[int]string
	memo     map[int]string
}

func (b *msgRegexp) rule(id int) string {
	if s, ok := b.override[id]; ok {
		return s
	}
	if s, ok := b.memo[id]; ok {
		return s
	}
	r, ok := b.g[id]
	if !ok {
		panic(fmt.Sprintf("no rule %d", id))
	}
	s := regexp.QuoteMeta(r.lit)
	if r.lit == "" {
		var alts []string
		for _, seq := range r.alts {
			var sb strings.Builder
			for _, sub := range seq {
				sb.WriteString(b.rule(sub))
			}
			alts = append(alts, sb.String())
		}
		s = "(?:" + strings.Join(alts, "|") + ")"
	}
	if b.memo == nil {
		b.memo = map[int]string{}
	}
	b.memo[id] = s
	return s
}

func (b *msgRegexp) compile() *regexp.Regexp {
	return regexp.MustCompile("^" + b.rule(0) + "$")
}

// minLen returns the length of the shortest message rule id matches.
func (g msgGrammar) minLen(id int) int {
	r := g[id]
	if r.lit != "" {
		return len(r.lit)
	}
	best := -1
	for _, seq := range r.alts {
		n := 0
		for _, sub := range seq {
			n += g.minLen(sub)
		}
		if best == -1 || n < best {
			best = n
		}
	}
	return best
}

func countMatching(rx *regexp.Regexp, msgs []string) int {
	n := 0
	for _, m := range msgs {
		if rx.MatchString(m) {
			n++
		}
	}
	return n
}

/*
want=2
0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"

ababbb
bababa
abbbab
aaabbb
aaaabbb
*/
func day19a() any {
	g, msgs := readMessages()
	return countMatching((&msgRegexp{g: g}).compile(), msgs)
}

// day19b replaces rules 8 and 11 with their looping versions:
//
//	8: 42 | 42 8
//	11: 42 31 | 42 11 31
//
// Rule 8 is one or more 42s. Rule 11 is n 42s then n 31s, which a
// regexp can't count, so each n up to the longest message's bound gets
// its own regexp.
/*
want=4
0: 8 11
8: 42
11: 42 31
42: "a"
31: "b"

aab
aaab
aaabb
aabb
ab
aaaabbb
abab
b
*/
func day19b() any {
	g, msgs := readMessages()
	base := &msgRegexp{g: g}
	r42, r31 := base.rule(42), base.rule(31)
	longest := 0
	for _, m := range msgs {
		longest = max(longest, len(m))
	}
	maxN := longest / (g.minLen(42) + g.minLen(31))

	matched := map[int]bool{} // index into msgs
	for n := 1; n <= maxN; n++ {
		b := &msgRegexp{g: g, override: map[int]string{
			8:  "(?:" + r42 + ")+",
			11: fmt.Sprintf("(?:%s){%d}(?:%s){%d}", r42, n, r31, n),
		}}
		rx := b.compile()
		for i, m := range msgs {
			if !matched[i] && rx.MatchString(m) {
				matched[i] = true
			}
		}
	}
	aoc.Log().Debug("looping rules", "max repeats", maxN)
	return len(matched)
}
