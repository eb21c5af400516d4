package main

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aocgo/aoc"
	"github.com/dustin/go-humanize"
)

func cupLabels() []int {
	s := strings.TrimSpace(string(aoc.Input()))
	labels := make([]int, len(s))
	for i := range s {
		labels[i] = aoc.DigVal(s[i])
	}
	return labels
}

// cupCircle is a circle of cups labeled 1 through len(next)-1. next[c]
// is the label of the cup clockwise of cup c.
type cupCircle struct {
	next []int32
	cur  int32
}

// newCupCircle arranges labels clockwise, followed by the labels above
// the highest one up to total.
func newCupCircle(labels []int, total int) *cupCircle {
	order := make([]int32, 0, total)
	hi := 0
	for _, l := range labels {
		order = append(order, int32(l))
		hi = max(hi, l)
	}
	for l := hi + 1; l <= total; l++ {
		order = append(order, int32(l))
	}
	c := &cupCircle{next: make([]int32, len(order)+1), cur: order[0]}
	for i, l := range order {
		c.next[l] = order[(i+1)%len(order)]
	}
	return c
}

// move picks up the three cups after the current cup, puts them after
// the destination cup, and advances the current cup.
func (c *cupCircle) move() {
	n := int32(len(c.next) - 1)
	a := c.next[c.cur]
	b := c.next[a]
	d := c.next[b]
	c.next[c.cur] = c.next[d]

	dest := c.cur
	for {
		dest--
		if dest == 0 {
			dest = n
		}
		if dest != a && dest != b && dest != d {
			break
		}
	}
	c.next[d] = c.next[dest]
	c.next[dest] = a
	c.cur = c.next[c.cur]
}

func (c *cupCircle) play(moves int) {
	for i := 0; i < moves; i++ {
		c.move()
	}
	if l := aoc.Log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("crab cups", "cups", humanize.Comma(int64(len(c.next)-1)), "moves", humanize.Comma(int64(moves)))
	}
}

// after1 returns the labels clockwise of cup 1, excluding cup 1.
func (c *cupCircle) after1() string {
	var sb strings.Builder
	for l := c.next[1]; l != 1; l = c.next[l] {
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

/*
want=67384529
389125467
*/
func day23a() any {
	labels := cupLabels()
	c := newCupCircle(labels, len(labels))
	c.play(100)
	return c.after1()
}

// want=149245887792
func day23b() any {
	c := newCupCircle(cupLabels(), 1_000_000)
	c.play(10_000_000)
	a := c.next[1]
	return int(a) * int(c.next[a])
}
