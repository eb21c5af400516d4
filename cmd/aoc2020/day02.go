package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aocgo/aoc"
)

type passwordLine struct {
	lo, hi   int
	letter   byte
	password string
}

var passwordRx = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): ([a-z]+)$`)

func parsePasswordLine(line string) passwordLine {
	m := passwordRx.FindStringSubmatch(line)
	if m == nil {
		panic(fmt.Sprintf("bad password line %q", line))
	}
	return passwordLine{
		lo:       aoc.Int(m[1]),
		hi:       aoc.Int(m[2]),
		letter:   m[3][0],
		password: m[4],
	}
}

// validCount reports whether the letter appears between lo and hi times.
func (p passwordLine) validCount() bool {
	n := strings.Count(p.password, string(p.letter))
	return p.lo <= n && n <= p.hi
}

// validPositions reports whether exactly one of the 1-based positions
// lo and hi holds the letter.
func (p passwordLine) validPositions() bool {
	at := func(i int) bool {
		return i >= 1 && i <= len(p.password) && p.password[i-1] == p.letter
	}
	return at(p.lo) != at(p.hi)
}

func countPasswords(valid func(passwordLine) bool) int {
	n := 0
	aoc.ForLines(func(line string) {
		if valid(parsePasswordLine(line)) {
			n++
		}
	})
	return n
}

/*
want=2
1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
*/
func day2a() any {
	return countPasswords(passwordLine.validCount)
}

// want=1
func day2b() any {
	return countPasswords(passwordLine.validPositions)
}
