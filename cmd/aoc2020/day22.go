package main

import (
	"fmt"
	"slices"

	"github.com/aocgo/aoc"
	"tailscale.com/util/deephash"
)

// decks holds both players' cards, top of deck first.
type decks struct {
	P1, P2 []int
}

func readDecks() decks {
	groups := aoc.Groups()
	if len(groups) != 2 {
		panic(fmt.Sprintf("got %d players; want 2", len(groups)))
	}
	var d decks
	for _, line := range groups[0][1:] {
		d.P1 = append(d.P1, aoc.Int(line))
	}
	for _, line := range groups[1][1:] {
		d.P2 = append(d.P2, aoc.Int(line))
	}
	return d
}

// deckScore sums each card times its position counted from the bottom.
func deckScore(deck []int) int {
	score := 0
	for i, c := range deck {
		score += c * (len(deck) - i)
	}
	return score
}

// combat plays until one deck is empty; the higher card wins each round.
func combat(d decks) []int {
	p1, p2 := slices.Clone(d.P1), slices.Clone(d.P2)
	for len(p1) > 0 && len(p2) > 0 {
		a, b := p1[0], p2[0]
		p1, p2 = p1[1:], p2[1:]
		if a > b {
			p1 = append(p1, a, b)
		} else {
			p2 = append(p2, b, a)
		}
	}
	return append(p1, p2...)
}

// recursiveCombat plays Recursive Combat and returns the winning player
// (1 or 2) and their deck. A repeated position within a game goes to
// player 1. When both players hold at least as many cards as the value
// they drew, the round is settled by a sub-game on copies of that many
// cards.
func recursiveCombat(d decks) (winner int, deck []int) {
	p1, p2 := d.P1, d.P2
	seen := map[deephash.Sum]bool{}
	for len(p1) > 0 && len(p2) > 0 {
		cur := decks{p1, p2}
		h := deephash.Hash(&cur)
		if seen[h] {
			return 1, p1
		}
		seen[h] = true

		a, b := p1[0], p2[0]
		p1, p2 = p1[1:], p2[1:]
		var w int
		switch {
		case len(p1) >= a && len(p2) >= b:
			w, _ = recursiveCombat(decks{slices.Clone(p1[:a]), slices.Clone(p2[:b])})
		case a > b:
			w = 1
		default:
			w = 2
		}
		if w == 1 {
			p1 = append(p1, a, b)
		} else {
			p2 = append(p2, b, a)
		}
	}
	if len(p1) > 0 {
		return 1, p1
	}
	return 2, p2
}

/*
want=306
Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
*/
func day22a() any {
	return deckScore(combat(readDecks()))
}

// want=291
func day22b() any {
	winner, deck := recursiveCombat(readDecks())
	aoc.Log().Debug("recursive combat", "winner", winner, "cards", len(deck))
	return deckScore(deck)
}
