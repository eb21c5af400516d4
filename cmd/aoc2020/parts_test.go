package main

import (
	"bytes"
	"testing"

	"github.com/aocgo/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPair(t *testing.T) {
	x, y, ok := findPair([]int{1721, 979, 366, 299, 675, 1456}, 2020)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1721, 299}, []int{x, y})

	_, _, ok = findPair([]int{1010}, 2020)
	assert.False(t, ok, "a lone 1010 must not pair with itself")
	_, _, ok = findPair([]int{1010, 1010}, 2020)
	assert.True(t, ok)

	a, b, c, ok := findTriple([]int{1721, 979, 366, 299, 675, 1456}, 2020)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{979, 366, 675}, []int{a, b, c})
}

const slopeMap = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#`

func TestTreesHit(t *testing.T) {
	m := newTreeMap(aoc.GridFromString(slopeMap))
	assert.Equal(t, 11, m.w)
	assert.Equal(t, 11, m.h)
	for _, tt := range []struct {
		dx, dy, want int
	}{
		{1, 1, 2},
		{3, 1, 7},
		{5, 1, 3},
		{7, 1, 4},
		{1, 2, 2},
	} {
		assert.Equal(t, tt.want, m.treesHit(tt.dx, tt.dy), "right %d down %d", tt.dx, tt.dy)
	}
	assert.Equal(t, "7", aoc.Solve("day3a", slopeMap))
	assert.Equal(t, "336", aoc.Solve("day3b", slopeMap))
	assert.Panics(t, func() { newTreeMap(aoc.GridFromString("#.x")) })
}

func TestPasswordPolicies(t *testing.T) {
	for _, tt := range []struct {
		line            string
		count, position bool
	}{
		{"1-3 a: abcde", true, true},
		{"1-3 b: cdefg", false, false},
		{"2-9 c: ccccccccc", true, false},
	} {
		p := parsePasswordLine(tt.line)
		assert.Equal(t, tt.count, p.validCount(), "count policy for %q", tt.line)
		assert.Equal(t, tt.position, p.validPositions(), "position policy for %q", tt.line)
	}
	assert.Panics(t, func() { parsePasswordLine("1-3 a abcde") })
}

func TestPassportFields(t *testing.T) {
	for _, tt := range []struct {
		field, value string
		want         bool
	}{
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"hgt", "60in", true},
		{"hgt", "190cm", true},
		{"hgt", "190in", false},
		{"hgt", "190", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "123abc", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "0123456789", false},
	} {
		assert.Equal(t, tt.want, passportFields[tt.field](tt.value), "%s:%s", tt.field, tt.value)
	}
}

func TestSeatID(t *testing.T) {
	assert.Equal(t, 357, seatID("FBFBBFFRLR"))
	assert.Equal(t, 567, seatID("BFFFBBFRRR"))
	assert.Equal(t, 119, seatID("FFFBBBFRRR"))
	assert.Equal(t, 820, seatID("BBFFBBFRLL"))
	assert.Panics(t, func() { seatID("FBFBBFFRLX") })

	id, ok := missingSeat([]int{13, 10, 11, 9})
	require.True(t, ok)
	assert.Equal(t, 12, id)
	_, ok = missingSeat([]int{3, 4, 5})
	assert.False(t, ok)
}

func TestCustomsGroups(t *testing.T) {
	group := []string{"ab", "ac"}
	assert.Equal(t, 3, anyoneYes(group))
	assert.Equal(t, 1, everyoneYes(group))
}

func TestBagRules(t *testing.T) {
	rules := parseBagRules([]string{
		"shiny gold bags contain 2 dark red bags.",
		"dark red bags contain 2 dark orange bags.",
		"dark orange bags contain 2 dark yellow bags.",
		"dark yellow bags contain 2 dark green bags.",
		"dark green bags contain 2 dark blue bags.",
		"dark blue bags contain 2 dark violet bags.",
		"dark violet bags contain no other bags.",
	})
	assert.Equal(t, 126, rules.contained(myBag, map[string]int{}))
	assert.Empty(t, rules.holders(myBag))
	assert.Len(t, rules.holders("dark violet"), 6)
}

func TestHandheld(t *testing.T) {
	prog := parseHandheld([]string{"acc +3", "jmp -1"})
	acc, terminated := runHandheld(prog)
	assert.Equal(t, 3, acc)
	assert.False(t, terminated)

	acc, ok := repairHandheld(prog)
	require.True(t, ok)
	assert.Equal(t, 3, acc)

	assert.Panics(t, func() { parseHandheld([]string{"mul +2"}) })
}

func TestXMAS(t *testing.T) {
	nums := []int{35, 20, 15, 25, 47, 40, 62, 55, 65, 95, 102, 117, 150, 182, 127, 219, 299, 277, 309, 576}
	bad, ok := firstInvalid(nums, 5)
	require.True(t, ok)
	assert.Equal(t, 127, bad)

	w, ok := weakness(nums, bad)
	require.True(t, ok)
	assert.Equal(t, 62, w)
}

func TestJoltArrangements(t *testing.T) {
	assert.Equal(t, "220", aoc.Solve("day10a", "28\n33\n18\n42\n31\n14\n46\n20\n48\n47\n24\n23\n49\n45\n19\n38\n39\n11\n1\n32\n25\n35\n8\n17\n7\n9\n4\n2\n34\n10\n3\n"))
	assert.Equal(t, "19208", aoc.Solve("day10b", "28\n33\n18\n42\n31\n14\n46\n20\n48\n47\n24\n23\n49\n45\n19\n38\n39\n11\n1\n32\n25\n35\n8\n17\n7\n9\n4\n2\n34\n10\n3\n"))
}

func TestVisibleSeats(t *testing.T) {
	g := aoc.GridFromString(".L.L.#.#.#.#.")
	vis := visibleSeats(g)
	assert.ElementsMatch(t, []aoc.Pt{{X: 3, Y: 0}}, vis[aoc.Pt{X: 1, Y: 0}])
	assert.Len(t, adjacentSeats(g)[aoc.Pt{X: 1, Y: 0}], 0)
}

func TestClockwiseTurns(t *testing.T) {
	assert.Equal(t, 1, clockwiseTurns('R', 90))
	assert.Equal(t, 3, clockwiseTurns('L', 90))
	assert.Equal(t, 2, clockwiseTurns('L', 180))
	assert.Equal(t, 0, clockwiseTurns('R', 360))
	assert.Panics(t, func() { clockwiseTurns('R', 45) })
}

func TestAlignedDeparture(t *testing.T) {
	for _, tt := range []struct {
		ids  []int // 0 is an x
		want int
	}{
		{[]int{17, 0, 13, 19}, 3417},
		{[]int{67, 7, 59, 61}, 754018},
		{[]int{67, 0, 7, 59, 61}, 779210},
		{[]int{67, 7, 0, 59, 61}, 1261476},
		{[]int{1789, 37, 47, 1889}, 1202161486},
	} {
		var buses []shuttle
		for i, id := range tt.ids {
			if id != 0 {
				buses = append(buses, shuttle{id: id, offset: i})
			}
		}
		assert.Equal(t, tt.want, alignedDeparture(buses), "%v", tt.ids)
	}
}

func TestBitmask(t *testing.T) {
	m := parseBitmask("XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X")
	assert.Equal(t, uint64(73), m.apply(11))
	assert.Equal(t, uint64(101), m.apply(101))
	assert.Equal(t, uint64(64), m.apply(0))

	var addrs []uint64
	parseBitmask("000000000000000000000000000000X1001X").forAddrs(42, func(a uint64) {
		addrs = append(addrs, a)
	})
	assert.ElementsMatch(t, []uint64{26, 27, 58, 59}, addrs)
}

func TestMemoryGame(t *testing.T) {
	assert.Equal(t, 0, memoryGame([]int{0, 3, 6}, 4))
	assert.Equal(t, 3, memoryGame([]int{0, 3, 6}, 5))
	assert.Equal(t, 6, memoryGame([]int{0, 3, 6}, 3))
	assert.Equal(t, 1, memoryGame([]int{1, 3, 2}, 2020))
	assert.Equal(t, 1836, memoryGame([]int{3, 1, 2}, 2020))
}

func TestMemoryGameLogging(t *testing.T) {
	var buf bytes.Buffer
	aoc.SetDebug(&buf)
	defer aoc.SetDebug(nil)

	assert.Equal(t, 436, memoryGame([]int{0, 3, 6}, 2020))
	assert.Contains(t, buf.String(), "turns=2,020")
}

func TestFieldPositions(t *testing.T) {
	tn := ticketNotes{
		rules: []fieldRule{
			{"class", 0, 1, 4, 19},
			{"row", 0, 5, 8, 19},
			{"seat", 0, 13, 16, 19},
		},
		mine:   []int{11, 12, 13},
		nearby: [][]int{{3, 9, 18}, {15, 1, 5}, {5, 14, 9}, {20, 1, 1}},
	}
	assert.Len(t, tn.validNearby(), 3)
	assert.Equal(t, map[string]int{"row": 0, "class": 1, "seat": 2}, tn.fieldPositions())
}

func TestConwayCubes(t *testing.T) {
	assert.True(t, conwayCubes(true, 2))
	assert.True(t, conwayCubes(false, 3))
	assert.False(t, conwayCubes(false, 2))
	assert.False(t, conwayCubes(true, 4))
}

func TestEvalExpr(t *testing.T) {
	for _, tt := range []struct {
		expr       string
		flat, plus int
	}{
		{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
		{"1 + (2 * 3) + (4 * (5 + 6))", 51, 51},
		{"2 * 3 + (4 * 5)", 26, 46},
		{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
		{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
		{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
	} {
		assert.Equal(t, tt.flat, evalExpr(tt.expr, flatPrec), "left to right: %s", tt.expr)
		assert.Equal(t, tt.plus, evalExpr(tt.expr, additionPrec), "addition first: %s", tt.expr)
	}
	assert.Panics(t, func() { evalExpr("1 + (2", flatPrec) })
	assert.Panics(t, func() { evalExpr("1 - 2", flatPrec) })
}

func TestMessageRegexp(t *testing.T) {
	g := msgGrammar{
		0: {alts: [][]int{{4, 1, 5}}},
		1: {alts: [][]int{{2, 3}, {3, 2}}},
		2: {alts: [][]int{{4, 4}, {5, 5}}},
		3: {alts: [][]int{{4, 5}, {5, 4}}},
		4: {lit: "a"},
		5: {lit: "b"},
	}
	rx := (&msgRegexp{g: g}).compile()
	assert.True(t, rx.MatchString("aaaabb"))
	assert.True(t, rx.MatchString("aaabab"))
	assert.False(t, rx.MatchString("b"))
	assert.False(t, rx.MatchString("aaaabbb"))
	assert.Equal(t, 6, g.minLen(0))
	assert.Equal(t, 4, g.minLen(1))
}

func TestCombat(t *testing.T) {
	d := decks{P1: []int{9, 2, 6, 3, 1}, P2: []int{5, 8, 4, 7, 10}}
	assert.Equal(t, []int{3, 2, 10, 6, 8, 5, 9, 4, 7, 1}, combat(d))

	winner, deck := recursiveCombat(decks{P1: []int{9, 2, 6, 3, 1}, P2: []int{5, 8, 4, 7, 10}})
	assert.Equal(t, 2, winner)
	assert.Equal(t, []int{7, 5, 6, 2, 4, 1, 10, 8, 9, 3}, deck)

	// Without the repeat rule this game never ends.
	winner, _ = recursiveCombat(decks{P1: []int{43, 19}, P2: []int{2, 29, 14}})
	assert.Equal(t, 1, winner)
}

func TestCrabCups(t *testing.T) {
	c := newCupCircle([]int{3, 8, 9, 1, 2, 5, 4, 6, 7}, 9)
	c.play(10)
	assert.Equal(t, "92658374", c.after1())

	big := newCupCircle([]int{3, 1, 2}, 10)
	assert.Len(t, big.next, 11)
	assert.Equal(t, int32(4), big.next[2])
	assert.Equal(t, int32(3), big.next[10])
}

func TestHexTiles(t *testing.T) {
	assert.Equal(t, hexTile{1, -1}, walkHex("esew"))
	assert.Equal(t, hexTile{}, walkHex("nwwswee"))
	assert.Panics(t, func() { walkHex("en") })
	assert.Panics(t, func() { walkHex("ex") })

	n := 0
	hexTile{}.ForNeighbors(func(hexTile) bool {
		n++
		return true
	})
	assert.Equal(t, 6, n)

	black := map[hexTile]bool{{0, 0}: true, {1, 0}: true}
	next := aoc.Life(black, lobbyRule)
	assert.Equal(t, map[hexTile]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, -1}: true}, next)
}

var lobbyPaths = []string{
	"sesenwnenenewseeswwswswwnenewsewsw",
	"neeenesenwnwwswnenewnwwsewnenwseswesw",
	"seswneswswsenwwnwse",
	"nwnwneseeswswnenewneswwnewseswneseene",
	"swweswneswnenwsewnwneneseenw",
	"eesenwseswswnenwswnwnwsewwnwsene",
	"sewnenenenesenwsewnenwwwse",
	"wenwwweseeeweswwwnwwe",
	"wsweesenenewnwwnwsenewsenwwsesesenwne",
	"neeswseenwwswnwswswnw",
	"nenwswwsewswnenenewsenwsenwnesesenew",
	"enewnwewneswsewnwswenweswnenwsenwsw",
	"sweneswneswneneenwnewenewwneswswnese",
	"swwesenesewenwneswnwwneseswwne",
	"enesenwswwswneneswsenwnewswseenwsese",
	"wnwnesenesenenwwnenwsewesewsesesew",
	"nenewswnwewswnenesenwnesewesw",
	"eneswnwswnwsenenwnwnwwseeswneewsenese",
	"neswnwewnwnwseenwseesewsenwsweewe",
	"wseweeenwnesenwwwswnew",
}

func TestLobbyDays(t *testing.T) {
	black := map[hexTile]bool{}
	for _, p := range lobbyPaths {
		tile := walkHex(p)
		if black[tile] {
			delete(black, tile)
		} else {
			black[tile] = true
		}
	}
	require.Len(t, black, 10)

	for day := 1; day <= 100; day++ {
		black = aoc.Life(black, lobbyRule)
		switch day {
		case 1:
			assert.Len(t, black, 15)
		case 2:
			assert.Len(t, black, 12)
		case 10:
			assert.Len(t, black, 37)
		case 100:
			assert.Len(t, black, 2208)
		}
	}
}
