package main

import (
	"fmt"

	"github.com/aocgo/aoc"
)

// hexTile is a tile in axial coordinates: U grows east, V grows
// northeast.
type hexTile struct {
	U, V int
}

var hexDirs = map[string]hexTile{
	"e":  {1, 0},
	"se": {1, -1},
	"sw": {0, -1},
	"w":  {-1, 0},
	"nw": {-1, 1},
	"ne": {0, 1},
}

func (t hexTile) add(d hexTile) hexTile { return hexTile{t.U + d.U, t.V + d.V} }

func (t hexTile) ForNeighbors(f func(hexTile) (keepGoing bool)) {
	for _, name := range []string{"e", "se", "sw", "w", "nw", "ne"} {
		if !f(t.add(hexDirs[name])) {
			return
		}
	}
}

// walkHex follows a run of undelimited directions from the reference tile.
func walkHex(s string) hexTile {
	var t hexTile
	for i := 0; i < len(s); {
		n := 1
		if s[i] == 'n' || s[i] == 's' {
			n = 2
		}
		if i+n > len(s) {
			panic(fmt.Sprintf("truncated direction in %q", s))
		}
		d, ok := hexDirs[s[i:i+n]]
		if !ok {
			panic(fmt.Sprintf("bad direction %q in %q", s[i:i+n], s))
		}
		t = t.add(d)
		i += n
	}
	return t
}

// blackTiles flips the tile at the end of each input line.
func blackTiles() map[hexTile]bool {
	black := map[hexTile]bool{}
	aoc.ForLines(func(line string) {
		t := walkHex(line)
		if black[t] {
			delete(black, t)
		} else {
			black[t] = true
		}
	})
	return black
}

// lobbyRule is the daily flip: a black tile stays black with 1 or 2
// black neighbors, and a white tile turns black with exactly 2.
func lobbyRule(black bool, n int) bool {
	if black {
		return n == 1 || n == 2
	}
	return n == 2
}

/*
want=10
sesenwnenenewseeswwswswwnenewsewsw
neeenesenwnwwswnenewnwwsewnenwseswesw
seswneswswsenwwnwse
nwnwneseeswswnenewneswwnewseswneseene
swweswneswnenwsewnwneneseenw
eesenwseswswnenwswnwnwsewwnwsene
sewnenenenesenwsewnenwwwse
wenwwweseeeweswwwnwwe
wsweesenenewnwwnwsenewsenwwsesesenwne
neeswseenwwswnwswswnw
nenwswwsewswnenenewsenwsenwnesesenew
enewnwewneswsewnwswenweswnenwsenwsw
sweneswneswneneenwnewenewwneswswnese
swwesenesewenwneswnwwneseswwne
enesenwswwswneneswsenwnewswseenwsese
wnwnesenesenenwwnenwsewesewsesesew
nenewswnwewswnenesenwnesewesw
eneswnwswnwsenenwnwnwwseeswneewsenese
neswnwewnwnwseenwseesewsenwsweewe
wseweeenwnesenwwwswnew
*/
func day24a() any {
	return len(blackTiles())
}

// want=2208
func day24b() any {
	black := blackTiles()
	for day := 0; day < 100; day++ {
		black = aoc.Life(black, lobbyRule)
	}
	return len(black)
}
