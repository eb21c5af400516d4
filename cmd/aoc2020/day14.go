package main

import (
	"fmt"
	"regexp"

	"github.com/aocgo/aoc"
)

const maskBits = 36

// bitmask is a docking program mask split by what each bit position says.
type bitmask struct {
	ones, zeros, floating uint64
}

func parseBitmask(s string) bitmask {
	if len(s) != maskBits {
		panic(fmt.Sprintf("mask %q is not %d bits", s, maskBits))
	}
	var m bitmask
	for i, c := range s {
		bit := uint64(1) << (maskBits - 1 - i)
		switch c {
		case '1':
			m.ones |= bit
		case '0':
			m.zeros |= bit
		case 'X':
			m.floating |= bit
		default:
			panic(fmt.Sprintf("bad mask bit %q", c))
		}
	}
	return m
}

// apply forces v's bits where the mask has 0 or 1.
func (m bitmask) apply(v uint64) uint64 {
	return (v | m.ones) &^ m.zeros
}

// forAddrs calls f with every address addr decodes to: bits set to 1 by
// the mask, 0 bits left alone, and floating bits taking every value.
func (m bitmask) forAddrs(addr uint64, f func(uint64)) {
	base := (addr | m.ones) &^ m.floating
	for sub := m.floating; ; sub = (sub - 1) & m.floating {
		f(base | sub)
		if sub == 0 {
			return
		}
	}
}

var (
	maskRx = regexp.MustCompile(`^mask = ([01X]{36})$`)
	memRx  = regexp.MustCompile(`^mem\[(\d+)\] = (\d+)$`)
)

// runDocking executes the initialization program, letting write decide
// how each assignment lands in mem, and returns the sum of memory.
func runDocking(write func(mem map[uint64]uint64, m bitmask, addr, val uint64)) uint64 {
	mem := map[uint64]uint64{}
	var mask bitmask
	aoc.ForLines(func(line string) {
		if m := maskRx.FindStringSubmatch(line); m != nil {
			mask = parseBitmask(m[1])
			return
		}
		m := memRx.FindStringSubmatch(line)
		if m == nil {
			panic(fmt.Sprintf("bad docking line %q", line))
		}
		write(mem, mask, uint64(aoc.Int(m[1])), uint64(aoc.Int(m[2])))
	})
	aoc.Log().Debug("docking memory", "addresses", len(mem))
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum
}

/*
want=165
mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
mem[8] = 11
mem[7] = 101
mem[8] = 0
*/
func day14a() any {
	return runDocking(func(mem map[uint64]uint64, m bitmask, addr, val uint64) {
		mem[addr] = m.apply(val)
	})
}

/*
want=208
mask = 000000000000000000000000000000X1001X
mem[42] = 100
mask = 00000000000000000000000000000000X0XX
mem[26] = 1
*/
func day14b() any {
	return runDocking(func(mem map[uint64]uint64, m bitmask, addr, val uint64) {
		m.forAddrs(addr, func(a uint64) { mem[a] = val })
	})
}
