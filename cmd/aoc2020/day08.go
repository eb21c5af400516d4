package main

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/aocgo/aoc"
)

type handheldInsn struct {
	op  string // acc, jmp or nop
	arg int
}

var handheldRx = regexp.MustCompile(`^(acc|jmp|nop) ([+-]\d+)$`)

func parseHandheld(lines []string) []handheldInsn {
	prog := make([]handheldInsn, 0, len(lines))
	for _, line := range lines {
		m := handheldRx.FindStringSubmatch(line)
		if m == nil {
			panic(fmt.Sprintf("bad instruction %q", line))
		}
		prog = append(prog, handheldInsn{op: m[1], arg: aoc.Int(m[2])})
	}
	return prog
}

// runHandheld runs prog until it is about to execute an instruction a
// second time or its pc leaves the program. It reports the accumulator
// and whether the program terminated by running just past its last
// instruction.
func runHandheld(prog []handheldInsn) (acc int, terminated bool) {
	seen := make([]bool, len(prog))
	pc := 0
	for pc >= 0 && pc < len(prog) && !seen[pc] {
		seen[pc] = true
		switch in := prog[pc]; in.op {
		case "acc":
			acc += in.arg
			pc++
		case "jmp":
			pc += in.arg
		case "nop":
			pc++
		default:
			panic("invalid op " + in.op)
		}
	}
	return acc, pc == len(prog)
}

// repairHandheld flips one jmp/nop so that prog terminates and returns
// the final accumulator.
func repairHandheld(prog []handheldInsn) (int, bool) {
	swap := map[string]string{"jmp": "nop", "nop": "jmp"}
	for i, in := range prog {
		op, ok := swap[in.op]
		if !ok {
			continue
		}
		fixed := slices.Clone(prog)
		fixed[i].op = op
		if acc, ok := runHandheld(fixed); ok {
			return acc, true
		}
	}
	return 0, false
}

/*
want=5
nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
*/
func day8a() any {
	acc, _ := runHandheld(parseHandheld(aoc.Lines()))
	return acc
}

// want=8
func day8b() any {
	acc, ok := repairHandheld(parseHandheld(aoc.Lines()))
	if !ok {
		panic("no single swap terminates the program")
	}
	return acc
}
