// Package aoc is the runner behind the Advent of Code 2020 solutions:
// puzzle registration, input loading, sample checking, and the small
// parsing and geometry helpers the puzzles lean on.
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kr/pretty"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Year is the event year inputs are fetched for.
const Year = 2020

var (
	puzzles      []string
	puzzleByName = map[string]func() any{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	curDay     int
	inputFile  string // from the command line; empty means <day>.input
	sampleMode bool
	altInput   []byte // the sample input, when sampleMode

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func Main() {
	log.SetFlags(0)
	flagDay := flag.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed. A bare day number runs every part of that day.")
	flagSample := flag.Bool("sample", false, "only check the sample")
	flagSkipSample := flag.Bool("skip-sample", false, "don't check the sample")
	flagDebug := flag.Bool("debug", false, "log debug output to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [input-file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputFile = flag.Arg(0)
	if *flagDebug {
		SetDebug(os.Stderr)
	}

	for _, name := range resolve(*flagDay) {
		if !*flagSkipSample && !checkSample(name) {
			os.Exit(1)
		}
		if *flagSample {
			continue
		}
		fmt.Println(run(name, nil))
	}
}

// resolve maps the -day flag value to the puzzle funcs to run.
func resolve(day string) []string {
	if len(puzzles) == 0 {
		log.Fatalf("no puzzles registered")
	}
	if day == "" {
		return []string{puzzles[len(puzzles)-1]}
	}
	if unicode.IsDigit(rune(day[0])) {
		day = "day" + day
	}
	if _, ok := puzzleByName[day]; ok {
		return []string{day}
	}
	var names []string
	for _, name := range puzzles {
		rest, ok := strings.CutPrefix(name, day)
		if ok && rest != "" && !unicode.IsDigit(rune(rest[0])) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		log.Fatalf("puzzle func %v not registered; have %v", day, Puzzles())
	}
	return names
}

var getDay = regexp.MustCompile(`\d+`)

func dayOf(funcName string) int {
	m := getDay.FindString(funcName)
	if m == "" {
		log.Fatalf("no digits in func name %q from which to extract day number", funcName)
	}
	return Int(m)
}

// run calls the named puzzle func. A non-nil input runs it in sample mode.
func run(name string, input []byte) any {
	f, ok := puzzleByName[name]
	if !ok {
		panic(fmt.Sprintf("puzzle func %v not registered", name))
	}
	curDay = dayOf(name)
	sampleMode, altInput = input != nil, input
	defer func() { sampleMode, altInput = false, nil }()

	t0 := time.Now()
	v := f()
	logger.Debug("solved", "puzzle", name, "sample", input != nil, "took", time.Since(t0).Round(time.Microsecond))
	return v
}

func checkSample(name string) bool {
	want, ok := sampleWant[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "⚠️ no sample for %v\n", name)
		return true
	}
	got := fmt.Sprint(run(name, []byte(sampleInput[name])))
	if got != want {
		fmt.Fprintf(os.Stderr, "❌ for %v sample, got=%v; want %v\n", name, got, want)
		return false
	}
	fmt.Fprintf(os.Stderr, "OK %v sample result.\n", name)
	return true
}

// Solve runs the named puzzle func against input and returns its
// answer as printed.
func Solve(name, input string) string {
	return fmt.Sprint(run(name, []byte(input)))
}

// Sample returns the sample input and expected answer recorded for the
// named puzzle func by ExtractSamples.
func Sample(name string) (input, want string, ok bool) {
	want, ok = sampleWant[name]
	return sampleInput[name], want, ok
}

// Puzzles returns the registered puzzle func names in registration order.
func Puzzles() []string {
	return slices.Clone(puzzles)
}

// InSample reports whether the running puzzle is being fed its sample.
func InSample() bool { return sampleMode }

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples records the samples found in the doc comments of the
// funcs in src. A sample is a comment line "want=<answer>", optionally
// followed by the sample input. A func with only a want reuses the
// previous func's input.
func ExtractSamples(src []byte) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = m[1]
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
}

func funcName(f func() any) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndexByte(name, '.')+1:]
}

func Add(puzFuncs ...func() any) {
	for _, f := range puzFuncs {
		name := funcName(f)
		if _, dup := puzzleByName[name]; dup {
			panic(fmt.Sprintf("duplicate puzzle func %q", name))
		}
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

// SetDebug sends debug logging to w. A nil w turns debug logging off.
func SetDebug(w io.Writer) {
	if w == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Log returns the debug logger. It discards everything unless -debug is set.
func Log() *slog.Logger { return logger }

// Dump logs a pretty-printed v at debug level.
func Dump(msg string, v any) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug(msg, "day", curDay, "value", pretty.Sprint(v))
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt4[T constraints.Signed] struct {
	X, Y, Z, W T
}

type Pt = Pt2[int]

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func (p Pt3[T]) ForNeighbors(f func(Pt3[T]) (keepGoing bool)) {
	for z := T(-1); z <= 1; z++ {
		for y := T(-1); y <= 1; y++ {
			for x := T(-1); x <= 1; x++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if !f(Pt3[T]{p.X + x, p.Y + y, p.Z + z}) {
					return
				}
			}
		}
	}
}

func (p Pt4[T]) ForNeighbors(f func(Pt4[T]) (keepGoing bool)) {
	for w := T(-1); w <= 1; w++ {
		for z := T(-1); z <= 1; z++ {
			for y := T(-1); y <= 1; y++ {
				for x := T(-1); x <= 1; x++ {
					if x == 0 && y == 0 && z == 0 && w == 0 {
						continue
					}
					if !f(Pt4[T]{p.X + x, p.Y + y, p.Z + z, p.W + w}) {
						return
					}
				}
			}
		}
	}
}

type Pt3Int = Pt3[int]
type Pt4Int = Pt4[int]

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsInt[T](a.X, b.X) + AbsInt[T](a.Y, b.Y)
}

func (p Pt2[T]) Add(b Pt2[T]) Pt2[T] { return Pt2[T]{p.X + b.X, p.Y + b.Y} }

// RotateClockwise turns p a quarter turn clockwise about the origin.
// Y grows southward, so east becomes south and north becomes east.
func (p Pt2[T]) RotateClockwise() Pt2[T] { return Pt2[T]{-p.Y, p.X} }

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

func sliceOf[T any](v ...T) []T { return v }

var NorthClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].East,
	Pt2[int].South,
	Pt2[int].West,
)

// Cell is a point in a space of live and dead cells.
type Cell[P any] interface {
	comparable
	ForNeighbors(func(P) (keepGoing bool))
}

// Life advances the set of live cells one generation. rule reports
// whether a cell is live next generation given whether it is live now
// and how many of its neighbors are.
func Life[P Cell[P]](live map[P]bool, rule func(alive bool, liveNeighbors int) bool) map[P]bool {
	counts := map[P]int{}
	for p := range live {
		p.ForNeighbors(func(n P) bool {
			counts[n]++
			return true
		})
	}
	next := map[P]bool{}
	for p, n := range counts {
		if rule(live[p], n) {
			next[p] = true
		}
	}
	if rule(true, 0) {
		for p := range live {
			if counts[p] == 0 {
				next[p] = true
			}
		}
	}
	return next
}

func Input() []byte {
	if sampleMode {
		return altInput
	}
	if inputFile != "" {
		return MustGet(os.ReadFile(inputFile))
	}
	filename := fmt.Sprintf("%d.input", curDay)
	f, err := os.ReadFile(filename)
	if err == nil {
		return f
	}
	session := MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))
	req := MustGet(http.NewRequest("GET", fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", Year, curDay), nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		log.Fatalf("bad status: %v", res.Status)
	}
	f = MustGet(io.ReadAll(res.Body))
	MustDo(os.WriteFile(filename, f, 0644))
	return f
}

func Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(Input()))
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in s, in order.
func Ints(s string) []int {
	var out []int
	for _, v := range intRx.FindAllString(s, -1) {
		out = append(out, Int(v))
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ForLines calls onLine for each line of input.
func ForLines(onLine func(line string)) {
	ForLinesY(func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func ForLinesY(onLine func(y int, line string)) {
	s := Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// Lines returns the lines of input.
func Lines() []string {
	var lines []string
	ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// Groups returns the input's runs of non-blank lines.
func Groups() [][]string {
	var groups [][]string
	var cur []string
	ForLines(func(line string) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = nil
			return
		}
		cur = append(cur, line)
	})
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

// SortedKeys returns m's keys in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

type Grid map[Pt]rune

func ReadGrid() Grid {
	return GridFromString(string(Input()))
}

func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

var gridHasher = deephash.HasherForType[Grid]()

// Hash returns a digest of g's contents. Grids with equal cells hash equally.
func (g Grid) Hash() deephash.Sum { return gridHasher(&g) }

func (g Grid) PosSetWithValue(v rune) map[Pt]bool {
	s := map[Pt]bool{}
	for p, r := range g {
		if r == v {
			s[p] = true
		}
	}
	return s
}

func (g Grid) Count(v rune) int {
	return len(g.PosSetWithValue(v))
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

func (g Grid) String() string {
	var sb strings.Builder
	minX, minY, maxX, maxY := g.Bounds()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			r := g[Pt{x, y}]
			if r == 0 {
				r = '?'
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
