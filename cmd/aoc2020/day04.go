package main

import (
	"regexp"
	"slices"
	"strings"

	"github.com/aocgo/aoc"
)

type passport map[string]string

func readPassports() []passport {
	var out []passport
	for _, group := range aoc.Groups() {
		p := passport{}
		for _, line := range group {
			for _, field := range strings.Fields(line) {
				k, v, ok := strings.Cut(field, ":")
				if !ok {
					panic("bad passport field " + field)
				}
				p[k] = v
			}
		}
		out = append(out, p)
	}
	return out
}

var (
	fourDigitsRx = regexp.MustCompile(`^\d{4}$`)
	heightRx     = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairRx       = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	pidRx        = regexp.MustCompile(`^\d{9}$`)
)

func yearBetween(lo, hi int) func(string) bool {
	return func(v string) bool {
		if !fourDigitsRx.MatchString(v) {
			return false
		}
		y := aoc.Int(v)
		return lo <= y && y <= hi
	}
}

func validHeight(v string) bool {
	m := heightRx.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	h := aoc.Int(m[1])
	if m[2] == "cm" {
		return 150 <= h && h <= 193
	}
	return 59 <= h && h <= 76
}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

// passportFields maps each required field (cid is optional) to its
// value check.
var passportFields = map[string]func(string) bool{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": hairRx.MatchString,
	"ecl": func(v string) bool { return slices.Contains(eyeColors, v) },
	"pid": pidRx.MatchString,
}

func (p passport) hasFields() bool {
	for k := range passportFields {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	if !p.hasFields() {
		return false
	}
	for k, check := range passportFields {
		if !check(p[k]) {
			return false
		}
	}
	return true
}

func countPassports(ok func(passport) bool) int {
	n := 0
	for _, p := range readPassports() {
		if ok(p) {
			n++
		}
	}
	return n
}

/*
want=2
ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
*/
func day4a() any {
	return countPassports(passport.hasFields)
}

/*
want=3
eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022
*/
func day4b() any {
	return countPassports(passport.valid)
}
