package scoring

import (
	"regexp"
	"strings"
)

// Status labels a criterion outcome
type Status string

const (
	StatusExcellent    Status = "excellent"
	StatusGood         Status = "good"
	StatusAverage      Status = "average"
	StatusBelowAverage Status = "below_average"

	StatusPerfectMatch Status = "perfect_match"
	StatusGoodMatch    Status = "good_match"
	StatusPartialMatch Status = "partial_match"
	StatusNoMatch      Status = "no_match"
)

// Label renders the status for the reason string, e.g. "BELOW AVERAGE"
func (s Status) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// Tier is the outcome of mapping a value through a breakpoint table
type Tier struct {
	Status   Status
	Points   int
	Required string
}

type breakpoint struct {
	min float64
	Tier
}

// Tables are evaluated top-down; the first inclusive lower bound that the
// value reaches wins. The last entry is the fallback.
var (
	gpaTable = []breakpoint{
		{3.9, Tier{StatusExcellent, 20, "3.9+"}},
		{3.7, Tier{StatusGood, 17, "3.7+"}},
		{3.5, Tier{StatusGood, 14, "3.5+"}},
		{3.0, Tier{StatusAverage, 10, "3.0+"}},
	}
	gpaFallback = Tier{StatusBelowAverage, 5, "Below 3.0"}

	satTable = []breakpoint{
		{1500, Tier{StatusExcellent, 24, "1500+"}},
		{1400, Tier{StatusGood, 20, "1400+"}},
		{1300, Tier{StatusGood, 16, "1300+"}},
		{1200, Tier{StatusAverage, 12, "1200+"}},
	}
	satFallback = Tier{StatusBelowAverage, 6, "Below 1200"}

	englishTable = []breakpoint{
		{7.5, Tier{StatusExcellent, 24, "7.5+"}},
		{7.0, Tier{StatusGood, 20, "7.0+"}},
		{6.5, Tier{StatusGood, 16, "6.5+"}},
		{6.0, Tier{StatusAverage, 12, "6.0+"}},
	}
	englishFallback = Tier{StatusBelowAverage, 6, "Below 6.0"}
)

// Maximum points per axis; together they normalise the baseline score.
const (
	MaxGPAPoints     = 20
	MaxSATPoints     = 24
	MaxEnglishPoints = 24
)

func lookup(table []breakpoint, fallback Tier, v float64) Tier {
	for _, bp := range table {
		if v >= bp.min {
			return bp.Tier
		}
	}
	return fallback
}

// GPATier maps a GPA to its tier
func GPATier(gpa float64) Tier {
	return lookup(gpaTable, gpaFallback, gpa)
}

// SATTier maps an SAT score to its tier
func SATTier(sat int) Tier {
	return lookup(satTable, satFallback, float64(sat))
}

// EnglishTier maps an IELTS-scale score to its tier
func EnglishTier(score float64) Tier {
	return lookup(englishTable, englishFallback, score)
}

// MajorMatch is the result of comparing a major with a program list
type MajorMatch struct {
	Status  Status
	Points  int
	Program string
}

var tokenSeparators = regexp.MustCompile(`[\s,&-]+`)

// MatchMajor compares the intended major against the university programs.
//
// The first pass looks for case-insensitive containment in either direction:
// 5 points if some program contains the major, otherwise 3. Only when that
// finds nothing does the second pass look for a shared token, worth 2.
func MatchMajor(major string, programs []string) MajorMatch {
	m := strings.ToLower(major)

	var matched []string
	for _, p := range programs {
		lp := strings.ToLower(p)
		if strings.Contains(lp, m) || strings.Contains(m, lp) {
			matched = append(matched, p)
		}
	}

	if len(matched) > 0 {
		for _, p := range matched {
			if strings.Contains(strings.ToLower(p), m) {
				return MajorMatch{Status: StatusPerfectMatch, Points: 5, Program: p}
			}
		}
		return MajorMatch{Status: StatusGoodMatch, Points: 3, Program: matched[0]}
	}

	majorTokens := tokenize(m)
	for _, p := range programs {
		for pt := range tokenize(strings.ToLower(p)) {
			if _, ok := majorTokens[pt]; ok {
				return MajorMatch{Status: StatusPartialMatch, Points: 2, Program: p}
			}
		}
	}

	return MajorMatch{Status: StatusNoMatch, Points: 0}
}

func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range tokenSeparators.Split(s, -1) {
		if t != "" {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}
