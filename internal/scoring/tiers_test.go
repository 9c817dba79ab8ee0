package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPATier_Boundaries(t *testing.T) {
	tests := []struct {
		gpa    float64
		status Status
		points int
	}{
		{4.0, StatusExcellent, 20},
		{3.9, StatusExcellent, 20},
		{3.89999, StatusGood, 17},
		{3.7, StatusGood, 17},
		{3.69, StatusGood, 14},
		{3.5, StatusGood, 14},
		{3.49, StatusAverage, 10},
		{3.0, StatusAverage, 10},
		{2.99, StatusBelowAverage, 5},
		{0, StatusBelowAverage, 5},
	}

	for _, tt := range tests {
		tier := GPATier(tt.gpa)
		assert.Equal(t, tt.status, tier.Status, "gpa %v", tt.gpa)
		assert.Equal(t, tt.points, tier.Points, "gpa %v", tt.gpa)
	}
}

func TestSATTier_Boundaries(t *testing.T) {
	tests := []struct {
		sat    int
		status Status
		points int
	}{
		{1600, StatusExcellent, 24},
		{1500, StatusExcellent, 24},
		{1499, StatusGood, 20},
		{1400, StatusGood, 20},
		{1399, StatusGood, 16},
		{1300, StatusGood, 16},
		{1299, StatusAverage, 12},
		{1200, StatusAverage, 12},
		{1199, StatusBelowAverage, 6},
	}

	for _, tt := range tests {
		tier := SATTier(tt.sat)
		assert.Equal(t, tt.status, tier.Status, "sat %d", tt.sat)
		assert.Equal(t, tt.points, tier.Points, "sat %d", tt.sat)
	}
}

func TestEnglishTier_Boundaries(t *testing.T) {
	tests := []struct {
		score  float64
		status Status
		points int
	}{
		{9, StatusExcellent, 24},
		{7.5, StatusExcellent, 24},
		{7.49, StatusGood, 20},
		{7.0, StatusGood, 20},
		{6.5, StatusGood, 16},
		{6.0, StatusAverage, 12},
		{5.99, StatusBelowAverage, 6},
	}

	for _, tt := range tests {
		tier := EnglishTier(tt.score)
		assert.Equal(t, tt.status, tier.Status, "english %v", tt.score)
		assert.Equal(t, tt.points, tier.Points, "english %v", tt.score)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "BELOW AVERAGE", StatusBelowAverage.Label())
	assert.Equal(t, "PERFECT MATCH", StatusPerfectMatch.Label())
	assert.Equal(t, "EXCELLENT", StatusExcellent.Label())
}

func TestMatchMajor(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		programs []string
		status   Status
		points   int
		program  string
	}{
		{"program contains major", "computer science", []string{"Art", "Computer Science and Engineering"}, StatusPerfectMatch, 5, "Computer Science and Engineering"},
		{"case insensitive exact", "Physics", []string{"PHYSICS"}, StatusPerfectMatch, 5, "PHYSICS"},
		{"major contains program", "Applied Mathematics", []string{"Mathematics"}, StatusGoodMatch, 3, "Mathematics"},
		{"perfect wins over earlier good", "Economics", []string{"Econ", "Economics"}, StatusPerfectMatch, 5, "Economics"},
		{"token overlap", "Data Science", []string{"Computer Science & Engineering"}, StatusPartialMatch, 2, "Computer Science & Engineering"},
		{"token overlap on hyphen", "Bio-Chemistry", []string{"Chemistry, Pharmacy"}, StatusPartialMatch, 2, "Chemistry, Pharmacy"},
		{"no match", "Art", []string{"Physics"}, StatusNoMatch, 0, ""},
		{"no programs", "Art", nil, StatusNoMatch, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchMajor(tt.major, tt.programs)
			assert.Equal(t, tt.status, m.Status)
			assert.Equal(t, tt.points, m.Points)
			assert.Equal(t, tt.program, m.Program)
		})
	}
}

func TestParseProfile(t *testing.T) {
	p := ParseProfile("3.8/4.0", "1450", "7.5", "  Biology ", nil)
	assert.Equal(t, 3.8, p.GPA)
	assert.Equal(t, 1450, p.SATScore)
	assert.Equal(t, 7.5, p.EnglishScore)
	assert.Equal(t, "Biology", p.IntendedMajor)

	lenient := ParseProfile("3.5 GPA", "1390 (superscore)", "6.5 overall", "Law", nil)
	assert.Equal(t, 3.5, lenient.GPA)
	assert.Equal(t, 1390, lenient.SATScore)
	assert.Equal(t, 6.5, lenient.EnglishScore)

	garbage := ParseProfile("abc", "n/a", "", "Law", nil)
	assert.Zero(t, garbage.GPA)
	assert.Zero(t, garbage.SATScore)
	assert.Zero(t, garbage.EnglishScore)
}
