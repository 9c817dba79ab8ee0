package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// ApplicantProfile is the academic profile a suggestion request is scored for.
// EnglishScore is on the IELTS 0-9 scale.
type ApplicantProfile struct {
	GPA           float64    `json:"gpa"`
	SATScore      int        `json:"satScore"`
	EnglishScore  float64    `json:"englishScore"`
	IntendedMajor string     `json:"intendedMajor"`
	Documents     *Documents `json:"documents,omitempty"`
}

// Documents holds whatever supporting material the applicant has attached.
// Any part may be empty.
type Documents struct {
	Essays          []Essay                `json:"essays,omitempty"`
	Recommendations []RecommendationLetter `json:"recommendations,omitempty"`
	Others          []SupportingDocument   `json:"others,omitempty"`
}

// Essay is a free-text application essay
type Essay struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// RecommendationLetter tracks one letter and its submission state
type RecommendationLetter struct {
	Recommender string `json:"recommender,omitempty"`
	Completed   bool   `json:"completed"`
	Submitted   bool   `json:"submitted"`
	Content     string `json:"content,omitempty"`
}

// SupportingDocument is any other uploaded document (transcript, diploma, ...)
type SupportingDocument struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Verified bool   `json:"verified"`
	Complete bool   `json:"complete"`
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseProfile builds a profile from the raw request strings.
// For GPA only the numerator of an "x/y" value is used. Numbers are read
// from the leading numeric prefix of each value; unparseable input yields 0.
func ParseProfile(gpa, sat, english, major string, docs *Documents) ApplicantProfile {
	numerator := strings.SplitN(gpa, "/", 2)[0]

	return ApplicantProfile{
		GPA:           parseLeadingFloat(numerator),
		SATScore:      parseLeadingInt(sat),
		EnglishScore:  parseLeadingFloat(english),
		IntendedMajor: strings.TrimSpace(major),
		Documents:     docs,
	}
}

func parseLeadingFloat(s string) float64 {
	match := leadingFloat.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseLeadingInt(s string) int {
	match := leadingInt.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return v
}
