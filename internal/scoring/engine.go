package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/unitrack/unimatch-api/internal/models"
)

// Scoring constants
const (
	// MaxBaselinePoints is the academic share (55%) of the 80 point raw scale
	MaxBaselinePoints = 44
	// ValueAddPoints stands in for extracurriculars, awards and portfolio
	ValueAddPoints      = 4
	MaxRawCompatibility = 80
	MaxMatchScore       = 100
	// Universities scoring below this are never suggested
	MinMatchScore = 30
	MaxResults    = 6
)

// Ranking tier reasons
const (
	ReasonTopTier     = "Top Tier University"
	ReasonHighRanking = "High Ranking University"
	ReasonGood        = "Good University"
)

// MatchResult is one suggested university with its score breakdown
type MatchResult struct {
	ID                    uuid.UUID    `json:"id"`
	Name                  string       `json:"name"`
	Location              string       `json:"location"`
	Ranking               int          `json:"ranking"`
	Rating                float64      `json:"rating"`
	Tuition               string       `json:"tuition"`
	AcceptanceRate        string       `json:"acceptanceRate"`
	Programs              []string     `json:"programs"`
	Image                 string       `json:"image"`
	Highlights            []string     `json:"highlights"`
	Deadline              string       `json:"deadline"`
	MatchScore            int          `json:"matchScore"`
	AcceptanceProbability int          `json:"acceptanceProbability"`
	Reason                string       `json:"reason"`
	ScoreDetails          ScoreDetails `json:"scoreDetails"`
}

// ScoreDetails is the per-criterion breakdown of a match
type ScoreDetails struct {
	GPA   CriterionDetail `json:"gpa"`
	SAT   CriterionDetail `json:"sat"`
	IELTS CriterionDetail `json:"ielts"`
	Major CriterionDetail `json:"major"`
}

// CriterionDetail describes how one criterion was scored
type CriterionDetail struct {
	YourScore string `json:"yourScore"`
	Required  string `json:"required"`
	Status    Status `json:"status"`
	Points    int    `json:"points"`
}

// Scorer computes university match suggestions for an applicant
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score rates every catalog university and returns the suggestions:
// results under MinMatchScore are dropped, duplicate names keep their first
// occurrence, and the rest are ordered by match score (desc) then ranking
// (asc) and cut to MaxResults.
func (s *Scorer) Score(profile ApplicantProfile, catalog []models.University) []MatchResult {
	results := make([]MatchResult, 0, len(catalog))
	seen := make(map[string]struct{}, len(catalog))

	for _, university := range catalog {
		result := s.ScoreUniversity(profile, university)
		if result.MatchScore < MinMatchScore {
			continue
		}
		if _, dup := seen[result.Name]; dup {
			continue
		}
		seen[result.Name] = struct{}{}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].Ranking < results[j].Ranking
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// ScoreUniversity scores a single university without any filtering
func (s *Scorer) ScoreUniversity(profile ApplicantProfile, university models.University) MatchResult {
	gpa := GPATier(profile.GPA)
	sat := SATTier(profile.SATScore)
	english := EnglishTier(profile.EnglishScore)
	major := MatchMajor(profile.IntendedMajor, university.Programs)

	documents := ScoreDocuments(profile.Documents)

	raw := RawCompatibility(gpa.Points+sat.Points+english.Points, documents.Total, major.Points)
	probability, bonus, rankingReason := AcceptanceProbability(raw, university.Ranking, university.AcceptanceRate)

	reasons := []string{
		gpa.Status.Label() + " GPA",
		sat.Status.Label() + " SAT Score",
		english.Status.Label() + " IELTS Score",
		major.Status.Label() + " Major Match",
	}
	if rankingReason != "" {
		reasons = append(reasons, rankingReason)
	}

	return MatchResult{
		ID:                    university.ID,
		Name:                  university.Name,
		Location:              university.Location,
		Ranking:               university.Ranking,
		Rating:                university.Rating,
		Tuition:               university.Tuition,
		AcceptanceRate:        university.AcceptanceRate,
		Programs:              university.Programs,
		Image:                 university.Image,
		Highlights:            university.Highlights,
		Deadline:              university.Deadline,
		MatchScore:            min(raw+bonus, MaxMatchScore),
		AcceptanceProbability: probability,
		Reason:                strings.Join(reasons, ", "),
		ScoreDetails: ScoreDetails{
			GPA:   criterion(formatFloat(profile.GPA), gpa),
			SAT:   criterion(strconv.Itoa(profile.SATScore), sat),
			IELTS: criterion(formatFloat(profile.EnglishScore), english),
			Major: CriterionDetail{
				YourScore: profile.IntendedMajor,
				Required:  majorRequirement(major),
				Status:    major.Status,
				Points:    major.Points,
			},
		},
	}
}

// BaselineScore rescales the combined academic tier points onto
// MaxBaselinePoints
func BaselineScore(academicPoints int) float64 {
	maxAcademic := float64(MaxGPAPoints + MaxSATPoints + MaxEnglishPoints)
	return math.Min(float64(academicPoints)/maxAcademic*MaxBaselinePoints, MaxBaselinePoints)
}

// RawCompatibility combines baseline, documents, value-add and major points
// into the rounded 0-80 compatibility score
func RawCompatibility(academicPoints, documentPoints, majorPoints int) int {
	total := BaselineScore(academicPoints) + float64(documentPoints+ValueAddPoints+majorPoints)
	return int(math.Round(math.Min(total, MaxRawCompatibility)))
}

// AcceptanceProbability estimates admission odds from the raw compatibility,
// the university ranking and its published acceptance rate. It also returns
// the compatibility bonus and reason for the ranking tier. The probability
// is informational and never affects ordering.
func AcceptanceProbability(raw, ranking int, acceptanceRate string) (probability int, bonus int, reason string) {
	p := math.Round(math.Min(float64(raw)*0.8, 70))

	switch {
	case ranking <= 10:
		p = math.Max(p-20, 5)
		bonus, reason = 5, ReasonTopTier
	case ranking <= 50:
		p = math.Max(p-10, 10)
		bonus, reason = 3, ReasonHighRanking
	case ranking <= 100:
		p = math.Max(p-5, 15)
		bonus, reason = 1, ReasonGood
	default:
		p = math.Min(p+10, 80)
	}

	p -= parseLeadingFloat(acceptanceRate) / 2
	p = math.Max(5, math.Min(95, p))

	return int(math.Round(p)), bonus, reason
}

func criterion(yourScore string, tier Tier) CriterionDetail {
	return CriterionDetail{
		YourScore: yourScore,
		Required:  tier.Required,
		Status:    tier.Status,
		Points:    tier.Points,
	}
}

func majorRequirement(m MajorMatch) string {
	if m.Program == "" {
		return "No related program"
	}
	return m.Program
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
