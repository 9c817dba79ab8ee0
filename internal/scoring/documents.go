package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Document score caps
const (
	MaxEssayPoints          = 30
	MaxRecommendationPoints = 15
	MaxOtherDocumentPoints  = 20
	MaxDocumentPoints       = 20
)

// RequiredDocumentTypes are the checklist tags looked for in other documents
var RequiredDocumentTypes = []string{"transcript", "certificate", "diploma", "test_score", "identification"}

// DocumentScore is the capped document contribution plus its parts
type DocumentScore struct {
	Essay           int `json:"essay"`
	Recommendations int `json:"recommendations"`
	Others          int `json:"others"`
	Total           int `json:"total"`
}

var sentenceDelimiters = regexp.MustCompile(`[.!?]+`)

// ScoreDocuments totals the essay, recommendation and other-document
// scores. The sub-caps add up past MaxDocumentPoints so the total is capped.
func ScoreDocuments(docs *Documents) DocumentScore {
	if docs == nil {
		return DocumentScore{}
	}

	var score DocumentScore
	for _, essay := range docs.Essays {
		score.Essay = max(score.Essay, ScoreEssay(essay.Content))
	}
	score.Recommendations = ScoreRecommendations(docs.Recommendations)
	score.Others = ScoreOtherDocuments(docs.Others)
	score.Total = min(score.Essay+score.Recommendations+score.Others, MaxDocumentPoints)

	return score
}

// ScoreEssay rates essay content on length and structure heuristics.
// Content under 100 characters scores 0.
func ScoreEssay(content string) int {
	if utf8.RuneCountInString(content) < 100 {
		return 0
	}

	lower := strings.ToLower(content)
	words := len(strings.Fields(content))
	sentences := countSentences(content)

	points := 0
	if words >= 250 && words <= 650 {
		points += 5
	}
	if strings.Contains(content, "I ") || strings.Contains(lower, "my ") || strings.Contains(lower, "me ") {
		points += 5
	}
	if sentences >= 3 {
		points += 5
	}
	if utf8.RuneCountInString(content) > 500 {
		points += 5
	}

	// structure
	if strings.Contains(lower, "introduction") || sentences >= 2 {
		points += 5
	}
	if strings.Contains(lower, "conclusion") || sentences >= 3 {
		points += 5
	}
	if words >= 300 {
		points += 5
	}

	return min(points, MaxEssayPoints)
}

func countSentences(content string) int {
	n := 0
	for _, segment := range sentenceDelimiters.Split(content, -1) {
		if strings.TrimSpace(segment) != "" {
			n++
		}
	}
	return n
}

// ScoreRecommendations awards 5 points for each of the first two letters,
// then per letter 2 for being completed and submitted and 3 for text longer
// than 100 characters.
func ScoreRecommendations(letters []RecommendationLetter) int {
	points := 5 * min(len(letters), 2)

	for _, letter := range letters {
		if letter.Completed && letter.Submitted {
			points += 2
		}
		if utf8.RuneCountInString(letter.Content) > 100 {
			points += 3
		}
	}

	return min(points, MaxRecommendationPoints)
}

// ScoreOtherDocuments awards 3 points per required type found in any
// document's type or name, plus a point for each verified and each
// complete document.
func ScoreOtherDocuments(docs []SupportingDocument) int {
	points := 0

	for _, required := range RequiredDocumentTypes {
		for _, doc := range docs {
			if strings.Contains(strings.ToLower(doc.Type), required) || strings.Contains(strings.ToLower(doc.Name), required) {
				points += 3
				break
			}
		}
	}

	for _, doc := range docs {
		if doc.Verified {
			points++
		}
		if doc.Complete {
			points++
		}
	}

	return min(points, MaxOtherDocumentPoints)
}
