package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/unitrack/unimatch-api/internal/scoring"
)

// FlexibleString accepts a JSON string or a JSON number. The dashboard
// sends form values as strings but other clients post raw numbers.
// Surrounding whitespace is dropped so a blank value counts as missing.
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexibleString(strings.TrimSpace(str))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	*s = FlexibleString(n.String())
	return nil
}

// SuggestRequest is the body of POST /api/ai/suggest.
// The toefl field carries an IELTS band (0-9) despite its name; the wire
// name is kept for existing clients.
type SuggestRequest struct {
	GPA       FlexibleString     `json:"gpa" binding:"required"`
	SAT       FlexibleString     `json:"sat" binding:"required"`
	TOEFL     FlexibleString     `json:"toefl" binding:"required"`
	Major     FlexibleString     `json:"major" binding:"required"`
	Documents *scoring.Documents `json:"documents,omitempty"`
}

// Profile converts the request into the scorer's applicant profile
func (r SuggestRequest) Profile() scoring.ApplicantProfile {
	return scoring.ParseProfile(string(r.GPA), string(r.SAT), string(r.TOEFL), string(r.Major), r.Documents)
}
