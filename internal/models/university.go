package models

import (
	"time"

	"github.com/google/uuid"
)

// University represents a catalog record. Ranking is a positive integer
// where lower is more prestigious; AcceptanceRate is a percentage string
// such as "5%" or "12.5".
type University struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Location       string    `json:"location" db:"location"`
	Ranking        int       `json:"ranking" db:"ranking"`
	Rating         float64   `json:"rating" db:"rating"`
	Tuition        string    `json:"tuition" db:"tuition"`
	AcceptanceRate string    `json:"acceptanceRate" db:"acceptance_rate"`
	Programs       []string  `json:"programs" db:"programs"`
	Image          string    `json:"image" db:"image"`
	Highlights     []string  `json:"highlights" db:"highlights"`
	Deadline       string    `json:"deadline" db:"deadline"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
