package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/devanshioza/skillfolio/skillz"
)

// User is one registered student account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Branch       string
	Year         int32
	GithubURL    string
	LinkedinURL  string
	LeetcodeURL  string
	CreatedAt    time.Time
}

// Message is one direct message between two users.
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	CreatedAt   time.Time
}

// StudentCard is the discovery-view projection of a user and their
// analyzed profile.
type StudentCard struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Branch         string               `json:"branch"`
	Year           int32                `json:"year"`
	OverallRating  float64              `json:"overallRating"`
	ProfileSummary string               `json:"profileSummary"`
	Skills         []skillz.SkillRecord `json:"skills"`
}
