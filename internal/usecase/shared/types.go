package shared

import (
	"time"

	"github.com/google/uuid"
)

type ReviewSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CampsiteID uuid.UUID
	Title      string
	Text       string
	Rating     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RatingSummary struct {
	TotalReviews  int
	AverageRating float64
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}

type CampsiteFilter struct {
	// Name matches as a case-insensitive substring.
	Name       string
	Facilities []string
	MaxCost    *float64
	MinRating  *float64
	Country    string
	OwnerID    *uuid.UUID
	// Sort is a field name, prefixed with "-" for descending order.
	Sort  string
	Page  int
	Limit int
}
