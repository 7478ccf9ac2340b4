package domain

import "time"

// Team is an assignment target for queries.
type Team struct {
	ID         string
	Name       string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
