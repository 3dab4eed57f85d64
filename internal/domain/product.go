package domain

import "time"

type Product struct {
	ID          uint
	Name        string
	Category    string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
