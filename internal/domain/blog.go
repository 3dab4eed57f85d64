package domain

import "time"

type Blog struct {
	ID        uint
	Title     string
	Content   string
	Image     *string
	CreatedAt time.Time
}
