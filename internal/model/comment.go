package model

import "time"

// Comment is a discussion entry on a token page.
type Comment struct {
	ID        int64
	TokenID   int64
	Wallet    string
	Content   string
	CreatedAt time.Time
}
