package model

import "time"

// Token represents a launched token identity.
type Token struct {
	ID            int64
	Mint          string
	Name          string
	Symbol        string
	Description   *string
	ImageURL      *string
	CreatorWallet string
	Graduated     bool
	Verified      bool
	Retired       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
