package model

import (
	"time"
)

// TokenBlacklist holds logged-out access tokens. The auth middleware rejects
// any token found here; rows become irrelevant once the token itself expires.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklists"
}
