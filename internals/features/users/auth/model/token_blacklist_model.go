package model

import (
	"time"
)

// TokenBlacklist holds logged-out JWTs until they would have expired anyway.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;uniqueIndex" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;index;not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName keeps the singular table name
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
