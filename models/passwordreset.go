package models

import "time"

// PasswordResetToken is a single-use, time-boxed token issued by the
// password-reset request endpoint and consumed by the confirm endpoint.
type PasswordResetToken struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Token  string `json:"-" gorm:"size:64;uniqueIndex;not null"`

	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// Usable reports whether the token can still reset a password.
func (t *PasswordResetToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
