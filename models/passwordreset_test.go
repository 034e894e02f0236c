package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetTokenUsable(t *testing.T) {
	now := time.Now()

	fresh := PasswordResetToken{ExpiresAt: now.Add(30 * time.Minute)}
	assert.True(t, fresh.Usable(now))

	expired := PasswordResetToken{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.Usable(now))

	usedAt := now.Add(-time.Minute)
	used := PasswordResetToken{ExpiresAt: now.Add(30 * time.Minute), UsedAt: &usedAt}
	assert.False(t, used.Usable(now), "tokens are single-use")
}
