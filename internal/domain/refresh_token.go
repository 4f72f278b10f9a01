package domain

import "time"

// RefreshToken stores refresh tokens for users.
//
// Security notes:
// - The raw token is never stored, only its SHA-256 hash (TokenHash).
// - On refresh the token is rotated: the old one is marked used and a new
//   one is issued in the same family. A used token showing up again means
//   the raw value leaked, and the whole family gets revoked.
type RefreshToken struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	TokenHash string `json:"-"`
	JTI       string `json:"-"`
	FamilyID  string `json:"-"`

	RotatedFrom *int64 `json:"rotated_from,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

func (t *RefreshToken) IsUsed() bool {
	return t.UsedAt != nil
}
