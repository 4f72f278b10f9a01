package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stayeasy/internal/domain"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

type refreshTokenModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	UserID      int64      `gorm:"column:user_id;index;not null"`
	TokenHash   string     `gorm:"column:token_hash;size:64;uniqueIndex;not null"`
	JTI         string     `gorm:"column:jti;size:36;not null"`
	FamilyID    string     `gorm:"column:family_id;size:36;index;not null"`
	RotatedFrom *int64     `gorm:"column:rotated_from"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;index;not null"`
	UsedAt      *time.Time `gorm:"column:used_at"`
	RevokedAt   *time.Time `gorm:"column:revoked_at"`
}

func (refreshTokenModel) TableName() string { return "refresh_tokens" }

func toDomainRefreshToken(m refreshTokenModel) *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:          m.ID,
		UserID:      m.UserID,
		TokenHash:   m.TokenHash,
		JTI:         m.JTI,
		FamilyID:    m.FamilyID,
		RotatedFrom: m.RotatedFrom,
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
		UsedAt:      m.UsedAt,
		RevokedAt:   m.RevokedAt,
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	m := refreshTokenModel{
		UserID:      t.UserID,
		TokenHash:   t.TokenHash,
		JTI:         t.JTI,
		FamilyID:    t.FamilyID,
		RotatedFrom: t.RotatedFrom,
		ExpiresAt:   t.ExpiresAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainRefreshToken(m)
	return nil
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var m refreshTokenModel
	tx := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRefreshToken(m), nil
}

// Rotate retires the old token and issues its replacement atomically.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldID int64, next *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&refreshTokenModel{}).Where("id = ?", oldID).Updates(map[string]any{
			"used_at":    now,
			"revoked_at": now,
		}).Error; err != nil {
			return err
		}

		rotatedFrom := oldID
		m := refreshTokenModel{
			UserID:      next.UserID,
			TokenHash:   next.TokenHash,
			JTI:         next.JTI,
			FamilyID:    next.FamilyID,
			RotatedFrom: &rotatedFrom,
			ExpiresAt:   next.ExpiresAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*next = *toDomainRefreshToken(m)
		return nil
	})
}

// RevokeFamily kills every live token in a rotation family. Called on
// reuse detection and on logout.
func (r *RefreshTokenRepository) RevokeFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Model(&refreshTokenModel{}).
		Where("family_id = ? AND revoked_at IS NULL", familyID).
		Update("revoked_at", time.Now()).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&refreshTokenModel{}).Error
}
