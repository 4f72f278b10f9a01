package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/validator"
)

const pgUniqueViolation = "23505"

type jwtService interface {
	GenerateToken(userID int64, username string) (string, error)
}

// Service contains the registration, login and token-rotation logic.
type Service struct {
	users      UserRepositoryInterface
	refresh    RefreshTokenRepositoryInterface
	jwt        jwtService
	refreshTTL time.Duration
}

// AuthResult is what register and login hand back: the public profile
// plus a fresh token pair.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepositoryInterface,
	refresh RefreshTokenRepositoryInterface,
	jwt jwtService,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		refresh:    refresh,
		jwt:        jwt,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	// Password policy runs before anything touches the database.
	if reason := validator.Password(req.Password); reason != "" {
		return nil, ErrWeakPassword
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The up-front existence checks race with concurrent registration;
		// the unique constraints are the real arbiter.
		return nil, mapUniqueViolation(err)
	}

	return s.issueTokens(ctx, user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *Service) RefreshSession(ctx context.Context, refreshRaw string) (*RefreshResult, error) {
	now := time.Now()
	current, err := s.refresh.GetByHash(ctx, hashToken(refreshRaw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if current.IsExpired(now) {
		return nil, ErrInvalidRefreshToken
	}

	if current.IsUsed() || current.IsRevoked() {
		// A used token coming back means the raw value leaked somewhere;
		// revoke the whole family.
		if err := s.refresh.RevokeFamily(ctx, current.FamilyID); err != nil {
			return nil, err
		}
		return nil, ErrRefreshTokenReused
	}

	user, err := s.users.GetByID(ctx, current.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	nextRaw, next, err := s.newRefreshToken(user.ID, current.FamilyID)
	if err != nil {
		return nil, err
	}
	if err := s.refresh.Rotate(ctx, current.ID, next); err != nil {
		return nil, err
	}

	// Best-effort housekeeping; rotation already succeeded.
	_ = s.refresh.DeleteExpired(ctx)

	return &RefreshResult{AccessToken: accessToken, RefreshToken: nextRaw}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	raw, token, err := s.newRefreshToken(user.ID, uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := s.refresh.Create(ctx, token); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, AccessToken: accessToken, RefreshToken: raw}, nil
}

func (s *Service) newRefreshToken(userID int64, familyID string) (string, *domain.RefreshToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, err
	}
	raw := hex.EncodeToString(buf)

	return raw, &domain.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(raw),
		JTI:       uuid.NewString(),
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// mapUniqueViolation translates a postgres duplicate-key error into the
// matching sentinel so the handler can answer 409 with the right code.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return ErrUsernameTaken
		}
		return ErrEmailTaken
	}
	return err
}
