package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockRefreshRepo struct {
	mock.Mock
}

func (m *mockRefreshRepo) Create(ctx context.Context, t *domain.RefreshToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockRefreshRepo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *mockRefreshRepo) Rotate(ctx context.Context, oldID int64, next *domain.RefreshToken) error {
	args := m.Called(ctx, oldID, next)
	return args.Error(0)
}

func (m *mockRefreshRepo) RevokeFamily(ctx context.Context, familyID string) error {
	args := m.Called(ctx, familyID)
	return args.Error(0)
}

func (m *mockRefreshRepo) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, username string) (string, error) {
	return "access-token", nil
}

func newTestService(users *mockUserRepo, refresh *mockRefreshRepo) *Service {
	return NewService(users, refresh, fakeJWT{}, 7*24*time.Hour)
}

func TestRegister_Success(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	refresh.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, refresh)
	result, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "sup3r-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	svc := newTestService(users, refresh)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "sup3r-secret",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	// No user row may be created on the duplicate path.
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	svc := newTestService(users, refresh)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "sup3r-secret",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_WeakPassword(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	svc := newTestService(users, refresh)

	for _, pw := range []string{"short", "12345678"} {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: pw,
		})
		assert.ErrorIs(t, err, ErrWeakPassword, pw)
	}

	// Policy check happens before the repository is touched.
	users.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("sup3r-secret"), bcrypt.MinCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)
	refresh.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, refresh)
	result, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "sup3r-secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.User.ID)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("sup3r-secret"), bcrypt.MinCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	svc := newTestService(users, refresh)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users, refresh)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshSession_ReuseRevokesFamily(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	used := time.Now().Add(-time.Hour)
	refresh.On("GetByHash", mock.Anything, mock.Anything).Return(&domain.RefreshToken{
		ID:        3,
		UserID:    7,
		FamilyID:  "fam-1",
		ExpiresAt: time.Now().Add(time.Hour),
		UsedAt:    &used,
	}, nil)
	refresh.On("RevokeFamily", mock.Anything, "fam-1").Return(nil)

	svc := newTestService(users, refresh)
	_, err := svc.RefreshSession(context.Background(), "leaked-token")

	assert.ErrorIs(t, err, ErrRefreshTokenReused)
	refresh.AssertCalled(t, "RevokeFamily", mock.Anything, "fam-1")
}

func TestRefreshSession_Rotates(t *testing.T) {
	users := new(mockUserRepo)
	refresh := new(mockRefreshRepo)

	refresh.On("GetByHash", mock.Anything, mock.Anything).Return(&domain.RefreshToken{
		ID:        3,
		UserID:    7,
		FamilyID:  "fam-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Username: "alice"}, nil)
	refresh.On("Rotate", mock.Anything, int64(3), mock.Anything).Return(nil)
	refresh.On("DeleteExpired", mock.Anything).Return(nil)

	svc := newTestService(users, refresh)
	result, err := svc.RefreshSession(context.Background(), "current-token")

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	refresh.AssertExpectations(t)
}
