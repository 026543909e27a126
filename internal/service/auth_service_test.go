package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebox/internal/auth"
	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

func newAuthFixture(t *testing.T) (*MockUserRepository, *MockActivityRepository, *MockTokenStore, AuthService) {
	t.Helper()
	userRepo := new(MockUserRepository)
	activityRepo := new(MockActivityRepository)
	tokenStore := new(MockTokenStore)
	tx := &stubTxManager{repos: repository.Repositories{
		Users:      userRepo,
		Activities: activityRepo,
	}}
	svc := NewAuthService(userRepo, tx, auth.NewJWTService("test-secret"), tokenStore, clock.Fixed(time.UnixMilli(1_700_000_000_000)))
	return userRepo, activityRepo, tokenStore, svc
}

func TestSignupSuccess(t *testing.T) {
	userRepo, activityRepo, tokenStore, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "ann@example.com" && u.Name == "Ann" && u.PasswordHash != "" && u.PasswordHash != "pw"
	})).Return(nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "signup", int64(1_700_000_000_000), int64(1000)).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
		return a.UserEmail == "ann@example.com" && a.Activity == "signup"
	})).Return(nil)
	tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "ann@example.com", auth.RefreshTokenExpiry).Return(nil)

	access, refresh, user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "pw")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "ann@example.com", user.Email)
	userRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	tokenStore.AssertExpectations(t)
}

func TestSignupTrimsEmail(t *testing.T) {
	userRepo, activityRepo, tokenStore, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "signup", mock.Anything, mock.Anything).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "ann@example.com", mock.Anything).Return(nil)

	_, _, user, err := svc.Signup(context.Background(), "Ann", "  ann@example.com ", "pw")

	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestSignupMissingFields(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	_, _, _, err := svc.Signup(context.Background(), "Ann", "", "pw")
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)

	_, _, _, err = svc.Signup(context.Background(), "Ann", "ann@example.com", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)
}

func TestSignupConflict(t *testing.T) {
	userRepo, _, _, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(&model.User{Email: "ann@example.com"}, nil)

	_, _, _, err := svc.Signup(context.Background(), "Someone Else", "ann@example.com", "different-pw")
	assert.ErrorIs(t, err, apperrors.ErrAccountExists)
}

func TestLoginSuccess(t *testing.T) {
	userRepo, activityRepo, tokenStore, svc := newAuthFixture(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(&model.User{
		Email:        "ann@example.com",
		Name:         "Ann",
		PasswordHash: string(hashed),
	}, nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "login", mock.Anything, mock.Anything).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
		return a.Activity == "login"
	})).Return(nil)
	tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "ann@example.com", mock.Anything).Return(nil)

	access, refresh, user, err := svc.Login(context.Background(), "ann@example.com", "pw")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "Ann", user.Name)
	activityRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo, _, _, svc := newAuthFixture(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(&model.User{
		Email:        "ann@example.com",
		PasswordHash: string(hashed),
	}, nil)

	_, _, _, err := svc.Login(context.Background(), "ann@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo, _, _, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(userRepo, &stubTxManager{}, jwtService, tokenStore, clock.System())

	tokenID, refresh, err := jwtService.GenerateRefreshToken("ann@example.com")
	assert.NoError(t, err)

	tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("ann@example.com", nil)

	access, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", claims.Email)
}

func TestRefreshRevokedToken(t *testing.T) {
	tokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(new(MockUserRepository), &stubTxManager{}, jwtService, tokenStore, clock.System())

	tokenID, refresh, err := jwtService.GenerateRefreshToken("ann@example.com")
	assert.NoError(t, err)

	tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("", assert.AnError)

	_, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), &stubTxManager{}, auth.NewJWTService("test-secret"), new(MockTokenStore), clock.System())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogoutDeletesRefreshToken(t *testing.T) {
	tokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(new(MockUserRepository), &stubTxManager{}, jwtService, tokenStore, clock.System())

	tokenID, refresh, err := jwtService.GenerateRefreshToken("ann@example.com")
	assert.NoError(t, err)

	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), refresh))
	tokenStore.AssertExpectations(t)
}

func TestWhoAmI(t *testing.T) {
	userRepo, _, _, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(&model.User{Email: "ann@example.com", Name: "Ann"}, nil)

	user, err := svc.WhoAmI(context.Background(), "ann@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
}

func TestWhoAmINotFound(t *testing.T) {
	userRepo, _, _, svc := newAuthFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "gone@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.WhoAmI(context.Background(), "gone@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
