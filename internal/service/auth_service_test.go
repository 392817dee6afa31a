package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/pkg/config"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

func newAuthFixture(t *testing.T, users ...*models.User) *AuthService {
	t.Helper()
	store := userStoreStub{items: map[string]*models.User{}}
	for _, user := range users {
		store.items[user.Name] = user
	}
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: time.Hour}
	return NewAuthService(store, cfg, nil, nil)
}

func hashPIN(t *testing.T, pin string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	service := newAuthFixture(t, &models.User{
		ID:      1,
		Name:    "dewi",
		Role:    models.RoleAdmin,
		PINHash: hashPIN(t, "123456"),
		Active:  true,
	})

	resp, err := service.Login(context.Background(), models.LoginRequest{Name: "dewi", PIN: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "dewi", resp.Name)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := service.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceLoginWrongPIN(t *testing.T) {
	service := newAuthFixture(t, &models.User{
		Name:    "dewi",
		PINHash: hashPIN(t, "123456"),
		Active:  true,
	})

	_, err := service.Login(context.Background(), models.LoginRequest{Name: "dewi", PIN: "654321"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownAccount(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), models.LoginRequest{Name: "ghost", PIN: "123456"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	service := newAuthFixture(t, &models.User{
		Name:    "dewi",
		PINHash: hashPIN(t, "123456"),
		Active:  false,
	})

	_, err := service.Login(context.Background(), models.LoginRequest{Name: "dewi", PIN: "123456"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginMissingFields(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), models.LoginRequest{Name: "dewi"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newAuthFixture(t, &models.User{
		Name:    "dewi",
		PINHash: hashPIN(t, "123456"),
		Active:  true,
	})
	resp, err := issuer.Login(context.Background(), models.LoginRequest{Name: "dewi", PIN: "123456"})
	require.NoError(t, err)

	verifier := NewAuthService(userStoreStub{}, config.JWTConfig{Secret: "other-secret", Expiration: time.Hour}, nil, nil)
	_, err = verifier.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

type userStoreStub struct {
	items map[string]*models.User
}

func (s userStoreStub) FindByName(ctx context.Context, name string) (*models.User, error) {
	if user, ok := s.items[name]; ok {
		return user, nil
	}
	return nil, sql.ErrNoRows
}
