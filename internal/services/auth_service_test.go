package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/rakhaanw/mindhaven/internal/models"
	"github.com/rakhaanw/mindhaven/internal/services"
	"github.com/rakhaanw/mindhaven/internal/utils"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Email] = *u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memUserRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[email]
	return ok, nil
}

const testSecret = "test-secret"

func TestRegisterIssuesToken(t *testing.T) {
	svc := services.NewAuthService(newMemUserRepo(), testSecret, 0)

	user, token, err := svc.Register(context.Background(), "Ana@Example.com", "hunter22", "Ana")
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", user.Email)
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, user.ID, claims.Subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(newMemUserRepo(), testSecret, 0)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "ana@example.com", "hunter22", "Ana")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "ana@example.com", "other-pass", "Ana 2")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	svc := services.NewAuthService(newMemUserRepo(), testSecret, 0)

	_, _, err := svc.Register(context.Background(), "", "pass", "")
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, _, err = svc.Register(context.Background(), "ana@example.com", "", "")
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestLogin(t *testing.T) {
	svc := services.NewAuthService(newMemUserRepo(), testSecret, 0)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "ana@example.com", "hunter22", "Ana")
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "ana@example.com", "hunter22")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ana@example.com", "nope")
		require.True(t, utils.IsCode(err, utils.CodeUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ghost@example.com", "hunter22")
		require.True(t, utils.IsCode(err, utils.CodeUnauthorized))
	})
}
