package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/session"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			SessionSecret:     "test-secret",
			SessionTTLMinutes: 60,
			BcryptCost:        bcrypt.MinCost,
		},
	}
}

func newTestAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		UserRepo:     users,
		SessionStore: session.NewMemoryStore(time.Hour),
	})
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	user, err := svc.Register(ctx, "  Asha ", " Asha@Example.COM ", "pw1234", "North")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, domain.RoleCitizen, user.Role, "registration never creates an admin")
	assert.NotEqual(t, "pw1234", user.PasswordHash)
	assert.NotZero(t, user.ID)

	loggedIn, token, exp, err := svc.Login(ctx, "asha@example.com", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	cases := []struct {
		name, userName, email, password string
	}{
		{"blank name", "   ", "a@example.com", "pw"},
		{"blank email", "Asha", "   ", "pw"},
		{"blank password", "Asha", "a@example.com", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.userName, tc.email, tc.password, "")
			assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "pw1234", "")
	require.NoError(t, err)

	// normalization makes case and whitespace variants collide
	_, err = svc.Register(ctx, "Imposter", "  ASHA@example.com ", "other", "")
	assert.Equal(t, "DUPLICATE_EMAIL", errCode(t, err))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "pw1234", "")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "pw1234")
	_, _, _, wrongPwErr := svc.Login(ctx, "asha@example.com", "wrong")

	assert.Equal(t, "INVALID_CREDENTIALS", errCode(t, unknownErr))
	assert.Equal(t, "INVALID_CREDENTIALS", errCode(t, wrongPwErr))
}

func TestResolveAndLogout(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	admin := users.seed(domain.User{
		Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin,
	})

	user, err := svc.Register(ctx, "Asha", "asha@example.com", "pw1234", "")
	require.NoError(t, err)
	_, token, _, err := svc.Login(ctx, "asha@example.com", "pw1234")
	require.NoError(t, err)

	principal, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, domain.RoleCitizen, principal.Role)
	assert.NotEqual(t, admin.ID, principal.UserID)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.Resolve(ctx, token)
	assert.Equal(t, "UNAUTHENTICATED", errCode(t, err))

	// logout is idempotent, even for garbage tokens
	assert.NoError(t, svc.Logout(ctx, token))
	assert.NoError(t, svc.Logout(ctx, "not-a-token"))
}

func TestResolveRejectsForgedToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	forged, _, err := auth.NewTokenManager("other-secret", time.Minute).GenerateToken("some-session")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, forged)
	assert.Equal(t, "UNAUTHENTICATED", errCode(t, err))
}

func TestUpdateRegion(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	user, err := svc.Register(ctx, "Asha", "asha@example.com", "pw1234", "North")
	require.NoError(t, err)

	updated, err := svc.UpdateRegion(ctx, user.ID, "South")
	require.NoError(t, err)
	assert.Equal(t, "South", updated.Region)

	// idempotent overwrite
	again, err := svc.UpdateRegion(ctx, user.ID, "South")
	require.NoError(t, err)
	assert.Equal(t, "South", again.Region)

	_, err = svc.UpdateRegion(ctx, 9999, "South")
	assert.Equal(t, "NOT_FOUND", errCode(t, err))
}
