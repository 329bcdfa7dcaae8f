package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authapp "vitalis/internal/application/auth"
	"vitalis/internal/domain/user"
	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/interfaces/http/handlers/testutil"
	"vitalis/internal/shared/authorization"
	"vitalis/internal/shared/config"
	apperrors "vitalis/internal/shared/errors"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uint]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uint]*user.User),
	}
	for _, u := range users {
		r.byEmail[u.Email()] = u
		r.byID[u.ID()] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return assert.AnError
	}
	return nil
}

func newAuthHandler(users ...*user.User) (*AuthHandler, *auth.TokenService) {
	tokens := auth.NewTokenService("auth-handler-test-secret", 7)
	service := authapp.NewService(newFakeUserRepo(users...), plainHasher{}, tokens)
	return NewAuthHandler(service, tokens, config.CookieConfig{Path: "/", SameSite: "Lax"}), tokens
}

func activeEditor(t *testing.T) *user.User {
	t.Helper()
	now := time.Now()
	return user.ReconstructUser(7, "editor@example.com", "Editor", "hashed:correct-password",
		authorization.RoleEditor, user.StatusActive, now, now)
}

func TestAuthHandler_LoginSuccessSetsCookie(t *testing.T) {
	handler, tokens := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "editor@example.com",
		"password": "correct-password",
	})

	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var found bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			found = true
			assert.True(t, cookie.HttpOnly)
			result := tokens.Verify(cookie.Value)
			require.True(t, result.Valid())
			assert.Equal(t, uint(7), result.Claims.UserID)
			assert.Equal(t, authorization.RoleEditor, result.Claims.Role)
		}
	}
	assert.True(t, found, "session cookie not set")
}

func TestAuthHandler_LoginUnknownEmailNoCookie(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_LoginWrongPasswordSameError(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "editor@example.com",
		"password": "wrong-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_LoginDisabledAccountSameError(t *testing.T) {
	disabled := activeEditor(t)
	disabled.Disable()
	handler, _ := newAuthHandler(disabled)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "editor@example.com",
		"password": "correct-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_LoginMissingFieldsRejected(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "editor@example.com",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	handler, _ := newAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)

	handler.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			cleared = true
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
	assert.True(t, cleared, "session cookie not cleared")
}

func TestAuthHandler_MeReturnsUserAndCapabilities(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleEditor)

	handler.Me(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "editor@example.com")
	assert.Contains(t, w.Body.String(), string(authorization.CapContentPublish))
	assert.NotContains(t, w.Body.String(), string(authorization.CapUsersManage))
}

func TestAuthHandler_MeWithoutSessionUnauthorized(t *testing.T) {
	handler, _ := newAuthHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ChangePasswordVerifiesCurrent(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/password", map[string]string{
		"current_password": "wrong-password",
		"new_password":     "a-new-password",
	})
	testutil.SetAuthContext(c, 7, authorization.RoleEditor)

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ChangePasswordSuccess(t *testing.T) {
	handler, _ := newAuthHandler(activeEditor(t))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/password", map[string]string{
		"current_password": "correct-password",
		"new_password":     "a-new-password",
	})
	testutil.SetAuthContext(c, 7, authorization.RoleEditor)

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
