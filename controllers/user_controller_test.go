package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dresshub/auth"
	"dresshub/config"
	"dresshub/db"
	"dresshub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	createFn  func(ctx context.Context, u *models.User) error
	byEmailFn func(ctx context.Context, email string) (*models.User, error)
	byIDFn    func(ctx context.Context, id string) (*models.User, error)
	updateFn  func(ctx context.Context, id string, updates map[string]any) (*models.User, error)
}

var _ UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) CreateUser(ctx context.Context, u *models.User) error {
	return f.createFn(ctx, u)
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmailFn(ctx, email)
}

func (f *fakeUserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return f.byIDFn(ctx, id)
}

func (f *fakeUserStore) UpdateUser(ctx context.Context, id string, updates map[string]any) (*models.User, error) {
	return f.updateFn(ctx, id, updates)
}

type fakeRevoker struct {
	revoked []string
}

func (f *fakeRevoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	f.revoked = append(f.revoked, jti)
	return nil
}

func testCfg() config.Config {
	return config.Config{TokenSecret: "test-secret", WebOrigin: "http://localhost:5173"}
}

func TestRegister(t *testing.T) {
	var created *models.User
	store := &fakeUserStore{
		createFn: func(ctx context.Context, u *models.User) error {
			created = u
			return nil
		},
	}
	uc := GetUserController(store, &fakeRevoker{}, testCfg())
	r := newTestRouter("")
	r.POST("/users/register", uc.Register)

	w := doJSON(t, r, http.MethodPost, "/users/register", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, created)
	require.NotEqual(t, "supersecret", created.PasswordHash)
	require.True(t, auth.CheckPassword(created.PasswordHash, "supersecret"))

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	require.Equal(t, "ada@example.com", user["email"])

	ck := tokenCookie(w)
	require.NotNil(t, ck, "register must set the token cookie")
	require.True(t, ck.HttpOnly)
	claims, err := auth.Parse("test-secret", ck.Value)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, u *models.User) error { return db.ErrEmailTaken },
	}
	uc := GetUserController(store, &fakeRevoker{}, testCfg())
	r := newTestRouter("")
	r.POST("/users/register", uc.Register)

	w := doJSON(t, r, http.MethodPost, "/users/register", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "email already registered")
}

func TestRegisterValidation(t *testing.T) {
	uc := GetUserController(&fakeUserStore{}, &fakeRevoker{}, testCfg())
	r := newTestRouter("")
	r.POST("/users/register", uc.Register)

	for name, body := range map[string]map[string]any{
		"missing_name":   {"email": "a@b.com", "password": "supersecret"},
		"bad_email":      {"name": "Ada", "email": "nope", "password": "supersecret"},
		"short_password": {"name": "Ada", "email": "a@b.com", "password": "12345"},
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/users/register", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)
	u := &models.User{ID: uuid.NewString(), Name: "Ada", Email: "ada@example.com", PasswordHash: hash}

	store := &fakeUserStore{
		byEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == u.Email {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := GetUserController(store, &fakeRevoker{}, testCfg())
	r := newTestRouter("")
	r.POST("/users/login", uc.Login)

	w := doJSON(t, r, http.MethodPost, "/users/login", map[string]any{
		"email": "ada@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, tokenCookie(w))

	// wrong password and unknown email read identically
	w = doJSON(t, r, http.MethodPost, "/users/login", map[string]any{
		"email": "ada@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid email or password")

	w = doJSON(t, r, http.MethodPost, "/users/login", map[string]any{
		"email": "ghost@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid email or password")
}

func TestLogoutRevokesAndClearsCookie(t *testing.T) {
	revoker := &fakeRevoker{}
	uc := GetUserController(&fakeUserStore{}, revoker, testCfg())
	r := newTestRouter("")
	r.POST("/users/logout", uc.Logout)

	token, err := auth.Issue("test-secret", uuid.NewString())
	require.NoError(t, err)

	req := doJSONWithCookie(t, r, "/users/logout", token)
	require.Equal(t, http.StatusOK, req.Code)
	require.Len(t, revoker.revoked, 1)

	ck := tokenCookie(req)
	require.NotNil(t, ck)
	require.Empty(t, ck.Value)
	require.Negative(t, ck.MaxAge)
}

func TestLogoutWithoutCookieStillSucceeds(t *testing.T) {
	revoker := &fakeRevoker{}
	uc := GetUserController(&fakeUserStore{}, revoker, testCfg())
	r := newTestRouter("")
	r.POST("/users/logout", uc.Logout)

	w := doJSON(t, r, http.MethodPost, "/users/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, revoker.revoked)
}

func TestMeAndUpdateMe(t *testing.T) {
	uid := uuid.NewString()
	u := &models.User{ID: uid, Name: "Ada", Email: "ada@example.com"}
	var gotUpdates map[string]any
	store := &fakeUserStore{
		byIDFn: func(ctx context.Context, id string) (*models.User, error) {
			require.Equal(t, uid, id)
			return u, nil
		},
		updateFn: func(ctx context.Context, id string, updates map[string]any) (*models.User, error) {
			gotUpdates = updates
			return u, nil
		},
	}
	uc := GetUserController(store, &fakeRevoker{}, testCfg())
	r := newTestRouter(uid)
	r.GET("/users/me", uc.Me)
	r.PUT("/users/me", uc.UpdateMe)

	w := doJSON(t, r, http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "passwordHash")

	w = doJSON(t, r, http.MethodPut, "/users/me", map[string]any{
		"name": "Ada L.", "heightCm": 170.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[string]any{"name": "Ada L.", "height_cm": 170.0}, gotUpdates)
}
