package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dresshub/app"
	"dresshub/auth"
	"dresshub/config"
	"dresshub/db"
	"dresshub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]any) (*models.User, error)
}

// TokenRevoker denylists a token id until the token's natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

type UserController struct {
	store     UserStore
	revoker   TokenRevoker
	secret    string
	webOrigin string
}

func GetUserController(store UserStore, revoker TokenRevoker, cfg config.Config) *UserController {
	return &UserController{store: store, revoker: revoker, secret: cfg.TokenSecret, webOrigin: cfg.WebOrigin}
}

func (uc *UserController) issueAndSetCookie(c *gin.Context, userID string) error {
	token, err := auth.Issue(uc.secret, userID)
	if err != nil {
		return err
	}
	setTokenCookie(c, uc.webOrigin, token, auth.TokenTTL)
	return nil
}

func publicUser(u *models.User) app.H {
	return app.H{"id": u.ID, "name": u.Name, "email": u.Email}
}

func (uc *UserController) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		abortStoreErr(c, "register", err)
		return
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := uc.store.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, app.H{"error": "email already registered"})
			return
		}
		abortStoreErr(c, "register", err)
		return
	}

	if err := uc.issueAndSetCookie(c, u.ID); err != nil {
		abortStoreErr(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "user registered successfully", "user": publicUser(u)})
}

func (uc *UserController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	// same message for unknown email and wrong password
	u, err := uc.store.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, in.Password) {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid email or password"})
		return
	}

	if err := uc.issueAndSetCookie(c, u.ID); err != nil {
		abortStoreErr(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "login successful", "user": publicUser(u)})
}

// Logout clears the cookie and, when a valid token is present, denylists
// its jti until expiry. It never fails the request.
func (uc *UserController) Logout(c *gin.Context) {
	if tokenStr, err := c.Cookie(app.TokenCookie); err == nil && tokenStr != "" {
		if claims, err := auth.Parse(uc.secret, tokenStr); err == nil && uc.revoker != nil {
			_ = uc.revoker.Revoke(c.Request.Context(), claims.TokenID(), claims.ExpiresAt.Time)
		}
	}
	clearTokenCookie(c, uc.webOrigin)
	c.JSON(http.StatusOK, app.H{"message": "logged out successfully"})
}

func (uc *UserController) Me(c *gin.Context) {
	u, err := uc.store.FindUserByID(c.Request.Context(), app.UserID(c))
	if err != nil {
		abortStoreErr(c, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) UpdateMe(c *gin.Context) {
	var in struct {
		Name     *string  `json:"name"`
		Gender   *string  `json:"gender"`
		HeightCm *float64 `json:"heightCm"`
		WeightKg *float64 `json:"weightKg"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
	}
	if in.HeightCm != nil {
		updates["height_cm"] = *in.HeightCm
	}
	if in.WeightKg != nil {
		updates["weight_kg"] = *in.WeightKg
	}

	u, err := uc.store.UpdateUser(c.Request.Context(), app.UserID(c), updates)
	if err != nil {
		abortStoreErr(c, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}
