package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dresshub/app"
	"dresshub/config"
	"dresshub/db"
	"dresshub/session"
	"dresshub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Srv bundles the dependencies the controllers are built from.
type Srv struct {
	Repo    *db.Repo
	Revoked *session.RevokedStore
	Cfg     config.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:    db.NewRepo(a.DB),
		Revoked: session.NewRevokedStore(a.RDB),
		Cfg:     a.Config,
	}
}

// --- helpers ---

func secureCookie(webOrigin string) bool { return strings.HasPrefix(webOrigin, "https://") }

// setTokenCookie installs the signed session token as an http-only cookie.
func setTokenCookie(c *gin.Context, webOrigin, token string, maxAge time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secureCookie(webOrigin),
	})
}

func clearTokenCookie(c *gin.Context, webOrigin string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secureCookie(webOrigin),
	})
}

// abortStoreErr maps storage failures onto the error taxonomy: unknown ids
// are 404, everything else is a logged 500 with a generic body.
func abortStoreErr(c *gin.Context, op string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
		return
	}
	utils.Error(op+" failed", map[string]any{"error": err.Error()})
	c.JSON(http.StatusInternalServerError, app.H{"error": "internal error"})
}
