// controllers/srv.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"Gin_postgres_rental_backoffice/app"
	"Gin_postgres_rental_backoffice/db"
	"Gin_postgres_rental_backoffice/session"
)

// Srv 聚合 controllers 的依赖
type Srv struct {
	Repo      *db.Repo
	Signer    *session.TokenSigner
	WebOrigin string
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:      db.NewRepo(a.DB),
		Signer:    session.NewTokenSigner(a.Config.JWTSecret, a.Config.SessionTTL),
		WebOrigin: a.Config.WebOrigin,
	}
}

// --- helpers ---

// 统一设置会话 Cookie
func (s *Srv) setSessionCookie(w http.ResponseWriter, token string) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(s.Signer.TTL() / time.Second),
	})
}

func (s *Srv) clearSessionCookie(w http.ResponseWriter) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // 删除
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}
