package controllers

import (
	"errors"
	"net/http"

	"Gin_postgres_rental_backoffice/app"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type signInInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signin
func (ac *AuthController) SignIn(c *gin.Context) {
	var in signInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	u, err := ac.Repo.FindFirstUserByUsername(c.Request.Context(), in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, app.H{"result": "error", "message": "Unauthorized."})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"result": "error", "message": "Unauthorized."})
		return
	}

	token, err := ac.Signer.Sign(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}

	ac.setSessionCookie(c.Writer, token)
	// models.User marshals without the password hash.
	c.JSON(http.StatusOK, app.H{"result": "ok", "token": token, "user": u})
}

// POST /api/auth/signout
//
// Clears the cookie whether or not one was presented. The token itself is
// not revoked server-side.
func (ac *AuthController) SignOut(c *gin.Context) {
	ac.clearSessionCookie(c.Writer)
	c.JSON(http.StatusOK, app.H{"result": "ok"})
}
