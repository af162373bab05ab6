package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fetscr/internal/auth"
	"fetscr/internal/config"
	"fetscr/internal/user"
)

const invalidCredentialsMsg = "Invalid credentials"

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /signup
func SignupHandler(users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if req.Name == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, email and password are required"})
			return
		}

		// Advisory pre-check; the unique index on email remains the
		// authoritative guard.
		taken, err := users.EmailTaken(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": user.ErrDuplicateEmail.Error()})
			return
		}

		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Password hash failed"})
			return
		}
		u := user.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: pwHash,
		}
		if err := users.Create(c.Request.Context(), &u); err != nil {
			if errors.Is(err, user.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signup successful"})
	}
}

// POST /login
//
// Unknown email and wrong password produce the identical response so
// callers cannot enumerate accounts.
func LoginHandler(cfg *config.Config, users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": invalidCredentialsMsg})
			return
		}
		u, err := users.ByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": invalidCredentialsMsg})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": invalidCredentialsMsg})
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Name, u.Email, auth.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
			"user": gin.H{
				"id":    u.ID,
				"name":  u.Name,
				"email": u.Email,
			},
		})
	}
}
