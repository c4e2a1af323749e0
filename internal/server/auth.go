package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/districtclose/districtclose/internal/auth/domain"
)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FullName        string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.authsvc.SignUp(c.Request.Context(), authdomain.SignUpRequest{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FullName:        req.FullName,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.setSessionCookie(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusCreated, result.User)
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.setSessionCookie(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, result.User)
}

func (s *Server) Logout(c *gin.Context) {
	sid, err := c.Cookie(sessionCookieName)
	if err == nil && sid != "" {
		// A stale or already-revoked token still clears the cookie.
		_ = s.authsvc.Logout(c.Request.Context(), sid)
	}

	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Me(c *gin.Context) {
	sid, err := c.Cookie(sessionCookieName)
	if err != nil || sid == "" {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.authsvc.Authenticate(c.Request.Context(), sid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", s.cfg.AuthCookieSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.cfg.AuthCookieSecure, true)
}
