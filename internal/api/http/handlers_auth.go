package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damataprodutora/portfolio-backend/internal/auth"
	"github.com/damataprodutora/portfolio-backend/internal/session"
)

// AuthHandler serves login, logout and the password recovery flow.
type AuthHandler struct {
	auth      *auth.Service
	sessions  session.Store
	cookieTTL int // seconds
}

func NewAuthHandler(authSvc *auth.Service, sessions session.Store, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		auth:      authSvc,
		sessions:  sessions,
		cookieTTL: cookieTTLSeconds,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Invalid request body."})
		return
	}

	if err := h.auth.Login(req.Password); err != nil {
		// Generic failure: never reveal anything about the stored credential.
		c.JSON(http.StatusUnauthorized, StatusResponse{Success: false, Message: "Incorrect password."})
		return
	}

	token, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		log.Printf("[error] operation=login error=%v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not start a session. Please try again."})
		return
	}

	c.SetCookie(session.CookieName, token, h.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Login successful!"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			log.Printf("[error] operation=logout error=%v", err)
			c.String(http.StatusInternalServerError, "Could not log out.")
			return
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login.html")
}

func (h *AuthHandler) SecretQuestion(c *gin.Context) {
	c.JSON(http.StatusOK, secretQuestionResp{Success: true, Question: h.auth.SecretQuestion()})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Invalid request body."})
		return
	}

	err := h.auth.ResetPassword(req.SecretAnswer, req.NewPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Password reset successfully!"})
	case errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Secret answer and new password are required."})
	case errors.Is(err, auth.ErrInvalidSecretAnswer):
		c.JSON(http.StatusUnauthorized, StatusResponse{Success: false, Message: "Incorrect secret answer."})
	default:
		log.Printf("[error] operation=reset_password error=%v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not save the new password. Please try again."})
	}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/get-secret-question", h.SecretQuestion)
	r.POST("/reset-password", h.ResetPassword)
}
