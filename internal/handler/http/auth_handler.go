package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cowryhub/cowry-backend/internal/handler/http/dto"
	"github.com/cowryhub/cowry-backend/internal/handler/http/middleware"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking).
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	VerifyToken(*gin.Context)
	ChangePassword(*gin.Context)
	Logout(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	ident, token, err := h.authUsecase.Register(c.Request.Context(), req.Nickname, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  dto.ToUserPayload(*ident),
	})
}

// Login handles POST /api/login. Unknown nickname and wrong password get
// the same generic message so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	ident, token, err := h.authUsecase.Login(c.Request.Context(), req.Nickname, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"token": token,
		"user":  dto.ToUserPayload(*ident),
	})
}

// VerifyToken handles GET /api/verify-token. The session verifier
// middleware has already resolved the identity.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserPayload(*ident)})
}

// ChangePassword handles POST /api/user/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		ErrorHandler(c, http.StatusBadRequest, "password confirmation does not match")
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), ident, req.CurrentPassword, req.NewPassword); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.SessionTokenFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), token); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{})
}
