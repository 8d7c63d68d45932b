package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cowryhub/cowry-backend/internal/handler/http/dto"
	"github.com/cowryhub/cowry-backend/internal/handler/http/middleware"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the self-service handler to
// allow interface-based dependency injection (for testing/mocking).
type UserHandlerInterface interface {
	GetDashboard(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	GetBalance(*gin.Context)
	GetTransactions(*gin.Context)
}

var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	accountUsecase usecasecontract.IAccountUseCase
}

func NewUserHandler(accountUsecase usecasecontract.IAccountUseCase) *UserHandler {
	return &UserHandler{accountUsecase: accountUsecase}
}

// GetDashboard handles GET /api/dashboard.
func (h *UserHandler) GetDashboard(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	fresh, dashboard, err := h.accountUsecase.GetDashboard(c.Request.Context(), ident.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"user":      dto.ToUserPayload(*fresh),
		"dashboard": dashboard,
	})
}

// GetProfile handles GET /api/user/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	fresh, err := h.accountUsecase.GetProfile(c.Request.Context(), ident.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"profile": dto.ToProfilePayload(*fresh)})
}

// UpdateProfile handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.accountUsecase.UpdateProfile(c.Request.Context(), ident, usecasecontract.ProfileUpdate{
		Nickname:             req.Nickname,
		Phone:                req.Phone,
		Province:             req.Province,
		WalletAddress:        req.WalletAddress,
		NotificationsEnabled: req.Notifications,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"profile": dto.ToProfilePayload(*updated)})
}

// GetBalance handles GET /api/user/balance.
func (h *UserHandler) GetBalance(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	balance, err := h.accountUsecase.GetBalance(c.Request.Context(), ident.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"balance": dto.ToBalancePayload(balance)})
}

// GetTransactions handles GET /api/user/transactions.
func (h *UserHandler) GetTransactions(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	transactions, balance, err := h.accountUsecase.GetTransactions(c.Request.Context(), ident.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        len(transactions),
		"balance":      dto.ToBalancePayload(balance),
	})
}
