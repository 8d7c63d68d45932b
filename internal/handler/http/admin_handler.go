package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/handler/http/dto"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to allow
// interface-based dependency injection (for testing/mocking).
type AdminHandlerInterface interface {
	ListUsers(*gin.Context)
	UpdateBalance(*gin.Context)
	UpdateRole(*gin.Context)
}

var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	identities, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	users := make([]dto.UserPayload, 0, len(identities))
	for _, ident := range identities {
		users = append(users, dto.ToUserPayload(*ident))
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"total_users": len(users),
		"users":       users,
	})
}

// UpdateBalance handles PUT /api/admin/users/:userId/balance.
func (h *AdminHandler) UpdateBalance(c *gin.Context) {
	targetID := c.Param("userId")

	var req dto.AdjustBalanceRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	previous, updated, err := h.adminUsecase.AdjustBalance(c.Request.Context(), targetID, usecasecontract.BalanceAdjustment{
		CWT:       req.CWT,
		CWS:       req.CWS,
		Operation: entity.BalanceOp(req.Operation),
		Reason:    req.Reason,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":       updated.ID,
			"nickname": updated.Nickname,
			"balance": gin.H{
				"previous":  dto.ToBalancePayload(previous),
				"current":   dto.ToBalancePayload(updated.Balance),
				"operation": req.Operation,
				"reason":    req.Reason,
			},
		},
	})
}

// UpdateRole handles PUT /api/admin/users/:userId/role.
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	targetID := c.Param("userId")

	var req dto.SetRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	previous, updated, err := h.adminUsecase.SetRole(c.Request.Context(), targetID, req.Role)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":            updated.ID,
			"nickname":      updated.Nickname,
			"previous_role": string(previous),
			"new_role":      string(updated.Role),
		},
	})
}
