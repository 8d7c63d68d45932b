package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/handler/http/middleware"
	"github.com/cowryhub/cowry-backend/internal/handler/http/mocks"
)

func newAdminTestRouter(mockAdmin *mocks.MockAdminUsecase, callerRole entity.Role) *gin.Engine {
	router := gin.New()
	handler := NewAdminHandler(mockAdmin)

	mockAuth := mocks.NewMockAuthUsecase()
	mockAuth.MockIdentity.Role = callerRole

	admin := router.Group("/api/admin")
	admin.Use(middleware.SessionVerifier(mockAuth))
	admin.Use(middleware.RequireAdmin())
	admin.GET("/users", handler.ListUsers)
	admin.PUT("/users/:userId/balance", handler.UpdateBalance)
	admin.PUT("/users/:userId/role", handler.UpdateRole)
	return router
}

func TestListUsersHandler(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodGet, "/api/admin/users", "", "sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["total_users"])
	assert.Len(t, body["users"], 1)
}

func TestAdminRoutes_ForbiddenForNonAdmins(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()

	for _, role := range []entity.Role{entity.RoleUser, entity.RoleModerator} {
		router := newAdminTestRouter(mockAdmin, role)
		w := doJSON(router, http.MethodGet, "/api/admin/users", "", "sometoken")
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s must be forbidden", role)
	}
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodGet, "/api/admin/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateBalanceHandler(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodPut, "/api/admin/users/mock-target-id/balance",
		`{"cwt":3,"cws":20,"operation":"add","reason":"promo credit"}`, "sometoken")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "mock-target-id", user["id"])

	balance := user["balance"].(map[string]interface{})
	assert.Equal(t, "add", balance["operation"])
	assert.Equal(t, "promo credit", balance["reason"])

	previous := balance["previous"].(map[string]interface{})
	current := balance["current"].(map[string]interface{})
	assert.Equal(t, float64(10), previous["cwt"])
	assert.Equal(t, float64(13), current["cwt"])
}

func TestUpdateBalanceHandler_UnknownTarget(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	mockAdmin.ShouldFailAdjustBalance = true
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodPut, "/api/admin/users/missing-id/balance",
		`{"cwt":1,"operation":"add"}`, "sometoken")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRoleHandler(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodPut, "/api/admin/users/mock-target-id/role",
		`{"role":"moderator"}`, "sometoken")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user", user["previous_role"])
	assert.Equal(t, "moderator", user["new_role"])
}

func TestUpdateRoleHandler_InvalidRole(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	mockAdmin.InvalidRole = true
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodPut, "/api/admin/users/mock-target-id/role",
		`{"role":"superadmin"}`, "sometoken")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestUpdateRoleHandler_MissingRoleField(t *testing.T) {
	mockAdmin := mocks.NewMockAdminUsecase()
	router := newAdminTestRouter(mockAdmin, entity.RoleAdmin)

	w := doJSON(router, http.MethodPut, "/api/admin/users/mock-target-id/role", `{}`, "sometoken")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
