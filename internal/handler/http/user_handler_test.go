package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cowryhub/cowry-backend/internal/handler/http/middleware"
	"github.com/cowryhub/cowry-backend/internal/handler/http/mocks"
)

func newUserTestRouter(mockAccount *mocks.MockAccountUsecase) *gin.Engine {
	router := gin.New()
	handler := NewUserHandler(mockAccount)
	mockAuth := mocks.NewMockAuthUsecase()

	protected := router.Group("/api")
	protected.Use(middleware.SessionVerifier(mockAuth))
	protected.GET("/dashboard", handler.GetDashboard)
	protected.GET("/user/profile", handler.GetProfile)
	protected.PUT("/user/profile", handler.UpdateProfile)
	protected.GET("/user/balance", handler.GetBalance)
	protected.GET("/user/transactions", handler.GetTransactions)
	return router
}

func TestGetDashboardHandler(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodGet, "/api/dashboard", "", "sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	dashboard := body["dashboard"].(map[string]interface{})
	assert.Equal(t, float64(2), dashboard["transaction_count"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "testuser", user["nickname"])
}

func TestGetProfileHandler(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodGet, "/api/user/profile", "", "sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	profile := body["profile"].(map[string]interface{})
	assert.Equal(t, "testuser", profile["nickname"])
}

func TestUpdateProfileHandler_Success(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodPut, "/api/user/profile",
		`{"phone":"+251911000000","province":"Addis Ababa","notifications":false}`, "sometoken")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
}

func TestUpdateProfileHandler_NicknameTaken(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	mockAccount.NicknameTaken = true
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodPut, "/api/user/profile",
		`{"nickname":"taken123"}`, "sometoken")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestUpdateProfileHandler_InvalidNicknameRejectedAtBinding(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodPut, "/api/user/profile",
		`{"nickname":"bad name!"}`, "sometoken")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBalanceHandler(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodGet, "/api/user/balance", "", "sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	balance := body["balance"].(map[string]interface{})
	assert.Equal(t, float64(10), balance["cwt"])
	assert.Equal(t, float64(100), balance["cws"])
}

func TestGetTransactionsHandler(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	w := doJSON(router, http.MethodGet, "/api/user/transactions", "", "sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])
	assert.Len(t, body["transactions"], 1)
}

func TestUserRoutes_RequireSession(t *testing.T) {
	mockAccount := mocks.NewMockAccountUsecase()
	router := newUserTestRouter(mockAccount)

	for _, path := range []string{"/api/dashboard", "/api/user/profile", "/api/user/balance", "/api/user/transactions"} {
		w := doJSON(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s must require a session", path)
	}
}
