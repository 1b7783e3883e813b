package handlers

import (
	"net/http"

	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/services"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler обработчик входа
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(database.DB),
	}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
