package handlers

import (
	"net/http"

	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/services"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler обработчики журнала рекламаций
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

func NewComplaintHandler() *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: services.NewComplaintService(database.DB),
	}
}

// GetComplaints GET /api/complaints
func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	complaints, err := h.complaintService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// CreateComplaint POST /api/complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req services.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	// Первая проверка порядка дат; сервис повторит её перед записью
	if err := req.Validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	complaint, err := h.complaintService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}
