package handlers

import (
	"net/http"

	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/services"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler обработчики журнала ТО
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceHandler() *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: services.NewMaintenanceService(database.DB),
	}
}

// GetMaintenance GET /api/maintenance
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	records, err := h.maintenanceService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateMaintenance POST /api/maintenance
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var req services.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	record, err := h.maintenanceService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
