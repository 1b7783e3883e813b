package handlers

import (
	"net/http"

	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// Health GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetTables GET /api/tables
func GetTables(c *gin.Context) {
	tables, err := database.Tables()
	if err != nil {
		utils.InternalServerError(c, "Не удалось получить список таблиц")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}
