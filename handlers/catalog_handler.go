package handlers

import (
	"net/http"
	"strconv"

	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/services"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler обработчики справочников
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{
		catalogService: services.NewCatalogService(database.DB),
	}
}

func (h *CatalogHandler) category(c *gin.Context) (*services.Category, bool) {
	cat, ok := services.CategoryBySlug(c.Param("category"))
	if !ok {
		utils.NotFound(c, "Неизвестная категория справочника")
		return nil, false
	}
	return cat, true
}

func (h *CatalogHandler) itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Некорректный ID записи")
		return 0, false
	}
	return uint(id), true
}

// GetCatalogItems GET /api/models/:category
func (h *CatalogHandler) GetCatalogItems(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	items, err := h.catalogService.List(cat)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetCatalogItem GET /api/models/:category/:id
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.Get(cat, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateCatalogItem POST /api/models/:category
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	var req services.CatalogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	item, err := h.catalogService.Create(cat, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateCatalogItem PUT /api/models/:category/:id
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req services.CatalogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	item, err := h.catalogService.Update(cat, id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteCatalogItem DELETE /api/models/:category/:id
func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(cat, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Запись удалена"})
}

// GetClients GET /api/models/clients
func (h *CatalogHandler) GetClients(c *gin.Context) {
	clients, err := h.catalogService.ListClients()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
