package handlers

import (
	"net/http"

	"github.com/Type-Of-Null/Silant-Skillfactory/config"
	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/services"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"github.com/gin-gonic/gin"
)

// CarHandler обработчики реестра машин
type CarHandler struct {
	carService *services.CarService
}

func NewCarHandler(cfg *config.Config) *CarHandler {
	return &CarHandler{
		carService: services.NewCarService(database.DB, cfg.StrictShipmentDate),
	}
}

// GetCarByVin GET /api/cars/:vin — публичный поиск по VIN
func (h *CarHandler) GetCarByVin(c *gin.Context) {
	vin := c.Param("vin")

	car, err := h.carService.GetByVin(vin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// GetCars GET /api/cars — полный список для авторизованных
func (h *CarHandler) GetCars(c *gin.Context) {
	cars, err := h.carService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

// CreateCar POST /api/cars
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req services.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Некорректный запрос: "+err.Error())
		return
	}

	car, err := h.carService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}
