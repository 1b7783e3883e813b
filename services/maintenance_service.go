package services

import (
	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// MaintenanceView запись ТО с подставленными названиями. Отсутствующая
// связанная строка отображается пустой строкой, список при этом не падает.
type MaintenanceView struct {
	ID              uint   `json:"id"`
	VIN             string `json:"vin"`
	MaintenanceType string `json:"maintenance_type"`
	MaintenanceDate string `json:"maintenance_date"`
	OrderNumber     string `json:"order_number"`
	OrderDate       string `json:"order_date"`
	ServiceCompany  string `json:"service_company"`
}

// CreateMaintenanceRequest запрос на регистрацию ТО. Обе даты обязаны
// разбираться строго: нечитаемая дата — отказ, не значение по умолчанию.
type CreateMaintenanceRequest struct {
	CarID             uint   `json:"car_id" binding:"required"`
	MaintenanceTypeID uint   `json:"maintenance_type_id" binding:"required"`
	MaintenanceDate   string `json:"maintenance_date" binding:"required"`
	OrderNumber       string `json:"order_number"`
	OrderDate         string `json:"order_date" binding:"required"`
	ServiceCompanyID  uint   `json:"service_company_id" binding:"required"`
}

// MaintenanceService журнал технического обслуживания
type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

func maintenanceView(m *models.MaintenanceRecord) MaintenanceView {
	view := MaintenanceView{
		ID:              m.ID,
		VIN:             m.Car.VIN,
		MaintenanceType: m.MaintenanceType.Name,
		OrderNumber:     m.OrderNumber,
		ServiceCompany:  m.ServiceCompany.Name,
	}
	if !m.MaintenanceDate.IsZero() {
		view.MaintenanceDate = m.MaintenanceDate.Format(dateLayout)
	}
	if !m.OrderDate.IsZero() {
		view.OrderDate = m.OrderDate.Format(dateLayout)
	}
	return view
}

// List возвращает все записи ТО с названиями связанных сущностей
func (s *MaintenanceService) List() ([]MaintenanceView, error) {
	var records []models.MaintenanceRecord
	err := s.db.
		Preload("Car").
		Preload("MaintenanceType").
		Preload("ServiceCompany").
		Find(&records).Error
	if err != nil {
		return nil, utils.InternalError("Ошибка при получении списка ТО", err)
	}

	views := make([]MaintenanceView, 0, len(records))
	for i := range records {
		views = append(views, maintenanceView(&records[i]))
	}
	return views, nil
}

// Create регистрирует проведённое ТО
func (s *MaintenanceService) Create(req CreateMaintenanceRequest) (*MaintenanceView, error) {
	const internalMsg = "Ошибка при создании записи ТО"
	if err := checkExists(s.db, &models.Car{}, req.CarID, "Указан несуществующий car_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.MaintenanceType{}, req.MaintenanceTypeID, "Указан несуществующий maintenance_type_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.ServiceCompany{}, req.ServiceCompanyID, "Указана несуществующая сервисная компания", internalMsg); err != nil {
		return nil, err
	}

	maintenanceDate, err := parseDate(req.MaintenanceDate)
	if err != nil {
		return nil, utils.ValidationError(errBadDateFormat)
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		return nil, utils.ValidationError(errBadDateFormat)
	}

	record := models.MaintenanceRecord{
		CarID:             req.CarID,
		MaintenanceTypeID: req.MaintenanceTypeID,
		MaintenanceDate:   maintenanceDate,
		OrderNumber:       req.OrderNumber,
		OrderDate:         orderDate,
		ServiceCompanyID:  req.ServiceCompanyID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, utils.InternalError(internalMsg, err)
	}

	var created models.MaintenanceRecord
	err = s.db.
		Preload("Car").
		Preload("MaintenanceType").
		Preload("ServiceCompany").
		Take(&created, record.ID).Error
	if err != nil {
		return nil, utils.InternalError(internalMsg, err)
	}
	view := maintenanceView(&created)
	return &view, nil
}
