package services

import (
	"fmt"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// ComplaintView рекламация с подставленными названиями
type ComplaintView struct {
	ID                 uint   `json:"id"`
	CarID              uint   `json:"car_id"`
	VIN                string `json:"vin"`
	DateOfFailure      string `json:"date_of_failure"`
	OperatingTime      string `json:"operating_time"`
	NodeFailure        string `json:"node_failure"`
	NodeFailureID      uint   `json:"node_failure_id"`
	DescriptionFailure string `json:"description_failure"`
	RecoveryMethod     string `json:"recovery_method"`
	RecoveryMethodID   uint   `json:"recovery_method_id"`
	UsedSpareParts     string `json:"used_spare_parts"`
	DateRecovery       string `json:"date_recovery"`
	EquipmentDowntime  string `json:"equipment_downtime"`
	ServiceCompany     string `json:"service_company"`
	ServiceCompanyID   uint   `json:"service_company_id"`
	VehicleModel       string `json:"vehicle_model"`
}

// CreateComplaintRequest запрос на регистрацию рекламации
type CreateComplaintRequest struct {
	CarID              uint   `json:"car_id" binding:"required"`
	DateOfFailure      string `json:"date_of_failure" binding:"required"`
	OperatingTime      string `json:"operating_time" binding:"required"`
	NodeFailureID      uint   `json:"node_failure_id" binding:"required"`
	DescriptionFailure string `json:"description_failure"`
	RecoveryMethodID   uint   `json:"recovery_method_id" binding:"required"`
	UsedSpareParts     string `json:"used_spare_parts"`
	DateRecovery       string `json:"date_recovery"`
	ServiceCompanyID   uint   `json:"service_company_id" binding:"required"`
}

// Validate проверяет порядок дат на уровне запроса. Сервис повторяет эту
// проверку перед записью: отклонять обязаны оба уровня.
func (r *CreateComplaintRequest) Validate() error {
	if r.DateRecovery == "" {
		return nil
	}
	failure, err := parseDate(r.DateOfFailure)
	if err != nil {
		return utils.ValidationError(errBadDateFormat)
	}
	recovery, err := parseDate(r.DateRecovery)
	if err != nil {
		return utils.ValidationError(errBadDateFormat)
	}
	if recovery.Before(failure) {
		return utils.ValidationError("Дата восстановления не может быть раньше даты отказа")
	}
	return nil
}

// calculateDowntime считает простой техники в днях. Пустая строка, если
// какая-то из дат отсутствует, не разбирается или восстановление раньше отказа.
func calculateDowntime(dateOfFailure, dateRecovery string) string {
	if dateOfFailure == "" || dateRecovery == "" {
		return ""
	}
	failure, err := parseDate(dateOfFailure)
	if err != nil {
		return ""
	}
	recovery, err := parseDate(dateRecovery)
	if err != nil {
		return ""
	}
	if recovery.Before(failure) {
		return ""
	}
	days := int(recovery.Sub(failure).Hours() / 24)
	return fmt.Sprintf("%d дней", days)
}

// ComplaintService журнал рекламаций
type ComplaintService struct {
	db *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

func complaintView(c *models.Complaint) ComplaintView {
	// Простой пересчитывается при чтении, если есть дата восстановления;
	// сохранённое значение — запасной вариант для записей без неё.
	downtime := c.EquipmentDowntime
	if c.DateRecovery != "" {
		downtime = calculateDowntime(c.DateOfFailure, c.DateRecovery)
	}

	return ComplaintView{
		ID:                 c.ID,
		CarID:              c.CarID,
		VIN:                c.Car.VIN,
		DateOfFailure:      c.DateOfFailure,
		OperatingTime:      c.OperatingTime,
		NodeFailure:        c.NodeFailure.Name,
		NodeFailureID:      c.NodeFailureID,
		DescriptionFailure: c.DescriptionFailure,
		RecoveryMethod:     c.RecoveryMethod.Name,
		RecoveryMethodID:   c.RecoveryMethodID,
		UsedSpareParts:     c.UsedSpareParts,
		DateRecovery:       c.DateRecovery,
		EquipmentDowntime:  downtime,
		ServiceCompany:     c.ServiceCompany.Name,
		ServiceCompanyID:   c.ServiceCompanyID,
		VehicleModel:       c.VehicleModel,
	}
}

// List возвращает все рекламации с названием модели техники из машины
func (s *ComplaintService) List() ([]ComplaintView, error) {
	var complaints []models.Complaint
	err := s.db.
		Preload("Car").
		Preload("Car.VehicleModel").
		Preload("NodeFailure").
		Preload("RecoveryMethod").
		Preload("ServiceCompany").
		Find(&complaints).Error
	if err != nil {
		return nil, utils.InternalError("Ошибка при получении списка рекламаций", err)
	}

	views := make([]ComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, complaintView(&complaints[i]))
	}
	return views, nil
}

// Create регистрирует рекламацию. Все четыре ссылки проверяются до записи,
// ни одна строка не создаётся при отказе валидации.
func (s *ComplaintService) Create(req CreateComplaintRequest) (*ComplaintView, error) {
	const internalMsg = "Ошибка при создании рекламации"
	if err := checkExists(s.db, &models.Car{}, req.CarID, "Указан несуществующий car_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.FailureNode{}, req.NodeFailureID, "Указан несуществующий node_failure_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.RecoveryMethod{}, req.RecoveryMethodID, "Указан несуществующий recovery_method_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.ServiceCompany{}, req.ServiceCompanyID, "Указана несуществующая сервисная компания", internalMsg); err != nil {
		return nil, err
	}

	// Повторная проверка порядка дат (первая — на уровне запроса)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Снимок названия модели техники на момент создания
	var car models.Car
	if err := s.db.Preload("VehicleModel").Take(&car, req.CarID).Error; err != nil {
		return nil, utils.InternalError(internalMsg, err)
	}

	downtime := ""
	if req.DateRecovery != "" {
		downtime = calculateDowntime(req.DateOfFailure, req.DateRecovery)
	}

	complaint := models.Complaint{
		CarID:              req.CarID,
		DateOfFailure:      req.DateOfFailure,
		OperatingTime:      req.OperatingTime,
		NodeFailureID:      req.NodeFailureID,
		DescriptionFailure: req.DescriptionFailure,
		RecoveryMethodID:   req.RecoveryMethodID,
		UsedSpareParts:     req.UsedSpareParts,
		DateRecovery:       req.DateRecovery,
		EquipmentDowntime:  downtime,
		ServiceCompanyID:   req.ServiceCompanyID,
		VehicleModel:       car.VehicleModel.Name,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&complaint).Error
	})
	if err != nil {
		return nil, utils.InternalError(internalMsg, err)
	}

	var created models.Complaint
	err = s.db.
		Preload("Car").
		Preload("Car.VehicleModel").
		Preload("NodeFailure").
		Preload("RecoveryMethod").
		Preload("ServiceCompany").
		Take(&created, complaint.ID).Error
	if err != nil {
		return nil, utils.InternalError(internalMsg, err)
	}
	view := complaintView(&created)
	return &view, nil
}
