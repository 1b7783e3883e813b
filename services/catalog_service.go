package services

import (
	"errors"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// Reference описывает таблицу и колонку, ссылающиеся на справочник
type Reference struct {
	Table  string
	Column string
}

// Category описание одного справочника
type Category struct {
	Slug        string
	Table       string
	NotFoundMsg string
	// GuardMsg сообщение при отказе в удалении записи, на которую ссылаются
	GuardMsg string
	// Refs — где встречаются ссылки на записи справочника. Пока хотя бы
	// одна ссылка существует, удаление запрещено.
	Refs []Reference
}

const (
	carTable         = "car_model"
	maintenanceTable = "tech_maintenance_extend_model"
	complaintTable   = "complaint_model"

	guardModelMsg   = "Невозможно удалить модель: к ней привязаны автомобили. Сначала отвяжите автомобили от этой модели."
	guardGenericMsg = "Невозможно удалить запись: на неё ссылаются существующие записи"
)

// Categories все справочники. Защита от удаления действует одинаково для
// каждой категории.
var Categories = []Category{
	{
		Slug: "vehicle", Table: "vehicle_model", NotFoundMsg: "Vehicle model not found",
		GuardMsg: guardModelMsg,
		Refs:     []Reference{{carTable, "vehicle_model_id"}},
	},
	{
		Slug: "engine", Table: "engine_model", NotFoundMsg: "Engine model not found",
		GuardMsg: guardModelMsg,
		Refs:     []Reference{{carTable, "engine_model_id"}},
	},
	{
		Slug: "transmission", Table: "transmission_model", NotFoundMsg: "Transmission model not found",
		GuardMsg: guardModelMsg,
		Refs:     []Reference{{carTable, "transmission_model_id"}},
	},
	{
		Slug: "drive-axle", Table: "drive_axle_model", NotFoundMsg: "Drive axle model not found",
		GuardMsg: guardModelMsg,
		Refs:     []Reference{{carTable, "drive_axle_model_id"}},
	},
	{
		Slug: "steering-axle", Table: "steering_axle_model", NotFoundMsg: "Steering axle model not found",
		GuardMsg: guardModelMsg,
		Refs:     []Reference{{carTable, "steering_axle_model_id"}},
	},
	{
		Slug: "maintenance-types", Table: "tech_maintenance_model", NotFoundMsg: "Maintenance type not found",
		GuardMsg: guardGenericMsg,
		Refs:     []Reference{{maintenanceTable, "maintenance_type_id"}},
	},
	{
		Slug: "recovery-method", Table: "recovery_method_model", NotFoundMsg: "Recovery method model not found",
		GuardMsg: guardGenericMsg,
		Refs:     []Reference{{complaintTable, "recovery_method_id"}},
	},
	{
		Slug: "failure-node", Table: "failure_node_model", NotFoundMsg: "Failure node model not found",
		GuardMsg: guardGenericMsg,
		Refs:     []Reference{{complaintTable, "node_failure_id"}},
	},
	{
		Slug: "service-company", Table: "service_company_model", NotFoundMsg: "Service company not found",
		GuardMsg: guardGenericMsg,
		Refs: []Reference{
			{carTable, "service_company_id"},
			{maintenanceTable, "service_company_id"},
			{complaintTable, "service_company_id"},
		},
	},
}

// CategoryBySlug находит справочник по сегменту пути
func CategoryBySlug(slug string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].Slug == slug {
			return &Categories[i], true
		}
	}
	return nil, false
}

// CatalogItem запись справочника
type CatalogItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogSummary краткая запись для списков
type CatalogSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CatalogUpdateRequest частичное обновление: отсутствующее поле не трогаем
type CatalogUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CatalogCreateRequest создание записи справочника
type CatalogCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CatalogService операции над справочниками
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// List возвращает записи справочника без описаний. Порядок не гарантируется.
func (s *CatalogService) List(cat *Category) ([]CatalogSummary, error) {
	var items []CatalogSummary
	if err := s.db.Table(cat.Table).Select("id, name").Find(&items).Error; err != nil {
		return nil, utils.InternalError("Ошибка при получении справочника", err)
	}
	if items == nil {
		items = []CatalogSummary{}
	}
	return items, nil
}

// Get возвращает запись с описанием
func (s *CatalogService) Get(cat *Category, id uint) (*CatalogItem, error) {
	var item CatalogItem
	err := s.db.Table(cat.Table).Where("id = ?", id).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundError(cat.NotFoundMsg)
	}
	if err != nil {
		return nil, utils.InternalError("Ошибка при получении записи справочника", err)
	}
	return &item, nil
}

// Create добавляет запись. Повторяющееся имя — конфликт.
func (s *CatalogService) Create(cat *Category, req CatalogCreateRequest) (*CatalogItem, error) {
	var existing CatalogSummary
	err := s.db.Table(cat.Table).Where("name = ?", req.Name).Take(&existing).Error
	if err == nil {
		return nil, utils.ConflictError("Запись с таким названием уже существует")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.InternalError("Ошибка при создании записи справочника", err)
	}

	item := CatalogItem{Name: req.Name, Description: req.Description}
	if err := s.db.Table(cat.Table).Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ConflictError("Запись с таким названием уже существует")
		}
		return nil, utils.InternalError("Ошибка при создании записи справочника", err)
	}
	return &item, nil
}

// Update применяет только переданные поля
func (s *CatalogService) Update(cat *Category, id uint, req CatalogUpdateRequest) (*CatalogItem, error) {
	item, err := s.Get(cat, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		var existing CatalogSummary
		err := s.db.Table(cat.Table).Where("name = ? AND id != ?", *req.Name, id).Take(&existing).Error
		if err == nil {
			return nil, utils.ConflictError("Запись с таким названием уже существует")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.InternalError("Ошибка при обновлении записи справочника", err)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	updates := map[string]interface{}{"name": item.Name, "description": item.Description}
	if err := s.db.Table(cat.Table).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ConflictError("Запись с таким названием уже существует")
		}
		return nil, utils.InternalError("Ошибка при обновлении записи справочника", err)
	}
	return item, nil
}

// Delete удаляет запись, если на неё никто не ссылается
func (s *CatalogService) Delete(cat *Category, id uint) error {
	for _, ref := range cat.Refs {
		var count int64
		if err := s.db.Table(ref.Table).Where(ref.Column+" = ?", id).Count(&count).Error; err != nil {
			return utils.InternalError("Ошибка при удалении записи справочника", err)
		}
		if count > 0 {
			return utils.ConflictError(cat.GuardMsg)
		}
	}

	if _, err := s.Get(cat, id); err != nil {
		return err
	}
	if err := s.db.Table(cat.Table).Where("id = ?", id).Delete(&CatalogItem{}).Error; err != nil {
		return utils.InternalError("Ошибка при удалении записи справочника", err)
	}
	return nil
}

// ListClients список клиентов для селектов
func (s *CatalogService) ListClients() ([]CatalogSummary, error) {
	var items []CatalogSummary
	if err := s.db.Model(&models.Client{}).Select("id, name").Find(&items).Error; err != nil {
		return nil, utils.InternalError("Ошибка при получении списка клиентов", err)
	}
	if items == nil {
		items = []CatalogSummary{}
	}
	return items, nil
}
