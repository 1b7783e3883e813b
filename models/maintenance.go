package models

import "time"

// MaintenanceRecord запись о проведённом ТО
type MaintenanceRecord struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CarID             uint      `json:"car_id" gorm:"not null"`
	MaintenanceTypeID uint      `json:"maintenance_type_id" gorm:"not null"`
	MaintenanceDate   time.Time `json:"maintenance_date" gorm:"type:date;not null"`
	OrderNumber       string    `json:"order_number" gorm:"type:varchar(10)"`
	OrderDate         time.Time `json:"order_date" gorm:"type:date;not null"`
	ServiceCompanyID  uint      `json:"service_company_id" gorm:"not null"`

	Car             Car             `json:"-" gorm:"foreignKey:CarID"`
	MaintenanceType MaintenanceType `json:"-" gorm:"foreignKey:MaintenanceTypeID"`
	ServiceCompany  ServiceCompany  `json:"-" gorm:"foreignKey:ServiceCompanyID"`
}

func (MaintenanceRecord) TableName() string { return "tech_maintenance_extend_model" }
