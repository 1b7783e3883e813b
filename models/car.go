package models

import "time"

// Car машина. VIN строго 17 символов, проверяется и на уровне сервиса,
// и ограничением в БД.
type Car struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	VIN                 string     `json:"vin" gorm:"column:vin;type:varchar(17);uniqueIndex;not null;check:length(vin) = 17"`
	VehicleModelID      uint       `json:"vehicle_model_id" gorm:"not null"`
	EngineModelID       uint       `json:"engine_model_id" gorm:"not null"`
	EngineNumber        string     `json:"engine_number" gorm:"type:varchar(255);not null"`
	TransmissionModelID uint       `json:"transmission_model_id" gorm:"not null"`
	TransmissionNumber  string     `json:"transmission_number" gorm:"type:varchar(255);not null"`
	DriveAxleModelID    uint       `json:"drive_axle_model_id" gorm:"not null"`
	DriveAxleNumber     string     `json:"drive_axle_number" gorm:"type:varchar(255);not null"`
	SteeringAxleModelID uint       `json:"steering_axle_model_id" gorm:"not null"`
	SteeringAxleNumber  string     `json:"steering_axle_number" gorm:"type:varchar(255);not null"`
	DeliveryAgreement   string     `json:"delivery_agreement" gorm:"type:varchar(255)"`
	ShipmentDate        *time.Time `json:"shipment_date" gorm:"type:date"`
	Recipient           string     `json:"recipient" gorm:"type:varchar(255)"`
	DeliveryAddress     string     `json:"delivery_address" gorm:"type:varchar(255)"`
	Equipment           string     `json:"equipment" gorm:"type:varchar(255)"`
	ClientID            uint       `json:"client_id" gorm:"not null"`
	ServiceCompanyID    uint       `json:"service_company_id" gorm:"not null"`

	// Связи
	VehicleModel      VehicleModel      `json:"-" gorm:"foreignKey:VehicleModelID"`
	EngineModel       EngineModel       `json:"-" gorm:"foreignKey:EngineModelID"`
	TransmissionModel TransmissionModel `json:"-" gorm:"foreignKey:TransmissionModelID"`
	DriveAxleModel    DriveAxleModel    `json:"-" gorm:"foreignKey:DriveAxleModelID"`
	SteeringAxleModel SteeringAxleModel `json:"-" gorm:"foreignKey:SteeringAxleModelID"`
	Client            Client            `json:"-" gorm:"foreignKey:ClientID"`
	ServiceCompany    ServiceCompany    `json:"-" gorm:"foreignKey:ServiceCompanyID"`
}

func (Car) TableName() string { return "car_model" }
