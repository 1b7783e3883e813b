package models

// Справочники. Таблицы унаследованы от первой версии схемы,
// поэтому имена таблиц сохранены как есть.

// VehicleModel модель техники
type VehicleModel struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (VehicleModel) TableName() string { return "vehicle_model" }

// EngineModel модель двигателя
type EngineModel struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (EngineModel) TableName() string { return "engine_model" }

// TransmissionModel модель трансмиссии
type TransmissionModel struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (TransmissionModel) TableName() string { return "transmission_model" }

// DriveAxleModel модель ведущего моста
type DriveAxleModel struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (DriveAxleModel) TableName() string { return "drive_axle_model" }

// SteeringAxleModel модель управляемого моста
type SteeringAxleModel struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (SteeringAxleModel) TableName() string { return "steering_axle_model" }

// MaintenanceType вид технического обслуживания
type MaintenanceType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (MaintenanceType) TableName() string { return "tech_maintenance_model" }

// RecoveryMethod способ восстановления
type RecoveryMethod struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (RecoveryMethod) TableName() string { return "recovery_method_model" }

// FailureNode узел отказа
type FailureNode struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (FailureNode) TableName() string { return "failure_node_model" }

// ServiceCompany сервисная компания
type ServiceCompany struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `json:"description"`
}

func (ServiceCompany) TableName() string { return "service_company_model" }
