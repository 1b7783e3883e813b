package models

// Complaint рекламация. Даты хранятся строками YYYY-MM-DD (пустая строка —
// дата не указана). VehicleModel — снимок названия модели техники на момент
// создания, с каталогом не синхронизируется.
type Complaint struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	CarID              uint   `json:"car_id" gorm:"not null"`
	DateOfFailure      string `json:"date_of_failure" gorm:"type:varchar(255);not null"`
	OperatingTime      string `json:"operating_time" gorm:"type:varchar(255);not null"`
	NodeFailureID      uint   `json:"node_failure_id" gorm:"not null"`
	DescriptionFailure string `json:"description_failure" gorm:"type:varchar(255)"`
	RecoveryMethodID   uint   `json:"recovery_method_id" gorm:"not null"`
	UsedSpareParts     string `json:"used_spare_parts" gorm:"type:varchar(255)"`
	DateRecovery       string `json:"date_recovery" gorm:"type:varchar(255)"`
	EquipmentDowntime  string `json:"equipment_downtime" gorm:"type:varchar(255)"`
	ServiceCompanyID   uint   `json:"service_company_id" gorm:"not null"`
	VehicleModel       string `json:"vehicle_model" gorm:"type:varchar(255)"`

	Car            Car            `json:"-" gorm:"foreignKey:CarID"`
	NodeFailure    FailureNode    `json:"-" gorm:"foreignKey:NodeFailureID"`
	RecoveryMethod RecoveryMethod `json:"-" gorm:"foreignKey:RecoveryMethodID"`
	ServiceCompany ServiceCompany `json:"-" gorm:"foreignKey:ServiceCompanyID"`
}

func (Complaint) TableName() string { return "complaint_model" }
