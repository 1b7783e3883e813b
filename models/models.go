package models

// All возвращает полный список сущностей для миграции
func All() []interface{} {
	return []interface{}{
		&VehicleModel{},
		&EngineModel{},
		&TransmissionModel{},
		&DriveAxleModel{},
		&SteeringAxleModel{},
		&MaintenanceType{},
		&RecoveryMethod{},
		&FailureNode{},
		&ServiceCompany{},
		&Client{},
		&Car{},
		&MaintenanceRecord{},
		&Complaint{},
		&User{},
	}
}
