package services

import (
	"testing"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB база в памяти со всеми таблицами
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// carRefs идентификаторы справочных записей для постановки машины на учёт
type carRefs struct {
	VehicleID      uint
	EngineID       uint
	TransmissionID uint
	DriveAxleID    uint
	SteeringAxleID uint
	ClientID       uint
	CompanyID      uint
}

func seedCarRefs(t *testing.T, db *gorm.DB) carRefs {
	t.Helper()

	vehicle := models.VehicleModel{Name: "ПД1,5", Description: "Погрузчик"}
	engine := models.EngineModel{Name: "Kubota D1803"}
	transmission := models.TransmissionModel{Name: "10VA-00105"}
	driveAxle := models.DriveAxleModel{Name: "ВМ-18"}
	steeringAxle := models.SteeringAxleModel{Name: "УМ-10"}
	client := models.Client{Username: "client1", Password: "x", Name: "ИП Трудников"}
	company := models.ServiceCompany{Name: "ООО Промышленная техника"}

	for _, row := range []interface{}{
		&vehicle, &engine, &transmission, &driveAxle, &steeringAxle, &client, &company,
	} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed reference row: %v", err)
		}
	}

	return carRefs{
		VehicleID:      vehicle.ID,
		EngineID:       engine.ID,
		TransmissionID: transmission.ID,
		DriveAxleID:    driveAxle.ID,
		SteeringAxleID: steeringAxle.ID,
		ClientID:       client.ID,
		CompanyID:      company.ID,
	}
}

func newCarRequest(refs carRefs, vin string) CreateCarRequest {
	return CreateCarRequest{
		VIN:                 vin,
		VehicleModelID:      refs.VehicleID,
		EngineModelID:       refs.EngineID,
		EngineNumber:        "DE-100",
		TransmissionModelID: refs.TransmissionID,
		TransmissionNumber:  "TR-200",
		DriveAxleModelID:    refs.DriveAxleID,
		DriveAxleNumber:     "DA-300",
		SteeringAxleModelID: refs.SteeringAxleID,
		SteeringAxleNumber:  "SA-400",
		ClientID:            refs.ClientID,
		ServiceCompanyID:    refs.CompanyID,
	}
}

const testVIN = "Z1F00000000000001"

// assertAppError проверяет класс и сообщение ошибки
func assertAppError(t *testing.T, err error, kind utils.Kind, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %q, got nil", message)
	}
	appErr, ok := utils.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%v)", kind, appErr.Kind, err)
	}
	if appErr.Message != message {
		t.Fatalf("expected message %q, got %q", message, appErr.Message)
	}
}

func createTestCar(t *testing.T, db *gorm.DB, refs carRefs, vin string) *CarView {
	t.Helper()

	svc := NewCarService(db, false)
	car, err := svc.Create(newCarRequest(refs, vin))
	if err != nil {
		t.Fatalf("failed to create car: %v", err)
	}
	return car
}
