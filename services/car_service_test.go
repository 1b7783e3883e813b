package services

import (
	"encoding/json"
	"testing"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"
)

func TestCreateCarRejectsShortVin(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	req := newCarRequest(refs, "TOOSHORT")
	_, err := svc.Create(req)
	assertAppError(t, err, utils.KindValidation, "VIN должен содержать ровно 17 символов")
}

func TestCarVinLengthEnforcedByStore(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)

	// запись в обход сервиса: ограничение длины действует на уровне схемы
	car := models.Car{
		VIN:                 "SHORTVIN16CHARSX",
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
	if err := db.Create(&car).Error; err == nil {
		t.Fatal("expected check constraint to reject a 16-char vin")
	}

	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count cars: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cars, got %d", count)
	}
}

func TestCreateCarDuplicateVin(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	first := createTestCar(t, db, refs, testVIN)

	req := newCarRequest(refs, testVIN)
	req.EngineNumber = "OTHER-ENGINE"
	_, err := svc.Create(req)
	assertAppError(t, err, utils.KindConflict, "Машина с таким VIN уже существует")

	// первая запись не изменилась
	var stored models.Car
	if err := db.Take(&stored, first.ID).Error; err != nil {
		t.Fatalf("failed to load car: %v", err)
	}
	if stored.EngineNumber != "DE-100" {
		t.Fatalf("original car was modified: engine number %q", stored.EngineNumber)
	}

	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count cars: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 car, got %d", count)
	}
}

func TestCreateCarRequiresDriveAxle(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	req := newCarRequest(refs, testVIN)
	req.DriveAxleModelID = 0
	_, err := svc.Create(req)
	assertAppError(t, err, utils.KindValidation, "Не указана модель ведущего моста (drive_axle_model_id)")
}

func TestCreateCarUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	cases := []struct {
		name    string
		mutate  func(*CreateCarRequest)
		message string
	}{
		{
			name:    "drive axle",
			mutate:  func(r *CreateCarRequest) { r.DriveAxleModelID = 9999 },
			message: "Указан несуществующий drive_axle_model_id",
		},
		{
			name:    "client",
			mutate:  func(r *CreateCarRequest) { r.ClientID = 9999 },
			message: "Указан несуществующий client_id",
		},
		{
			name:    "service company",
			mutate:  func(r *CreateCarRequest) { r.ServiceCompanyID = 9999 },
			message: "Указана несуществующая сервисная компания",
		},
		{
			name:    "vehicle model",
			mutate:  func(r *CreateCarRequest) { r.VehicleModelID = 9999 },
			message: "Указан несуществующий vehicle_model_id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newCarRequest(refs, testVIN)
			tc.mutate(&req)
			_, err := svc.Create(req)
			assertAppError(t, err, utils.KindValidation, tc.message)
		})
	}

	// ни одна машина не создана
	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count cars: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cars, got %d", count)
	}
}

func TestCreateCarShipmentDateLenient(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	req := newCarRequest(refs, testVIN)
	req.ShipmentDate = "not-a-date"
	car, err := svc.Create(req)
	if err != nil {
		t.Fatalf("expected car to be created, got %v", err)
	}
	if car.ShipmentDate != "" {
		t.Fatalf("expected empty shipment date, got %q", car.ShipmentDate)
	}
}

func TestCreateCarShipmentDateStrict(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, true)

	req := newCarRequest(refs, testVIN)
	req.ShipmentDate = "not-a-date"
	_, err := svc.Create(req)
	assertAppError(t, err, utils.KindValidation, errBadDateFormat)
}

func TestCreateCarWithShipmentDate(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	svc := NewCarService(db, false)

	req := newCarRequest(refs, testVIN)
	req.ShipmentDate = "2024-06-15"
	car, err := svc.Create(req)
	if err != nil {
		t.Fatalf("failed to create car: %v", err)
	}
	if car.ShipmentDate != "2024-06-15" {
		t.Fatalf("expected shipment date 2024-06-15, got %q", car.ShipmentDate)
	}
	if car.VehicleModel != "ПД1,5" {
		t.Fatalf("expected resolved vehicle model, got %q", car.VehicleModel)
	}
	if car.Client != "ИП Трудников" {
		t.Fatalf("expected resolved client name, got %q", car.Client)
	}
}

func TestGetCarByVinNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, false)

	_, err := svc.GetByVin("A0000000000000000")
	assertAppError(t, err, utils.KindNotFound, "Машина с указанным VIN не найдена")
}

func TestGetCarByVinPublicProjection(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	createTestCar(t, db, refs, testVIN)
	svc := NewCarService(db, false)

	view, err := svc.GetByVin(testVIN)
	if err != nil {
		t.Fatalf("failed to get car: %v", err)
	}
	if view.VIN != testVIN {
		t.Fatalf("expected vin %q, got %q", testVIN, view.VIN)
	}
	if view.VehicleModel != "ПД1,5" {
		t.Fatalf("expected vehicle model name, got %q", view.VehicleModel)
	}
	if view.EngineNumber != "DE-100" {
		t.Fatalf("expected engine number, got %q", view.EngineNumber)
	}
}

func TestGetCarByVinWireFormat(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	createTestCar(t, db, refs, testVIN)
	svc := NewCarService(db, false)

	view, err := svc.GetByVin(testVIN)
	if err != nil {
		t.Fatalf("failed to get car: %v", err)
	}
	payload, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("failed to marshal view: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}

	// ключи мостов в публичном ответе без суффикса _model
	if fields["drive_axle"] != "ВМ-18" {
		t.Fatalf("expected drive_axle key, got %v", fields)
	}
	if fields["steering_axle"] != "УМ-10" {
		t.Fatalf("expected steering_axle key, got %v", fields)
	}
	for _, key := range []string{"drive_axle_model", "steering_axle_model"} {
		if _, ok := fields[key]; ok {
			t.Fatalf("unexpected key %q in payload", key)
		}
	}
}

func TestGetCarByVinPlaceholders(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	createTestCar(t, db, refs, testVIN)

	// пустой номер двигателя и осиротевшая ссылка на модель
	if err := db.Model(&models.Car{}).Where("vin = ?", testVIN).
		Update("engine_number", "").Error; err != nil {
		t.Fatalf("failed to clear engine number: %v", err)
	}
	if err := db.Exec("DELETE FROM vehicle_model WHERE id = ?", refs.VehicleID).Error; err != nil {
		t.Fatalf("failed to delete vehicle model: %v", err)
	}

	svc := NewCarService(db, false)
	view, err := svc.GetByVin(testVIN)
	if err != nil {
		t.Fatalf("failed to get car: %v", err)
	}
	if view.EngineNumber != "Не указан" {
		t.Fatalf("expected placeholder for engine number, got %q", view.EngineNumber)
	}
	if view.VehicleModel != "Не указано" {
		t.Fatalf("expected placeholder for vehicle model, got %q", view.VehicleModel)
	}
}

func TestListCars(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	createTestCar(t, db, refs, testVIN)
	createTestCar(t, db, refs, "Z1F00000000000002")

	svc := NewCarService(db, false)
	cars, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list cars: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(cars))
	}
	if cars[0].ServiceCompany != "ООО Промышленная техника" {
		t.Fatalf("expected resolved service company, got %q", cars[0].ServiceCompany)
	}
}
