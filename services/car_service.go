package services

import (
	"errors"
	"time"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// PublicCarView проекция машины для неавторизованного поиска по VIN.
// Вместо идентификаторов — названия моделей; клиент, сервисная компания и
// данные поставки не раскрываются. Все поля всегда заполнены строками.
type PublicCarView struct {
	VIN                string `json:"vin"`
	VehicleModel       string `json:"vehicle_model"`
	EngineModel        string `json:"engine_model"`
	EngineNumber       string `json:"engine_number"`
	TransmissionModel  string `json:"transmission_model"`
	TransmissionNumber string `json:"transmission_number"`
	DriveAxle          string `json:"drive_axle"`
	DriveAxleNumber    string `json:"drive_axle_number"`
	SteeringAxle       string `json:"steering_axle"`
	SteeringAxleNumber string `json:"steering_axle_number"`
}

// CarView полная проекция машины для авторизованных пользователей
type CarView struct {
	ID                  uint   `json:"id"`
	VIN                 string `json:"vin"`
	VehicleModelID      *uint  `json:"vehicle_model_id"`
	VehicleModel        string `json:"vehicle_model"`
	EngineModelID       *uint  `json:"engine_model_id"`
	EngineModel         string `json:"engine_model"`
	EngineNumber        string `json:"engine_number"`
	TransmissionModelID *uint  `json:"transmission_model_id"`
	TransmissionModel   string `json:"transmission_model"`
	TransmissionNumber  string `json:"transmission_number"`
	DriveAxleModelID    *uint  `json:"drive_axle_model_id"`
	DriveAxleModel      string `json:"drive_axle_model"`
	DriveAxleNumber     string `json:"drive_axle_number"`
	SteeringAxleModelID *uint  `json:"steering_axle_model_id"`
	SteeringAxleModel   string `json:"steering_axle_model"`
	SteeringAxleNumber  string `json:"steering_axle_number"`
	DeliveryAgreement   string `json:"delivery_agreement"`
	ShipmentDate        string `json:"shipment_date"`
	Recipient           string `json:"recipient"`
	DeliveryAddress     string `json:"delivery_address"`
	Equipment           string `json:"equipment"`
	Client              string `json:"client"`
	ServiceCompany      string `json:"service_company"`
}

// CreateCarRequest запрос на постановку машины на учёт
type CreateCarRequest struct {
	VIN                 string `json:"vin" binding:"required"`
	VehicleModelID      uint   `json:"vehicle_model_id" binding:"required"`
	EngineModelID       uint   `json:"engine_model_id" binding:"required"`
	EngineNumber        string `json:"engine_number" binding:"required"`
	TransmissionModelID uint   `json:"transmission_model_id" binding:"required"`
	TransmissionNumber  string `json:"transmission_number" binding:"required"`
	DriveAxleModelID    uint   `json:"drive_axle_model_id"`
	DriveAxleNumber     string `json:"drive_axle_number" binding:"required"`
	SteeringAxleModelID uint   `json:"steering_axle_model_id" binding:"required"`
	SteeringAxleNumber  string `json:"steering_axle_number" binding:"required"`
	DeliveryAgreement   string `json:"delivery_agreement"`
	ShipmentDate        string `json:"shipment_date"`
	Recipient           string `json:"recipient"`
	DeliveryAddress     string `json:"delivery_address"`
	Equipment           string `json:"equipment"`
	ClientID            uint   `json:"client_id" binding:"required"`
	ServiceCompanyID    uint   `json:"service_company_id" binding:"required"`
}

// CarService операции реестра машин
type CarService struct {
	db *gorm.DB
	// strictShipmentDate: true — нечитаемая дата отгрузки отклоняется,
	// false — историческое поведение, дата молча опускается.
	strictShipmentDate bool
}

func NewCarService(db *gorm.DB, strictShipmentDate bool) *CarService {
	return &CarService{db: db, strictShipmentDate: strictShipmentDate}
}

func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// GetByVin возвращает публичную проекцию машины
func (s *CarService) GetByVin(vin string) (*PublicCarView, error) {
	var car models.Car
	err := s.db.
		Preload("VehicleModel").
		Preload("EngineModel").
		Preload("TransmissionModel").
		Preload("DriveAxleModel").
		Preload("SteeringAxleModel").
		Where("vin = ?", vin).
		Take(&car).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundError("Машина с указанным VIN не найдена")
	}
	if err != nil {
		return nil, utils.InternalError("Ошибка при поиске машины", err)
	}

	return &PublicCarView{
		VIN:                car.VIN,
		VehicleModel:       orDefault(car.VehicleModel.Name, "Не указано"),
		EngineModel:        orDefault(car.EngineModel.Name, "Не указано"),
		EngineNumber:       orDefault(car.EngineNumber, "Не указан"),
		TransmissionModel:  orDefault(car.TransmissionModel.Name, "Не указана"),
		TransmissionNumber: orDefault(car.TransmissionNumber, "Не указан"),
		DriveAxle:          orDefault(car.DriveAxleModel.Name, "Не указан"),
		DriveAxleNumber:    orDefault(car.DriveAxleNumber, "Не указан"),
		SteeringAxle:       orDefault(car.SteeringAxleModel.Name, "Не указан"),
		SteeringAxleNumber: orDefault(car.SteeringAxleNumber, "Не указан"),
	}, nil
}

func (s *CarService) buildView(car *models.Car) CarView {
	view := CarView{
		ID:                 car.ID,
		VIN:                car.VIN,
		VehicleModel:       orDefault(car.VehicleModel.Name, "Не указано"),
		EngineModel:        orDefault(car.EngineModel.Name, "Не указано"),
		EngineNumber:       orDefault(car.EngineNumber, "Не указан"),
		TransmissionModel:  orDefault(car.TransmissionModel.Name, "Не указана"),
		TransmissionNumber: orDefault(car.TransmissionNumber, "Не указан"),
		DriveAxleModel:     orDefault(car.DriveAxleModel.Name, "Не указан"),
		DriveAxleNumber:    orDefault(car.DriveAxleNumber, "Не указан"),
		SteeringAxleModel:  orDefault(car.SteeringAxleModel.Name, "Не указан"),
		SteeringAxleNumber: orDefault(car.SteeringAxleNumber, "Не указан"),
		DeliveryAgreement:  car.DeliveryAgreement,
		Recipient:          car.Recipient,
		DeliveryAddress:    car.DeliveryAddress,
		Equipment:          car.Equipment,
		Client:             car.Client.Name,
		ServiceCompany:     car.ServiceCompany.Name,
	}
	if car.VehicleModel.ID != 0 {
		id := car.VehicleModel.ID
		view.VehicleModelID = &id
	}
	if car.EngineModel.ID != 0 {
		id := car.EngineModel.ID
		view.EngineModelID = &id
	}
	if car.TransmissionModel.ID != 0 {
		id := car.TransmissionModel.ID
		view.TransmissionModelID = &id
	}
	if car.DriveAxleModel.ID != 0 {
		id := car.DriveAxleModel.ID
		view.DriveAxleModelID = &id
	}
	if car.SteeringAxleModel.ID != 0 {
		id := car.SteeringAxleModel.ID
		view.SteeringAxleModelID = &id
	}
	if car.ShipmentDate != nil {
		view.ShipmentDate = car.ShipmentDate.Format(dateLayout)
	}
	return view
}

// List возвращает все машины с полной информацией
func (s *CarService) List() ([]CarView, error) {
	var cars []models.Car
	err := s.db.
		Preload("VehicleModel").
		Preload("EngineModel").
		Preload("TransmissionModel").
		Preload("DriveAxleModel").
		Preload("SteeringAxleModel").
		Preload("Client").
		Preload("ServiceCompany").
		Find(&cars).Error
	if err != nil {
		return nil, utils.InternalError("Ошибка при получении списка машин", err)
	}

	views := make([]CarView, 0, len(cars))
	for i := range cars {
		views = append(views, s.buildView(&cars[i]))
	}
	return views, nil
}

// Create ставит машину на учёт. Порядок проверок значим: сначала
// уникальность VIN, затем ведущий мост, затем остальные ссылки.
func (s *CarService) Create(req CreateCarRequest) (*CarView, error) {
	if len([]rune(req.VIN)) != 17 {
		return nil, utils.ValidationError("VIN должен содержать ровно 17 символов")
	}

	var existing models.Car
	err := s.db.Where("vin = ?", req.VIN).Take(&existing).Error
	if err == nil {
		return nil, utils.ConflictError("Машина с таким VIN уже существует")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.InternalError("Ошибка при создании машины", err)
	}

	if req.DriveAxleModelID == 0 {
		return nil, utils.ValidationError("Не указана модель ведущего моста (drive_axle_model_id)")
	}
	const internalMsg = "Ошибка при создании машины"
	if err := checkExists(s.db, &models.DriveAxleModel{}, req.DriveAxleModelID, "Указан несуществующий drive_axle_model_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Client{}, req.ClientID, "Указан несуществующий client_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.ServiceCompany{}, req.ServiceCompanyID, "Указана несуществующая сервисная компания", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.VehicleModel{}, req.VehicleModelID, "Указан несуществующий vehicle_model_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.EngineModel{}, req.EngineModelID, "Указан несуществующий engine_model_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.TransmissionModel{}, req.TransmissionModelID, "Указан несуществующий transmission_model_id", internalMsg); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.SteeringAxleModel{}, req.SteeringAxleModelID, "Указан несуществующий steering_axle_model_id", internalMsg); err != nil {
		return nil, err
	}

	var shipmentDate *time.Time
	if req.ShipmentDate != "" {
		parsed, err := parseDate(req.ShipmentDate)
		if err != nil {
			if s.strictShipmentDate {
				return nil, utils.ValidationError(errBadDateFormat)
			}
			// историческое поведение: дата молча не сохраняется
		} else {
			shipmentDate = &parsed
		}
	}

	car := models.Car{
		VIN:                 req.VIN,
		VehicleModelID:      req.VehicleModelID,
		EngineModelID:       req.EngineModelID,
		EngineNumber:        req.EngineNumber,
		TransmissionModelID: req.TransmissionModelID,
		TransmissionNumber:  req.TransmissionNumber,
		DriveAxleModelID:    req.DriveAxleModelID,
		DriveAxleNumber:     req.DriveAxleNumber,
		SteeringAxleModelID: req.SteeringAxleModelID,
		SteeringAxleNumber:  req.SteeringAxleNumber,
		DeliveryAgreement:   req.DeliveryAgreement,
		ShipmentDate:        shipmentDate,
		Recipient:           req.Recipient,
		DeliveryAddress:     req.DeliveryAddress,
		Equipment:           req.Equipment,
		ClientID:            req.ClientID,
		ServiceCompanyID:    req.ServiceCompanyID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&car).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ConflictError("Машина с таким VIN уже существует")
		}
		return nil, utils.InternalError("Ошибка при создании машины", err)
	}

	var created models.Car
	err = s.db.
		Preload("VehicleModel").
		Preload("EngineModel").
		Preload("TransmissionModel").
		Preload("DriveAxleModel").
		Preload("SteeringAxleModel").
		Preload("Client").
		Preload("ServiceCompany").
		Take(&created, car.ID).Error
	if err != nil {
		return nil, utils.InternalError("Ошибка при создании машины", err)
	}
	view := s.buildView(&created)
	return &view, nil
}
