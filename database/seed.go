package database

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EnsureAdminUser создаёт пользователя-менеджера, если его ещё нет.
// Безопасно вызывать при каждом старте.
func EnsureAdminUser(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).Take(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking for existing admin user: %w", err)
	}

	admin := models.User{
		Username: username,
		Password: password,
		Role:     models.RoleManager,
	}
	if err := admin.HashPassword(); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	logrus.WithField("username", username).Info("admin user registered")
	return nil
}

// Демо-данные для локальной разработки
var (
	seedVehicleModels = []string{
		"КАМАЗ-5490", "КАМАЗ-65201", "КАМАЗ-6580", "КАМАЗ-65207", "КАМАЗ-65206",
	}
	seedEngineModels = []string{
		"КАМАЗ-740.73-400", "КАМАЗ-740.73-420", "КАМАЗ-740.73-440",
		"КАМАЗ-740.73-460", "КАМАЗ-740.73-480",
	}
	seedTransmissionModels = []string{
		"ZF16S2220", "ZF16S2221", "ZF16S2222", "ZF16S2223", "ZF16S2224",
	}
	seedDriveAxleModels = []string{
		"КАМАЗ-6522", "КАМАЗ-65221", "КАМАЗ-65222", "КАМАЗ-65223", "КАМАЗ-65224",
	}
	seedSteeringAxleModels = []string{
		"КАМАЗ-6520", "КАМАЗ-65201", "КАМАЗ-65202", "КАМАЗ-65203", "КАМАЗ-65204",
	}
	seedClients = []string{
		"ООО 'СтройДорМаш'", "АО 'АвтоСтрой'", "ЗАО 'ДорТехСервис'",
		"ИП Петров И.И.", "ООО 'ГрузАвтоТранс'",
	}
	seedServiceCompanies = []string{
		"СервисЦентр 'КАМАЗ-Сервис'", "ТехЦентр 'Камский'",
		"АвтоСервис 'Дизель-Мастер'", "ТехноСервис 'КАМАЗ-Техно'",
	}
	seedCities = []string{"Москва", "Санкт-Петербург", "Казань", "Екатеринбург", "Новосибирск"}
)

const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

func randomVIN(rnd *rand.Rand) string {
	b := make([]byte, 17)
	for i := range b {
		b[i] = vinAlphabet[rnd.Intn(len(vinAlphabet))]
	}
	return string(b)
}

func randomSerial(rnd *rand.Rand, prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, 10000+rnd.Intn(90000))
}

// SeedDemoData заполняет справочники и парк из 50 машин.
// Пропускается, если машины уже есть.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	return db.Transaction(func(tx *gorm.DB) error {
		var vehicles []models.VehicleModel
		for _, name := range seedVehicleModels {
			vehicles = append(vehicles, models.VehicleModel{Name: name, Description: "Модель техники " + name})
		}
		if err := tx.Create(&vehicles).Error; err != nil {
			return err
		}

		var engines []models.EngineModel
		for _, name := range seedEngineModels {
			engines = append(engines, models.EngineModel{Name: name, Description: "Модель двигателя " + name})
		}
		if err := tx.Create(&engines).Error; err != nil {
			return err
		}

		var transmissions []models.TransmissionModel
		for _, name := range seedTransmissionModels {
			transmissions = append(transmissions, models.TransmissionModel{Name: name, Description: "Модель трансмиссии " + name})
		}
		if err := tx.Create(&transmissions).Error; err != nil {
			return err
		}

		var driveAxles []models.DriveAxleModel
		for _, name := range seedDriveAxleModels {
			driveAxles = append(driveAxles, models.DriveAxleModel{Name: name, Description: "Модель ведущего моста " + name})
		}
		if err := tx.Create(&driveAxles).Error; err != nil {
			return err
		}

		var steeringAxles []models.SteeringAxleModel
		for _, name := range seedSteeringAxleModels {
			steeringAxles = append(steeringAxles, models.SteeringAxleModel{Name: name, Description: "Модель управляемого моста " + name})
		}
		if err := tx.Create(&steeringAxles).Error; err != nil {
			return err
		}

		var clients []models.Client
		for i, name := range seedClients {
			client := models.Client{
				Name:     name,
				Username: fmt.Sprintf("client_%d", i+1),
				Password: "password123",
			}
			user := models.User{Password: client.Password}
			if err := user.HashPassword(); err != nil {
				return err
			}
			client.Password = user.Password
			clients = append(clients, client)
		}
		if err := tx.Create(&clients).Error; err != nil {
			return err
		}

		var companies []models.ServiceCompany
		for _, name := range seedServiceCompanies {
			companies = append(companies, models.ServiceCompany{Name: name, Description: "Сервисная компания " + name})
		}
		if err := tx.Create(&companies).Error; err != nil {
			return err
		}

		for i := 0; i < 50; i++ {
			shipment := time.Now().AddDate(0, 0, -(1 + rnd.Intn(365)))
			car := models.Car{
				VIN:                 randomVIN(rnd),
				VehicleModelID:      vehicles[rnd.Intn(len(vehicles))].ID,
				EngineModelID:       engines[rnd.Intn(len(engines))].ID,
				EngineNumber:        randomSerial(rnd, "ENG"),
				TransmissionModelID: transmissions[rnd.Intn(len(transmissions))].ID,
				TransmissionNumber:  randomSerial(rnd, "TR"),
				DriveAxleModelID:    driveAxles[rnd.Intn(len(driveAxles))].ID,
				DriveAxleNumber:     randomSerial(rnd, "DA"),
				SteeringAxleModelID: steeringAxles[rnd.Intn(len(steeringAxles))].ID,
				SteeringAxleNumber:  randomSerial(rnd, "SA"),
				DeliveryAgreement:   fmt.Sprintf("Договор №%d от %s", 1000+rnd.Intn(9000), time.Now().Format("02.01.2006")),
				ShipmentDate:        &shipment,
				Recipient:           seedClients[rnd.Intn(len(seedClients))],
				DeliveryAddress:     "г. " + seedCities[rnd.Intn(len(seedCities))],
				Equipment:           "Комплектация " + []string{"Стандарт", "Комфорт", "Люкс"}[rnd.Intn(3)],
				ClientID:            clients[rnd.Intn(len(clients))].ID,
				ServiceCompanyID:    companies[rnd.Intn(len(companies))].ID,
			}
			if err := tx.Create(&car).Error; err != nil {
				return err
			}
		}

		logrus.Info("demo data seeded")
		return nil
	})
}
