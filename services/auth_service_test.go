package services

import (
	"testing"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, user models.User, password string) models.User {
	t.Helper()

	user.Password = password
	if err := user.HashPassword(); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	seedUser(t, db, models.User{
		Username: "client1",
		Role:     models.RoleClient,
		ClientID: &refs.ClientID,
	}, "secret123")

	svc := NewAuthService(db)
	resp, err := svc.Login(LoginRequest{Username: "client1", Password: "secret123"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	if resp.Role != models.RoleClient {
		t.Fatalf("expected role %q, got %q", models.RoleClient, resp.Role)
	}
	if resp.Name != "ИП Трудников" {
		t.Fatalf("expected client name, got %q", resp.Name)
	}
}

func TestLoginServiceCompanyName(t *testing.T) {
	db := newTestDB(t)
	refs := seedCarRefs(t, db)
	seedUser(t, db, models.User{
		Username:         "service1",
		Role:             models.RoleService,
		ServiceCompanyID: &refs.CompanyID,
	}, "secret123")

	svc := NewAuthService(db)
	resp, err := svc.Login(LoginRequest{Username: "service1", Password: "secret123"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	if resp.Name != "ООО Промышленная техника" {
		t.Fatalf("expected company name, got %q", resp.Name)
	}
}

func TestLoginWithoutBinding(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, models.User{Username: "manager", Role: models.RoleManager}, "secret123")

	svc := NewAuthService(db)
	resp, err := svc.Login(LoginRequest{Username: "manager", Password: "secret123"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	if resp.Name != "" {
		t.Fatalf("expected empty name, got %q", resp.Name)
	}
}

func TestLoginRejectsUniformly(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, models.User{Username: "manager", Role: models.RoleManager}, "secret123")
	svc := NewAuthService(db)

	const rejectMsg = "Неверное имя пользователя или пароль"

	// неизвестное имя и неверный пароль дают одинаковый ответ
	_, err := svc.Login(LoginRequest{Username: "nobody", Password: "secret123"})
	assertAppError(t, err, utils.KindUnauthorized, rejectMsg)

	_, err = svc.Login(LoginRequest{Username: "manager", Password: "wrong"})
	assertAppError(t, err, utils.KindUnauthorized, rejectMsg)
}
