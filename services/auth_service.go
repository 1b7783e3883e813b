package services

import (
	"errors"

	"github.com/Type-Of-Null/Silant-Skillfactory/models"
	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// LoginRequest данные для входа
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse результат успешного входа
type LoginResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// AuthService аутентификация пользователей
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login проверяет имя пользователя и пароль. Неизвестное имя и неверный
// пароль дают один и тот же ответ — без подсказок, какой из них не подошёл.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	const rejectMsg = "Неверное имя пользователя или пароль"

	var user models.User
	err := s.db.
		Preload("Client").
		Preload("ServiceCompany").
		Where("username = ?", req.Username).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.UnauthorizedError(rejectMsg)
	}
	if err != nil {
		return nil, utils.InternalError("Ошибка при входе", err)
	}

	if err := user.VerifyPassword(req.Password); err != nil {
		return nil, utils.UnauthorizedError(rejectMsg)
	}

	name := ""
	if user.Client != nil {
		name = user.Client.Name
	} else if user.ServiceCompany != nil {
		name = user.ServiceCompany.Name
	}

	return &LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     name,
	}, nil
}
