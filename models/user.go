package models

import "golang.org/x/crypto/bcrypt"

// Роли пользователей
const (
	RoleNoAuth  = "no_auth"
	RoleClient  = "client"
	RoleManager = "manager"
	RoleService = "service"
)

// User учётная запись для входа. Роль определяет, какая из необязательных
// ссылок имеет смысл: client -> ClientID, service -> ServiceCompanyID.
// Соответствие роли и ссылки не форсируется.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Role     string `json:"role" gorm:"type:varchar(20);default:no_auth"`

	ClientID         *uint `json:"client_id"`
	ServiceCompanyID *uint `json:"service_company_id"`

	Client         *Client         `json:"-" gorm:"foreignKey:ClientID"`
	ServiceCompany *ServiceCompany `json:"-" gorm:"foreignKey:ServiceCompanyID"`
}

func (User) TableName() string { return "users" }

// HashPassword заменяет пароль его bcrypt-хешем
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// VerifyPassword сравнивает пароль с сохранённым хешем
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
