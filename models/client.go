package models

// Client клиент (владелец техники)
type Client struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`

	Cars []Car `json:"-" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }
