package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Type-Of-Null/Silant-Skillfactory/utils"

	"gorm.io/gorm"
)

// dateLayout формат дат во внешнем API
const dateLayout = "2006-01-02"

const errBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// isUniqueViolation распознаёт нарушение уникальности на уровне хранилища.
// Гонка двух одновременных вставок с одним ключом должна давать Conflict,
// а не общую внутреннюю ошибку.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// checkExists проверяет, что строка с данным id существует.
// Отсутствие строки — ошибка валидации с заданным сообщением.
func checkExists(db *gorm.DB, model interface{}, id uint, message, internalMessage string) error {
	err := db.Select("id").Take(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ValidationError(message)
	}
	if err != nil {
		return utils.InternalError(internalMessage, err)
	}
	return nil
}
