package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput базовая ошибка для всех отказов валидации.
// Проверки выполняются до любого сетевого запроса.
var ErrInvalidInput = errors.New("invalid input")

const (
	// SecondsPerHour используется для перевода срока из часов в секунды
	SecondsPerHour = 3600
)

// ValidateCredentials проверяет, что email и пароль не пустые
func ValidateCredentials(email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}

	return nil
}

// ValidateHabitName проверяет название новой привычки
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: habit name cannot be empty", ErrInvalidInput)
	}

	return nil
}

// ParseDeadlineHours переводит введённое пользователем количество часов в секунды.
// Возвращает nil, если текст не является положительным целым числом:
// в этом случае у привычки просто нет срока.
func ParseDeadlineHours(text string) *int64 {
	hours, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || hours <= 0 || hours > math.MaxInt64/SecondsPerHour {
		return nil
	}

	seconds := hours * SecondsPerHour
	return &seconds
}
