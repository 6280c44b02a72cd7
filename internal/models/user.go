package models

// User представляет пользователя, от имени которого работает клиент
type User struct {
	ID    string `json:"id"`    // серверный идентификатор пользователя
	Email string `json:"email"` // email, использованный при входе
	Name  string `json:"name"`  // отображаемое имя (может быть пустым)
}
