package api

// LoginRequest представляет запрос на вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Name     *string `json:"name,omitempty"` // опциональное отображаемое имя
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

// User минимальные данные пользователя, которые сервер возвращает вместе с токеном
type User struct {
	Name  *string `json:"name,omitempty"`
	ID    string  `json:"id"`
	Email string  `json:"email"`
}

// AuthResponse представляет ответ на успешный login/signup
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"` // bearer token
}

// RefreshResponse представляет ответ на обновление токена
type RefreshResponse struct {
	Token string `json:"token"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
