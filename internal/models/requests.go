package models

// Credentials тело POST /auth/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate тело PATCH /admin/profile/update.
type ProfileUpdate struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// PasswordChange форма смены пароля. ConfirmPassword проверяется
// на клиенте и в бэкенд не уходит.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

// Notification тело POST /admin/notifications/send.
type Notification struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}
