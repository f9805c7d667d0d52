// Package models содержит доменные структуры админ-консоли: пользователей,
// компании, тарифные планы и сводку дашборда, а также тела запросов,
// которые консоль отправляет в бэкенд.
package models

import "time"

// Role роль учётной записи администратора.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// SubscriptionStatus состояние подписки пользователя на бэкенде.
type SubscriptionStatus string

const (
	SubscriptionDraft             SubscriptionStatus = "DRAFT"
	SubscriptionPendingActivation SubscriptionStatus = "PENDING_ACTIVATION"
	SubscriptionActive            SubscriptionStatus = "ACTIVE"
	SubscriptionExpired           SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled         SubscriptionStatus = "CANCELLED"
	SubscriptionFailed            SubscriptionStatus = "FAILED"
)

// Valid сообщает, входит ли статус в известный бэкенду набор.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionDraft, SubscriptionPendingActivation, SubscriptionActive,
		SubscriptionExpired, SubscriptionCancelled, SubscriptionFailed:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя платформы.
// Счётчики и план заполняются только в списке /admin/users.
type User struct {
	ID                 string             `json:"id"`
	FullName           string             `json:"fullName"`
	Email              string             `json:"email"`
	Role               Role               `json:"role,omitempty"`
	IsEmailVerified    bool               `json:"isEmailVerified"`
	CreatedAt          *time.Time         `json:"createdAt,omitempty"`
	CompanyCount       int                `json:"companyCount"`
	EmployeeCount      int                `json:"employeeCount"`
	CurrentPlan        string             `json:"currentPlan,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus,omitempty"`
}

// UserDetails карточка пользователя из /admin/users/:id.
type UserDetails struct {
	User
	Companies []Company `json:"companies,omitempty"`
}

// UserPage одна страница списка пользователей вместе с общим количеством.
type UserPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}
