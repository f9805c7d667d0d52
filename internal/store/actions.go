package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// Action именованная операция над стором.
type Action interface {
	Type() string
}

// defaulter подставляет значения по умолчанию до проверки.
type defaulter interface {
	withDefaults() Action
}

// Имена операций. Префикс до "/" ключ слайса.
const (
	TypeLoginUser                 = "auth/loginUser"
	TypeLogout                    = "auth/logout"
	TypeClearAuthError            = "auth/clearError"
	TypeFetchProfile              = "auth/fetchProfile"
	TypeFetchUsers                = "users/fetchUsers"
	TypeFetchUserDetails          = "users/fetchUserDetails"
	TypeSendUserNotification      = "users/sendNotification"
	TypeClearUserError            = "users/clearUserError"
	TypeClearSelectedUser         = "users/clearSelectedUser"
	TypeFetchCompanies            = "companies/fetchCompanies"
	TypeClearCompanyError         = "companies/clearCompanyError"
	TypeFetchDashboard            = "dashboard/fetchSummary"
	TypeFetchPlans                = "subscription/fetchPlans"
	TypeUpdatePlanData            = "subscription/updatePlanData"
	TypeUpdateAdditionalSlotPrice = "subscription/updateAdditionalSlotPrice"
	TypeClearSubscriptionStatus   = "subscription/clearStatus"
	TypeUpdateProfile             = "settings/updateProfile"
	TypeChangePassword            = "settings/changePassword"
	TypeClearSettingsStatus       = "settings/clearStatus"
)

// LoginUser вход по email и паролю.
type LoginUser struct {
	models.Credentials
}

func (LoginUser) Type() string { return TypeLoginUser }

// Logout синхронный выход: токен и пользователь сбрасываются сразу.
type Logout struct{}

func (Logout) Type() string { return TypeLogout }

type ClearAuthError struct{}

func (ClearAuthError) Type() string { return TypeClearAuthError }

// FetchProfile перечитывает профиль текущего администратора.
type FetchProfile struct{}

func (FetchProfile) Type() string { return TypeFetchProfile }

// FetchUsers страница пользователей. Нулевые page и limit означают 1 и 10.
type FetchUsers struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (FetchUsers) Type() string { return TypeFetchUsers }

func (a FetchUsers) withDefaults() Action {
	p := models.ListParams{Page: a.Page, Limit: a.Limit}.WithDefaults()
	return FetchUsers{Page: p.Page, Limit: p.Limit}
}

type FetchUserDetails struct {
	UserID string `json:"userId" validate:"required"`
}

func (FetchUserDetails) Type() string { return TypeFetchUserDetails }

type SendUserNotification struct {
	models.Notification
}

func (SendUserNotification) Type() string { return TypeSendUserNotification }

// ClearUserError сбрасывает error и successMessage слайса users.
type ClearUserError struct{}

func (ClearUserError) Type() string { return TypeClearUserError }

type ClearSelectedUser struct{}

func (ClearSelectedUser) Type() string { return TypeClearSelectedUser }

// FetchCompanies страница компаний с поиском по имени на стороне бэкенда.
type FetchCompanies struct {
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Search string `json:"search"`
}

func (FetchCompanies) Type() string { return TypeFetchCompanies }

func (a FetchCompanies) withDefaults() Action {
	p := models.ListParams{Page: a.Page, Limit: a.Limit}.WithDefaults()
	return FetchCompanies{Page: p.Page, Limit: p.Limit, Search: a.Search}
}

type ClearCompanyError struct{}

func (ClearCompanyError) Type() string { return TypeClearCompanyError }

type FetchDashboard struct{}

func (FetchDashboard) Type() string { return TypeFetchDashboard }

type FetchPlans struct{}

func (FetchPlans) Type() string { return TypeFetchPlans }

// UpdatePlanData правка тарифа по id.
type UpdatePlanData struct {
	ID   string            `json:"id" validate:"required"`
	Data models.PlanUpdate `json:"data"`
}

func (UpdatePlanData) Type() string { return TypeUpdatePlanData }

// UpdateAdditionalSlotPrice локальная цена дополнительного слота, в бэкенд не уходит.
type UpdateAdditionalSlotPrice struct {
	Price float64 `json:"price" validate:"min=0"`
}

func (UpdateAdditionalSlotPrice) Type() string { return TypeUpdateAdditionalSlotPrice }

type ClearSubscriptionStatus struct{}

func (ClearSubscriptionStatus) Type() string { return TypeClearSubscriptionStatus }

type UpdateProfile struct {
	models.ProfileUpdate
}

func (UpdateProfile) Type() string { return TypeUpdateProfile }

type ChangePassword struct {
	models.PasswordChange
}

func (ChangePassword) Type() string { return TypeChangePassword }

type ClearSettingsStatus struct{}

func (ClearSettingsStatus) Type() string { return TypeClearSettingsStatus }

func decodeAs[T Action](raw json.RawMessage) (Action, error) {
	var a T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

var registry = map[string]func(json.RawMessage) (Action, error){
	TypeLoginUser:                 decodeAs[LoginUser],
	TypeLogout:                    decodeAs[Logout],
	TypeClearAuthError:            decodeAs[ClearAuthError],
	TypeFetchProfile:              decodeAs[FetchProfile],
	TypeFetchUsers:                decodeAs[FetchUsers],
	TypeFetchUserDetails:          decodeAs[FetchUserDetails],
	TypeSendUserNotification:      decodeAs[SendUserNotification],
	TypeClearUserError:            decodeAs[ClearUserError],
	TypeClearSelectedUser:         decodeAs[ClearSelectedUser],
	TypeFetchCompanies:            decodeAs[FetchCompanies],
	TypeClearCompanyError:         decodeAs[ClearCompanyError],
	TypeFetchDashboard:            decodeAs[FetchDashboard],
	TypeFetchPlans:                decodeAs[FetchPlans],
	TypeUpdatePlanData:            decodeAs[UpdatePlanData],
	TypeUpdateAdditionalSlotPrice: decodeAs[UpdateAdditionalSlotPrice],
	TypeClearSubscriptionStatus:   decodeAs[ClearSubscriptionStatus],
	TypeUpdateProfile:             decodeAs[UpdateProfile],
	TypeChangePassword:            decodeAs[ChangePassword],
	TypeClearSettingsStatus:       decodeAs[ClearSettingsStatus],
}

// Decode собирает операцию по имени из JSON-тела. Пустое тело допустимо.
func Decode(actionType string, raw json.RawMessage) (Action, error) {
	decode, ok := registry[actionType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, actionType)
	}
	a, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", actionType, err)
	}
	return a, nil
}

// ActionTypes имена всех операций по алфавиту.
func ActionTypes() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
