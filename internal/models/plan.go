package models

// PlanFeature строка описания тарифа на карточке.
type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// SubscriptionPlan тарифный план. Features не хранится на бэкенде,
// а выводится из имени плана (см. DeriveFeatures).
type SubscriptionPlan struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Price           float64       `json:"price"`
	PriceLabel      string        `json:"priceLabel"`
	RegistrationFee float64       `json:"registrationFee"`
	MaxEmployees    int           `json:"maxEmployees"`
	MaxCompanies    int           `json:"maxCompanies,omitempty"`
	Description     string        `json:"description,omitempty"`
	Features        []PlanFeature `json:"features"`
}

// PlanUpdate тело PUT /admin/plans/:id. Nil-поля не отправляются.
type PlanUpdate struct {
	Name            *string  `json:"name,omitempty"`
	EmployeePrice   *float64 `json:"employeePrice,omitempty" validate:"omitempty,min=0"`
	RegistrationFee *float64 `json:"registrationFee,omitempty" validate:"omitempty,min=0"`
	MaxEmployees    *int     `json:"maxEmployees,omitempty" validate:"omitempty,min=0"`
}
