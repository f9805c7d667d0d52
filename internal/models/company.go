package models

import "time"

// Company компания, зарегистрированная владельцем на платформе.
type Company struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	Address          string     `json:"address"`
	ContactNumber    string     `json:"contactNumber"`
	OwnerName        string     `json:"ownerName"`
	EmployeeCount    int        `json:"employeeCount"`
	SubscriptionPlan string     `json:"subscriptionPlan"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
}

// CompanyPage одна страница списка компаний вместе с общим количеством.
type CompanyPage struct {
	Companies  []Company  `json:"companies"`
	Pagination Pagination `json:"pagination"`
}
