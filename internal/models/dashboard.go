package models

import "time"

// DashboardStats скалярные счётчики сводки. Поля *Change хранят изменение
// относительно прошлого периода в процентах.
type DashboardStats struct {
	ActiveUsers            int     `json:"activeUsers"`
	TotalCompanies         int     `json:"totalCompanies"`
	TotalCompaniesChange   float64 `json:"totalCompaniesChange"`
	TotalEmployees         int     `json:"totalEmployees"`
	ExpiredCompanies       int     `json:"expiredCompanies"`
	ExpiredCompaniesChange float64 `json:"expiredCompaniesChange"`
	MonthlyIncome          float64 `json:"monthlyIncome"`
	MonthlyIncomeChange    float64 `json:"monthlyIncomeChange"`
	TotalIncome            float64 `json:"totalIncome"`
	TotalIncomeChange      float64 `json:"totalIncomeChange"`
	Revenue                float64 `json:"revenue"`
}

// ChartPoint точка графика дохода по месяцам.
type ChartPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Activity запись ленты последних действий.
type Activity struct {
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// Dashboard снимок /admin/dashboard/summary, локально не изменяется.
type Dashboard struct {
	Stats            DashboardStats `json:"stats"`
	ChartData        []ChartPoint   `json:"chartData"`
	RecentActivities []Activity     `json:"recentActivities"`
	UserRole         string         `json:"userRole,omitempty"`
}
