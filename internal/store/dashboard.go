package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// DefaultUserRole подпись роли, пока сводка не загружена.
const DefaultUserRole = "System Administrator"

// DashboardState снимок сводки, только для чтения.
type DashboardState struct {
	Stats            models.DashboardStats `json:"stats"`
	ChartData        []models.ChartPoint   `json:"chartData"`
	RecentActivities []models.Activity     `json:"recentActivities"`
	UserRole         string                `json:"userRole"`
	AsyncState
}

func initialDashboard() DashboardState {
	return DashboardState{
		ChartData:        []models.ChartPoint{},
		RecentActivities: []models.Activity{},
		UserRole:         DefaultUserRole,
		AsyncState:       idle(),
	}
}

func (d DashboardState) clone() DashboardState {
	d.ChartData = append([]models.ChartPoint(nil), d.ChartData...)
	d.RecentActivities = append([]models.Activity(nil), d.RecentActivities...)
	return d
}

func (s *Store) fetchDashboard(ctx context.Context) error {
	return run(ctx, s, operation[models.Dashboard]{
		action: TypeFetchDashboard,
		async:  func(st *Snapshot) *AsyncState { return &st.Dashboard.AsyncState },
		call:   s.api.DashboardSummary,
		fulfilled: func(st *Snapshot, d models.Dashboard) {
			st.Dashboard.Stats = d.Stats
			st.Dashboard.ChartData = nonNil(d.ChartData)
			st.Dashboard.RecentActivities = nonNil(d.RecentActivities)
			st.Dashboard.UserRole = messageOr(d.UserRole, DefaultUserRole)
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch dashboard summary") },
	})
}
