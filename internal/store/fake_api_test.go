package store

import (
	"context"
	"sync/atomic"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// fakeAPI реализует API через подменяемые функции и считает вызовы.
type fakeAPI struct {
	calls atomic.Int64

	login            func(ctx context.Context, creds models.Credentials) (apiclient.LoginResult, error)
	me               func(ctx context.Context) (models.User, error)
	dashboardSummary func(ctx context.Context) (models.Dashboard, error)
	listUsers        func(ctx context.Context, p models.ListParams) (models.UserPage, error)
	getUser          func(ctx context.Context, id string) (models.UserDetails, error)
	listCompanies    func(ctx context.Context, p models.ListParams) (models.CompanyPage, error)
	listPlans        func(ctx context.Context) ([]models.SubscriptionPlan, error)
	updatePlan       func(ctx context.Context, id string, upd models.PlanUpdate) (models.SubscriptionPlan, error)
	updateProfile    func(ctx context.Context, upd models.ProfileUpdate) (apiclient.Ack, error)
	changePassword   func(ctx context.Context, pc models.PasswordChange) (apiclient.Ack, error)
	sendNotification func(ctx context.Context, n models.Notification) (apiclient.Ack, error)
}

func (f *fakeAPI) Login(ctx context.Context, creds models.Credentials) (apiclient.LoginResult, error) {
	f.calls.Add(1)
	if f.login == nil {
		return apiclient.LoginResult{}, nil
	}
	return f.login(ctx, creds)
}

func (f *fakeAPI) Me(ctx context.Context) (models.User, error) {
	f.calls.Add(1)
	if f.me == nil {
		return models.User{}, nil
	}
	return f.me(ctx)
}

func (f *fakeAPI) DashboardSummary(ctx context.Context) (models.Dashboard, error) {
	f.calls.Add(1)
	if f.dashboardSummary == nil {
		return models.Dashboard{}, nil
	}
	return f.dashboardSummary(ctx)
}

func (f *fakeAPI) ListUsers(ctx context.Context, p models.ListParams) (models.UserPage, error) {
	f.calls.Add(1)
	if f.listUsers == nil {
		return models.UserPage{}, nil
	}
	return f.listUsers(ctx, p)
}

func (f *fakeAPI) GetUser(ctx context.Context, id string) (models.UserDetails, error) {
	f.calls.Add(1)
	if f.getUser == nil {
		return models.UserDetails{}, nil
	}
	return f.getUser(ctx, id)
}

func (f *fakeAPI) ListCompanies(ctx context.Context, p models.ListParams) (models.CompanyPage, error) {
	f.calls.Add(1)
	if f.listCompanies == nil {
		return models.CompanyPage{}, nil
	}
	return f.listCompanies(ctx, p)
}

func (f *fakeAPI) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	f.calls.Add(1)
	if f.listPlans == nil {
		return nil, nil
	}
	return f.listPlans(ctx)
}

func (f *fakeAPI) UpdatePlan(ctx context.Context, id string, upd models.PlanUpdate) (models.SubscriptionPlan, error) {
	f.calls.Add(1)
	if f.updatePlan == nil {
		return models.SubscriptionPlan{}, nil
	}
	return f.updatePlan(ctx, id, upd)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (apiclient.Ack, error) {
	f.calls.Add(1)
	if f.updateProfile == nil {
		return apiclient.Ack{}, nil
	}
	return f.updateProfile(ctx, upd)
}

func (f *fakeAPI) ChangePassword(ctx context.Context, pc models.PasswordChange) (apiclient.Ack, error) {
	f.calls.Add(1)
	if f.changePassword == nil {
		return apiclient.Ack{}, nil
	}
	return f.changePassword(ctx, pc)
}

func (f *fakeAPI) SendNotification(ctx context.Context, n models.Notification) (apiclient.Ack, error) {
	f.calls.Add(1)
	if f.sendNotification == nil {
		return apiclient.Ack{}, nil
	}
	return f.sendNotification(ctx, n)
}
