package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// CompaniesState текущая страница компаний.
type CompaniesState struct {
	Companies      []models.Company `json:"companies"`
	TotalCompanies int              `json:"totalCompanies"`
	AsyncState
}

func initialCompanies() CompaniesState {
	return CompaniesState{Companies: []models.Company{}, AsyncState: idle()}
}

func (c CompaniesState) clone() CompaniesState {
	c.Companies = append([]models.Company(nil), c.Companies...)
	return c
}

func (s *Store) fetchCompanies(ctx context.Context, a FetchCompanies) error {
	return run(ctx, s, operation[models.CompanyPage]{
		action: a.Type(),
		async:  func(st *Snapshot) *AsyncState { return &st.Companies.AsyncState },
		call: func(ctx context.Context) (models.CompanyPage, error) {
			return s.api.ListCompanies(ctx, models.ListParams{Page: a.Page, Limit: a.Limit, Search: a.Search})
		},
		fulfilled: func(st *Snapshot, page models.CompanyPage) {
			st.Companies.Companies = nonNil(page.Companies)
			st.Companies.TotalCompanies = page.Pagination.Total
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch companies") },
	})
}
