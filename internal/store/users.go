package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// UsersState текущая страница пользователей и выбранная карточка.
type UsersState struct {
	Users          []models.User       `json:"users"`
	TotalUsers     int                 `json:"totalUsers"`
	SelectedUser   *models.UserDetails `json:"selectedUser"`
	SuccessMessage string              `json:"successMessage"`
	AsyncState
}

func initialUsers() UsersState {
	return UsersState{Users: []models.User{}, AsyncState: idle()}
}

func (u UsersState) clone() UsersState {
	u.Users = append([]models.User(nil), u.Users...)
	if u.SelectedUser != nil {
		d := *u.SelectedUser
		d.Companies = append([]models.Company(nil), d.Companies...)
		u.SelectedUser = &d
	}
	return u
}

func usersAsync(st *Snapshot) *AsyncState { return &st.Users.AsyncState }

// fetchUsers заменяет страницу целиком, без слияния с предыдущей.
func (s *Store) fetchUsers(ctx context.Context, a FetchUsers) error {
	return run(ctx, s, operation[models.UserPage]{
		action: a.Type(),
		async:  usersAsync,
		call: func(ctx context.Context) (models.UserPage, error) {
			return s.api.ListUsers(ctx, models.ListParams{Page: a.Page, Limit: a.Limit})
		},
		fulfilled: func(st *Snapshot, page models.UserPage) {
			st.Users.Users = nonNil(page.Users)
			st.Users.TotalUsers = page.Pagination.Total
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch users") },
	})
}

func (s *Store) fetchUserDetails(ctx context.Context, a FetchUserDetails) error {
	return run(ctx, s, operation[models.UserDetails]{
		action: a.Type(),
		async:  usersAsync,
		call: func(ctx context.Context) (models.UserDetails, error) {
			return s.api.GetUser(ctx, a.UserID)
		},
		fulfilled: func(st *Snapshot, d models.UserDetails) {
			st.Users.SelectedUser = &d
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch user details") },
	})
}

func (s *Store) sendUserNotification(ctx context.Context, a SendUserNotification) error {
	return run(ctx, s, operation[apiclient.Ack]{
		action:  a.Type(),
		key:     targetKey(a.Type(), a.UserID),
		async:   usersAsync,
		pending: func(st *Snapshot) { st.Users.SuccessMessage = "" },
		call: func(ctx context.Context) (apiclient.Ack, error) {
			return s.api.SendNotification(ctx, a.Notification)
		},
		fulfilled: func(st *Snapshot, ack apiclient.Ack) {
			st.Users.SuccessMessage = messageOr(ack.Message, "Notification sent successfully")
		},
		message: func(err error) string { return apiclient.ErrorDetail(err, "Failed to send notification") },
	})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
