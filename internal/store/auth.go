package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// AuthState сессия администратора.
type AuthState struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
	AsyncState
}

func initialAuth(token string) AuthState {
	return AuthState{Token: token, AsyncState: idle()}
}

func (a AuthState) clone() AuthState {
	if a.User != nil {
		u := *a.User
		a.User = &u
	}
	return a
}

func authAsync(st *Snapshot) *AsyncState { return &st.Auth.AsyncState }

// loginUser сохраняет токен в хранилище сессии до фиксации состояния.
func (s *Store) loginUser(ctx context.Context, a LoginUser) error {
	return run(ctx, s, operation[apiclient.LoginResult]{
		action: a.Type(),
		async:  authAsync,
		call: func(ctx context.Context) (apiclient.LoginResult, error) {
			res, err := s.api.Login(ctx, a.Credentials)
			if err != nil {
				return res, err
			}
			if err := s.session.SetCredentials(ctx, res.Token); err != nil {
				return apiclient.LoginResult{}, err
			}
			return res, nil
		},
		fulfilled: func(st *Snapshot, res apiclient.LoginResult) {
			user := res.User
			st.Auth.Token = res.Token
			st.Auth.User = &user
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Login failed") },
	})
}

func (s *Store) fetchProfile(ctx context.Context) error {
	return run(ctx, s, operation[models.User]{
		action: TypeFetchProfile,
		async:  authAsync,
		call:   s.api.Me,
		fulfilled: func(st *Snapshot, u models.User) {
			st.Auth.User = &u
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch profile") },
	})
}

// logout не ждёт запросов в полёте, они могут позже вернуть 401.
func (s *Store) logout(ctx context.Context) {
	if err := s.session.Clear(ctx); err != nil {
		s.log.Error("failed to clear session", sl.Op("store.logout"), sl.Err(err))
	}
	s.commit(func(st *Snapshot) {
		st.Auth.Token = ""
		st.Auth.User = nil
	})
}
