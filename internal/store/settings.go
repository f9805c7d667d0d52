package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
)

// SettingsState статус форм профиля и пароля.
type SettingsState struct {
	SuccessMessage string `json:"successMessage"`
	AsyncState
}

func initialSettings() SettingsState {
	return SettingsState{AsyncState: idle()}
}

func settingsAsync(st *Snapshot) *AsyncState { return &st.Settings.AsyncState }

func clearSettingsMessage(st *Snapshot) { st.Settings.SuccessMessage = "" }

// updateProfile при успехе также правит пользователя в слайсе auth.
func (s *Store) updateProfile(ctx context.Context, a UpdateProfile) error {
	return run(ctx, s, operation[apiclient.Ack]{
		action:  a.Type(),
		async:   settingsAsync,
		pending: clearSettingsMessage,
		call: func(ctx context.Context) (apiclient.Ack, error) {
			return s.api.UpdateProfile(ctx, a.ProfileUpdate)
		},
		fulfilled: func(st *Snapshot, ack apiclient.Ack) {
			st.Settings.SuccessMessage = messageOr(ack.Message, "Profile updated successfully")
			if st.Auth.User != nil {
				st.Auth.User.FullName = a.FullName
				st.Auth.User.Email = a.Email
			}
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to update profile") },
	})
}

func (s *Store) changePassword(ctx context.Context, a ChangePassword) error {
	return run(ctx, s, operation[apiclient.Ack]{
		action:  a.Type(),
		async:   settingsAsync,
		pending: clearSettingsMessage,
		call: func(ctx context.Context) (apiclient.Ack, error) {
			return s.api.ChangePassword(ctx, a.PasswordChange)
		},
		fulfilled: func(st *Snapshot, ack apiclient.Ack) {
			st.Settings.SuccessMessage = messageOr(ack.Message, "Password changed successfully")
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to change password") },
	})
}
