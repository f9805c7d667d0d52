package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized бэкенд ответил 401, сессия уже сброшена.
var ErrUnauthorized = errors.New("unauthorized")

// APIError неуспешный ответ бэкенда. StatusCode 0 означает сбой транспорта.
type APIError struct {
	StatusCode int
	// Message поле message тела ответа.
	Message string
	// Detail поле error тела ответа.
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	text := e.Message
	if text == "" {
		text = e.Detail
	}
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("api: transport: %v", e.Err)
	case text == "":
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, text)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return e.Err
}

// ErrorMessage текст для показа администратору: message, затем error из тела,
// иначе fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return fallback
}

// ErrorDetail как ErrorMessage, но поле error тела имеет приоритет.
// Так отвечает /admin/notifications/send.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return ErrorMessage(err, fallback)
}
