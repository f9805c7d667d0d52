package store

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
)

var (
	// ErrUnknownAction имя операции не зарегистрировано.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownSlice нет слайса с таким ключом.
	ErrUnknownSlice = errors.New("unknown slice")
	// ErrSuperseded ответ пришёл после более нового запроса той же операции
	// и был отброшен.
	ErrSuperseded = errors.New("response superseded by a newer request")
)

// ValidationError полезная нагрузка не прошла проверку на клиенте,
// запрос в сеть не уходил.
type ValidationError struct {
	Action string
	Errs   validator.ValidationErrors
	err    error
}

func (e *ValidationError) Error() string {
	if e.Errs != nil {
		return fmt.Sprintf("%s: validation failed: %s", e.Action, e.Errs.Error())
	}
	return fmt.Sprintf("%s: validation failed: %v", e.Action, e.err)
}

func (e *ValidationError) Unwrap() error {
	if e.Errs != nil {
		return e.Errs
	}
	return e.err
}

// OperationError операция отклонена, Message совпадает с полем error слайса.
type OperationError struct {
	Action  string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
