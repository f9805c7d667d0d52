package store

import (
	"context"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
)

// Status состояние последней операции слайса.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// AsyncState общая часть состояния каждого слайса.
type AsyncState struct {
	Status    Status `json:"status"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error"`
}

func idle() AsyncState {
	return AsyncState{Status: StatusIdle}
}

// ticket номер запроса операции. key это тип действия, для мутаций
// одной записи к нему добавляется id цели: "subscription/updatePlanData#basic".
type ticket struct {
	key string
	seq uint64
}

// tracker выдаёт монотонные номера запросов по каждому ключу и помнит,
// ждёт ли ответа последний выданный. Защищён мьютексом стора.
type tracker struct {
	seq     map[string]uint64
	pending map[string]bool
}

func newTracker() *tracker {
	return &tracker{seq: map[string]uint64{}, pending: map[string]bool{}}
}

func (t *tracker) issue(key string) ticket {
	t.seq[key]++
	t.pending[key] = true
	return ticket{key: key, seq: t.seq[key]}
}

// resolve true, если tk последний выданный номер своего ключа.
func (t *tracker) resolve(tk ticket) bool {
	if t.seq[tk.key] != tk.seq {
		return false
	}
	t.pending[tk.key] = false
	return true
}

// loading ждёт ли ответа хотя бы одна операция слайса.
func (t *tracker) loading(slice string) bool {
	for key, pending := range t.pending {
		if pending && sliceOf(key) == slice {
			return true
		}
	}
	return false
}

func sliceOf(key string) string {
	if i := strings.IndexByte(key, '/'); i >= 0 {
		return key[:i]
	}
	return key
}

// targetKey ключ мутации одной записи: ответы по разным id не вытесняют друг друга.
func targetKey(action, id string) string {
	return action + "#" + id
}

// operation описание асинхронной операции: вызов бэкенда и три перехода.
type operation[T any] struct {
	action string
	// key ключ устаревания ответа, по умолчанию action.
	key string
	// async возвращает AsyncState слайса внутри снимка.
	async func(*Snapshot) *AsyncState
	// pending дополнительный сброс полей при старте, может быть nil.
	pending   func(*Snapshot)
	call      func(context.Context) (T, error)
	fulfilled func(*Snapshot, T)
	// message текст ошибки для слайса.
	message func(error) string
}

// run выполняет операцию: pending под мьютексом, вызов без мьютекса,
// затем fulfilled или rejected, если ответ не устарел.
func run[T any](ctx context.Context, s *Store, op operation[T]) error {
	key := op.key
	if key == "" {
		key = op.action
	}
	log := s.log.With(sl.Op("store.run"), slog.String("action", op.action), slog.String("key", key))
	slice := sliceOf(op.action)

	var tk ticket
	s.commit(func(st *Snapshot) {
		tk = s.tracker.issue(key)
		a := op.async(st)
		a.Status = StatusLoading
		a.IsLoading = true
		a.Error = ""
		if op.pending != nil {
			op.pending(st)
		}
	})

	v, err := op.call(ctx)

	applied := false
	var opErr error
	s.update(func(st *Snapshot) bool {
		if !s.tracker.resolve(tk) {
			return false
		}
		applied = true
		a := op.async(st)
		a.IsLoading = s.tracker.loading(slice)
		if err != nil {
			msg := op.message(err)
			a.Status = StatusFailed
			a.Error = msg
			opErr = &OperationError{Action: op.action, Message: msg, Err: err}
			return true
		}
		a.Status = StatusSucceeded
		a.Error = ""
		op.fulfilled(st, v)
		return true
	})

	if !applied {
		log.Debug("stale response discarded", slog.Uint64("seq", tk.seq))
		return ErrSuperseded
	}
	if opErr != nil {
		log.Warn("action rejected", sl.Err(err))
		return opErr
	}
	log.Debug("action fulfilled")
	return nil
}
