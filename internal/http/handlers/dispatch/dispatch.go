// Package dispatch реализует HTTP-обработчик, выполняющий именованную
// операцию над стором консоли.
//
// Имя операции собирается из пути /dispatch/{slice}/{op}, тело запроса
// содержит её полезную нагрузку. В ответ всегда уходит снимок состояния
// после операции, кроме ошибок разбора и валидации.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

const maxBodySize = 1 << 20

// Handler обрабатывает POST /dispatch/{slice}/{op}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service стор консоли.
type Service interface {
	Dispatch(ctx context.Context, action store.Action) error
	State() store.Snapshot
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выполнить операцию над состоянием
// @Description Разбирает операцию slice/op из тела, выполняет её и возвращает новый снимок.
// @Description Отклонённая бэкендом операция возвращает 200 со статусом Error и снимком.
// @Tags State
// @Accept  json
// @Produce  json
// @Param slice path string true "Ключ слайса"
// @Param op path string true "Имя операции"
// @Success 200 {object} response.Response "Снимок состояния"
// @Failure 400 {object} response.ErrorResponse "Неизвестная операция или некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /dispatch/{slice}/{op} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dispatch"

	actionType := chi.URLParam(r, "slice") + "/" + chi.URLParam(r, "op")
	log := h.log.With(
		slog.String("op", op),
		slog.String("action", actionType),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	action, err := store.Decode(actionType, body)
	if errors.Is(err, store.ErrUnknownAction) {
		log.Error("unknown action")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown action "+actionType))
		return
	}
	if err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	err = h.service.Dispatch(r.Context(), action)

	var verr *store.ValidationError
	var opErr *store.OperationError
	switch {
	case errors.As(err, &verr):
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		if verr.Errs != nil {
			render.JSON(w, r, response.ValidationError(verr.Errs))
		} else {
			render.JSON(w, r, response.Error("validation failed"))
		}
		return
	case errors.Is(err, store.ErrSuperseded):
		log.Info("response superseded by a newer request")
	case errors.As(err, &opErr):
		log.Warn("action rejected", slog.String("message", opErr.Message))
		render.JSON(w, r, response.ErrorWithData(opErr.Message, h.service.State()))
		return
	case err != nil:
		log.Error("failed to dispatch action", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not dispatch action"))
		return
	}

	log.Info("action dispatched")
	render.JSON(w, r, response.OKWithData(h.service.State()))
}
