// Package slice реализует HTTP-обработчик, отдающий один слайс состояния по ключу.
package slice

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

// Handler обрабатывает GET /state/{slice}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service источник снимка.
type Service interface {
	State() store.Snapshot
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Слайс состояния
// @Description Возвращает состояние одного слайса: auth, users, companies, dashboard, subscription или settings.
// @Tags State
// @Produce  json
// @Param slice path string true "Ключ слайса"
// @Success 200 {object} response.Response "Состояние слайса"
// @Failure 404 {object} response.ErrorResponse "Неизвестный слайс"
// @Router /state/{slice} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.state.slice"

	key := chi.URLParam(r, "slice")
	log := h.log.With(
		slog.String("op", op),
		slog.String("slice", key),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	v, err := h.service.State().Slice(key)
	if errors.Is(err, store.ErrUnknownSlice) {
		log.Error("unknown slice", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown slice "+key))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		key: v,
	}))
}
