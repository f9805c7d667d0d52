// Package snapshot реализует HTTP-обработчик, отдающий полный снимок состояния консоли.
package snapshot

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

// Handler обрабатывает GET /state.
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
// @Summary Снимок состояния
// @Description Возвращает все слайсы состояния консоли одним объектом.
// @Tags State
// @Produce  json
// @Success 200 {object} response.Response "Снимок состояния"
// @Router /state [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.state.snapshot"

	snap := h.service.State()
	h.log.Debug("state snapshot served",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Uint64("version", snap.Version),
	)
	render.JSON(w, r, response.OKWithData(snap))
}
