package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
)

// Session сообщает, есть ли активная сессия администратора.
type Session interface {
	Authenticated() bool
}

type Handler struct {
	session Session
}

func New(session Session) *Handler {
	return &Handler{
		session: session,
	}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags Health
// @Produce  json
// @Success 200 {object} response.Response
// @Router /healthz [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status":        "ok",
		"authenticated": h.session.Authenticated(),
	}))
}
