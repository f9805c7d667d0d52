// Package actions отдаёт список операций, которые принимает /dispatch.
package actions

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Список операций
// @Tags State
// @Produce  json
// @Success 200 {object} response.Response "Имена операций вида slice/op"
// @Router /actions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"actions": store.ActionTypes(),
	}))
}
