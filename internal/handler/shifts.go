package handler

import (
	"net/http"
)

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	templates := h.registry.Templates()

	views := make([]templateView, 0, len(templates))
	for _, tpl := range templates {
		views = append(views, newTemplateView(tpl))
	}

	h.successResponse(w, r, "shift catalog retrieved", views)
}
