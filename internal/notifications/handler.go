package notifications

import (
	"net/http"

	"board-service/internal/shared/httpx"
	"board-service/pkg/res"
)

type Handler struct {
	service Service
	scope   string
}

func NewHandler(router *http.ServeMux, service Service, scope string) {
	h := &Handler{service: service, scope: scope}

	router.Handle("GET /notifications", httpx.Wrap(h.list))
	router.Handle("POST /notifications/{id}/read", httpx.Wrap(h.markRead))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	list, err := h.service.Recent(r.Context(), h.scope)
	if err != nil {
		return err
	}
	if list == nil {
		list = []Notification{}
	}
	res.Json(w, map[string]any{
		"notifications": list,
		"has_unread":    HasUnread(list),
	}, http.StatusOK)
	return nil
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.MarkRead(r.Context(), h.scope, r.PathValue("id")); err != nil {
		return err
	}
	res.Json(w, map[string]string{"message": "notification marked read"}, http.StatusOK)
	return nil
}
