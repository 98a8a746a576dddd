package engagement

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"board-service/internal/errs"
	"board-service/internal/metrics"
	"board-service/internal/shared/httpx"
	"board-service/pkg/res"
)

type Handler struct {
	service Service
}

func NewHandler(router *http.ServeMux, service Service) {
	h := &Handler{service: service}

	router.Handle("POST /posts/{id}/reactions", httpx.Wrap(h.react))
	router.Handle("GET /posts/{id}/reactions", httpx.Wrap(h.state))
}

func (h *Handler) react(w http.ResponseWriter, r *http.Request) error {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return errs.Validation("id", "invalid post id")
	}

	var payload struct {
		Action Action `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errs.Validation("body", err.Error())
	}

	st, err := h.service.React(r.Context(), httpx.UserFromCtx(r), postID, payload.Action)
	if err != nil {
		return err
	}

	metrics.ReactionsApplied.WithLabelValues(string(payload.Action)).Inc()
	res.Json(w, st, http.StatusOK)
	return nil
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) error {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return errs.Validation("id", "invalid post id")
	}

	st, err := h.service.ViewerState(r.Context(), httpx.UserFromCtx(r), postID)
	if err != nil {
		return err
	}
	res.Json(w, st, http.StatusOK)
	return nil
}
