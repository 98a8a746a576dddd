package comments

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

	router.Handle("GET /posts/{id}/comments", httpx.Wrap(h.list))
	router.Handle("POST /posts/{id}/comments", httpx.Wrap(h.create))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return errs.Validation("id", "invalid post id")
	}

	// ?threaded=true returns the reply forest instead of the flat list.
	if r.URL.Query().Get("threaded") == "true" {
		tree, err := h.service.ThreadTree(r.Context(), postID)
		if err != nil {
			return err
		}
		if tree == nil {
			tree = []*ThreadNode{}
		}
		res.Json(w, tree, http.StatusOK)
		return nil
	}

	list, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		return err
	}
	if list == nil {
		list = []Comment{}
	}
	res.Json(w, list, http.StatusOK)
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return errs.Validation("id", "invalid post id")
	}

	var payload struct {
		Content  string     `json:"content"`
		ParentID *uuid.UUID `json:"parent_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errs.Validation("body", err.Error())
	}

	c, err := h.service.Create(r.Context(), httpx.UserFromCtx(r), postID, payload.Content, payload.ParentID)
	if err != nil {
		return err
	}

	metrics.CommentsCreated.Inc()
	res.Json(w, c, http.StatusCreated)
	return nil
}
