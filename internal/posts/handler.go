package posts

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

	router.Handle("POST /posts", httpx.Wrap(h.create))
	router.Handle("GET /posts", httpx.Wrap(h.list))
	router.Handle("GET /posts/{id}", httpx.Wrap(h.getByID))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	var payload CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errs.Validation("body", err.Error())
	}

	post, err := h.service.Create(r.Context(), httpx.UserFromCtx(r), payload.Content, payload.Tags, payload.ImageURL)
	if err != nil {
		return err
	}

	metrics.PostsCreated.Inc()
	res.Json(w, post, http.StatusCreated)
	return nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	filter := Filter{
		Tags:  r.URL.Query()["tag"],
		Query: r.URL.Query().Get("q"),
	}
	if r.URL.Query().Get("order") == string(OrderTrending) {
		filter.Order = OrderTrending
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		return err
	}
	if list == nil {
		list = []Post{}
	}
	res.Json(w, list, http.StatusOK)
	return nil
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) error {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return errs.Validation("id", "invalid post id")
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}
	res.Json(w, post, http.StatusOK)
	return nil
}
