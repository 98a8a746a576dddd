package feed

import (
	"net/http"

	"board-service/internal/posts"
	"board-service/internal/shared/httpx"
	"board-service/pkg/res"
)

type Handler struct {
	service posts.Service
}

func NewHandler(router *http.ServeMux, service posts.Service) {
	h := &Handler{service: service}

	router.Handle("GET /feed", httpx.Wrap(h.feed))
}

// The free-text term travels in the q query parameter; tag filters are
// request-local and never persisted in the URL.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) error {
	filter := posts.Filter{
		Query: r.URL.Query().Get("q"),
		Tags:  r.URL.Query()["tag"],
	}
	if r.URL.Query().Get("order") == string(posts.OrderTrending) {
		filter.Order = posts.OrderTrending
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		return err
	}
	if list == nil {
		list = []posts.Post{}
	}

	res.Json(w, map[string]any{
		"posts":      list,
		"known_tags": KnownTags(list),
	}, http.StatusOK)
	return nil
}
