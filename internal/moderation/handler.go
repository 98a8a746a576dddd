package moderation

import (
	"io"
	"net/http"

	"board-service/internal/errs"
	"board-service/internal/metrics"
	"board-service/internal/shared/httpx"
	"board-service/pkg/res"
)

const maxUploadBytes = 5 << 20

type Handler struct {
	client *Client
}

func NewHandler(router *http.ServeMux, client *Client) {
	h := &Handler{client: client}

	router.Handle("POST /images", httpx.Wrap(h.upload))
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return errs.Validation("file", "invalid multipart form")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return errs.Validation("file", "file field is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return errs.Transport("read upload", err)
	}

	url, err := h.client.Screen(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errs.IsModerationRejection(err) {
			metrics.ModerationRejected.Inc()
		}
		return err
	}

	res.Json(w, map[string]string{"url": url}, http.StatusCreated)
	return nil
}
