package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"board-service/internal/errs"
)

// Client fronts the external moderation gate. The gate is opaque: it answers
// accept or reject, and accepted images get stored and served by URL.
type Client struct {
	gateURL    string
	httpClient *http.Client
	store      ObjectStore
}

func NewClient(gateURL string, store ObjectStore) *Client {
	return &Client{
		gateURL:    gateURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		store:      store,
	}
}

type screenRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type screenResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// Screen submits an upload to the gate. Accepted images are stored and the
// serving URL returned; rejected ones yield a ModerationRejection. Network
// failures are transport errors, recoverable by user retry.
func (c *Client) Screen(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	body, _ := json.Marshal(screenRequest{
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gateURL+"/screen", bytes.NewReader(body))
	if err != nil {
		return "", errs.Transport("moderation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Transport("moderation request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Transport("moderation request", fmt.Errorf("gate returned %d", resp.StatusCode))
	}

	var verdict screenResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return "", errs.Transport("moderation response", err)
	}
	if !verdict.Accepted {
		reason := verdict.Reason
		if reason == "" {
			reason = "image flagged"
		}
		return "", &errs.ModerationRejection{Reason: reason}
	}

	key := uuid.NewString() + "-" + filename
	url, err := c.store.Put(ctx, key, contentType, data)
	if err != nil {
		return "", errs.Transport("store image", err)
	}
	return url, nil
}
