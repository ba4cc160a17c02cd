// Package session implements the Mojang session-service client used during
// online-mode login: the single HasJoined query §6 of the specification
// describes. This server never authenticates as a client, so the
// teacher's Join (POST) half of the session-service API has no home here
// and is not ported.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://sessionserver.mojang.com"

// Property is a signed profile property such as "textures".
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// HasJoinedResponse is the decoded HTTP 200 body of a hasJoined query.
type HasJoinedResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// ErrNoSuchSession is returned for HTTP 204: the client never completed
// the corresponding join with Mojang, a fatal login error per §7.
var ErrNoSuchSession = fmt.Errorf("session: no such session")

// Client queries the Mojang session service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a Client against the default Mojang endpoint.
func NewClient(log *zap.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// NewClientWithURL overrides the base URL, used by tests to point at a
// stub session service.
func NewClientWithURL(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// HasJoined performs the blocking hasJoined GET described in §6. It runs
// synchronously on whichever worker is servicing the connection's
// Encryption Response, which is the one blocking point the concurrency
// model tolerates.
func (c *Client) HasJoined(ctx context.Context, username, serverIDHash, clientIP string) (*HasJoinedResponse, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("serverId", serverIDHash)
	if clientIP != "" {
		q.Set("ip", clientIP)
	}

	endpoint := fmt.Sprintf("%s/session/minecraft/hasJoined?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("session: build request: %w", err)
	}

	c.log.Debug("querying session service", zap.String("username", username))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out HasJoinedResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("session: malformed response: %w", err)
		}
		return &out, nil
	case http.StatusNoContent:
		return nil, ErrNoSuchSession
	default:
		return nil, fmt.Errorf("session: unexpected status %d", resp.StatusCode)
	}
}

// FormatUUID reinserts hyphens into the session service's undashed UUID.
func FormatUUID(undashed string) (uuid.UUID, error) {
	if len(undashed) != 32 {
		return uuid.UUID{}, fmt.Errorf("session: uuid %q is not 32 hex characters", undashed)
	}
	dashed := strings.Join([]string{
		undashed[0:8], undashed[8:12], undashed[12:16], undashed[16:20], undashed[20:32],
	}, "-")
	return uuid.Parse(dashed)
}
