package panel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const requestTimeout = 30 * time.Second

var ErrNotFound = errors.New("panel: resource not found")

type (
	// Client talks to the panel's application API.
	Client interface {
		// GetUser returns the raw account document, including its servers.
		GetUser(ctx context.Context, panelID string) ([]byte, error)
		SuspendServer(ctx context.Context, serverID string) error
		UnsuspendServer(ctx context.Context, serverID string) error
	}

	client struct {
		domain     string
		key        string
		httpClient *http.Client
	}

	StatusError struct {
		Method string
		Path   string
		Code   int
	}
)

func (e *StatusError) Error() string {
	return fmt.Sprintf("panel: %s %s returned %d", e.Method, e.Path, e.Code)
}

func NewClient(domain, key string) Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = requestTimeout
	return &client{
		domain:     domain,
		key:        key,
		httpClient: httpClient,
	}
}

func (c *client) GetUser(ctx context.Context, panelID string) ([]byte, error) {
	path := "/api/application/users/" + url.PathEscape(panelID) + "?include=servers"
	return c.do(ctx, http.MethodGet, path)
}

func (c *client) SuspendServer(ctx context.Context, serverID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/application/servers/"+url.PathEscape(serverID)+"/suspend")
	return err
}

func (c *client) UnsuspendServer(ctx context.Context, serverID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/application/servers/"+url.PathEscape(serverID)+"/unsuspend")
	return err
}

func (c *client) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.domain+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
