package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateUser implements [ServerAdapter]. POST /api/users.
func (h *httpServerAdapter) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RequestToken implements [ServerAdapter]. POST /api/tokens with Basic auth.
func (h *httpServerAdapter) RequestToken(ctx context.Context, username, password string) (models.APIToken, error) {
	var token models.APIToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		SetResult(&token).
		Post("/api/tokens")
	if err != nil {
		return models.APIToken{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIToken{}, err
	}
	if token.Token == "" {
		return models.APIToken{}, fmt.Errorf("token request: %w: empty token", ErrUnauthorized)
	}

	h.SetToken(token.Token)
	return token, nil
}

// RevokeToken implements [ServerAdapter]. DELETE /api/tokens.
func (h *httpServerAdapter) RevokeToken(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Delete("/api/tokens")
	if err != nil {
		return fmt.Errorf("revoke token request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListPosts implements [ServerAdapter]. GET /api/posts.
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts models.PostsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts.Posts, nil
}

// GetPost implements [ServerAdapter]. GET /api/posts/{id}.
func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		SetPathParam("id", fmt.Sprint(postID)).
		Get("/api/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [ServerAdapter]. POST /api/posts.
func (h *httpServerAdapter) CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// GetVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
