package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MrK0xGT/insurance-crm/internal/utils"
	"github.com/MrK0xGT/insurance-crm/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Username reads the subject claim out of the stored session token without
// verifying the signature; verification is the server's job. Used by UI
// layers to show who is logged in.
func (h *httpServerAdapter) Username() (string, error) {
	token := h.Token()
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return utils.ParseUsernameFromJWT(token)
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error) {
	var profile models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return profile, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var profile models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return profile, nil
}

func (h *httpServerAdapter) CreateClient(ctx context.Context, req models.CreateClientRequest) (int64, error) {
	var created models.CreateClientResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(req).
		SetResult(&created).
		Post("/api/clients")
	if err != nil {
		return 0, fmt.Errorf("create client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) ListClients(ctx context.Context, searchTerm string) (models.ListClientsResponse, error) {
	var listing models.ListClientsResponse

	request := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&listing)
	if searchTerm != "" {
		request.SetQueryParam("q", searchTerm)
	}

	resp, err := request.Get("/api/clients")
	if err != nil {
		return models.ListClientsResponse{}, fmt.Errorf("list clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListClientsResponse{}, err
	}

	return listing, nil
}

func (h *httpServerAdapter) DeleteClient(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		Delete(fmt.Sprintf("/api/clients/%d", id))
	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}

	return mapHTTPError(resp)
}
