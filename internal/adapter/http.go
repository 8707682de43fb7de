package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client      *resty.Client
	tokenHeader string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// The base URL is cfg.Adapter.HTTPAddress; a scheme-less address gets
// "http://". Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	tokenHeader := cfg.TokenHeader
	if tokenHeader == "" {
		tokenHeader = config.DefaultTokenHeader
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Adapter.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, tokenHeader: tokenHeader, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
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

// rolePath prefixes path with /admin for the admin role.
func rolePath(role models.Role, path string) string {
	if role == models.RoleAdmin {
		return "/admin" + path
	}
	return path
}

func (h *httpServerAdapter) Signup(ctx context.Context, role models.Role, req models.SignupRequest) (models.AuthResult, error) {
	var res models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&res).
		Post(rolePath(role, "/signup"))
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	h.SetToken(res.Token)
	return res, nil
}

func (h *httpServerAdapter) Signin(ctx context.Context, role models.Role, req models.SigninRequest) (models.AuthResult, error) {
	var res models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&res).
		Post(rolePath(role, "/signin"))
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	h.SetToken(res.Token)
	return res, nil
}

func (h *httpServerAdapter) Signout(ctx context.Context, role models.Role) (models.MessageResponse, error) {
	var res models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Post(rolePath(role, "/signout"))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("signout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	h.SetToken("")
	return res, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context, role models.Role) (models.PublicUser, error) {
	var res models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Post(rolePath(role, "/profile"))
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return res.User, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.PublicUser, error) {
	var res models.UserResponse

	body := models.UpdateUserRequest{Payload: &models.UpdateUserPayload{Info: &update}}
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&res).
		Post("/user/update")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return res.User, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	var res []models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/getUsers")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return res, nil
}

func (h *httpServerAdapter) ReportItem(ctx context.Context, item models.NewItem, images ...File) (models.Item, error) {
	var res models.Item

	req := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"itemName":    item.ItemName,
			"description": item.Description,
			"itemType":    string(item.ItemType),
			"question":    item.Question,
		}).
		SetResult(&res)
	for _, img := range images {
		req.SetFileReader("itemImages", img.Name, img.Body)
	}

	resp, err := req.Post("/addItem")
	if err != nil {
		return models.Item{}, fmt.Errorf("report item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return res, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	var res []models.Item

	req := h.authedRequest(ctx).SetResult(&res)
	if filter.Type != "" {
		req.SetQueryParam("type", string(filter.Type))
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}

	resp, err := req.Get("/getItems")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return res, nil
}

func (h *httpServerAdapter) AddNotes(ctx context.Context, notes models.NewNotes, image *File) (models.Notes, error) {
	var res models.Notes

	req := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"title": notes.Title,
			"link":  notes.Link,
		}).
		SetResult(&res)
	if image != nil {
		req.SetFileReader("notesImage", image.Name, image.Body)
	}

	resp, err := req.Post("/notes/add")
	if err != nil {
		return models.Notes{}, fmt.Errorf("add notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Notes{}, err
	}

	return res, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Notes, error) {
	var res []models.Notes

	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/getnotes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return res, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	var res models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return res.Version, nil
}

// authedRequest attaches the stored token. The Authorization header uses the
// Bearer scheme; any other header carries the bare token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	token := h.Token()
	if token == "" {
		return req
	}

	if strings.EqualFold(h.tokenHeader, "Authorization") {
		return req.SetAuthToken(token)
	}
	return req.SetHeader(h.tokenHeader, token)
}
