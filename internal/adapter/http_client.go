package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/paydev-web/dmlabs-client/internal/config"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/utils"
	"github.com/paydev-web/dmlabs-client/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpBackendAdapter struct {
	client     *resty.Client
	requestIDs *utils.RequestIDGenerator
	logger     *logger.Logger
}

// NewHTTPBackendAdapter creates a [BackendAdapter] that posts form-encoded
// actions to the single backend URL from cfg. A zero timeout falls back to
// 15 seconds.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend url is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BackendURL, "/")).
		SetTimeout(timeout)

	return &httpBackendAdapter{
		client:     cli,
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     log,
	}, nil
}

func (h *httpBackendAdapter) GetTools(ctx context.Context) (models.ToolsResponse, error) {
	var out models.ToolsResponse
	err := h.postAction(ctx, map[string]string{"action": "getTools"}, &out)
	if err != nil {
		return models.ToolsResponse{}, fmt.Errorf("get tools request: %w", err)
	}
	if !out.Success {
		return models.ToolsResponse{}, &BackendError{Message: out.Message}
	}

	return out, nil
}

func (h *httpBackendAdapter) GetToolURL(ctx context.Context, toolID string) (string, error) {
	var out models.ToolResponse
	err := h.postAction(ctx, map[string]string{
		"action": "getTool",
		"toolId": toolID,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("get tool url request: %w", err)
	}
	if !out.Success || out.Tool.URL == "" {
		return "", &BackendError{Message: out.Message}
	}

	return out.Tool.URL, nil
}

func (h *httpBackendAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.postAction(ctx, map[string]string{
		"action":   "login",
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if !out.Success {
		return models.AuthResponse{}, &BackendError{Message: out.Message}
	}

	return out, nil
}

func (h *httpBackendAdapter) Signup(ctx context.Context, name, email, password, phone string) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.postAction(ctx, map[string]string{
		"action":   "signup",
		"name":     name,
		"email":    email,
		"password": password,
		"phone":    phone,
	}, &out)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if !out.Success {
		return models.AuthResponse{}, &BackendError{Message: out.Message}
	}

	return out, nil
}

func (h *httpBackendAdapter) ResetPassword(ctx context.Context, email string) (string, error) {
	var out models.MessageResponse
	err := h.postAction(ctx, map[string]string{
		"action": "reset-password",
		"email":  email,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("reset password request: %w", err)
	}
	if !out.Success {
		return "", &BackendError{Message: out.Message}
	}

	return out.Message, nil
}

// postAction posts one form-encoded action to the backend endpoint and
// decodes the JSON reply into out. Transport failures and non-2xx statuses
// are wrapped around ErrNetwork; application-level failure stays in out for
// the caller to inspect.
func (h *httpBackendAdapter) postAction(ctx context.Context, form map[string]string, out any) error {
	requestID := h.requestIDs.Next()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID).
		SetFormData(form).
		Post("")
	if err != nil {
		h.logger.Err(err).
			Str("request_id", requestID).
			Str("backend_action", form["action"]).
			Msg("backend request failed")
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		h.logger.Warn().
			Str("request_id", requestID).
			Str("backend_action", form["action"]).
			Int("status", resp.StatusCode()).
			Msg("backend answered with non-2xx status")
		return fmt.Errorf("%w: http %d: %s", ErrNetwork, resp.StatusCode(), statusBody(resp))
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}

	return nil
}

func statusBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
