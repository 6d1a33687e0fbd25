package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/common"
	"github.com/dmitrijs2005/luca/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

const (
	pathRegister      = "/auth/register"
	pathLogin         = "/auth/login"
	pathLogoutToken   = "/auth/logout/token"
	pathMe            = "/accounts/me"
	pathAccounts      = "/accounts/"
	pathAdminAccounts = "/admin/accounts"
	pathForgot        = "/auth/password/forgot"
	pathReset         = "/auth/password/reset"
	pathHealth        = "/health"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient validates baseURL and returns a client whose requests are
// bounded by timeout (0 means no client-side bound).
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, newError(KindInvalidRequest, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, newError(KindInvalidRequest, fmt.Errorf("base URL %q must be absolute http(s)", baseURL))
	}
	return &HTTPClient{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, newError(KindInvalidRequest, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, newError(KindInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "backend unreachable", "method", method, "path", path, "error", err)
		return nil, newError(KindRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, newError(KindInvalidResponse, err)
	}

	c.log.Debug(ctx, "backend response", "method", method, "path", path, "status", resp.StatusCode)
	return &response{status: resp.StatusCode, body: data}, nil
}

func decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, newError(KindDecodingFailed, err)
	}
	return v, nil
}

// serverDetail extracts the message from an error body. FastAPI-style bodies
// carry either {"detail": "..."} or {"detail": [{"msg": "..."}]}.
func serverDetail(data []byte) (string, bool) {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s, s != ""
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err != nil {
		return "", false
	}
	msgs := make([]string, 0, len(items))
	for _, it := range items {
		if it.Msg != "" {
			msgs = append(msgs, it.Msg)
		}
	}
	return strings.Join(msgs, "; "), len(msgs) > 0
}

func detailOr(data []byte, fallback string) string {
	if msg, ok := serverDetail(data); ok {
		return msg
	}
	return fallback
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, pathRegister, "", req)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusCreated:
		return decodeAuth(resp.body)
	case http.StatusBadRequest:
		return nil, ServerError(detailOr(resp.body, "Email already registered"))
	case http.StatusUnprocessableEntity:
		return nil, ServerError(detailOr(resp.body, "Invalid input data"))
	default:
		return nil, ServerError("Failed to create account")
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	resp, err := c.do(ctx, http.MethodPost, pathLogin, "", payload)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		return decodeAuth(resp.body)
	case http.StatusUnauthorized:
		return nil, ServerError("Invalid email or password")
	case http.StatusTooManyRequests:
		return nil, ServerError("Too many login attempts. Please try again later.")
	default:
		return nil, ServerError("Login failed")
	}
}

func decodeAuth(data []byte) (*models.AuthResponse, error) {
	ar, err := decode[models.AuthResponse](data)
	if err != nil {
		return nil, err
	}
	if ar.Token == "" {
		return nil, newError(KindDecodingFailed, errors.New("response carries no token"))
	}
	return &ar, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	payload := struct {
		Token string `json:"token"`
	}{token}

	resp, err := c.do(ctx, http.MethodPost, pathLogoutToken, "", payload)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return newError(KindRequestFailed, fmt.Errorf("logout: status %d", resp.status))
	}
	return nil
}

func (c *HTTPClient) GetMyAccount(ctx context.Context, token string) (*models.Account, error) {
	resp, err := c.do(ctx, http.MethodGet, pathMe, token, nil)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		acc, err := decode[models.Account](resp.body)
		if err != nil {
			return nil, err
		}
		return &acc, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, newError(KindRequestFailed, fmt.Errorf("get account: status %d", resp.status))
	}
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, token string, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, pathAccounts+strconv.FormatInt(id, 10), token, nil)
	if err != nil {
		return err
	}

	switch {
	case resp.ok():
		return nil
	case resp.status == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return newError(KindRequestFailed, fmt.Errorf("delete account: status %d", resp.status))
	}
}

func (c *HTTPClient) ListAccounts(ctx context.Context, token string) ([]models.Account, error) {
	resp, err := c.do(ctx, http.MethodGet, pathAdminAccounts, token, nil)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		return decode[[]models.Account](resp.body)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, newError(KindRequestFailed, fmt.Errorf("list accounts: status %d", resp.status))
	}
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{email}

	resp, err := c.do(ctx, http.MethodPost, pathForgot, "", payload)
	if err != nil {
		return err
	}

	switch {
	case resp.status == http.StatusOK:
		return nil
	case resp.status >= 400 && resp.status < 500:
		if msg, ok := serverDetail(resp.body); ok {
			return ServerError(msg)
		}
		if raw := strings.TrimSpace(string(resp.body)); raw != "" {
			return ServerError(raw)
		}
		return ServerError("Invalid request.")
	default:
		return newError(KindRequestFailed, fmt.Errorf("password reset request: status %d", resp.status))
	}
}

func (c *HTTPClient) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	payload := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{resetToken, newPassword}

	resp, err := c.do(ctx, http.MethodPost, pathReset, "", payload)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ServerError(detailOr(resp.body, "Invalid or expired reset token"))
	default:
		return ServerError("Failed to reset password")
	}
}

func (c *HTTPClient) Health(ctx context.Context) (map[string]string, error) {
	resp, err := c.do(ctx, http.MethodGet, pathHealth, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, newError(KindRequestFailed, fmt.Errorf("health: status %d", resp.status))
	}
	return decode[map[string]string](resp.body)
}
